package interfaces

import (
	"context"
	"homeservice/internal/domain/entities"
)

// ISubServiceRepository abstracts the sub-service catalog. A session's cart
// ledger is seeded once from the catalog of the chosen top-level service.

type ISubServiceRepository interface {
	ListByServiceID(ctx context.Context, serviceID int) ([]entities.CartLine, error)
}
