package interfaces

import (
	"context"
	"homeservice/internal/domain/entities"
)

// IPromotionGateway abstracts the external promo validation service.
//
// The returned discount amount is authoritative (computed by the service
// against the submitted subtotal) and is never recomputed locally.
type IPromotionGateway interface {
	Validate(ctx context.Context, code string, subtotal float64) (entities.PromoValidation, error)
}
