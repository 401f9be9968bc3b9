package interfaces

import (
	"context"
	"homeservice/internal/domain/entities"
)

// IBookingRepository abstracts DynamoDB persistence for completed bookings.

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Booking, error)
}
