package interfaces

import (
	"context"
	"homeservice/internal/domain/entities"
)

// IBookingSessionRepository abstracts DynamoDB persistence for BookingSession.
//
// The booking-service must be able to:
//   - create a session when the booking page loads a service catalog
//   - save the full session after a synchronous state mutation
//   - attach a discount conditionally on the promo generation observed
//     before the validation call, so a stale validation response can never
//     clobber a newer clear/edit

type IBookingSessionRepository interface {
	Create(ctx context.Context, s entities.BookingSession) (entities.BookingSession, error)
	GetByID(ctx context.Context, id string) (entities.BookingSession, error)
	Save(ctx context.Context, s entities.BookingSession) (entities.BookingSession, error)
	AttachDiscount(ctx context.Context, id, promoCode string, d entities.Discount, expectedGeneration int64) (entities.BookingSession, error)
}
