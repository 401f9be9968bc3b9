package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"homeservice/internal/domain/entities"
	"homeservice/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound            = errors.New("booking not found")
	ErrInvalidBookingID           = errors.New("invalid booking id")
	ErrNotOnPaymentStep           = errors.New("session is not on the payment step")
	ErrUserNotIdentified          = errors.New("session has no identified user")
	ErrUnsupportedPaymentMethod   = errors.New("unsupported payment method")
	ErrMissingCardToken           = errors.New("missing card token")
	ErrIncompleteBooking          = errors.New("booking is incomplete")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

const defaultPaymentTimeoutSeconds = 30

// ICheckoutUseCase encapsulates final submission on the payment step:
// charge the card, persist the completed booking, reset the session.
//
// Payment failure is retryable: the session stays on the payment step and is
// not reset.

type ICheckoutUseCase interface {
	Confirm(ctx context.Context, sessionID string, card entities.CardCharge) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Booking, error)
}

type CheckoutUseCase struct {
	sessions interfaces.IBookingSessionRepository
	bookings interfaces.IBookingRepository
	gateway  interfaces.IPaymentGateway
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(sessions interfaces.IBookingSessionRepository, bookings interfaces.IBookingRepository, gateway interfaces.IPaymentGateway) *CheckoutUseCase {
	return &CheckoutUseCase{sessions: sessions, bookings: bookings, gateway: gateway}
}

func (u *CheckoutUseCase) Confirm(ctx context.Context, sessionID string, card entities.CardCharge) (entities.Booking, error) {
	log.Printf("[checkout][usecase] confirm start session_id=%q", sessionID)
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Booking{}, ErrInvalidSessionID
	}
	if u.gateway == nil {
		return entities.Booking{}, errors.New("payment gateway not configured")
	}

	s, err := u.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return entities.Booking{}, err
	}
	if s.ID == "" {
		return entities.Booking{}, ErrSessionNotFound
	}

	if s.Step != entities.StepPayment {
		log.Printf("[checkout][usecase] wrong step session_id=%s step=%s", sessionID, s.Step)
		return entities.Booking{}, ErrNotOnPaymentStep
	}
	if strings.TrimSpace(s.UserID) == "" {
		return entities.Booking{}, ErrUserNotIdentified
	}
	if s.Payment.Method != entities.PaymentMethodCreditCard {
		return entities.Booking{}, ErrUnsupportedPaymentMethod
	}
	// Defensive re-check of the earlier step gates.
	if len(s.ActiveLines()) == 0 || !s.Customer.IsComplete() {
		return entities.Booking{}, ErrIncompleteBooking
	}

	mockMode := isPaymentGatewayMockEnabled()
	if !mockMode && strings.TrimSpace(card.Token) == "" {
		return entities.Booking{}, ErrMissingCardToken
	}

	// The source of truth for the amount is the session state, not the caller.
	card.Amount = s.FinalAmount()
	card.ExternalReference = s.ID
	card.CardholderName = s.Payment.CardName
	if card.Description == "" {
		card.Description = fmt.Sprintf("Booking session %s", s.ID)
	}
	if card.Installments <= 0 {
		card.Installments = 1
	}

	log.Printf("[checkout][usecase] charging card session_id=%s amount=%.2f", sessionID, card.Amount)

	pctx, cancel := context.WithTimeout(ctx, paymentTimeout())
	defer cancel()

	providerPaymentID, providerStatus, providerResp, err := u.gateway.ChargeCard(pctx, card)
	if err != nil {
		log.Printf("[checkout][usecase] charge failed session_id=%s err=%v", sessionID, err)
		if isGatewayUnauthorized(err) {
			return entities.Booking{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.Booking{}, ErrPaymentGatewayBadRequest
		}
		return entities.Booking{}, err
	}
	log.Printf("[checkout][usecase] charge success session_id=%s provider_payment_id=%s provider_status=%s", sessionID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[checkout][usecase] provider response unmarshal failed session_id=%s err=%v", sessionID, err)
	}

	discountAmount := 0.0
	if s.Payment.Discount != nil {
		discountAmount = s.Payment.Discount.Amount
	}

	now := time.Now().UTC()
	b := entities.Booking{
		ID:                 uuid.NewString(),
		SessionID:          s.ID,
		UserID:             s.UserID,
		ServiceID:          s.ServiceID,
		Lines:              s.ActiveLines(),
		Customer:           s.Customer,
		PromoCode:          s.Payment.PromoCode,
		TotalAmount:        s.Subtotal(),
		DiscountAmount:     discountAmount,
		FinalAmount:        s.FinalAmount(),
		Status:             entities.BookingStatusPaid,
		Date:               now,
		ProviderPaymentID:  providerPaymentID,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.bookings.Create(ctx, b)
	if err != nil {
		log.Printf("[checkout][usecase] booking create failed session_id=%s booking_id=%s err=%v", sessionID, b.ID, err)
		return entities.Booking{}, err
	}

	// Booking Reset: exactly once per completed booking, after the charge is
	// confirmed. A failed save here does not undo the booking.
	s.Reset()
	s.UpdatedAt = now
	if _, err := u.sessions.Save(ctx, s); err != nil {
		log.Printf("[checkout][usecase] session reset save failed session_id=%s err=%v", sessionID, err)
		return entities.Booking{}, err
	}

	log.Printf("[checkout][usecase] confirm success session_id=%s booking_id=%s", sessionID, created.ID)
	return created, nil
}

func (u *CheckoutUseCase) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}

	b, err := u.bookings.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

func (u *CheckoutUseCase) ListByUserID(ctx context.Context, userID string) ([]entities.Booking, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.bookings.ListByUserID(ctx, userID)
}

func paymentTimeout() time.Duration {
	if v := strings.TrimSpace(os.Getenv("PAYMENT_CONFIRM_TIMEOUT_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return defaultPaymentTimeoutSeconds * time.Second
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
