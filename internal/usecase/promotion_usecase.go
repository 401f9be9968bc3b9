package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"homeservice/internal/domain/entities"
	"homeservice/internal/usecase/interfaces"
)

var (
	ErrInvalidPromoCode       = errors.New("invalid promo code")
	ErrPromoServiceFailure    = errors.New("promo validation service unavailable")
	ErrPromoValidationStale   = errors.New("promo validation superseded by a newer change")
	ErrPromoDiscountMalformed = errors.New("promo service returned a malformed discount")
)

const defaultPromoTimeoutSeconds = 5

// PromoRejectedError carries the human-readable rejection reason sourced from
// the promo validation service (expired, quota exhausted, below minimum
// subtotal, ...).
type PromoRejectedError struct {
	Reason string
}

func (e *PromoRejectedError) Error() string {
	return fmt.Sprintf("promo code rejected: %s", e.Reason)
}

// IPromotionUseCase validates, applies and clears promo codes on a session.
//
// Apply is the one asynchronous boundary of the booking core: it suspends on
// the external validation call. The discount is attached with a conditional
// update on the promo generation observed before that call, so a late
// response can never clobber a clear/edit that happened while it was in
// flight.

type IPromotionUseCase interface {
	ApplyPromoCode(ctx context.Context, sessionID, code string) (entities.BookingSession, error)
	ClearPromoCode(ctx context.Context, sessionID string) (entities.BookingSession, error)
}

type PromotionUseCase struct {
	sessions interfaces.IBookingSessionRepository
	gateway  interfaces.IPromotionGateway
}

var _ IPromotionUseCase = (*PromotionUseCase)(nil)

func NewPromotionUseCase(sessions interfaces.IBookingSessionRepository, gateway interfaces.IPromotionGateway) *PromotionUseCase {
	return &PromotionUseCase{sessions: sessions, gateway: gateway}
}

func (u *PromotionUseCase) ApplyPromoCode(ctx context.Context, sessionID, code string) (entities.BookingSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.BookingSession{}, ErrInvalidSessionID
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.BookingSession{}, ErrInvalidPromoCode
	}
	if u.gateway == nil {
		return entities.BookingSession{}, errors.New("promotion gateway not configured")
	}

	s, err := u.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return entities.BookingSession{}, err
	}
	if s.ID == "" {
		return entities.BookingSession{}, ErrSessionNotFound
	}

	// Record the typed code with no discount first. Any later edit or clear
	// bumps the generation past the one we validate against.
	s.Payment.PromoCode = code
	s.Payment.Discount = nil
	s.PromoGeneration++
	s.UpdatedAt = time.Now().UTC()
	s, err = u.sessions.Save(ctx, s)
	if err != nil {
		return entities.BookingSession{}, err
	}
	generation := s.PromoGeneration
	subtotal := s.Subtotal()

	log.Printf("[promo][usecase] validate start session_id=%s code=%s subtotal=%.2f generation=%d", sessionID, code, subtotal, generation)

	vctx, cancel := context.WithTimeout(ctx, promoTimeout())
	defer cancel()

	result, err := u.gateway.Validate(vctx, code, subtotal)
	if err != nil {
		// Transport failure: generic rejection, no stale discount left behind.
		log.Printf("[promo][usecase] validate transport failure session_id=%s err=%v", sessionID, err)
		return s, ErrPromoServiceFailure
	}
	if !result.Valid {
		log.Printf("[promo][usecase] validate rejected session_id=%s reason=%q", sessionID, result.Message)
		reason := result.Message
		if strings.TrimSpace(reason) == "" {
			reason = "promo code is not valid"
		}
		return s, &PromoRejectedError{Reason: reason}
	}
	if err := result.Discount.Validate(); err != nil {
		log.Printf("[promo][usecase] malformed discount session_id=%s err=%v", sessionID, err)
		return s, ErrPromoDiscountMalformed
	}

	attached, err := u.sessions.AttachDiscount(ctx, sessionID, code, result.Discount, generation)
	if err != nil {
		return entities.BookingSession{}, err
	}
	if attached.ID == "" {
		// The user cleared or edited the code while validation was in flight;
		// the late response is discarded.
		log.Printf("[promo][usecase] stale validation discarded session_id=%s code=%s generation=%d", sessionID, code, generation)
		current, gerr := u.sessions.GetByID(ctx, sessionID)
		if gerr != nil {
			return entities.BookingSession{}, gerr
		}
		return current, ErrPromoValidationStale
	}

	log.Printf("[promo][usecase] discount applied session_id=%s code=%s amount=%.2f", sessionID, code, result.Discount.Amount)
	return attached, nil
}

func (u *PromotionUseCase) ClearPromoCode(ctx context.Context, sessionID string) (entities.BookingSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.BookingSession{}, ErrInvalidSessionID
	}

	s, err := u.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return entities.BookingSession{}, err
	}
	if s.ID == "" {
		return entities.BookingSession{}, ErrSessionNotFound
	}

	s.ClearPromo()
	s.UpdatedAt = time.Now().UTC()
	return u.sessions.Save(ctx, s)
}

func promoTimeout() time.Duration {
	if v := strings.TrimSpace(os.Getenv("PROMO_VALIDATION_TIMEOUT_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return defaultPromoTimeoutSeconds * time.Second
}
