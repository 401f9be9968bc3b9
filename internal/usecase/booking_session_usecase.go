package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"homeservice/internal/domain/entities"
	"homeservice/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound  = errors.New("booking session not found")
	ErrInvalidSessionID = errors.New("invalid session id")
	ErrInvalidUserID    = errors.New("invalid user id")
	ErrInvalidServiceID = errors.New("invalid service id")
	ErrEmptyCatalog     = errors.New("no sub-services for this service")
	ErrCannotAdvance    = errors.New("cannot advance from current step")
	ErrInvalidLineID    = errors.New("invalid cart line id")
)

// IBookingSessionUseCase exposes the booking wizard state machine.
//
// One session per booking flow: the cart ledger is seeded from the sub-service
// catalog at start, mutated through quantity/customer/payment updates, and the
// step controller only moves by one position per advance/retreat call.

type IBookingSessionUseCase interface {
	StartSession(ctx context.Context, userID string, serviceID int) (entities.BookingSession, error)
	GetSession(ctx context.Context, id string) (entities.BookingSession, error)
	SetQuantity(ctx context.Context, sessionID string, lineID, quantity int) (entities.BookingSession, error)
	UpdateCustomerInfo(ctx context.Context, sessionID string, patch entities.CustomerInfoPatch) (entities.BookingSession, error)
	UpdatePaymentInfo(ctx context.Context, sessionID string, patch entities.PaymentInfoPatch) (entities.BookingSession, error)
	Advance(ctx context.Context, sessionID string) (entities.BookingSession, error)
	Retreat(ctx context.Context, sessionID string) (entities.BookingSession, bool, error)
	Reset(ctx context.Context, sessionID string) (entities.BookingSession, error)
}

type BookingSessionUseCase struct {
	repo    interfaces.IBookingSessionRepository
	catalog interfaces.ISubServiceRepository
}

var _ IBookingSessionUseCase = (*BookingSessionUseCase)(nil)

func NewBookingSessionUseCase(repo interfaces.IBookingSessionRepository, catalog interfaces.ISubServiceRepository) *BookingSessionUseCase {
	return &BookingSessionUseCase{repo: repo, catalog: catalog}
}

func (u *BookingSessionUseCase) StartSession(ctx context.Context, userID string, serviceID int) (entities.BookingSession, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.BookingSession{}, ErrInvalidUserID
	}
	if serviceID <= 0 {
		return entities.BookingSession{}, ErrInvalidServiceID
	}

	lines, err := u.catalog.ListByServiceID(ctx, serviceID)
	if err != nil {
		return entities.BookingSession{}, err
	}
	if len(lines) == 0 {
		return entities.BookingSession{}, ErrEmptyCatalog
	}

	now := time.Now().UTC()
	s := entities.NewBookingSession(uuid.NewString(), userID, serviceID, lines, now)
	return u.repo.Create(ctx, s)
}

func (u *BookingSessionUseCase) GetSession(ctx context.Context, id string) (entities.BookingSession, error) {
	return u.load(ctx, id)
}

func (u *BookingSessionUseCase) SetQuantity(ctx context.Context, sessionID string, lineID, quantity int) (entities.BookingSession, error) {
	if lineID <= 0 {
		return entities.BookingSession{}, ErrInvalidLineID
	}
	return u.mutate(ctx, sessionID, func(s *entities.BookingSession) error {
		s.SetQuantity(lineID, quantity)
		return nil
	})
}

func (u *BookingSessionUseCase) UpdateCustomerInfo(ctx context.Context, sessionID string, patch entities.CustomerInfoPatch) (entities.BookingSession, error) {
	return u.mutate(ctx, sessionID, func(s *entities.BookingSession) error {
		s.Customer.Apply(patch)
		return nil
	})
}

func (u *BookingSessionUseCase) UpdatePaymentInfo(ctx context.Context, sessionID string, patch entities.PaymentInfoPatch) (entities.BookingSession, error) {
	return u.mutate(ctx, sessionID, func(s *entities.BookingSession) error {
		s.ApplyPaymentInfo(patch)
		return nil
	})
}

// Advance moves the wizard one step forward. The gate is re-checked here even
// though callers are expected to consult CanAdvance first.
func (u *BookingSessionUseCase) Advance(ctx context.Context, sessionID string) (entities.BookingSession, error) {
	return u.mutate(ctx, sessionID, func(s *entities.BookingSession) error {
		if !s.Advance() {
			return ErrCannotAdvance
		}
		return nil
	})
}

// Retreat moves the wizard one step back. The second return value is the
// "exit wizard" signal raised when retreating from the first step.
func (u *BookingSessionUseCase) Retreat(ctx context.Context, sessionID string) (entities.BookingSession, bool, error) {
	exit := false
	s, err := u.mutate(ctx, sessionID, func(s *entities.BookingSession) error {
		exit = s.Retreat()
		return nil
	})
	return s, exit, err
}

func (u *BookingSessionUseCase) Reset(ctx context.Context, sessionID string) (entities.BookingSession, error) {
	return u.mutate(ctx, sessionID, func(s *entities.BookingSession) error {
		s.Reset()
		return nil
	})
}

func (u *BookingSessionUseCase) load(ctx context.Context, id string) (entities.BookingSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BookingSession{}, ErrInvalidSessionID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BookingSession{}, err
	}
	if s.ID == "" {
		return entities.BookingSession{}, ErrSessionNotFound
	}
	return s, nil
}

func (u *BookingSessionUseCase) mutate(ctx context.Context, id string, fn func(*entities.BookingSession) error) (entities.BookingSession, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.BookingSession{}, err
	}
	if err := fn(&s); err != nil {
		return entities.BookingSession{}, err
	}
	s.UpdatedAt = time.Now().UTC()

	saved, err := u.repo.Save(ctx, s)
	if err != nil {
		return entities.BookingSession{}, err
	}
	if saved.ID == "" {
		return entities.BookingSession{}, ErrSessionNotFound
	}
	return saved, nil
}
