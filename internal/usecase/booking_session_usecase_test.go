package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"homeservice/internal/domain/entities"
	mock_interfaces "homeservice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func catalogLines() []entities.CartLine {
	return []entities.CartLine{
		{ID: 1, ServiceID: 7, ServiceTitle: "Cleaning", Title: "Deep clean", Unit: "room", Price: 100},
		{ID: 2, ServiceID: 7, ServiceTitle: "Cleaning", Title: "Window wash", Unit: "pane", Price: 50},
	}
}

func storedSession() entities.BookingSession {
	return entities.NewBookingSession("sess-1", "user-1", 7, catalogLines(), time.Now().UTC())
}

func TestBookingSessionUseCase_StartSession(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		uc := NewBookingSessionUseCase(nil, nil)
		_, err := uc.StartSession(context.Background(), "   ", 7)
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("invalid service id", func(t *testing.T) {
		uc := NewBookingSessionUseCase(nil, nil)
		_, err := uc.StartSession(context.Background(), "user-1", 0)
		if !errors.Is(err, ErrInvalidServiceID) {
			t.Fatalf("expected ErrInvalidServiceID, got %v", err)
		}
	})

	t.Run("catalog error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockISubServiceRepository(ctrl)
		uc := NewBookingSessionUseCase(nil, catalog)

		catalog.EXPECT().ListByServiceID(gomock.Any(), 7).Return(nil, errors.New("db"))

		_, err := uc.StartSession(context.Background(), "user-1", 7)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("empty catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockISubServiceRepository(ctrl)
		uc := NewBookingSessionUseCase(nil, catalog)

		catalog.EXPECT().ListByServiceID(gomock.Any(), 7).Return(nil, nil)

		_, err := uc.StartSession(context.Background(), "user-1", 7)
		if !errors.Is(err, ErrEmptyCatalog) {
			t.Fatalf("expected ErrEmptyCatalog, got %v", err)
		}
	})

	t.Run("success seeds ledger at quantity zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingSessionRepository(ctrl)
		catalog := mock_interfaces.NewMockISubServiceRepository(ctrl)
		uc := NewBookingSessionUseCase(repo, catalog)

		seed := catalogLines()
		seed[0].Quantity = 3 // catalog rows must not leak quantities into the ledger
		catalog.EXPECT().ListByServiceID(gomock.Any(), 7).Return(seed, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.BookingSession{})).DoAndReturn(
			func(_ context.Context, s entities.BookingSession) (entities.BookingSession, error) {
				if s.ID == "" || s.UserID != "user-1" || s.ServiceID != 7 {
					t.Fatalf("unexpected session: %+v", s)
				}
				if s.Step != entities.StepItems || len(s.Lines) != 2 {
					t.Fatalf("unexpected initial state: %+v", s)
				}
				for _, l := range s.Lines {
					if l.Quantity != 0 {
						t.Fatalf("expected zero quantities, got %+v", s.Lines)
					}
				}
				if s.CreatedAt.IsZero() || s.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return s, nil
			},
		)

		res, err := uc.StartSession(context.Background(), " user-1 ", 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestBookingSessionUseCase_GetSession(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewBookingSessionUseCase(nil, nil)
		_, err := uc.GetSession(context.Background(), " ")
		if !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingSessionRepository(ctrl)
		uc := NewBookingSessionUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(entities.BookingSession{}, nil)

		_, err := uc.GetSession(context.Background(), "sess-1")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingSessionRepository(ctrl)
		uc := NewBookingSessionUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(storedSession(), nil)

		res, err := uc.GetSession(context.Background(), " sess-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "sess-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestBookingSessionUseCase_SetQuantity(t *testing.T) {
	t.Run("invalid line id", func(t *testing.T) {
		uc := NewBookingSessionUseCase(nil, nil)
		_, err := uc.SetQuantity(context.Background(), "sess-1", 0, 1)
		if !errors.Is(err, ErrInvalidLineID) {
			t.Fatalf("expected ErrInvalidLineID, got %v", err)
		}
	})

	t.Run("updates quantity and saves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingSessionRepository(ctrl)
		uc := NewBookingSessionUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(storedSession(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.BookingSession{})).DoAndReturn(
			func(_ context.Context, s entities.BookingSession) (entities.BookingSession, error) {
				if s.Lines[0].Quantity != 2 {
					t.Fatalf("expected quantity 2, got %+v", s.Lines)
				}
				return s, nil
			},
		)

		res, err := uc.SetQuantity(context.Background(), "sess-1", 1, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Subtotal() != 200 {
			t.Fatalf("expected subtotal 200, got %v", res.Subtotal())
		}
	})

	t.Run("save error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingSessionRepository(ctrl)
		uc := NewBookingSessionUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(storedSession(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.BookingSession{}, errors.New("db"))

		_, err := uc.SetQuantity(context.Background(), "sess-1", 1, 2)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestBookingSessionUseCase_UpdateCustomerInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIBookingSessionRepository(ctrl)
	uc := NewBookingSessionUseCase(repo, nil)

	addr := "99/1 Sukhumvit Rd"
	repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(storedSession(), nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s entities.BookingSession) (entities.BookingSession, error) {
			if s.Customer.Address != addr {
				t.Fatalf("expected merged address, got %+v", s.Customer)
			}
			if s.Customer.Province != "" {
				t.Fatalf("unset fields must keep prior value")
			}
			return s, nil
		},
	)

	_, err := uc.UpdateCustomerInfo(context.Background(), "sess-1", entities.CustomerInfoPatch{Address: &addr})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBookingSessionUseCase_UpdatePaymentInfo(t *testing.T) {
	t.Run("promo edit clears discount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingSessionRepository(ctrl)
		uc := NewBookingSessionUseCase(repo, nil)

		stored := storedSession()
		stored.Payment.PromoCode = "SAVE10"
		stored.Payment.Discount = &entities.Discount{Type: entities.DiscountTypePercentage, Value: 10, Amount: 20}

		code := "NEWCODE"
		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(stored, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.BookingSession) (entities.BookingSession, error) {
				if s.Payment.Discount != nil || s.Payment.PromoCode != "NEWCODE" {
					t.Fatalf("expected discount cleared on code edit, got %+v", s.Payment)
				}
				return s, nil
			},
		)

		_, err := uc.UpdatePaymentInfo(context.Background(), "sess-1", entities.PaymentInfoPatch{PromoCode: &code})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBookingSessionUseCase_AdvanceRetreat(t *testing.T) {
	t.Run("advance blocked on empty cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingSessionRepository(ctrl)
		uc := NewBookingSessionUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(storedSession(), nil)

		_, err := uc.Advance(context.Background(), "sess-1")
		if !errors.Is(err, ErrCannotAdvance) {
			t.Fatalf("expected ErrCannotAdvance, got %v", err)
		}
	})

	t.Run("advance moves one step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingSessionRepository(ctrl)
		uc := NewBookingSessionUseCase(repo, nil)

		stored := storedSession()
		stored.SetQuantity(1, 1)
		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(stored, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.BookingSession) (entities.BookingSession, error) {
				return s, nil
			},
		)

		res, err := uc.Advance(context.Background(), "sess-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Step != entities.StepDetails {
			t.Fatalf("expected details step, got %s", res.Step)
		}
	})

	t.Run("retreat from first step signals exit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingSessionRepository(ctrl)
		uc := NewBookingSessionUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(storedSession(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.BookingSession) (entities.BookingSession, error) {
				return s, nil
			},
		)

		res, exit, err := uc.Retreat(context.Background(), "sess-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exit || res.Step != entities.StepItems {
			t.Fatalf("expected exit signal on first step, exit=%v step=%s", exit, res.Step)
		}
	})
}

func TestBookingSessionUseCase_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIBookingSessionRepository(ctrl)
	uc := NewBookingSessionUseCase(repo, nil)

	stored := storedSession()
	stored.SetQuantity(1, 2)
	stored.Step = entities.StepPayment
	stored.Payment.Discount = &entities.Discount{Type: entities.DiscountTypeFixed, Value: 20, Amount: 20}
	stored.Payment.PromoCode = "SAVE20"

	repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(stored, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s entities.BookingSession) (entities.BookingSession, error) {
			return s, nil
		},
	)

	res, err := uc.Reset(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.ActiveLines()) != 0 || res.Step != entities.StepItems || res.Payment.Discount != nil {
		t.Fatalf("expected initial state after reset: %+v", res)
	}
}
