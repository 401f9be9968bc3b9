package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"homeservice/internal/adapter/http/handlers/mocks"
	"homeservice/internal/domain/entities"
	"homeservice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPromotionHandler_ApplyPromo(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPromotionUseCase(ctrl)
		h := NewPromotionHandler(uc)

		r := gin.New()
		r.POST("/v1/sessions/:session_id/promo", h.ApplyPromo)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/sess-1/promo", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPromotionUseCase(ctrl)
		h := NewPromotionHandler(uc)

		r := gin.New()
		r.POST("/v1/sessions/:session_id/promo", h.ApplyPromo)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/sess-1/promo", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rejected code maps to 422 with reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPromotionUseCase(ctrl)
		h := NewPromotionHandler(uc)

		r := gin.New()
		r.POST("/v1/sessions/:session_id/promo", h.ApplyPromo)

		uc.EXPECT().
			ApplyPromoCode(gomock.Any(), "sess-1", "EXPIRED50").
			Return(entities.BookingSession{}, &usecase.PromoRejectedError{Reason: "code expired"})

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/sess-1/promo", bytes.NewBufferString(`{"code":"EXPIRED50"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}

		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["message"] != "code expired" {
			t.Fatalf("expected rejection reason in message, got %v", body["message"])
		}
	})

	t.Run("stale validation maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPromotionUseCase(ctrl)
		h := NewPromotionHandler(uc)

		r := gin.New()
		r.POST("/v1/sessions/:session_id/promo", h.ApplyPromo)

		uc.EXPECT().
			ApplyPromoCode(gomock.Any(), "sess-1", "SPRING10").
			Return(entities.BookingSession{}, usecase.ErrPromoValidationStale)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/sess-1/promo", bytes.NewBufferString(`{"code":"SPRING10"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("promo service failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPromotionUseCase(ctrl)
		h := NewPromotionHandler(uc)

		r := gin.New()
		r.POST("/v1/sessions/:session_id/promo", h.ApplyPromo)

		uc.EXPECT().
			ApplyPromoCode(gomock.Any(), "sess-1", "SPRING10").
			Return(entities.BookingSession{}, usecase.ErrPromoServiceFailure)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/sess-1/promo", bytes.NewBufferString(`{"code":"SPRING10"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success returns session with discount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPromotionUseCase(ctrl)
		h := NewPromotionHandler(uc)

		r := gin.New()
		r.POST("/v1/sessions/:session_id/promo", h.ApplyPromo)

		s := sampleSession()
		s.Lines[0].Quantity = 1
		s.Payment.PromoCode = "SPRING10"
		s.Payment.Discount = &entities.Discount{Type: entities.DiscountTypePercentage, Value: 10, Amount: 12}
		uc.EXPECT().ApplyPromoCode(gomock.Any(), "sess-1", "SPRING10").Return(s, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/sess-1/promo", bytes.NewBufferString(`{"code":"SPRING10"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["final_amount"] != 108.0 {
			t.Fatalf("expected final_amount 108, got %v", body["final_amount"])
		}
		if body["discount"] == nil {
			t.Fatalf("expected discount in response")
		}
	})
}

func TestPromotionHandler_ClearPromo(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPromotionUseCase(ctrl)
		h := NewPromotionHandler(uc)

		r := gin.New()
		r.DELETE("/v1/sessions/:session_id/promo", h.ClearPromo)

		uc.EXPECT().ClearPromoCode(gomock.Any(), "missing").Return(entities.BookingSession{}, usecase.ErrSessionNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/sessions/missing/promo", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success clears discount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPromotionUseCase(ctrl)
		h := NewPromotionHandler(uc)

		r := gin.New()
		r.DELETE("/v1/sessions/:session_id/promo", h.ClearPromo)

		uc.EXPECT().ClearPromoCode(gomock.Any(), "sess-1").Return(sampleSession(), nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/sessions/sess-1/promo", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if _, ok := body["discount"]; ok {
			t.Fatalf("expected discount omitted after clear, got %v", body["discount"])
		}
	})
}
