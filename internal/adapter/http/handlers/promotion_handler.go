package handlers

import (
	"errors"
	"log"
	"net/http"

	request "homeservice/internal/adapter/http/dto/request"
	response "homeservice/internal/adapter/http/dto/response"
	"homeservice/internal/usecase"
	"homeservice/pkg"

	"github.com/gin-gonic/gin"
)

// PromotionHandler handles promo code application and removal against a
// booking session.

type PromotionHandler struct {
	usecase usecase.IPromotionUseCase
}

func NewPromotionHandler(uc usecase.IPromotionUseCase) *PromotionHandler {
	return &PromotionHandler{usecase: uc}
}

// ApplyPromo godoc
// @Summary      Apply a promo code
// @Description  Validates the code against the current cart subtotal through the promotion service. A validation that finishes after the code was edited or cleared is discarded.
// @Tags         promotions
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                    true  "session id"
// @Param        payload     body  request.ApplyPromoRequest true  "promo code"
// @Success      200  {object}  response.SessionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/promo [post]
func (h *PromotionHandler) ApplyPromo(c *gin.Context) {
	var payload request.ApplyPromoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PROMO_INPUT", "Invalid promo payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	s, err := h.usecase.ApplyPromoCode(c.Request.Context(), c.Param("session_id"), payload.Code)
	if err != nil {
		log.Printf("[promotion][handler] apply failed session_id=%s code=%q err=%v", c.Param("session_id"), payload.Code, err)
		appErr := mapPromotionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookingSession(s))
}

// ClearPromo godoc
// @Summary      Remove the applied promo code
// @Tags         promotions
// @Produce      json
// @Param        session_id  path  string  true  "session id"
// @Success      200  {object}  response.SessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/promo [delete]
func (h *PromotionHandler) ClearPromo(c *gin.Context) {
	s, err := h.usecase.ClearPromoCode(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapPromotionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookingSession(s))
}

func mapPromotionError(err error) *pkg.AppError {
	var rejected *usecase.PromoRejectedError
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidPromoCode):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Booking session not found", http.StatusNotFound)
	case errors.As(err, &rejected):
		return pkg.NewDomainErrorSimple("PROMO_REJECTED", rejected.Reason, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPromoValidationStale):
		return pkg.NewDomainErrorSimple("PROMO_VALIDATION_STALE", "Promo code changed while validating, please retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrPromoDiscountMalformed):
		return pkg.NewDomainErrorSimple("PROMO_DISCOUNT_MALFORMED", "Promotion service returned a malformed discount", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPromoServiceFailure):
		return pkg.NewDomainErrorSimple("PROMO_SERVICE_UNAVAILABLE", "Promotion service is unavailable", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
