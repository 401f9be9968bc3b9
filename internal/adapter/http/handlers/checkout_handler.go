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

// CheckoutHandler handles final submission of a booking session and read
// access to completed bookings.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// Confirm godoc
// @Summary      Confirm a booking
// @Description  Charges the card through the payment gateway for the session's final amount, records the booking and resets the session. On payment failure the session is left on the payment step for retry.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                 true  "session id"
// @Param        payload     body  request.ConfirmRequest true  "card details"
// @Success      201  {object}  response.BookingResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      402  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/confirm [post]
func (h *CheckoutHandler) Confirm(c *gin.Context) {
	var payload request.ConfirmRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_CONFIRM_INPUT", "Invalid confirm payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	b, err := h.usecase.Confirm(c.Request.Context(), c.Param("session_id"), payload.ToCharge())
	if err != nil {
		log.Printf("[checkout][handler] confirm failed session_id=%s err=%v", c.Param("session_id"), err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBooking(b))
}

// GetBooking godoc
// @Summary      Read a booking
// @Tags         bookings
// @Produce      json
// @Param        booking_id  path  string  true  "booking id"
// @Success      200  {object}  response.BookingResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /bookings/{booking_id} [get]
func (h *CheckoutHandler) GetBooking(c *gin.Context) {
	b, err := h.usecase.GetByID(c.Request.Context(), c.Param("booking_id"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(b))
}

// ListBookings godoc
// @Summary      List a user's bookings
// @Tags         bookings
// @Produce      json
// @Param        user_id  query  string  true  "user id"
// @Success      200  {array}   response.BookingResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /bookings [get]
func (h *CheckoutHandler) ListBookings(c *gin.Context) {
	bookings, err := h.usecase.ListByUserID(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, response.FromBooking(b))
	}
	c.JSON(http.StatusOK, out)
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, usecase.ErrInvalidBookingID),
		errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrMissingCardToken),
		errors.Is(err, usecase.ErrUnsupportedPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Booking session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotOnPaymentStep):
		return pkg.NewDomainErrorSimple("NOT_ON_PAYMENT_STEP", "Session is not on the payment step", http.StatusConflict)
	case errors.Is(err, usecase.ErrUserNotIdentified), errors.Is(err, usecase.ErrIncompleteBooking):
		return pkg.NewDomainErrorSimple("INCOMPLETE_BOOKING", "Booking details are incomplete", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("PAYMENT_REJECTED", "Payment was rejected by the gateway", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_UNAUTHORIZED", "Payment gateway rejected the credentials", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
