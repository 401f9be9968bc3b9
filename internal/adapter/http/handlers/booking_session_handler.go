package handlers

import (
	"errors"
	"net/http"

	request "homeservice/internal/adapter/http/dto/request"
	response "homeservice/internal/adapter/http/dto/response"
	"homeservice/internal/usecase"
	"homeservice/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSessionPayload = pkg.NewDomainErrorSimple("INVALID_SESSION_INPUT", "Invalid session payload", http.StatusBadRequest)
)

// BookingSessionHandler handles HTTP requests for the booking wizard state:
// session lifecycle, cart quantities, customer/payment details and step
// transitions.

type BookingSessionHandler struct {
	usecase usecase.IBookingSessionUseCase
}

func NewBookingSessionHandler(uc usecase.IBookingSessionUseCase) *BookingSessionHandler {
	return &BookingSessionHandler{usecase: uc}
}

// StartSession godoc
// @Summary      Start a booking session
// @Description  Opens a session for the chosen service; the cart ledger is seeded from its sub-service catalog at quantity zero.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        payload  body  request.StartSessionRequest  true  "session input"
// @Success      201  {object}  response.SessionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /sessions [post]
func (h *BookingSessionHandler) StartSession(c *gin.Context) {
	var payload request.StartSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.StartSession(c.Request.Context(), payload.UserID, payload.ServiceID)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBookingSession(s))
}

// GetSession godoc
// @Summary      Read a booking session
// @Tags         sessions
// @Produce      json
// @Param        session_id  path  string  true  "session id"
// @Success      200  {object}  response.SessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sessions/{session_id} [get]
func (h *BookingSessionHandler) GetSession(c *gin.Context) {
	s, err := h.usecase.GetSession(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookingSession(s))
}

// SetQuantity godoc
// @Summary      Set a cart line quantity
// @Description  Replaces the quantity of one ledger line. Unknown line ids are a no-op; zero keeps the line in the ledger but out of the totals.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                      true  "session id"
// @Param        payload     body  request.SetQuantityRequest  true  "quantity input"
// @Success      200  {object}  response.SessionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/items [patch]
func (h *BookingSessionHandler) SetQuantity(c *gin.Context) {
	var payload request.SetQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.SetQuantity(c.Request.Context(), c.Param("session_id"), payload.LineID, *payload.Quantity)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookingSession(s))
}

// UpdateCustomerInfo godoc
// @Summary      Merge-update customer details
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                       true  "session id"
// @Param        payload     body  request.CustomerInfoRequest  true  "customer fields"
// @Success      200  {object}  response.SessionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/customer [patch]
func (h *BookingSessionHandler) UpdateCustomerInfo(c *gin.Context) {
	var payload request.CustomerInfoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.UpdateCustomerInfo(c.Request.Context(), c.Param("session_id"), payload.ToPatch())
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookingSession(s))
}

// UpdatePaymentInfo godoc
// @Summary      Merge-update payment details
// @Description  Editing the promo code text away from the code that produced the applied discount clears the discount.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                      true  "session id"
// @Param        payload     body  request.PaymentInfoRequest  true  "payment fields"
// @Success      200  {object}  response.SessionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/payment [patch]
func (h *BookingSessionHandler) UpdatePaymentInfo(c *gin.Context) {
	var payload request.PaymentInfoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.UpdatePaymentInfo(c.Request.Context(), c.Param("session_id"), payload.ToPatch())
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookingSession(s))
}

// Advance godoc
// @Summary      Advance the wizard one step
// @Description  Rejected when the current step's gate does not hold (no active cart lines / incomplete customer info).
// @Tags         sessions
// @Produce      json
// @Param        session_id  path  string  true  "session id"
// @Success      200  {object}  response.SessionResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/advance [post]
func (h *BookingSessionHandler) Advance(c *gin.Context) {
	s, err := h.usecase.Advance(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookingSession(s))
}

// Retreat godoc
// @Summary      Move the wizard one step back
// @Description  From the first step the session does not move; the response carries exit=true so the client can leave the wizard.
// @Tags         sessions
// @Produce      json
// @Param        session_id  path  string  true  "session id"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/retreat [post]
func (h *BookingSessionHandler) Retreat(c *gin.Context) {
	s, exit, err := h.usecase.Retreat(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"exit": exit, "session": response.FromBookingSession(s)})
}

// Reset godoc
// @Summary      Reset the session to its initial state
// @Description  Supported mid-flow (user cancel) as well as after checkout; leaves no residual cart or discount state.
// @Tags         sessions
// @Produce      json
// @Param        session_id  path  string  true  "session id"
// @Success      200  {object}  response.SessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/reset [post]
func (h *BookingSessionHandler) Reset(c *gin.Context) {
	s, err := h.usecase.Reset(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookingSession(s))
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidServiceID),
		errors.Is(err, usecase.ErrInvalidLineID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Booking session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmptyCatalog):
		return pkg.NewDomainErrorSimple("EMPTY_CATALOG", "No sub-services available for this service", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCannotAdvance):
		return pkg.NewDomainErrorSimple("CANNOT_ADVANCE", "Current step requirements are not met", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
