package routes

import (
	"homeservice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addBookingRoutes(rg *gin.RouterGroup, sessions *handlers.BookingSessionHandler, promos *handlers.PromotionHandler, checkout *handlers.CheckoutHandler) {
	sessionGroup := rg.Group("/sessions")
	sessionGroup.POST("", sessions.StartSession)
	sessionGroup.GET("/:session_id", sessions.GetSession)
	sessionGroup.PATCH("/:session_id/items", sessions.SetQuantity)
	sessionGroup.PATCH("/:session_id/customer", sessions.UpdateCustomerInfo)
	sessionGroup.PATCH("/:session_id/payment", sessions.UpdatePaymentInfo)
	sessionGroup.POST("/:session_id/advance", sessions.Advance)
	sessionGroup.POST("/:session_id/retreat", sessions.Retreat)
	sessionGroup.POST("/:session_id/reset", sessions.Reset)

	sessionGroup.POST("/:session_id/promo", promos.ApplyPromo)
	sessionGroup.DELETE("/:session_id/promo", promos.ClearPromo)

	sessionGroup.POST("/:session_id/confirm", checkout.Confirm)

	bookingGroup := rg.Group("/bookings")
	bookingGroup.GET("", checkout.ListBookings)
	bookingGroup.GET("/:booking_id", checkout.GetBooking)
}
