package response

import (
	"time"

	"homeservice/internal/domain/entities"
)

type BookingResponse struct {
	BookingID string `json:"booking_id"`
	ID        string `json:"id"`
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	ServiceID int    `json:"service_id"`

	Items    []CartLineResponse    `json:"items"`
	Customer entities.CustomerInfo `json:"customer"`

	PromoCode      string  `json:"promo_code,omitempty"`
	TotalAmount    float64 `json:"total_amount"`
	DiscountAmount float64 `json:"discount_amount"`
	FinalAmount    float64 `json:"final_amount"`

	Status string    `json:"status"`
	Date   time.Time `json:"date"`

	ProviderPaymentID  string                 `json:"provider_payment_id"`
	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		BookingID:          b.ID,
		ID:                 b.ID,
		SessionID:          b.SessionID,
		UserID:             b.UserID,
		ServiceID:          b.ServiceID,
		Items:              fromCartLines(b.Lines),
		Customer:           b.Customer,
		PromoCode:          b.PromoCode,
		TotalAmount:        b.TotalAmount,
		DiscountAmount:     b.DiscountAmount,
		FinalAmount:        b.FinalAmount,
		Status:             string(b.Status),
		Date:               b.Date,
		ProviderPaymentID:  b.ProviderPaymentID,
		ProviderPayloadRaw: string(b.ProviderPayloadRaw),
		ProviderPayload:    b.ProviderPayload,
	}
}
