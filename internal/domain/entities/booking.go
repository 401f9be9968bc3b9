package entities

import (
	"encoding/json"
	"time"
)

// BookingStatus represents the lifecycle of a completed booking. In the
// current scope bookings are only created after an approved charge; the type
// supports the technician-driven states for completeness.

type BookingStatus string

const (
	BookingStatusPaid      BookingStatus = "paid"
	BookingStatusAccepted  BookingStatus = "accepted"
	BookingStatusCompleted BookingStatus = "completed"
)

// Booking is the record persisted when a session checks out successfully.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original charge response (JSON) for
//     traceability/audit.
//   - ProviderPayload is an optional parsed representation, useful for
//     querying/debugging.

type Booking struct {
	ID             string        `json:"id"`
	SessionID      string        `json:"session_id"`
	UserID         string        `json:"user_id"`
	ServiceID      int           `json:"service_id"`
	Lines          []CartLine    `json:"lines"`
	Customer       CustomerInfo  `json:"customer"`
	PromoCode      string        `json:"promo_code,omitempty"`
	TotalAmount    float64       `json:"total_amount"`
	DiscountAmount float64       `json:"discount_amount"`
	FinalAmount    float64       `json:"final_amount"`
	Status         BookingStatus `json:"status"`
	Date           time.Time     `json:"date"`

	ProviderPaymentID  string                 `json:"provider_payment_id"`
	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
