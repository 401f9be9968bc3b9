package response

import (
	"time"

	"homeservice/internal/domain/entities"
)

type CartLineResponse struct {
	ID           int     `json:"id"`
	ServiceID    int     `json:"service_id"`
	ServiceTitle string  `json:"service_title"`
	Title        string  `json:"title"`
	Unit         string  `json:"unit"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
}

type DiscountResponse struct {
	Type   string  `json:"type"`
	Value  float64 `json:"value"`
	Amount float64 `json:"amount"`
}

type SessionResponse struct {
	SessionID string   `json:"session_id"`
	ID        string   `json:"id"`
	UserID    string   `json:"user_id"`
	ServiceID int      `json:"service_id"`
	Step      string   `json:"step"`
	Steps     []string `json:"steps"`

	Items       []CartLineResponse `json:"items"`
	ActiveItems []CartLineResponse `json:"active_items"`

	Customer entities.CustomerInfo `json:"customer"`

	Method    string            `json:"method"`
	CardName  string            `json:"card_name"`
	PromoCode string            `json:"promo_code"`
	Discount  *DiscountResponse `json:"discount,omitempty"`

	TotalAmount float64 `json:"total_amount"`
	FinalAmount float64 `json:"final_amount"`
	CanProceed  bool    `json:"can_proceed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromBookingSession(s entities.BookingSession) SessionResponse {
	steps := make([]string, 0, len(entities.BookingSteps))
	for _, step := range entities.BookingSteps {
		steps = append(steps, string(step))
	}

	res := SessionResponse{
		SessionID:   s.ID,
		ID:          s.ID,
		UserID:      s.UserID,
		ServiceID:   s.ServiceID,
		Step:        string(s.Step),
		Steps:       steps,
		Items:       fromCartLines(s.Lines),
		ActiveItems: fromCartLines(s.ActiveLines()),
		Customer:    s.Customer,
		Method:      string(s.Payment.Method),
		CardName:    s.Payment.CardName,
		PromoCode:   s.Payment.PromoCode,
		TotalAmount: s.Subtotal(),
		FinalAmount: s.FinalAmount(),
		CanProceed:  s.CanAdvance(),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.Payment.Discount != nil {
		res.Discount = &DiscountResponse{
			Type:   string(s.Payment.Discount.Type),
			Value:  s.Payment.Discount.Value,
			Amount: s.Payment.Discount.Amount,
		}
	}
	return res
}

func fromCartLines(lines []entities.CartLine) []CartLineResponse {
	out := make([]CartLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, CartLineResponse{
			ID:           l.ID,
			ServiceID:    l.ServiceID,
			ServiceTitle: l.ServiceTitle,
			Title:        l.Title,
			Unit:         l.Unit,
			Price:        l.Price,
			Quantity:     l.Quantity,
		})
	}
	return out
}
