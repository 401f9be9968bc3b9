package entities

import (
	"strings"
	"time"
)

// BookingSession is the per-customer booking state container: cart ledger,
// customer details, payment info and the wizard step, persisted between
// requests. Each browser session owns exactly one instance; concurrent
// writers are fenced at the storage layer with conditional updates.
//
// Storage model (DynamoDB):
//   - PK: id
//
// PromoGeneration guards against stale promo validation responses: every
// promo apply/clear bumps it, and a discount is only attached when the
// generation observed before the validation call still matches.

type BookingSession struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	ServiceID int          `json:"service_id"`
	Lines     []CartLine   `json:"lines"`
	Customer  CustomerInfo `json:"customer"`
	Payment   PaymentInfo  `json:"payment"`
	Step      BookingStep  `json:"step"`

	PromoGeneration int64     `json:"promo_generation"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewBookingSession returns a session in the documented initial state:
// provided catalog lines all at quantity zero, empty customer info, default
// payment info with no discount, step "items".
func NewBookingSession(id, userID string, serviceID int, catalog []CartLine, now time.Time) BookingSession {
	lines := make([]CartLine, len(catalog))
	copy(lines, catalog)
	for i := range lines {
		lines[i].Quantity = 0
	}
	return BookingSession{
		ID:        id,
		UserID:    userID,
		ServiceID: serviceID,
		Lines:     lines,
		Payment:   defaultPaymentInfo(),
		Step:      StepItems,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetQuantity replaces the quantity of the line with the given id. Unknown
// ids are a no-op (rows always pre-exist in the rendered ledger); negative
// quantities are defensively clamped to zero.
func (s *BookingSession) SetQuantity(lineID, quantity int) {
	if quantity < 0 {
		quantity = 0
	}
	for i := range s.Lines {
		if s.Lines[i].ID == lineID {
			s.Lines[i].Quantity = quantity
			return
		}
	}
}

func (s *BookingSession) ActiveLines() []CartLine {
	return ActiveLines(s.Lines)
}

func (s *BookingSession) Subtotal() float64 {
	return Subtotal(s.Lines)
}

// FinalAmount is the subtotal minus the applied discount amount, floored at
// zero so a malformed discount can never produce a negative total.
func (s *BookingSession) FinalAmount() float64 {
	total := s.Subtotal()
	if s.Payment.Discount == nil {
		return total
	}
	final := total - s.Payment.Discount.Amount
	if final < 0 {
		return 0
	}
	return final
}

// CanAdvance reports whether the wizard may move forward from the current
// step. The payment step never advances through the controller: final
// submission is orchestrated by the checkout flow.
func (s *BookingSession) CanAdvance() bool {
	switch s.Step {
	case StepItems:
		return len(s.ActiveLines()) > 0
	case StepDetails:
		return s.Customer.IsComplete()
	default:
		return false
	}
}

// Advance moves to the next step when CanAdvance holds; otherwise it is a
// no-op and returns false.
func (s *BookingSession) Advance() bool {
	if !s.CanAdvance() {
		return false
	}
	next, ok := s.Step.Next()
	if !ok {
		return false
	}
	s.Step = next
	return true
}

// Retreat moves one step back. From the first step it does not move and
// returns exit=true, signalling "leave the wizard" to the caller.
func (s *BookingSession) Retreat() (exit bool) {
	prev, ok := s.Step.Prev()
	if !ok {
		return true
	}
	s.Step = prev
	return false
}

// ApplyPaymentInfo merge-assigns the patch. When the promo code text changes
// away from the code that produced the current discount, the discount is
// cleared: code and discount are always kept in sync.
func (s *BookingSession) ApplyPaymentInfo(p PaymentInfoPatch) {
	if p.Method != nil {
		s.Payment.Method = *p.Method
	}
	if p.CardName != nil {
		s.Payment.CardName = *p.CardName
	}
	if p.PromoCode != nil {
		code := strings.TrimSpace(*p.PromoCode)
		if code != s.Payment.PromoCode {
			s.Payment.PromoCode = code
			s.Payment.Discount = nil
			s.PromoGeneration++
		}
	}
}

// ClearPromo removes the discount and empties the promo code text, bumping
// the generation so an in-flight validation cannot re-attach it.
func (s *BookingSession) ClearPromo() {
	s.Payment.PromoCode = ""
	s.Payment.Discount = nil
	s.PromoGeneration++
}

// Reset restores the session to its initial state: all quantities at zero,
// customer info empty, payment defaults with no discount, step back to
// "items". Calling it twice yields the same state as once.
func (s *BookingSession) Reset() {
	for i := range s.Lines {
		s.Lines[i].Quantity = 0
	}
	s.Customer = CustomerInfo{}
	s.Payment = defaultPaymentInfo()
	s.Step = StepItems
	s.PromoGeneration++
}
