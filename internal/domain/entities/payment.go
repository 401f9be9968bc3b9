package entities

import "errors"

// DiscountType is how a promotion discounts the subtotal.

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

var (
	ErrInvalidDiscountType  = errors.New("invalid discount type")
	ErrInvalidDiscountValue = errors.New("invalid discount value")
)

// Discount is a validated promotion attached to the payment info.
//
// Amount is the authoritative currency amount computed by the promo
// validation service; it is never recomputed locally from Value.
type Discount struct {
	Type   DiscountType `json:"type"`
	Value  float64      `json:"value"`
	Amount float64      `json:"amount"`
}

// Validate enforces the server-side discount rules: percentage value in
// [0,100], fixed value >= 0, amount >= 0.
func (d Discount) Validate() error {
	switch d.Type {
	case DiscountTypePercentage:
		if d.Value < 0 || d.Value > 100 {
			return ErrInvalidDiscountValue
		}
	case DiscountTypeFixed:
		if d.Value < 0 {
			return ErrInvalidDiscountValue
		}
	default:
		return ErrInvalidDiscountType
	}
	if d.Amount < 0 {
		return ErrInvalidDiscountValue
	}
	return nil
}

// PromoValidation is the promo validation service outcome. When Valid is
// false, Message carries the human-readable rejection reason.
type PromoValidation struct {
	Valid    bool
	Discount Discount
	Message  string
}

type PaymentMethod string

const PaymentMethodCreditCard PaymentMethod = "creditcard"

// PaymentInfo holds the chosen payment method and the promo fields mirrored
// for the form layer. Discount is only ever set through a successful promo
// validation and is always kept in sync with PromoCode: an applied discount
// is never shown next to a code string that did not produce it.
type PaymentInfo struct {
	Method    PaymentMethod `json:"method"`
	CardName  string        `json:"card_name"`
	PromoCode string        `json:"promo_code"`
	Discount  *Discount     `json:"discount,omitempty"`
}

// PaymentInfoPatch merge-assigns method, card holder name and the mirrored
// promo code text. Changing the promo code text away from the code that
// produced the current discount clears the discount (see BookingSession).
type PaymentInfoPatch struct {
	Method    *PaymentMethod
	CardName  *string
	PromoCode *string
}

func defaultPaymentInfo() PaymentInfo {
	return PaymentInfo{Method: PaymentMethodCreditCard}
}

// CardCharge is the gateway-facing charge command built at checkout.
type CardCharge struct {
	Amount            float64
	Token             string
	PaymentMethodID   string
	Installments      int
	Description       string
	ExternalReference string
	PayerEmail        string
	CardholderName    string
}
