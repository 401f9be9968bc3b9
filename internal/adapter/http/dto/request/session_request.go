package request

import (
	"strings"

	"homeservice/internal/domain/entities"
)

// StartSessionRequest opens a booking session for a top-level service; the
// cart ledger is seeded from that service's sub-service catalog.
type StartSessionRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	ServiceID int    `json:"service_id" binding:"required"`
}

// SetQuantityRequest replaces one cart line's quantity. Quantity is a pointer
// so an explicit zero ("remove from cart") binds correctly.
type SetQuantityRequest struct {
	LineID   int  `json:"line_id" binding:"required"`
	Quantity *int `json:"quantity" binding:"required,gte=0"`
}

// CustomerInfoRequest merge-assigns any subset of customer fields; absent
// fields keep their stored value.
type CustomerInfoRequest struct {
	ServiceDate    *string  `json:"service_date"`
	ServiceTime    *string  `json:"service_time"`
	Address        *string  `json:"address"`
	Province       *string  `json:"province"`
	District       *string  `json:"district"`
	SubDistrict    *string  `json:"sub_district"`
	AdditionalInfo *string  `json:"additional_info"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
}

func (r CustomerInfoRequest) ToPatch() entities.CustomerInfoPatch {
	return entities.CustomerInfoPatch{
		ServiceDate:    r.ServiceDate,
		ServiceTime:    r.ServiceTime,
		Address:        r.Address,
		Province:       r.Province,
		District:       r.District,
		SubDistrict:    r.SubDistrict,
		AdditionalInfo: r.AdditionalInfo,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
	}
}

// PaymentInfoRequest merge-assigns the payment method, card holder name and
// the mirrored promo code text.
type PaymentInfoRequest struct {
	Method    *string `json:"method"`
	CardName  *string `json:"card_name"`
	PromoCode *string `json:"promo_code"`
}

func (r PaymentInfoRequest) ToPatch() entities.PaymentInfoPatch {
	p := entities.PaymentInfoPatch{
		CardName:  r.CardName,
		PromoCode: r.PromoCode,
	}
	if r.Method != nil {
		m := entities.PaymentMethod(strings.TrimSpace(*r.Method))
		p.Method = &m
	}
	return p
}

// ApplyPromoRequest submits a promo code for validation against the current
// subtotal.
type ApplyPromoRequest struct {
	Code string `json:"code" binding:"required"`
}

// ConfirmRequest carries the tokenized card details for final submission on
// the payment step. The charge amount is taken from the session state, never
// from the caller.
type ConfirmRequest struct {
	Token           string `json:"token"`
	PaymentMethodID string `json:"payment_method_id"`
	Installments    int    `json:"installments"`
	PayerEmail      string `json:"payer_email"`
}

func (r ConfirmRequest) ToCharge() entities.CardCharge {
	return entities.CardCharge{
		Token:           strings.TrimSpace(r.Token),
		PaymentMethodID: strings.TrimSpace(r.PaymentMethodID),
		Installments:    r.Installments,
		PayerEmail:      strings.TrimSpace(r.PayerEmail),
	}
}
