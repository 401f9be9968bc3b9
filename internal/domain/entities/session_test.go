package entities

import (
	"testing"
	"time"
)

func testCatalog() []CartLine {
	return []CartLine{
		{ID: 1, ServiceID: 7, ServiceTitle: "Cleaning", Title: "Deep clean", Unit: "room", Price: 100},
		{ID: 2, ServiceID: 7, ServiceTitle: "Cleaning", Title: "Window wash", Unit: "pane", Price: 50},
	}
}

func newTestSession() BookingSession {
	return NewBookingSession("sess-1", "user-1", 7, testCatalog(), time.Now().UTC())
}

func completeCustomer() CustomerInfo {
	return CustomerInfo{
		ServiceDate: "2026-09-15",
		ServiceTime: "10:30",
		Address:     "99/1 Sukhumvit Rd",
		Province:    "Bangkok",
		District:    "Watthana",
		SubDistrict: "Khlong Toei Nuea",
	}
}

func TestBookingSession_SetQuantityAndSubtotal(t *testing.T) {
	t.Run("active lines and subtotal", func(t *testing.T) {
		s := newTestSession()
		s.SetQuantity(1, 2)

		active := s.ActiveLines()
		if len(active) != 1 || active[0].ID != 1 || active[0].Quantity != 2 {
			t.Fatalf("unexpected active lines: %+v", active)
		}
		if got := s.Subtotal(); got != 200 {
			t.Fatalf("expected subtotal 200, got %v", got)
		}
	})

	t.Run("inactive lines stay in the ledger", func(t *testing.T) {
		s := newTestSession()
		s.SetQuantity(1, 3)
		s.SetQuantity(1, 0)

		if len(s.Lines) != 2 {
			t.Fatalf("expected 2 ledger lines, got %d", len(s.Lines))
		}
		if len(s.ActiveLines()) != 0 {
			t.Fatalf("expected no active lines")
		}
		if s.Subtotal() != 0 {
			t.Fatalf("expected zero subtotal")
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		s := newTestSession()
		s.SetQuantity(99, 5)
		if s.Subtotal() != 0 {
			t.Fatalf("expected no change for unknown line id")
		}
	})

	t.Run("negative quantity clamps to zero", func(t *testing.T) {
		s := newTestSession()
		s.SetQuantity(1, 2)
		s.SetQuantity(1, -1)
		if s.Lines[0].Quantity != 0 {
			t.Fatalf("expected clamp to 0, got %d", s.Lines[0].Quantity)
		}
	})

	t.Run("set quantity is idempotent", func(t *testing.T) {
		s := newTestSession()
		s.SetQuantity(2, 4)
		before := s.Subtotal()
		s.SetQuantity(2, 4)
		if s.Subtotal() != before || s.Lines[1].Quantity != 4 {
			t.Fatalf("repeated set with same value changed state")
		}
	})

	t.Run("ordering is stable", func(t *testing.T) {
		s := newTestSession()
		s.SetQuantity(2, 1)
		s.SetQuantity(1, 1)
		active := s.ActiveLines()
		if active[0].ID != 1 || active[1].ID != 2 {
			t.Fatalf("expected ledger order preserved, got %+v", active)
		}
	})
}

func TestBookingSession_FinalAmount(t *testing.T) {
	t.Run("equals subtotal without discount", func(t *testing.T) {
		s := newTestSession()
		s.SetQuantity(1, 2)
		if s.FinalAmount() != s.Subtotal() {
			t.Fatalf("expected final == subtotal with no discount")
		}
	})

	t.Run("percentage discount applied", func(t *testing.T) {
		s := newTestSession()
		s.SetQuantity(1, 2)
		s.Payment.Discount = &Discount{Type: DiscountTypePercentage, Value: 10, Amount: 20}
		if got := s.FinalAmount(); got != 180 {
			t.Fatalf("expected 180, got %v", got)
		}
	})

	t.Run("oversized discount clamps to zero", func(t *testing.T) {
		s := newTestSession()
		s.SetQuantity(2, 1)
		s.Payment.Discount = &Discount{Type: DiscountTypeFixed, Value: 500, Amount: 500}
		if got := s.FinalAmount(); got != 0 {
			t.Fatalf("expected clamp to 0, got %v", got)
		}
	})
}

func TestBookingSession_StepTransitions(t *testing.T) {
	t.Run("cannot advance with empty cart", func(t *testing.T) {
		s := newTestSession()
		if s.CanAdvance() {
			t.Fatalf("expected items step gated on active lines")
		}
		if s.Advance() {
			t.Fatalf("expected advance to be a no-op")
		}
		if s.Step != StepItems {
			t.Fatalf("step moved despite empty cart: %s", s.Step)
		}
	})

	t.Run("cannot advance with incomplete customer info", func(t *testing.T) {
		s := newTestSession()
		s.SetQuantity(1, 1)
		if !s.Advance() {
			t.Fatalf("expected advance to details")
		}
		c := completeCustomer()
		c.District = ""
		s.Customer = c
		if s.CanAdvance() {
			t.Fatalf("expected details step gated on completeness")
		}
		if s.Advance() || s.Step != StepDetails {
			t.Fatalf("expected no-op advance on incomplete details")
		}
	})

	t.Run("payment step never advances through the controller", func(t *testing.T) {
		s := newTestSession()
		s.SetQuantity(1, 1)
		s.Advance()
		s.Customer = completeCustomer()
		s.Advance()
		if s.Step != StepPayment {
			t.Fatalf("expected payment step, got %s", s.Step)
		}
		if s.CanAdvance() || s.Advance() {
			t.Fatalf("payment step must not advance")
		}
	})

	t.Run("retreat moves back one step", func(t *testing.T) {
		s := newTestSession()
		s.SetQuantity(1, 1)
		s.Advance()
		if exit := s.Retreat(); exit || s.Step != StepItems {
			t.Fatalf("expected retreat to items, exit=%v step=%s", exit, s.Step)
		}
	})

	t.Run("retreat from first step signals exit", func(t *testing.T) {
		s := newTestSession()
		if exit := s.Retreat(); !exit || s.Step != StepItems {
			t.Fatalf("expected exit signal from first step")
		}
	})
}

func TestBookingSession_PromoSync(t *testing.T) {
	t.Run("editing promo text clears the discount", func(t *testing.T) {
		s := newTestSession()
		s.Payment.PromoCode = "SAVE10"
		s.Payment.Discount = &Discount{Type: DiscountTypePercentage, Value: 10, Amount: 20}
		gen := s.PromoGeneration

		code := "OTHER"
		s.ApplyPaymentInfo(PaymentInfoPatch{PromoCode: &code})
		if s.Payment.Discount != nil {
			t.Fatalf("expected discount cleared on code edit")
		}
		if s.Payment.PromoCode != "OTHER" {
			t.Fatalf("unexpected promo code: %q", s.Payment.PromoCode)
		}
		if s.PromoGeneration != gen+1 {
			t.Fatalf("expected generation bump")
		}
	})

	t.Run("same promo text keeps the discount", func(t *testing.T) {
		s := newTestSession()
		s.Payment.PromoCode = "SAVE10"
		s.Payment.Discount = &Discount{Type: DiscountTypePercentage, Value: 10, Amount: 20}

		code := "SAVE10"
		s.ApplyPaymentInfo(PaymentInfoPatch{PromoCode: &code})
		if s.Payment.Discount == nil {
			t.Fatalf("unchanged code must not clear the discount")
		}
	})

	t.Run("clear empties code and discount", func(t *testing.T) {
		s := newTestSession()
		s.SetQuantity(1, 2)
		s.Payment.PromoCode = "SAVE10"
		s.Payment.Discount = &Discount{Type: DiscountTypePercentage, Value: 10, Amount: 20}

		s.ClearPromo()
		if s.Payment.Discount != nil || s.Payment.PromoCode != "" {
			t.Fatalf("expected promo fields cleared: %+v", s.Payment)
		}
		if s.FinalAmount() != 200 {
			t.Fatalf("expected final back to subtotal, got %v", s.FinalAmount())
		}
	})
}

func TestBookingSession_Reset(t *testing.T) {
	s := newTestSession()
	s.SetQuantity(1, 2)
	s.Advance()
	s.Customer = completeCustomer()
	s.Advance()
	s.Payment.CardName = "Somsak J"
	s.Payment.PromoCode = "SAVE10"
	s.Payment.Discount = &Discount{Type: DiscountTypePercentage, Value: 10, Amount: 20}

	s.Reset()

	if len(s.ActiveLines()) != 0 || s.Subtotal() != 0 {
		t.Fatalf("expected empty cart after reset")
	}
	if s.Customer != (CustomerInfo{}) {
		t.Fatalf("expected empty customer info, got %+v", s.Customer)
	}
	if s.Payment.Discount != nil || s.Payment.PromoCode != "" || s.Payment.CardName != "" {
		t.Fatalf("expected default payment info, got %+v", s.Payment)
	}
	if s.Step != StepItems {
		t.Fatalf("expected step items, got %s", s.Step)
	}

	// Idempotence: a second reset yields the same state.
	before := s
	before.PromoGeneration = 0
	s.Reset()
	after := s
	after.PromoGeneration = 0
	if len(after.ActiveLines()) != 0 || after.Customer != before.Customer || after.Step != before.Step {
		t.Fatalf("reset is not idempotent")
	}
}

func TestCustomerInfo_IsComplete(t *testing.T) {
	c := completeCustomer()
	if !c.IsComplete() {
		t.Fatalf("expected complete customer info")
	}

	fields := []func(*CustomerInfo){
		func(c *CustomerInfo) { c.ServiceDate = "" },
		func(c *CustomerInfo) { c.ServiceTime = "" },
		func(c *CustomerInfo) { c.Address = "  " },
		func(c *CustomerInfo) { c.Province = "" },
		func(c *CustomerInfo) { c.District = "" },
		func(c *CustomerInfo) { c.SubDistrict = "" },
	}
	for i, clear := range fields {
		c := completeCustomer()
		clear(&c)
		if c.IsComplete() {
			t.Fatalf("case %d: expected incomplete", i)
		}
	}
}

func TestDiscount_Validate(t *testing.T) {
	cases := []struct {
		name    string
		d       Discount
		wantErr bool
	}{
		{name: "valid percentage", d: Discount{Type: DiscountTypePercentage, Value: 10, Amount: 20}},
		{name: "valid fixed", d: Discount{Type: DiscountTypeFixed, Value: 50, Amount: 50}},
		{name: "percentage over 100", d: Discount{Type: DiscountTypePercentage, Value: 101, Amount: 5}, wantErr: true},
		{name: "negative percentage", d: Discount{Type: DiscountTypePercentage, Value: -1, Amount: 5}, wantErr: true},
		{name: "negative fixed", d: Discount{Type: DiscountTypeFixed, Value: -10, Amount: 0}, wantErr: true},
		{name: "negative amount", d: Discount{Type: DiscountTypeFixed, Value: 10, Amount: -1}, wantErr: true},
		{name: "unknown type", d: Discount{Type: "bogus", Value: 10, Amount: 1}, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.d.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestBookingStep_Ordering(t *testing.T) {
	if next, ok := StepItems.Next(); !ok || next != StepDetails {
		t.Fatalf("items should advance to details")
	}
	if next, ok := StepDetails.Next(); !ok || next != StepPayment {
		t.Fatalf("details should advance to payment")
	}
	if _, ok := StepPayment.Next(); ok {
		t.Fatalf("payment is the last step")
	}
	if prev, ok := StepPayment.Prev(); !ok || prev != StepDetails {
		t.Fatalf("payment should retreat to details")
	}
	if _, ok := StepItems.Prev(); ok {
		t.Fatalf("items is the first step")
	}
	if BookingStep("bogus").Valid() {
		t.Fatalf("unexpected valid step")
	}
}
