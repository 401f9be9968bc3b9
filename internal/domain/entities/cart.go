package entities

// CartLine is one selectable sub-service unit in the booking cart.
//
// A line with Quantity == 0 stays in the ledger (the UI renders a stepper at
// zero for it) but is excluded from totals. Quantity is never negative.

type CartLine struct {
	ID           int     `json:"id"`
	ServiceID    int     `json:"service_id"`
	ServiceTitle string  `json:"service_title"`
	Title        string  `json:"title"`
	Unit         string  `json:"unit"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
}

// ActiveLines returns the lines with Quantity > 0, preserving ledger order.
func ActiveLines(lines []CartLine) []CartLine {
	active := make([]CartLine, 0, len(lines))
	for _, l := range lines {
		if l.Quantity > 0 {
			active = append(active, l)
		}
	}
	return active
}

// Subtotal is the pre-discount total over active lines. Derived on read so it
// can never drift from the ledger.
func Subtotal(lines []CartLine) float64 {
	total := 0.0
	for _, l := range lines {
		if l.Quantity > 0 {
			total += l.Price * float64(l.Quantity)
		}
	}
	return total
}
