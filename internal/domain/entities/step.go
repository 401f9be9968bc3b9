package entities

// BookingStep is one of the three wizard steps, strictly ordered. The active
// step only ever moves by one position per transition; there are no jump
// transitions.

type BookingStep string

const (
	StepItems   BookingStep = "items"
	StepDetails BookingStep = "details"
	StepPayment BookingStep = "payment"
)

// BookingSteps is the ordered step list exposed to the presentation layer.
var BookingSteps = []BookingStep{StepItems, StepDetails, StepPayment}

func (s BookingStep) Index() int {
	for i, step := range BookingSteps {
		if step == s {
			return i
		}
	}
	return -1
}

func (s BookingStep) Valid() bool {
	return s.Index() >= 0
}

// Next returns the following step, or false from the last step.
func (s BookingStep) Next() (BookingStep, bool) {
	i := s.Index()
	if i < 0 || i >= len(BookingSteps)-1 {
		return s, false
	}
	return BookingSteps[i+1], true
}

// Prev returns the preceding step, or false from the first step (which
// instead means "leave the wizard" for the caller).
func (s BookingStep) Prev() (BookingStep, bool) {
	i := s.Index()
	if i <= 0 {
		return s, false
	}
	return BookingSteps[i-1], true
}
