// Package checkout implements the five-step checkout wizard on top of the
// cart store: contact → address → delivery → payment → review, entered
// only in forward/backward sequence, each forward transition gated on
// validation of the current step alone.
package checkout

import (
	"github.com/seventwentyholdings/storefront/internal/orderlog"
	"github.com/seventwentyholdings/storefront/internal/pricing"
)

// Step identifies one screen of the wizard.
type Step int

const (
	StepContact Step = iota + 1
	StepAddress
	StepDelivery
	StepPayment
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepContact:
		return "contact"
	case StepAddress:
		return "address"
	case StepDelivery:
		return "delivery"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	default:
		return "unknown"
	}
}

// State is the wizard's accumulated form input plus the current step.
// It serializes to JSON so the HTTP layer can persist it per session
// between requests.
type State struct {
	Step     Step              `json:"step"`
	Contact  orderlog.Contact  `json:"contact"`
	Address  orderlog.Address  `json:"address"`
	Delivery orderlog.Delivery `json:"delivery"`
	Payment  string            `json:"payment"`
}

// NewState starts the wizard at the contact step with standard delivery
// preselected.
func NewState() State {
	return State{
		Step:     StepContact,
		Delivery: orderlog.Delivery{Method: pricing.MethodStandard},
	}
}

// Next validates the current step and, if it passes, advances one step.
// The returned field errors are empty on success. The review step has no
// forward transition.
func (s *State) Next() FieldErrors {
	errs := s.validateStep(s.Step)
	if len(errs) > 0 {
		return errs
	}
	if s.Step < StepReview {
		s.Step++
	}
	return nil
}

// Back moves one step towards the contact step. Going back never
// validates and never discards entered input.
func (s *State) Back() {
	if s.Step > StepContact {
		s.Step--
	}
}
