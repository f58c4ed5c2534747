package checkout

import (
	"regexp"
	"strings"

	"github.com/seventwentyholdings/storefront/internal/pricing"
)

// FieldErrors maps a field name to its validation message. An empty map
// means the step is valid.
type FieldErrors map[string]string

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Checkout accepts only the local 07XXXXXXXX shape. The contact and
	// quote forms accept a broader pattern; the two surfaces validate
	// independently on purpose.
	phonePattern = regexp.MustCompile(`^07\d{8}$`)
)

// validateStep checks required-field presence and field shapes for one
// step only. Earlier steps are not re-validated: they were gated when the
// user passed through them.
func (s *State) validateStep(step Step) FieldErrors {
	errs := FieldErrors{}
	switch step {
	case StepContact:
		requireField(errs, "firstName", s.Contact.FirstName)
		requireField(errs, "lastName", s.Contact.LastName)
		if requireField(errs, "email", s.Contact.Email) && !emailPattern.MatchString(s.Contact.Email) {
			errs["email"] = "Please enter a valid email address"
		}
		phone := strings.ReplaceAll(s.Contact.Phone, " ", "")
		if requireField(errs, "phone", phone) && !phonePattern.MatchString(phone) {
			errs["phone"] = "Please enter a valid Kenyan phone number (07XXXXXXXX)"
		}
	case StepAddress:
		requireField(errs, "county", s.Address.County)
		requireField(errs, "town", s.Address.Town)
		requireField(errs, "address", s.Address.Address)
	case StepDelivery:
		if requireField(errs, "method", s.Delivery.Method) && !pricing.ValidDeliveryMethod(s.Delivery.Method) {
			errs["method"] = "Please choose a delivery method"
		}
	case StepPayment:
		if requireField(errs, "payment", s.Payment) && !pricing.ValidPaymentMethod(s.Payment) {
			errs["payment"] = "Please choose a payment method"
		}
	case StepReview:
		// The review step is a pure projection and performs no
		// independent validation.
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// requireField records a required-field error for blank values and
// reports whether the value was present.
func requireField(errs FieldErrors, name, value string) bool {
	if strings.TrimSpace(value) == "" {
		errs[name] = "This field is required"
		return false
	}
	return true
}
