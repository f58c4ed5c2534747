// Package forms validates the contact and quote-request forms and
// synthesizes their auto-reply messages. There is no backend for these
// submissions; validation and acknowledgement are the whole feature.
package forms

import (
	"regexp"
	"strings"
)

// FieldErrors maps a field name to its validation message.
type FieldErrors map[string]string

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// The public forms accept both the +254 international prefix and the
	// local 0 prefix with 1 or 7 network codes. Checkout validates phone
	// numbers with a stricter pattern of its own.
	phonePattern = regexp.MustCompile(`^(\+254|0)[17]\d{8}$`)
)

// ValidEmail reports whether s has a plausible email shape.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidPhone reports whether s is a Kenyan phone number after stripping
// spaces.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(strings.ReplaceAll(s, " ", ""))
}

func requireField(errs FieldErrors, name, value string) bool {
	if strings.TrimSpace(value) == "" {
		errs[name] = "This field is required"
		return false
	}
	return true
}
