package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("info@seventwentyholdings.co.ke"))
	assert.True(t, ValidEmail("a@b.co"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("a b@c.com"))
	assert.False(t, ValidEmail("a@b"))
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"0712345678", true},
		{"0112345678", true}, // the public forms accept 01 numbers
		{"+254712345678", true},
		{"+254112345678", true},
		{"0723 518 210", true}, // spaces stripped before matching
		{"0812345678", false},
		{"071234567", false},
		{"254712345678", false},
	}
	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidPhone(tt.phone))
		})
	}
}

func validMessage() ContactMessage {
	return ContactMessage{
		Name:    "Wanjiru Kamau",
		Email:   "wanjiru@example.com",
		Phone:   "0712345678",
		Subject: "Bulk order enquiry",
		Message: "Do you deliver to Nakuru?",
	}
}

func TestContactMessageValidate(t *testing.T) {
	assert.Empty(t, validMessage().Validate())

	empty := ContactMessage{}
	errs := empty.Validate()
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "phone")
	assert.Contains(t, errs, "subject")
	assert.Contains(t, errs, "message")

	bad := validMessage()
	bad.Email = "nope"
	assert.Contains(t, bad.Validate(), "email")
}

func TestContactSubsidiaryIsOptional(t *testing.T) {
	m := validMessage()
	m.Subsidiary = ""
	assert.Empty(t, m.Validate())
}

func validQuote() QuoteRequest {
	return QuoteRequest{
		Name:     "Wanjiru Kamau",
		Email:    "wanjiru@example.com",
		Phone:    "+254712345678",
		Products: []string{"curtain-rods"},
	}
}

func TestQuoteRequestValidate(t *testing.T) {
	assert.Empty(t, validQuote().Validate())

	q := validQuote()
	q.Products = nil
	errs := q.Validate()
	assert.Contains(t, errs, "products")

	q = validQuote()
	q.Phone = "12345"
	assert.Contains(t, q.Validate(), "phone")
}

func TestAutoReplies(t *testing.T) {
	assert.Contains(t, ContactAutoReply("Wanjiru"), "Dear Wanjiru,")
	assert.Contains(t, ContactAutoReply("Wanjiru"), "within 24 hours")
	assert.Contains(t, QuoteAutoReply("Otieno"), "Dear Otieno,")
	assert.Contains(t, QuoteAutoReply("Otieno"), "detailed quote")
}
