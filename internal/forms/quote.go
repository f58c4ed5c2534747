package forms

import (
	"fmt"
	"time"
)

// QuoteRequest is a quote-request submission. Products must name at least
// one product category.
type QuoteRequest struct {
	Name           string    `json:"name"`
	Company        string    `json:"company,omitempty"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address,omitempty"`
	ProjectType    string    `json:"projectType,omitempty"`
	Timeline       string    `json:"timeline,omitempty"`
	Products       []string  `json:"products"`
	Quantity       string    `json:"quantity,omitempty"`
	Budget         string    `json:"budget,omitempty"`
	Services       []string  `json:"services,omitempty"`
	AdditionalInfo string    `json:"additionalInfo,omitempty"`
	HowHeard       string    `json:"howHeard,omitempty"`
	SubmittedAt    time.Time `json:"timestamp"`
}

// Validate checks required fields, the email/phone shapes, and that at
// least one product category is selected.
func (q QuoteRequest) Validate() FieldErrors {
	errs := FieldErrors{}
	requireField(errs, "name", q.Name)
	if requireField(errs, "email", q.Email) && !ValidEmail(q.Email) {
		errs["email"] = "Please enter a valid email address"
	}
	if requireField(errs, "phone", q.Phone) && !ValidPhone(q.Phone) {
		errs["phone"] = "Please enter a valid Kenyan phone number (e.g., 0723 518 210)"
	}
	if len(q.Products) == 0 {
		errs["products"] = "Please select at least one product category"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// QuoteAutoReply is the acknowledgement text sent back after a valid
// quote request.
func QuoteAutoReply(name string) string {
	return fmt.Sprintf("Dear %s,\n\nThank you for requesting a quote from SevenTwenty Holdings. "+
		"We have received your request and will respond with a detailed quote within 24 hours.\n\n"+
		"Best regards,\nSevenTwenty Holdings Team", name)
}
