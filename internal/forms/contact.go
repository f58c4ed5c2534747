package forms

import "fmt"

// ContactMessage is a contact-form submission.
type ContactMessage struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Subject    string `json:"subject"`
	Subsidiary string `json:"subsidiary,omitempty"`
	Message    string `json:"message"`
}

// Validate checks required fields and the email/phone shapes. An empty
// result means the message is acceptable.
func (m ContactMessage) Validate() FieldErrors {
	errs := FieldErrors{}
	requireField(errs, "name", m.Name)
	if requireField(errs, "email", m.Email) && !ValidEmail(m.Email) {
		errs["email"] = "Please enter a valid email address"
	}
	if requireField(errs, "phone", m.Phone) && !ValidPhone(m.Phone) {
		errs["phone"] = "Please enter a valid Kenyan phone number"
	}
	requireField(errs, "subject", m.Subject)
	requireField(errs, "message", m.Message)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ContactAutoReply is the acknowledgement text sent back after a valid
// contact submission.
func ContactAutoReply(name string) string {
	return fmt.Sprintf("Dear %s,\n\nThank you for contacting SevenTwenty Holdings. "+
		"We have received your message and will respond within 24 hours.\n\n"+
		"Best regards,\nSevenTwenty Holdings Team", name)
}
