// Package chat provides the keyword-matched canned responses behind the
// floating chat widget. There is no model or backend; the first matching
// keyword wins.
package chat

import "strings"

type cannedResponse struct {
	keyword string
	reply   string
}

// responses are checked in order; earlier keywords take precedence when a
// message matches several.
var responses = []cannedResponse{
	{"curtain", "We offer premium powder-coated curtain rods for all types of windows. Would you like to know more about our Executive Curtain Rods?"},
	{"paint", "SetPaints provides professional-grade paints for interior and exterior use. What type of painting project are you planning?"},
	{"hardware", "Set Hardware supplies a wide range of building and door hardware. What specific items are you looking for?"},
	{"solar", "SunWatch Solar offers eco-friendly solar lighting solutions. Interested in our solar products?"},
	{"price", "For pricing information, please visit our shop page or contact us directly at info@seventwentyholdings.co.ke"},
	{"order", "You can order through our website or contact us for bulk orders. Would you like help placing an order?"},
	{"delivery", "We offer nationwide delivery! Delivery times depend on your location. Where are you located?"},
	{"contact", "You can reach us at 0723 518 210 or info@seventwentyholdings.co.ke"},
	{"help", "I can help you with information about our products, pricing, delivery, and more! What would you like to know?"},
}

// DefaultReply is returned when no keyword matches.
const DefaultReply = "Thanks for your message! For specific inquiries, please contact us at " +
	"0723 518 210 or info@seventwentyholdings.co.ke. We'll be happy to help!"

// Respond returns the canned reply for a visitor message.
func Respond(message string) string {
	msg := strings.ToLower(message)
	for _, r := range responses {
		if strings.Contains(msg, r.keyword) {
			return r.reply
		}
	}
	return DefaultReply
}
