// Package catalog holds the product model, the catalog loader, and the
// pure filter/sort/paginate view logic for the shop page.
//
// Products are immutable once loaded: the Loader owns the backing slice and
// every consumer treats it as read-only.
package catalog

// Subsidiary is one of the four fixed product-line tags used for
// filtering and badging.
type Subsidiary string

const (
	SubsidiaryExecutive   Subsidiary = "executive"
	SubsidiarySetPaints   Subsidiary = "setpaints"
	SubsidiarySetHardware Subsidiary = "sethardware"
	SubsidiarySunWatch    Subsidiary = "sunwatch"
)

// DisplayName returns the customer-facing name for a subsidiary tag.
// Unknown tags fall back to the holding company name.
func (s Subsidiary) DisplayName() string {
	switch s {
	case SubsidiaryExecutive:
		return "Executive Curtain Rods"
	case SubsidiarySetPaints:
		return "SetPaints"
	case SubsidiarySetHardware:
		return "Set Hardware"
	case SubsidiarySunWatch:
		return "SunWatch Solar"
	default:
		return "SevenTwenty Holdings"
	}
}

// Product is a single catalog record. Prices are whole KES amounts.
// Rating is 0-5 in half-step granularity.
type Product struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Subsidiary   Subsidiary `json:"subsidiary"`
	Category     string     `json:"category"`
	Price        float64    `json:"price"`
	OldPrice     float64    `json:"oldPrice,omitempty"`
	Description  string     `json:"description"`
	Features     []string   `json:"features,omitempty"`
	Colors       []string   `json:"colors,omitempty"`
	Sizes        []string   `json:"sizes,omitempty"`
	Rating       float64    `json:"rating"`
	ReviewCount  int        `json:"reviewCount"`
	Stock        int        `json:"stock"`
	BulkDiscount string     `json:"bulkDiscount,omitempty"`
	Images       []string   `json:"images,omitempty"`
}

// Image returns the primary product image, or an empty string when the
// record carries none.
func (p Product) Image() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}
