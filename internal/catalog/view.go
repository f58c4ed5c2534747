package catalog

import (
	"encoding/json"
	"sort"
	"strings"
)

// PageSize is the fixed number of product cards per page.
const PageSize = 12

// DefaultMaxPrice is the upper bound of the price slider.
const DefaultMaxPrice = 50000

// SortKey selects the ordering of the filtered product list.
type SortKey string

const (
	// SortPopularity orders by review count descending, a proxy for
	// popularity rather than a true signal.
	SortPopularity SortKey = "popularity"
	SortPriceLow   SortKey = "price-low"
	SortPriceHigh  SortKey = "price-high"
	SortRating     SortKey = "rating"
	// SortNewest orders by identifier descending, a proxy for recency.
	SortNewest SortKey = "newest"
)

// ViewState is the live filter-control state of the shop page. The zero
// value of a set means "no restriction". Construct with NewViewState to
// get the default price range, sort key, and page.
type ViewState struct {
	Categories []string
	Materials  []string
	Wattages   []string
	Colors     []string
	MinPrice   float64
	MaxPrice   float64
	Sort       SortKey
	Page       int
}

// NewViewState returns the shop page defaults: full price range,
// popularity sort, first page.
func NewViewState() ViewState {
	return ViewState{
		MaxPrice: DefaultMaxPrice,
		Sort:     SortPopularity,
		Page:     1,
	}
}

// Apply runs the full filter+sort pipeline and returns a new slice; the
// input is never mutated.
func Apply(products []Product, s ViewState) []Product {
	filtered := Filter(products, s)
	SortProducts(filtered, s.Sort)
	return filtered
}

// Filter returns the products passing every active filter.
func Filter(products []Product, s ViewState) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if matches(p, s) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p Product, s ViewState) bool {
	if len(s.Categories) > 0 && !contains(s.Categories, p.Category) {
		return false
	}
	if p.Price < s.MinPrice || p.Price > s.MaxPrice {
		return false
	}
	// Products without a color enumeration pass the color filter.
	if len(s.Colors) > 0 && len(p.Colors) > 0 {
		if !intersects(p.Colors, s.Colors) {
			return false
		}
	}
	// Material matching is a deliberately fuzzy substring scan over the
	// serialized record: a material token may appear in the name, the
	// description, or the feature list.
	if len(s.Materials) > 0 && !matchesMaterial(p, s.Materials) {
		return false
	}
	// The wattage filter only applies to solar products; everything else
	// passes it untouched.
	if len(s.Wattages) > 0 && p.Subsidiary == SubsidiarySunWatch {
		if !matchesWattage(p, s.Wattages) {
			return false
		}
	}
	return true
}

func matchesMaterial(p Product, materials []string) bool {
	raw, err := json.Marshal(p)
	if err != nil {
		return false
	}
	doc := strings.ToLower(string(raw))
	for _, m := range materials {
		if strings.Contains(doc, strings.ToLower(m)) {
			return true
		}
	}
	return false
}

func matchesWattage(p Product, wattages []string) bool {
	name := strings.ToLower(p.Name)
	for _, w := range wattages {
		if strings.Contains(name, strings.ToLower(w)+"w") {
			return true
		}
	}
	return false
}

// SortProducts orders products in place with a stable sort so that
// products comparing equal keep their catalog order.
func SortProducts(products []Product, key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Rating > products[j].Rating })
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool { return products[i].ID > products[j].ID })
	default: // SortPopularity
		sort.SliceStable(products, func(i, j int) bool { return products[i].ReviewCount > products[j].ReviewCount })
	}
}

// Page returns the page-th slice of the filtered sequence, twelve items
// per page. Pages past the end are empty.
func Page(filtered []Product, page int) []Product {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// HasMore reports whether pages beyond the given one remain, driving the
// load-more control.
func HasMore(filtered []Product, page int) bool {
	if page < 1 {
		page = 1
	}
	return page*PageSize < len(filtered)
}

// ShowingRange returns the 1-based "Showing X-Y of Z" bounds for a page.
// An empty result set reports 0-0 of 0.
func ShowingRange(filtered []Product, page int) (start, end, total int) {
	total = len(filtered)
	if total == 0 {
		return 0, 0, 0
	}
	if page < 1 {
		page = 1
	}
	start = (page-1)*PageSize + 1
	if start > total {
		return 0, 0, total
	}
	end = start + PageSize - 1
	if end > total {
		end = total
	}
	return start, end, total
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, v := range a {
		if contains(b, v) {
			return true
		}
	}
	return false
}
