package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
)

// document is the wire shape of the products JSON.
type document struct {
	Products []Product `json:"products"`
}

// Loader fetches the product catalog once per process lifetime.
//
// A fetch or parse failure is recovered locally by falling back to the
// embedded sample list; Load never returns an error because the shop page
// must always have something to render. There is no caching layer beyond
// the single in-memory load.
type Loader struct {
	url    string
	client *http.Client

	once     sync.Once
	products []Product
}

// NewLoader returns a Loader for the given products document URL.
// A nil client uses http.DefaultClient.
func NewLoader(url string, client *http.Client) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Loader{url: url, client: client}
}

// Load returns the catalog, fetching it on the first call. The returned
// slice is shared and must be treated as read-only by callers.
func (l *Loader) Load(ctx context.Context) []Product {
	l.once.Do(func() {
		products, err := l.fetch(ctx)
		if err != nil {
			slog.WarnContext(ctx, "catalog fetch failed, using sample products", "url", l.url, "error", err)
			l.products = SampleProducts()
			return
		}
		l.products = products
	})
	return l.products
}

// ByID looks a product up in the loaded catalog.
func (l *Loader) ByID(ctx context.Context, id int) (Product, bool) {
	for _, p := range l.Load(ctx) {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func (l *Loader) fetch(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog: build request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog: fetch %q: %w", l.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("catalog: fetch %q: unexpected status %d", l.url, resp.StatusCode)
	}

	var doc document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("catalog: decode products document: %w", err)
	}
	if len(doc.Products) == 0 {
		return nil, fmt.Errorf("catalog: products document %q is empty", l.url)
	}
	return doc.Products, nil
}
