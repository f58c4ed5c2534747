// Package shell composes the shared page chrome: it fetches the header
// and footer fragments, rewrites their relative links for pages served
// from the /pages/ subdirectory, resolves the active nav item, and
// rotates the homepage carousel.
package shell

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// Fallback markup rendered when a fragment cannot be fetched. The
// failure is logged, never surfaced to the visitor as an error.
const (
	FallbackHeader = `<div class="loading">Loading navigation...</div>`
	FallbackFooter = `<div class="loading">Loading footer...</div>`
)

// Loader fetches the shared header/footer fragments from a static assets
// base URL.
type Loader struct {
	base   string
	client *http.Client
}

// NewLoader returns a Loader for fragments under base (no trailing
// slash). A nil client uses http.DefaultClient.
func NewLoader(base string, client *http.Client) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Loader{base: base, client: client}
}

// Header returns the header fragment with its links rewritten for the
// requesting page's directory depth. Fetch failures degrade to the
// loading placeholder.
func (l *Loader) Header(ctx context.Context, pagePath string) string {
	html, err := l.fetch(ctx, "header.html")
	if err != nil {
		slog.ErrorContext(ctx, "error loading header", "error", err)
		return FallbackHeader
	}
	return RewriteLinks(html, InPages(pagePath))
}

// Footer is the footer counterpart of Header.
func (l *Loader) Footer(ctx context.Context, pagePath string) string {
	html, err := l.fetch(ctx, "footer.html")
	if err != nil {
		slog.ErrorContext(ctx, "error loading footer", "error", err)
		return FallbackFooter
	}
	return RewriteLinks(html, InPages(pagePath))
}

func (l *Loader) fetch(ctx context.Context, name string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.base+"/"+name, nil)
	if err != nil {
		return "", fmt.Errorf("shell: build request for %q: %w", name, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("shell: fetch %q: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("shell: fetch %q: unexpected status %d", name, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("shell: read %q: %w", name, err)
	}
	return string(raw), nil
}
