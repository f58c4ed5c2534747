package shell

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoaderHeaderRewritesForPages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/header.html":
			_, _ = w.Write([]byte(`<nav><a href="shop.html">Shop</a></nav>`))
		case "/footer.html":
			_, _ = w.Write([]byte(`<footer><a href="terms.html">Terms</a></footer>`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	l := NewLoader(srv.URL, srv.Client())

	assert.Equal(t, `<nav><a href="../shop.html">Shop</a></nav>`,
		l.Header(context.Background(), "/pages/about.html"))
	assert.Equal(t, `<nav><a href="shop.html">Shop</a></nav>`,
		l.Header(context.Background(), "/index.html"))
	assert.Equal(t, `<footer><a href="../terms.html">Terms</a></footer>`,
		l.Footer(context.Background(), "/pages/contact.html"))
}

func TestLoaderFallsBackOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	l := NewLoader(srv.URL, srv.Client())

	assert.Equal(t, FallbackHeader, l.Header(context.Background(), "/index.html"))
	assert.Equal(t, FallbackFooter, l.Footer(context.Background(), "/index.html"))
}
