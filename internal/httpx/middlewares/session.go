// Package middlewares holds the HTTP middleware for the storefront
// router.
package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// HeaderXSessionID identifies the visitor's session. Missing headers get
// a freshly minted uuid, echoed back so the client can persist it.
const HeaderXSessionID = "X-Session-ID"

// ctxKey is an unexported type for context keys in this package.
// A custom type prevents collisions with keys from other packages that
// might use the same underlying string value.
type ctxKey string

const contextKeySessionID ctxKey = "session_id"

// Session resolves or mints the session ID for a request and stores it in
// the context.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(HeaderXSessionID)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		w.Header().Set(HeaderXSessionID, sessionID)

		ctx := context.WithValue(r.Context(), contextKeySessionID, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID extracts the session ID placed in the context by Session.
func SessionID(ctx context.Context) string {
	// Comma-ok idiom keeps a missing value from panicking in tests that
	// skip the middleware.
	id, _ := ctx.Value(contextKeySessionID).(string)
	return id
}
