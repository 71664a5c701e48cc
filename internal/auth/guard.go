// Package auth implements the shared-secret access guard. Every API request
// and every guarded websocket message is checked against one static
// configured secret before any store is touched.
package auth

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
)

var (
	ErrMissingKey = errors.New("API key is required")
	ErrInvalidKey = errors.New("invalid API key")
)

// Guard validates caller-supplied tokens against the configured secret.
type Guard struct {
	apiKey string
}

// New creates a Guard for the given secret.
func New(apiKey string) *Guard {
	return &Guard{apiKey: apiKey}
}

// Authorize accepts or rejects a caller-supplied token. The comparison is
// constant time.
func (g *Guard) Authorize(token string) error {
	if token == "" {
		return ErrMissingKey
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(g.apiKey)) != 1 {
		return ErrInvalidKey
	}
	return nil
}

// Middleware rejects requests lacking a valid key before the handler runs.
// The key is read from the X-API-Key header, with Authorization: Bearer as a
// fallback.
func (g *Guard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := g.Authorize(tokenFromRequest(r)); err != nil {
			log.Warn("Rejected unauthorized request", "method", r.Method, "url", r.URL.Path, "reason", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func tokenFromRequest(r *http.Request) string {
	if key := r.Header.Get("X-API-Key"); key != "" {
		return key
	}
	if bearer := r.Header.Get("Authorization"); strings.HasPrefix(bearer, "Bearer ") {
		return strings.TrimPrefix(bearer, "Bearer ")
	}
	return ""
}
