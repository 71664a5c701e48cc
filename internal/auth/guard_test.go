package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/courtside/courtcast/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	guard := auth.New("secret-key")

	assert.NoError(t, guard.Authorize("secret-key"))
	assert.ErrorIs(t, guard.Authorize(""), auth.ErrMissingKey)
	assert.ErrorIs(t, guard.Authorize("wrong"), auth.ErrInvalidKey)
}

func TestMiddleware(t *testing.T) {
	guard := auth.New("secret-key")
	var reached bool
	handler := guard.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
		wantPassed bool
	}{
		{"valid header key", map[string]string{"X-API-Key": "secret-key"}, http.StatusOK, true},
		{"valid bearer token", map[string]string{"Authorization": "Bearer secret-key"}, http.StatusOK, true},
		{"missing key", nil, http.StatusUnauthorized, false},
		{"wrong key", map[string]string{"X-API-Key": "nope"}, http.StatusUnauthorized, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached = false
			req := httptest.NewRequest("GET", "/scoreboards", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantPassed, reached)
		})
	}
}
