package middleware

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/finverde/Family-Finance-Backend/internal/api/response"
)

// APIKeyMiddleware guards internal endpoints with the X-API-Key header.
// The expected key comes from the INTERNAL_API_KEY environment variable; an
// unset key means the server was misconfigured, not that access is open.
func APIKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expected := os.Getenv("INTERNAL_API_KEY")
		if expected == "" {
			response.RespondError(w, http.StatusInternalServerError, "internal error", "Authentication not loaded")
			return
		}

		provided := r.Header.Get("X-API-Key")
		if provided == "" {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing API key")
			return
		}

		if subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Invalid API key")
			return
		}

		next.ServeHTTP(w, r)
	})
}
