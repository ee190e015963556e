// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"net/http"

	"github.com/finverde/Family-Finance-Backend/internal/api/response"
	"github.com/finverde/Family-Finance-Backend/internal/validation"
)

// RequireOwnerID validates that the owner_id query parameter is present and is
// a valid UUID. Returns 400 Bad Request when it is missing or malformed.
// Applied to every route that scopes its data to a single owner.
func RequireOwnerID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ownerID := r.URL.Query().Get("owner_id")

		if ownerID == "" {
			response.RespondError(w, http.StatusBadRequest, "owner_id is required", "")
			return
		}

		if err := validation.ValidateUUID(ownerID); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid owner_id format", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
