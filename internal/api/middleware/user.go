package middleware

import (
	"net/http"
	"strconv"

	"github.com/taskdeck/taskdeck-api/internal/api/shared"
)

// UserIDHeader carries the requesting user's numeric ID. There is no
// authentication layer; the identity is trusted as supplied, but every
// task endpoint still requires it so that ownership checks apply
// uniformly.
const UserIDHeader = "X-User-ID"

// RequireUser extracts the user ID from the request header and stores
// it in the context. Requests without a valid positive numeric ID are
// rejected with 401.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID header required")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid user ID header")
			return
		}

		ctx := shared.WithUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
