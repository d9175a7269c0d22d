package middleware

import (
	"net/http"

	"github.com/caninecompadre/booking-service/internal/api/handlers"
)

// StaffKeyHeader carries the shared staff key for admin endpoints.
const StaffKeyHeader = "X-Staff-Key"

// StaffAuth guards staff endpoints with a shared key. An empty
// configured key disables the check, which keeps local development
// friction-free.
func StaffAuth(staffKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if staffKey != "" && r.Header.Get(StaffKeyHeader) != staffKey {
				handlers.RespondError(w, http.StatusUnauthorized, "invalid staff key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
