// internal/common/utils/context.go

package utils

import "net/http"

// UserIDFromContext returns the authenticated user's id placed on the
// request context by the auth middleware. A missing id means the route
// was reached without authentication.
func UserIDFromContext(r *http.Request) (int64, bool) {
	id, ok := r.Context().Value("userID").(int64)
	return id, ok
}
