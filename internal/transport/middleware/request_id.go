package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/mkholodov/wuguan-backend/pkg/ctxutil"
)

// RequestID makes sure every request carries an id, honoring one the
// client already sent. The id lands in the context for log correlation
// and is echoed back in the response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}
