package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/moodjournal-backend/pkg/ctxutil"
)

// TimezoneHeader carries the client's IANA zone, e.g. "Europe/Berlin".
const TimezoneHeader = "X-Timezone"

// Timezone copies the client zone header into the request context.
// Validation happens in the services.
func Timezone(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(r.Header.Get(TimezoneHeader))
		if name == "" {
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(ctxutil.WithTimezone(r.Context(), name)))
	})
}
