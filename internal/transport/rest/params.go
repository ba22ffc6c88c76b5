package rest

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
	"github.com/heartmarshall/moodjournal-backend/pkg/ctxutil"
)

// queryInt reads an optional integer query parameter.
// ok is false when the parameter is absent or blank.
func queryInt(r *http.Request, name string) (n int, ok bool, err error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, false, nil
	}
	n, err = strconv.Atoi(raw)
	if err != nil {
		return 0, false, domain.NewValidationError(name, "must be an integer")
	}
	return n, true, nil
}

// requestTimezone prefers the tz query parameter over the X-Timezone header.
// Empty means the service default.
func requestTimezone(r *http.Request) string {
	if tz := strings.TrimSpace(r.URL.Query().Get("tz")); tz != "" {
		return tz
	}
	return ctxutil.TimezoneFromCtx(r.Context())
}
