package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

// LoadTimezone resolves an IANA zone name. There is no fallback zone:
// an empty or unknown name is a validation error.
func LoadTimezone(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("timezone", "required")
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, domain.NewValidationError("timezone", fmt.Sprintf("unknown timezone %q", name))
	}
	return loc, nil
}

// civilDate is a calendar day independent of any zone.
type civilDate struct {
	year  int
	month time.Month
	day   int
}

func civilOf(t time.Time) civilDate {
	return civilDate{year: t.Year(), month: t.Month(), day: t.Day()}
}

// addDays does calendar arithmetic; noon UTC keeps it clear of any transition.
func (c civilDate) addDays(n int) civilDate {
	return civilOf(time.Date(c.year, c.month, c.day+n, 12, 0, 0, 0, time.UTC))
}

func (c civilDate) before(o civilDate) bool {
	if c.year != o.year {
		return c.year < o.year
	}
	if c.month != o.month {
		return c.month < o.month
	}
	return c.day < o.day
}

func (c civilDate) String() string {
	return time.Date(c.year, c.month, c.day, 0, 0, 0, 0, time.UTC).Format(time.DateOnly)
}

// startOfDay returns the first instant of day c in loc. Where a transition
// skips local midnight, that is the end of the gap, not the instant
// time.Date normalizes into the previous day.
func startOfDay(c civilDate, loc *time.Location) time.Time {
	t := time.Date(c.year, c.month, c.day, 0, 0, 0, 0, loc)
	if civilOf(t).before(c) {
		if _, end := t.ZoneBounds(); !end.IsZero() {
			t = end
		}
	}
	return t
}
