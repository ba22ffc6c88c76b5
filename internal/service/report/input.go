package report

import (
	"fmt"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

// WeeklyReportsInput holds the parameters of a report series request.
// Zero values select the configured defaults.
type WeeklyReportsInput struct {
	Weeks    int
	Timezone string
}

// Validate checks all fields and collects all errors.
func (i WeeklyReportsInput) Validate(maxWeeks int) error {
	var v domain.ValidationError
	if i.Weeks < 1 {
		v.Add("weeks", "must be at least 1")
	}
	if i.Weeks > maxWeeks {
		v.Add("weeks", fmt.Sprintf("max %d", maxWeeks))
	}
	return v.Err()
}

func (i WeeklyReportsInput) withDefaults(weeks int, timezone string) WeeklyReportsInput {
	if i.Weeks == 0 {
		i.Weeks = weeks
	}
	if i.Timezone == "" {
		i.Timezone = timezone
	}
	return i
}
