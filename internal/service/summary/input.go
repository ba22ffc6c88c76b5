package summary

import (
	"fmt"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

// WeeklySummaryInput selects the week to summarize.
type WeeklySummaryInput struct {
	// WeeksAgo is 0 for the current week.
	WeeksAgo int
	// Timezone is an IANA zone; empty selects the configured default.
	Timezone string
	// Force regenerates the summary even if one is stored.
	Force bool
}

// Validate checks all fields and collects all errors.
func (i WeeklySummaryInput) Validate(maxWeeks int) error {
	var v domain.ValidationError
	if i.WeeksAgo < 0 {
		v.Add("weeks_ago", "must be non-negative")
	}
	if i.WeeksAgo >= maxWeeks {
		v.Add("weeks_ago", fmt.Sprintf("must be less than %d", maxWeeks))
	}
	return v.Err()
}
