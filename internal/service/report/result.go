package report

import "github.com/heartmarshall/moodjournal-backend/internal/domain"

// SeriesResult is the outcome of WeeklyReports.
type SeriesResult struct {
	// Timezone is the resolved IANA zone the series was computed in.
	Timezone string
	Reports  []domain.WeeklyReport
	Cached   bool
}
