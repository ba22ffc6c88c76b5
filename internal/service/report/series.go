package report

import (
	"time"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

// BuildSeries aggregates the last weekCount weeks ending with the week that
// contains ref. Reports are ordered most recent first; SequenceID 1 is the
// current week. weekCount < 1 yields nil.
func BuildSeries(entries []domain.Entry, weekCount int, ref time.Time, loc *time.Location) []domain.WeeklyReport {
	if weekCount < 1 {
		return nil
	}

	reports := make([]domain.WeeklyReport, 0, weekCount)
	for i := 0; i < weekCount; i++ {
		w := WindowFor(ref, i, loc)
		reports = append(reports, Aggregate(entries, w, i+1, loc))
	}
	return reports
}

// SeriesRange returns the instant range covering the whole series, for
// fetching the candidate entries in one query.
func SeriesRange(weekCount int, ref time.Time, loc *time.Location) (from, to time.Time) {
	newest := WindowFor(ref, 0, loc)
	oldest := WindowFor(ref, weekCount-1, loc)
	return oldest.Start, newest.End
}
