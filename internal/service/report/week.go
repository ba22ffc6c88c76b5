package report

import (
	"time"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

// WindowFor returns the ISO week (Monday..Sunday in loc) that contains ref,
// shifted back by weeksAgo whole weeks. The shift is done on the wall-clock
// date, so DST transitions never move the window off its Monday.
func WindowFor(ref time.Time, weeksAgo int, loc *time.Location) domain.WeekWindow {
	today := civilOf(ref.In(loc))

	// Mon=0 .. Sun=6. Shifting by whole weeks keeps the weekday.
	offset := (int(ref.In(loc).Weekday()) + 6) % 7
	monday := today.addDays(-weeksAgo*domain.DaysPerWeek - offset)
	sunday := monday.addDays(domain.DaysPerWeek - 1)

	start := startOfDay(monday, loc)
	end := startOfDay(monday.addDays(domain.DaysPerWeek), loc).Add(-time.Millisecond)

	return domain.WeekWindow{
		Start: start.UTC(),
		End:   end.UTC(),
		Label: weekLabel(monday, sunday),
	}
}

// weekLabel renders "April 1 - April 7, 2025", or with both years when
// the week straddles New Year.
func weekLabel(first, last civilDate) string {
	start := time.Date(first.year, first.month, first.day, 0, 0, 0, 0, time.UTC)
	end := time.Date(last.year, last.month, last.day, 0, 0, 0, 0, time.UTC)
	if start.Year() != end.Year() {
		return start.Format("January 2, 2006") + " - " + end.Format("January 2, 2006")
	}
	return start.Format("January 2") + " - " + end.Format("January 2, 2006")
}
