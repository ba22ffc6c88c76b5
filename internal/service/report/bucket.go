package report

import (
	"time"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

// DayBucket holds the entries created on one local calendar day.
type DayBucket struct {
	// Date is the first instant of the day in the bucketing zone.
	Date    time.Time
	Entries []domain.Entry
}

// weekDays returns the seven calendar days of w, Monday first.
func weekDays(w domain.WeekWindow, loc *time.Location) []civilDate {
	first := civilOf(w.Start.In(loc))
	days := make([]civilDate, domain.DaysPerWeek)
	for i := range days {
		days[i] = first.addDays(i)
	}
	return days
}

// dayIndexer maps an entry to the index of its day inside a window,
// or -1 when the entry falls outside the window or has no timestamp.
type dayIndexer struct {
	window domain.WeekWindow
	loc    *time.Location
	days   map[civilDate]int
}

func newDayIndexer(w domain.WeekWindow, loc *time.Location, days []civilDate) dayIndexer {
	idx := make(map[civilDate]int, len(days))
	for i, d := range days {
		idx[d] = i
	}
	return dayIndexer{window: w, loc: loc, days: idx}
}

func (d dayIndexer) indexOf(e domain.Entry) int {
	if e.CreatedAt.IsZero() || !d.window.Contains(e.CreatedAt) {
		return -1
	}
	i, ok := d.days[civilOf(e.CreatedAt.In(d.loc))]
	if !ok {
		return -1
	}
	return i
}

// Bucket partitions entries into the seven days of w, in loc.
// Every day is present; days without entries hold an empty, non-nil slice.
// Entries keep their input order inside a bucket.
func Bucket(entries []domain.Entry, w domain.WeekWindow, loc *time.Location) []DayBucket {
	days := weekDays(w, loc)
	indexer := newDayIndexer(w, loc, days)

	buckets := make([]DayBucket, len(days))
	for i, d := range days {
		buckets[i] = DayBucket{Date: startOfDay(d, loc), Entries: []domain.Entry{}}
	}

	for _, e := range entries {
		if i := indexer.indexOf(e); i >= 0 {
			buckets[i].Entries = append(buckets[i].Entries, e)
		}
	}
	return buckets
}
