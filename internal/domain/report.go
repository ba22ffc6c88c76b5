package domain

import "time"

// DaysPerWeek is the number of calendar days in a report window.
const DaysPerWeek = 7

// WeekWindow is a Monday..Sunday range in a specific timezone, stored as
// absolute instants. Start is Monday 00:00:00.000 local time and End is
// Sunday 23:59:59.999 local time.
type WeekWindow struct {
	Start time.Time
	End   time.Time
	Label string
}

// Contains reports whether t lies inside the window, both ends inclusive.
func (w WeekWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// DailyMoodPoint is the averaged mood of one calendar day.
// MoodScore is nil when the day has no entries.
type DailyMoodPoint struct {
	Date      string
	MoodScore *float64
}

// TagCount is a tag and how many entries in a week carried it.
type TagCount struct {
	Tag   string
	Count int
}

// WeeklyReport is the aggregated view of one week of entries.
type WeeklyReport struct {
	SequenceID       int
	Window           WeekWindow
	EntryCount       int
	DominantMood     *string
	DailyMoodSeries  []DailyMoodPoint
	SummaryText      string
	WritingDays      int
	CompletedTodos   int
	PendingTodos     int
	AvgWordsPerEntry int
	TopTags          []TagCount
}
