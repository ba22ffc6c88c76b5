package report

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

// NoEntriesSummary is the summary text of a week without entries.
const NoEntriesSummary = "No entries this week."

// MaxTopTags caps WeeklyReport.TopTags.
const MaxTopTags = 5

// Aggregate builds the report for one week. Entries outside w are ignored,
// so callers may pass a superset. A nil slice is treated as empty.
func Aggregate(entries []domain.Entry, w domain.WeekWindow, sequenceID int, loc *time.Location) domain.WeeklyReport {
	days := weekDays(w, loc)
	indexer := newDayIndexer(w, loc, days)

	scoreSums := make([]int, len(days))
	scoreCounts := make([]int, len(days))
	moods := newCounter()
	tags := newCounter()
	words := 0

	report := domain.WeeklyReport{
		SequenceID: sequenceID,
		Window:     w,
	}

	// Input order matters here: counter ties go to the first label seen.
	for _, e := range entries {
		i := indexer.indexOf(e)
		if i < 0 {
			continue
		}

		report.EntryCount++
		scoreSums[i] += int(domain.ScoreOf(e.Mood))
		scoreCounts[i]++

		// Blank labels score neutral but never become the dominant mood.
		if mood := domain.NormalizeMood(e.Mood); mood != "" {
			moods.add(mood)
		}
		for _, tag := range uniqueTags(e.Tags) {
			tags.add(tag)
		}
		for _, todo := range e.Todos {
			if todo.Done {
				report.CompletedTodos++
			} else {
				report.PendingTodos++
			}
		}
		words += e.WordCount()
	}

	report.DailyMoodSeries = make([]domain.DailyMoodPoint, len(days))
	for i, d := range days {
		point := domain.DailyMoodPoint{Date: d.String()}
		if scoreCounts[i] > 0 {
			avg := roundTenth(float64(scoreSums[i]) / float64(scoreCounts[i]))
			point.MoodScore = &avg
			report.WritingDays++
		}
		report.DailyMoodSeries[i] = point
	}

	if top, ok := moods.top(); ok {
		report.DominantMood = &top
	}
	report.TopTags = tags.ranked(MaxTopTags)
	if report.EntryCount > 0 {
		report.AvgWordsPerEntry = int(math.Round(float64(words) / float64(report.EntryCount)))
	}
	report.SummaryText = summaryText(report.EntryCount, report.DominantMood)

	return report
}

func summaryText(count int, dominantMood *string) string {
	if count == 0 {
		return NoEntriesSummary
	}

	noun := "entries"
	if count == 1 {
		noun = "entry"
	}
	text := fmt.Sprintf("You wrote %d %s this week.", count, noun)
	if dominantMood != nil {
		text += fmt.Sprintf(" Your dominant mood was %s.", *dominantMood)
	}
	return text
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

func uniqueTags(raw []string) []string {
	tags := domain.NormalizeTags(raw)
	if len(tags) < 2 {
		return tags
	}
	seen := make(map[string]struct{}, len(tags))
	out := tags[:0]
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// counter counts labels and remembers first-seen order for tie-breaks.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(label string) {
	if _, ok := c.counts[label]; !ok {
		c.order = append(c.order, label)
	}
	c.counts[label]++
}

// top returns the most frequent label; ties go to the label seen first.
func (c *counter) top() (string, bool) {
	best, bestCount := "", 0
	for _, label := range c.order {
		if n := c.counts[label]; n > bestCount {
			best, bestCount = label, n
		}
	}
	return best, bestCount > 0
}

// ranked returns up to limit labels by count desc, ties in first-seen order.
func (c *counter) ranked(limit int) []domain.TagCount {
	if len(c.order) == 0 {
		return nil
	}
	out := make([]domain.TagCount, len(c.order))
	for i, label := range c.order {
		out[i] = domain.TagCount{Tag: label, Count: c.counts[label]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
