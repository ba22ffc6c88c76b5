package summary

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

// SystemPrompt is sent as the system message of every summary request.
const SystemPrompt = "You output exactly JSON, no fluff."

// MaxEntryTextRunes caps how much of each entry body goes into the prompt.
const MaxEntryTextRunes = 500

const entrySeparator = "\n---\n"

const instructions = `You are an expert diary analyst. Based on the following diary entries, return a JSON object exactly in this shape:

{
  "summary": "...",
  "emotionalPatterns": "...",
  "achievements": ["...", "..."],
  "improvement": "...",
  "goalProgress": "...",
  "notable": "..."
}

**Requirements**:
- The **summary** field must be a detailed paragraph of **3 to 5 complete sentences**, discussing mood trends, any changes over the week, and high-level takeaways.
- **EmotionalPatterns**: At least 2 sentences describing how emotions shifted or stayed consistent.
- **Achievements**: List any key wins or milestones.
- **Improvement**: 1-2 sentences with actionable suggestions.
- **GoalProgress**: 1-2 sentences on progress toward any goals.
- **Notable**: 1-2 sentences highlighting anything unusual or interesting.

Return **only** the valid JSON, no extra text.`

// BuildPrompt renders the user prompt for one week of entries.
// Dates are local calendar dates in loc.
func BuildPrompt(r domain.WeeklyReport, entries []domain.Entry, loc *time.Location) string {
	var b strings.Builder
	b.WriteString(instructions)
	b.WriteString("\n\nWeek overview:\n")
	b.WriteString(reportHeader(r))
	b.WriteString("\nHere are the entries to analyze:\n\n")

	blocks := make([]string, len(entries))
	for i, e := range entries {
		blocks[i] = entryBlock(e, loc)
	}
	b.WriteString(strings.Join(blocks, entrySeparator))
	return b.String()
}

func reportHeader(r domain.WeeklyReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Week: %s\n", r.Window.Label)
	fmt.Fprintf(&b, "Entries: %d\n", r.EntryCount)
	if r.DominantMood != nil {
		fmt.Fprintf(&b, "Dominant mood: %s\n", *r.DominantMood)
	}

	days := make([]string, len(r.DailyMoodSeries))
	for i, p := range r.DailyMoodSeries {
		score := "-"
		if p.MoodScore != nil {
			score = strconv.FormatFloat(*p.MoodScore, 'f', 1, 64)
		}
		days[i] = p.Date + " " + score
	}
	fmt.Fprintf(&b, "Daily mood scores (1-5): %s\n", strings.Join(days, ", "))
	return b.String()
}

func entryBlock(e domain.Entry, loc *time.Location) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Date: %s\n", e.CreatedAt.In(loc).Format(time.DateOnly))
	fmt.Fprintf(&b, "Mood: %s\n", e.Mood)
	fmt.Fprintf(&b, "Tags: %s\n", orNone(strings.Join(e.Tags, ", ")))
	fmt.Fprintf(&b, "To-dos: %s\n", orNone(formatTodos(e.Todos)))
	fmt.Fprintf(&b, "Text: %s\n", excerpt(e.Content))
	fmt.Fprintf(&b, "Images: %d\n", len(e.Images))
	return b.String()
}

func formatTodos(todos []domain.Todo) string {
	parts := make([]string, len(todos))
	for i, t := range todos {
		mark := "✗"
		if t.Done {
			mark = "✓"
		}
		parts[i] = fmt.Sprintf("%s [%s]", t.Text, mark)
	}
	return strings.Join(parts, ", ")
}

// excerpt returns the first MaxEntryTextRunes runes of text.
func excerpt(text string) string {
	runes := []rune(text)
	if len(runes) > MaxEntryTextRunes {
		runes = runes[:MaxEntryTextRunes]
	}
	if strings.TrimSpace(string(runes)) == "" {
		return "No content"
	}
	return string(runes)
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
