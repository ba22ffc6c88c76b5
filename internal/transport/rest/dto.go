package rest

import (
	"time"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
	"github.com/heartmarshall/moodjournal-backend/internal/service/report"
)

type seriesResponse struct {
	Timezone string           `json:"timezone"`
	Cached   bool             `json:"cached"`
	Reports  []weeklyResponse `json:"reports"`
}

type weeklyResponse struct {
	ID               int              `json:"id"`
	WeekStart        time.Time        `json:"weekStart"`
	WeekEnd          time.Time        `json:"weekEnd"`
	Label            string           `json:"label"`
	EntryCount       int              `json:"entryCount"`
	DominantMood     *string          `json:"dominantMood"`
	DailyMoodSeries  []dailyResponse  `json:"dailyMoodSeries"`
	Summary          string           `json:"summary"`
	WritingDays      int              `json:"writingDays"`
	CompletedTodos   int              `json:"completedTodos"`
	PendingTodos     int              `json:"pendingTodos"`
	AvgWordsPerEntry int              `json:"avgWordsPerEntry"`
	TopTags          []tagCountResult `json:"topTags"`
}

type dailyResponse struct {
	Date      string   `json:"date"`
	MoodScore *float64 `json:"moodScore"`
}

type tagCountResult struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type summaryResponse struct {
	ID        string                `json:"id"`
	WeekStart string                `json:"weekStart"`
	WeekEnd   string                `json:"weekEnd"`
	Model     string                `json:"model,omitempty"`
	CreatedAt time.Time             `json:"createdAt"`
	Summary   domain.SummaryContent `json:"summary"`
}

func toSeriesResponse(res *report.SeriesResult) seriesResponse {
	out := seriesResponse{
		Timezone: res.Timezone,
		Cached:   res.Cached,
		Reports:  make([]weeklyResponse, 0, len(res.Reports)),
	}
	for _, r := range res.Reports {
		out.Reports = append(out.Reports, toWeeklyResponse(r))
	}
	return out
}

func toWeeklyResponse(r domain.WeeklyReport) weeklyResponse {
	daily := make([]dailyResponse, 0, len(r.DailyMoodSeries))
	for _, p := range r.DailyMoodSeries {
		daily = append(daily, dailyResponse{Date: p.Date, MoodScore: p.MoodScore})
	}
	tags := make([]tagCountResult, 0, len(r.TopTags))
	for _, tc := range r.TopTags {
		tags = append(tags, tagCountResult{Tag: tc.Tag, Count: tc.Count})
	}
	return weeklyResponse{
		ID:               r.SequenceID,
		WeekStart:        r.Window.Start,
		WeekEnd:          r.Window.End,
		Label:            r.Window.Label,
		EntryCount:       r.EntryCount,
		DominantMood:     r.DominantMood,
		DailyMoodSeries:  daily,
		Summary:          r.SummaryText,
		WritingDays:      r.WritingDays,
		CompletedTodos:   r.CompletedTodos,
		PendingTodos:     r.PendingTodos,
		AvgWordsPerEntry: r.AvgWordsPerEntry,
		TopTags:          tags,
	}
}

func toSummaryResponse(s *domain.WeeklySummary) summaryResponse {
	content := s.Content
	if content.Achievements == nil {
		content.Achievements = []string{}
	}
	return summaryResponse{
		ID:        s.ID.String(),
		WeekStart: s.WeekStart.Format(time.DateOnly),
		WeekEnd:   s.WeekEnd.Format(time.DateOnly),
		Model:     s.Model,
		CreatedAt: s.CreatedAt,
		Summary:   content,
	}
}
