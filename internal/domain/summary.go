package domain

import (
	"time"

	"github.com/google/uuid"
)

// SummaryContent is the structured weekly analysis produced by the LLM.
// Field names follow the JSON contract given to the model.
type SummaryContent struct {
	Summary           string   `json:"summary"`
	EmotionalPatterns string   `json:"emotionalPatterns"`
	Achievements      []string `json:"achievements"`
	Improvement       string   `json:"improvement"`
	GoalProgress      string   `json:"goalProgress"`
	Notable           string   `json:"notable"`
}

// WeeklySummary is a stored AI summary for one user-week.
// WeekStart and WeekEnd are calendar dates in the user's timezone (time part is zero, UTC location).
type WeeklySummary struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	WeekStart time.Time
	WeekEnd   time.Time
	Content   SummaryContent
	Model     string
	CreatedAt time.Time
}
