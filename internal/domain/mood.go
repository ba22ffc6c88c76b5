package domain

// MoodScore is an ordinal rating of a mood label, from 1 (worst) to 5 (best).
type MoodScore int

const (
	MinMoodScore     MoodScore = 1
	NeutralMoodScore MoodScore = 3
	MaxMoodScore     MoodScore = 5
)

var moodScores = map[string]MoodScore{
	"happy":    5,
	"excited":  5,
	"content":  4,
	"calm":     4,
	"okay":     3,
	"neutral":  3,
	"tired":    2,
	"sad":      2,
	"anxious":  2,
	"angry":    1,
	"stressed": 1,
}

// ScoreOf maps a mood label to its score. Labels are compared after
// NormalizeMood. Unknown labels score NeutralMoodScore.
func ScoreOf(label string) MoodScore {
	if s, ok := moodScores[NormalizeMood(label)]; ok {
		return s
	}
	return NeutralMoodScore
}

// IsKnownMood reports whether the label has an explicit score.
func IsKnownMood(label string) bool {
	_, ok := moodScores[NormalizeMood(label)]
	return ok
}
