package summary

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

var errNoJSON = errors.New("no JSON object found in response")

// extractJSON returns the text between the first '{' and the last '}'.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", errNoJSON
	}
	return s[start : end+1], nil
}

// ParseContent decodes a model response into SummaryContent.
// Surrounding prose and reasoning blocks are ignored.
func ParseContent(response string) (domain.SummaryContent, error) {
	raw, err := extractJSON(stripThinking(response))
	if err != nil {
		return domain.SummaryContent{}, err
	}

	var content domain.SummaryContent
	if err := json.Unmarshal([]byte(raw), &content); err != nil {
		return domain.SummaryContent{}, fmt.Errorf("decode summary: %w", err)
	}
	if strings.TrimSpace(content.Summary) == "" {
		return domain.SummaryContent{}, errors.New("decode summary: empty summary field")
	}
	if content.Achievements == nil {
		content.Achievements = []string{}
	}
	return content, nil
}

// stripThinking drops a leading <think>...</think> block that reasoning
// models emit before the answer.
func stripThinking(s string) string {
	const closeTag = "</think>"
	if i := strings.LastIndex(s, closeTag); i >= 0 {
		return s[i+len(closeTag):]
	}
	return s
}
