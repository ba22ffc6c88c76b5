package domain

import "strings"

// NormalizeText lowercases text and collapses every whitespace run, leading
// and trailing ones included, so "  Deep\tWork " becomes "deep work".
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// NormalizeMood is the comparison key for mood labels. Scoring and the
// dominant-mood count both go through it.
func NormalizeMood(label string) string {
	return NormalizeText(label)
}

// NormalizeTags normalizes each tag and drops the ones left blank.
// Order and duplicates are kept; counting happens downstream.
func NormalizeTags(tags []string) []string {
	var out []string
	for _, t := range tags {
		if n := NormalizeText(t); n != "" {
			out = append(out, n)
		}
	}
	return out
}
