package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		response string
		wantErr  bool
		want     string
		achieved int
	}{
		{
			name:     "bare json",
			response: `{"summary":"A calm week.","achievements":["ran 5k"]}`,
			want:     "A calm week.",
			achieved: 1,
		},
		{
			name:     "wrapped in prose",
			response: "Sure! Here it is:\n```json\n{\"summary\":\"Busy.\",\"notable\":\"{braces}\"}\n```\nEnjoy.",
			want:     "Busy.",
		},
		{
			name:     "reasoning block first",
			response: "<think>maybe {\"summary\":\"draft\"}</think>\n{\"summary\":\"Final.\"}",
			want:     "Final.",
		},
		{name: "no object", response: "I cannot help with that.", wantErr: true},
		{name: "invalid json", response: `{"summary": }`, wantErr: true},
		{name: "empty summary", response: `{"summary":"  "}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseContent(tt.response)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Summary)
			assert.NotNil(t, got.Achievements)
			assert.Len(t, got.Achievements, tt.achieved)
		})
	}
}

func TestExtractJSON(t *testing.T) {
	t.Parallel()

	got, err := extractJSON(`x {"a":{"b":1}} y`)
	require.NoError(t, err)
	assert.Equal(t, `{"a":{"b":1}}`, got)

	_, err = extractJSON("} {")
	assert.ErrorIs(t, err, errNoJSON)
}
