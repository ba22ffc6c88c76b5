package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entry is a diary entry as stored by the journaling backend.
// Entries are read-only for reporting purposes.
type Entry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Content   string
	Mood      string
	Tags      []string
	Todos     []Todo
	Images    []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Todo is a single to-do item attached to an entry.
type Todo struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// WordCount returns the number of whitespace-separated words in the entry content.
func (e Entry) WordCount() int {
	return len(strings.Fields(e.Content))
}

// rawTodo accepts both the editor shape {text, done} and the
// summary shape {task, completed}.
type rawTodo struct {
	Text      *string `json:"text"`
	Task      *string `json:"task"`
	Done      *bool   `json:"done"`
	Completed *bool   `json:"completed"`
}

// ParseTodos decodes the todos JSON column leniently. Anything that is not a
// JSON array yields nil; array elements that are not objects or carry no text
// are dropped.
func ParseTodos(raw []byte) []Todo {
	if len(raw) == 0 {
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || len(items) == 0 {
		return nil
	}

	todos := make([]Todo, 0, len(items))
	for _, item := range items {
		var rt rawTodo
		if err := json.Unmarshal(item, &rt); err != nil {
			continue
		}

		var text string
		switch {
		case rt.Text != nil:
			text = *rt.Text
		case rt.Task != nil:
			text = *rt.Task
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		done := false
		switch {
		case rt.Done != nil:
			done = *rt.Done
		case rt.Completed != nil:
			done = *rt.Completed
		}

		todos = append(todos, Todo{Text: text, Done: done})
	}
	return todos
}
