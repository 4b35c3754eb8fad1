// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
)

// QuerySubmitted is sent when the user submits a question.
type QuerySubmitted struct {
	Query string
}

// AnswerCompleted carries a finished composite answer back to the model.
type AnswerCompleted struct {
	Query  string
	Answer domain.CompositeAnswer
	Err    error
}

// ErrorOccurred signals a failure that should be surfaced to the user.
type ErrorOccurred struct {
	Err error
}
