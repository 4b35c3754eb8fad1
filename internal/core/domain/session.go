package domain

import "time"

// Turn is one completed (query, answer) exchange.
type Turn struct {
	// Query is the user-submitted text.
	Query string

	// Answer is the composite answer produced for the query.
	Answer CompositeAnswer

	// AskedAt is when the query was submitted.
	AskedAt time.Time
}

// Session holds the conversation state for one interactive session.
// It is created at session start, passed explicitly to each call, and
// discarded at session end. History is append-only; turns are never
// mutated after being recorded.
type Session struct {
	// ID is the unique session identifier.
	ID string

	// CreatedAt is when the session started.
	CreatedAt time.Time

	// Turns is the ordered history of completed exchanges.
	Turns []Turn
}

// NewSession creates an empty session.
func NewSession(id string) *Session {
	return &Session{
		ID:        id,
		CreatedAt: time.Now(),
	}
}

// Append records a completed exchange.
func (s *Session) Append(query string, answer CompositeAnswer) {
	s.Turns = append(s.Turns, Turn{
		Query:   query,
		Answer:  answer,
		AskedAt: time.Now(),
	})
}

// Len returns the number of completed turns.
func (s *Session) Len() int {
	return len(s.Turns)
}
