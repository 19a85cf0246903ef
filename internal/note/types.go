package note

import (
	"time"

	"smart-notes/internal/countdown"
	"smart-notes/internal/model"
)

// SSE event types published by the note usecase.
const (
	EventCreated = "note.created"
	EventUpdated = "note.updated"
	EventDeleted = "note.deleted"
)

// WarningDegraded is surfaced when a note was saved without a usable analysis.
const WarningDegraded = "AI analysis unavailable, note saved with a basic summary"

// CreateInput is the input for note creation.
type CreateInput struct {
	Content string
	// Credential overrides the configured completion-service key.
	Credential string
}

// CreateOutput is the stored note plus its countdown, when one started.
type CreateOutput struct {
	Note      model.Note
	Countdown *countdown.State
	Warning   string
}

// ListInput filters a listing. An empty Query returns everything.
type ListInput struct {
	Query string
}

// ListOutput is a listing result.
type ListOutput struct {
	Notes []model.Note
	Total int
}

// Event is the payload of note.* events.
type Event struct {
	ID        string     `json:"id"`
	Summary   string     `json:"summary,omitempty"`
	Tags      []string   `json:"tags,omitempty"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	Completed bool       `json:"completed"`
}

// NewEvent builds the event payload for n.
func NewEvent(n model.Note) Event {
	return Event{
		ID:        n.ID,
		Summary:   n.Summary,
		Tags:      n.Tags,
		DueDate:   n.DueDate,
		Completed: n.Completed,
	}
}
