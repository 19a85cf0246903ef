package model

import "time"

// Note is a stored note with its extracted metadata.
type Note struct {
	ID              string
	Content         string
	Timestamp       time.Time  // creation time
	Tags            []string   // 1..6 tags, order preserved
	Summary         string     // at most 50 characters
	Categories      []string   // reserved, always empty
	DueDate         *time.Time // nil when the note carries no date
	Venue           *string
	Author          *string
	Completed       bool
	CalendarEventID string // Google Calendar event, empty when not synced
	CalendarLink    string
}

// HasUpcomingDue reports whether the note should be counting down at now.
func (n Note) HasUpcomingDue(now time.Time) bool {
	return !n.Completed && n.DueDate != nil && n.DueDate.After(now)
}
