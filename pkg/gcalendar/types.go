package gcalendar

import (
	"context"
	"time"
)

// DefaultCalendarID is used when a request leaves CalendarID empty.
const DefaultCalendarID = "primary"

// DefaultEventDuration is the length given to events created for a due note.
const DefaultEventDuration = time.Hour

// ICalendar is the subset of Google Calendar used for due notes.
type ICalendar interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// CreateEventRequest is the input for creating a calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time // StartTime + DefaultEventDuration when zero
}

// Event is the part of a created event the caller keeps.
type Event struct {
	ID        string
	Summary   string
	Location  string
	HtmlLink  string
	StartTime time.Time
	EndTime   time.Time
}
