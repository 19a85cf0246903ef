package usecase

import (
	"smart-notes/internal/analysis"
	"smart-notes/internal/countdown"
	"smart-notes/internal/note"
	"smart-notes/internal/note/repository"
	"smart-notes/pkg/clock"
	"smart-notes/pkg/gcalendar"
	pkgLog "smart-notes/pkg/log"
	"smart-notes/pkg/sse"
)

// Countdowns is the part of countdown.Engine the usecase drives.
type Countdowns interface {
	Attach(t countdown.Target) countdown.State
	Detach(noteID string) (countdown.State, bool)
	State(noteID string) (countdown.State, bool)
}

// Publisher broadcasts note events to live clients.
type Publisher interface {
	Publish(e sse.Event)
}

// Config holds optional collaborators and settings.
type Config struct {
	// Credential is the completion-service key used when a request brings none.
	Credential string
	// Calendar, when set, receives an event for every note with a due date.
	Calendar   gcalendar.ICalendar
	CalendarID string
}

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	analyzer   analysis.UseCase
	countdowns Countdowns
	events     Publisher
	clock      clock.Clock
	credential string
	calendar   gcalendar.ICalendar
	calendarID string
}

// New creates a new note UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	analyzer analysis.UseCase,
	countdowns Countdowns,
	events Publisher,
	clk clock.Clock,
	cfg Config,
) note.UseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		analyzer:   analyzer,
		countdowns: countdowns,
		events:     events,
		clock:      clk,
		credential: cfg.Credential,
		calendar:   cfg.Calendar,
		calendarID: cfg.CalendarID,
	}
}
