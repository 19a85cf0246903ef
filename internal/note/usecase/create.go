package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"smart-notes/internal/analysis"
	"smart-notes/internal/model"
	"smart-notes/internal/note"
	"smart-notes/pkg/gcalendar"
	"smart-notes/pkg/metrics"
	"smart-notes/pkg/sse"
)

// Create analyzes and stores a note.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input note.CreateInput) (note.CreateOutput, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return note.CreateOutput{}, note.ErrEmptyContent
	}
	credential := input.Credential
	if strings.TrimSpace(credential) == "" {
		credential = uc.credential
	}
	if strings.TrimSpace(credential) == "" {
		return note.CreateOutput{}, note.ErrMissingCredential
	}

	uc.l.Infof(ctx, "Create: source=%s user=%s input_length=%d", sc.Source, sc.UserID, len(content))

	var warning string
	outcome := metrics.OutcomeOK
	result, err := uc.analyzer.Analyze(ctx, analysis.AnalyzeInput{Content: content, Credential: credential})
	switch {
	case err == nil:
	case analysis.IsDegradable(err):
		uc.l.Warnf(ctx, "Create: storing degraded note: %v", err)
		warning = note.WarningDegraded
		outcome = metrics.OutcomeDegraded
	case errors.Is(err, analysis.ErrInvalidInput):
		return note.CreateOutput{}, note.ErrEmptyContent
	default:
		return note.CreateOutput{}, fmt.Errorf("analyze note: %w", err)
	}

	n := model.Note{
		ID:         uuid.NewString(),
		Content:    content,
		Timestamp:  uc.clock.Now(),
		Tags:       result.Tags,
		Summary:    result.Summary,
		Categories: result.Categories,
		DueDate:    result.DueDate,
		Venue:      result.Venue,
		Author:     result.Author,
	}

	uc.trySyncCalendar(ctx, &n)

	stored, err := uc.repo.CreateNote(ctx, n)
	if err != nil {
		uc.l.Errorf(ctx, "Create: repo.CreateNote: %v", err)
		return note.CreateOutput{}, err
	}

	out := note.CreateOutput{Note: stored, Warning: warning}
	if stored.HasUpcomingDue(uc.clock.Now()) {
		st := uc.countdowns.Attach(targetFor(stored))
		out.Countdown = &st
	}

	uc.events.Publish(sse.Event{Type: note.EventCreated, Data: note.NewEvent(stored)})
	metrics.NotesTotal.WithLabelValues(outcome).Inc()

	uc.l.Infof(ctx, "Create: stored note id=%s tags=%v due=%t degraded=%t", stored.ID, stored.Tags, stored.DueDate != nil, warning != "")
	return out, nil
}

// trySyncCalendar creates a calendar event for a dated note. Failures only
// cost the link.
func (uc *implUseCase) trySyncCalendar(ctx context.Context, n *model.Note) {
	if uc.calendar == nil || n.DueDate == nil {
		return
	}

	req := gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     n.Summary,
		Description: n.Content,
		StartTime:   *n.DueDate,
	}
	if n.Venue != nil {
		req.Location = *n.Venue
	}

	event, err := uc.calendar.CreateEvent(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "Create: calendar event creation failed for %q (non-fatal): %v", n.Summary, err)
		return
	}
	n.CalendarEventID = event.ID
	n.CalendarLink = event.HtmlLink
}
