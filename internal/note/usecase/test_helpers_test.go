package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"smart-notes/internal/analysis"
	"smart-notes/internal/countdown"
	"smart-notes/internal/model"
	"smart-notes/internal/note"
	"smart-notes/internal/note/repository"
	"smart-notes/pkg/clock"
	"smart-notes/pkg/gcalendar"
	pkgLog "smart-notes/pkg/log"
	"smart-notes/pkg/sse"
)

// memRepo is an in-memory repository.Repository.
type memRepo struct {
	mu    sync.Mutex
	notes map[string]model.Note
	err   error
}

func newMemRepo() *memRepo { return &memRepo{notes: map[string]model.Note{}} }

func (r *memRepo) CreateNote(_ context.Context, n model.Note) (model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return model.Note{}, r.err
	}
	r.notes[n.ID] = n
	return n, nil
}

func (r *memRepo) GetNote(_ context.Context, id string) (model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.notes[id], r.err
}

func (r *memRepo) ListNotes(_ context.Context, opt repository.ListNotesOptions) ([]model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := []model.Note{}
	for _, n := range r.notes {
		if opt.Pending && (n.Completed || n.DueDate == nil) {
			continue
		}
		if opt.Query != "" && !strings.Contains(strings.ToLower(n.Content), strings.ToLower(opt.Query)) {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (r *memRepo) UpdateNote(_ context.Context, opt repository.UpdateNoteOptions) (model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notes[opt.ID]
	if !ok {
		return model.Note{}, nil
	}
	if opt.Completed != nil {
		n.Completed = *opt.Completed
	}
	r.notes[opt.ID] = n
	return n, nil
}

func (r *memRepo) DeleteNote(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.notes, id)
	return nil
}

type mockAnalyzer struct {
	result analysis.Result
	err    error
	calls  int
	input  analysis.AnalyzeInput
}

func (m *mockAnalyzer) Analyze(_ context.Context, in analysis.AnalyzeInput) (analysis.Result, error) {
	m.calls++
	m.input = in
	return m.result, m.err
}

type mockCountdowns struct {
	attached map[string]countdown.Target
	detached []string
}

func newMockCountdowns() *mockCountdowns {
	return &mockCountdowns{attached: map[string]countdown.Target{}}
}

func (m *mockCountdowns) Attach(t countdown.Target) countdown.State {
	m.attached[t.NoteID] = t
	return countdown.State{NoteID: t.NoteID, Phase: countdown.PhaseWaiting, DueDate: t.DueDate}
}

func (m *mockCountdowns) Detach(id string) (countdown.State, bool) {
	m.detached = append(m.detached, id)
	_, ok := m.attached[id]
	delete(m.attached, id)
	return countdown.State{NoteID: id, Phase: countdown.PhaseDetached}, ok
}

func (m *mockCountdowns) State(id string) (countdown.State, bool) {
	t, ok := m.attached[id]
	if !ok {
		return countdown.State{}, false
	}
	return countdown.State{NoteID: id, Phase: countdown.PhaseWaiting, DueDate: t.DueDate}, true
}

type mockPublisher struct {
	events []sse.Event
}

func (m *mockPublisher) Publish(e sse.Event) { m.events = append(m.events, e) }

func (m *mockPublisher) types() []string {
	out := make([]string, len(m.events))
	for i, e := range m.events {
		out[i] = e.Type
	}
	return out
}

type mockCalendar struct {
	created []gcalendar.CreateEventRequest
	deleted []string
	err     error
}

func (m *mockCalendar) CreateEvent(_ context.Context, req gcalendar.CreateEventRequest) (gcalendar.Event, error) {
	if m.err != nil {
		return gcalendar.Event{}, m.err
	}
	m.created = append(m.created, req)
	return gcalendar.Event{ID: "evt-1", HtmlLink: "https://calendar.google.com/evt-1"}, nil
}

func (m *mockCalendar) DeleteEvent(_ context.Context, _, eventID string) error {
	m.deleted = append(m.deleted, eventID)
	return m.err
}

var errBoom = errors.New("boom")

var testNow = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	uc         note.UseCase
	repo       *memRepo
	analyzer   *mockAnalyzer
	countdowns *mockCountdowns
	events     *mockPublisher
	calendar   *mockCalendar
	clock      *clock.Fake
}

func newFixture(t *testing.T, withCalendar bool) *fixture {
	t.Helper()
	f := &fixture{
		repo:       newMemRepo(),
		analyzer:   &mockAnalyzer{},
		countdowns: newMockCountdowns(),
		events:     &mockPublisher{},
		clock:      clock.NewFake(testNow),
	}
	cfg := Config{Credential: "default-key"}
	if withCalendar {
		f.calendar = &mockCalendar{}
		cfg.Calendar = f.calendar
	}
	f.uc = New(pkgLog.NewNop(), f.repo, f.analyzer, f.countdowns, f.events, f.clock, cfg)
	return f
}

func ptr[T any](v T) *T { return &v }
