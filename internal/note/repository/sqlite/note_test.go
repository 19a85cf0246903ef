package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-notes/internal/model"
	repo "smart-notes/internal/note/repository"
	"smart-notes/pkg/log"
)

func newTestRepo(t *testing.T) repo.Repository {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "notes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db, log.NewNop())
}

func ptr[T any](v T) *T { return &v }

func TestCreateAndGetNote(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	ist := time.FixedZone("IST", 19800)
	due := time.Date(2024, 1, 2, 18, 0, 0, 0, ist)
	in := model.Note{
		ID:         "n1",
		Content:    "Team sync tomorrow at 6 PM in Room 4",
		Timestamp:  time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		Tags:       []string{"meeting", "work"},
		Summary:    "Team sync",
		Categories: []string{},
		DueDate:    &due,
		Venue:      ptr("Room 4"),
	}

	created, err := r.CreateNote(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "n1", created.ID)

	got, err := r.GetNote(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, in.Content, got.Content)
	assert.True(t, in.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, in.Tags, got.Tags)
	assert.Equal(t, []string{}, got.Categories)
	require.NotNil(t, got.DueDate)
	assert.True(t, due.Equal(*got.DueDate))
	_, offset := got.DueDate.Zone()
	assert.Equal(t, 19800, offset)
	require.NotNil(t, got.Venue)
	assert.Equal(t, "Room 4", *got.Venue)
	assert.Nil(t, got.Author)
	assert.False(t, got.Completed)

	missing, err := r.GetNote(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestCreateNote_DuplicateID(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	n := model.Note{ID: "n1", Content: "x", Timestamp: time.Now(), Tags: []string{"note"}}
	_, err := r.CreateNote(ctx, n)
	require.NoError(t, err)

	_, err = r.CreateNote(ctx, n)
	assert.ErrorIs(t, err, repo.ErrFailedToInsert)
}

func TestListNotes(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	due := base.Add(48 * time.Hour)
	seed := []model.Note{
		{ID: "a", Content: "Buy milk", Timestamp: base, Tags: []string{"shopping"}, Summary: "Groceries"},
		{ID: "b", Content: "Dentist appointment", Timestamp: base.Add(time.Hour), Tags: []string{"health"}, Summary: "Dentist", DueDate: &due, Author: ptr("Dr. Rao")},
		{ID: "c", Content: "Standup", Timestamp: base.Add(2 * time.Hour), Tags: []string{"work"}, Summary: "Standup", DueDate: &due, Completed: true, Venue: ptr("HQ 50%")},
	}
	for _, n := range seed {
		_, err := r.CreateNote(ctx, n)
		require.NoError(t, err)
	}

	ids := func(notes []model.Note) []string {
		out := make([]string, len(notes))
		for i, n := range notes {
			out[i] = n.ID
		}
		return out
	}

	tcs := map[string]struct {
		opt  repo.ListNotesOptions
		want []string
	}{
		"newest first":          {opt: repo.ListNotesOptions{}, want: []string{"c", "b", "a"}},
		"content match":         {opt: repo.ListNotesOptions{Query: "MILK"}, want: []string{"a"}},
		"tag match":             {opt: repo.ListNotesOptions{Query: "health"}, want: []string{"b"}},
		"author match":          {opt: repo.ListNotesOptions{Query: "rao"}, want: []string{"b"}},
		"venue literal percent": {opt: repo.ListNotesOptions{Query: "50%"}, want: []string{"c"}},
		"no match":              {opt: repo.ListNotesOptions{Query: "zzz"}, want: []string{}},
		"pending":               {opt: repo.ListNotesOptions{Pending: true}, want: []string{"b"}},
		"paged":                 {opt: repo.ListNotesOptions{Limit: 1, Offset: 1}, want: []string{"b"}},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got, err := r.ListNotes(ctx, tc.opt)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func TestUpdateAndDeleteNote(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	_, err := r.CreateNote(ctx, model.Note{ID: "n1", Content: "x", Timestamp: time.Now(), Tags: []string{"note"}})
	require.NoError(t, err)

	updated, err := r.UpdateNote(ctx, repo.UpdateNoteOptions{
		ID:              "n1",
		Completed:       ptr(true),
		CalendarEventID: ptr("evt-1"),
		CalendarLink:    ptr("https://calendar.google.com/evt-1"),
	})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "evt-1", updated.CalendarEventID)
	assert.Equal(t, "https://calendar.google.com/evt-1", updated.CalendarLink)

	missing, err := r.UpdateNote(ctx, repo.UpdateNoteOptions{ID: "nope", Completed: ptr(true)})
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	require.NoError(t, r.DeleteNote(ctx, "n1"))
	got, err := r.GetNote(ctx, "n1")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}
