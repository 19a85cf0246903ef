package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"smart-notes/internal/model"
	repo "smart-notes/internal/note/repository"
)

// CreateNote inserts a note row and returns the stored note.
func (r *implRepository) CreateNote(ctx context.Context, n model.Note) (model.Note, error) {
	const query = `
		INSERT INTO notes (` + noteColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	completed := 0
	if n.Completed {
		completed = 1
	}

	_, err := r.db.ExecContext(ctx, query,
		n.ID, n.Content, formatTime(n.Timestamp), encodeList(n.Tags), n.Summary, encodeList(n.Categories),
		nullTime(n.DueDate), nullString(n.Venue), nullString(n.Author), completed,
		n.CalendarEventID, n.CalendarLink,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateNote"), err)
		return model.Note{}, repo.ErrFailedToInsert
	}
	return r.GetNote(ctx, n.ID)
}

// GetNote fetches one note by id.
func (r *implRepository) GetNote(ctx context.Context, id string) (model.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = ? LIMIT 1`

	n, err := scanNote(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Note{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetNote"), err)
		return model.Note{}, repo.ErrFailedToGet
	}
	return n, nil
}

// ListNotes returns notes newest first.
func (r *implRepository) ListNotes(ctx context.Context, opt repo.ListNotesOptions) ([]model.Note, error) {
	mods, args := r.buildListQuery(opt)
	query := `SELECT ` + noteColumns + ` FROM notes ` + mods

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListNotes"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	notes := []model.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListNotes"), err)
			return nil, repo.ErrFailedToList
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListNotes"), err)
		return nil, repo.ErrFailedToList
	}
	return notes, nil
}

// UpdateNote applies the non-nil fields of opt.
func (r *implRepository) UpdateNote(ctx context.Context, opt repo.UpdateNoteOptions) (model.Note, error) {
	var sets []string
	var args []any

	if opt.Completed != nil {
		v := 0
		if *opt.Completed {
			v = 1
		}
		sets = append(sets, "completed = ?")
		args = append(args, v)
	}
	if opt.CalendarEventID != nil {
		sets = append(sets, "calendar_event_id = ?")
		args = append(args, *opt.CalendarEventID)
	}
	if opt.CalendarLink != nil {
		sets = append(sets, "calendar_link = ?")
		args = append(args, *opt.CalendarLink)
	}

	if len(sets) > 0 {
		query := `UPDATE notes SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`
		args = append(args, opt.ID)
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateNote"), err)
			return model.Note{}, repo.ErrFailedToUpdate
		}
	}
	return r.GetNote(ctx, opt.ID)
}

// DeleteNote removes a note by id.
func (r *implRepository) DeleteNote(ctx context.Context, id string) error {
	const query = `DELETE FROM notes WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteNote"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
