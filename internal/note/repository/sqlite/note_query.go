package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"smart-notes/internal/model"
	repo "smart-notes/internal/note/repository"
)

// timeLayout is fixed width so stored UTC timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const noteColumns = `id, content, created_at, tags, summary, categories, due_date, venue, author, completed, calendar_event_id, calendar_link`

// buildListQuery builds the WHERE + ORDER + LIMIT + OFFSET clause for ListNotes.
func (r *implRepository) buildListQuery(opt repo.ListNotesOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any

	if q := strings.TrimSpace(opt.Query); q != "" {
		pattern := "%" + escapeLike(strings.ToLower(q)) + "%"
		var ors []string
		for _, col := range []string{"content", "tags", "summary", "venue", "author"} {
			ors = append(ors, fmt.Sprintf(`lower(coalesce(%s, '')) LIKE ? ESCAPE '\'`, col))
			args = append(args, pattern)
		}
		conditions = append(conditions, "("+strings.Join(ors, " OR ")+")")
	}
	if opt.Pending {
		conditions = append(conditions, "completed = 0", "due_date IS NOT NULL")
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	parts = append(parts, "ORDER BY created_at DESC, rowid DESC")

	if opt.Limit > 0 {
		parts = append(parts, "LIMIT ?")
		args = append(args, opt.Limit)
		if opt.Offset > 0 {
			parts = append(parts, "OFFSET ?")
			args = append(args, opt.Offset)
		}
	}

	return strings.Join(parts, " "), args
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(s scanner) (model.Note, error) {
	var (
		n                      model.Note
		createdAt, tags, cats  string
		dueDate, venue, author sql.NullString
		completed              int
	)
	err := s.Scan(&n.ID, &n.Content, &createdAt, &tags, &n.Summary, &cats, &dueDate, &venue, &author,
		&completed, &n.CalendarEventID, &n.CalendarLink)
	if err != nil {
		return model.Note{}, err
	}

	if n.Timestamp, err = time.Parse(timeLayout, createdAt); err != nil {
		return model.Note{}, fmt.Errorf("created_at: %w", err)
	}
	if err := json.Unmarshal([]byte(tags), &n.Tags); err != nil {
		return model.Note{}, fmt.Errorf("tags: %w", err)
	}
	if err := json.Unmarshal([]byte(cats), &n.Categories); err != nil {
		return model.Note{}, fmt.Errorf("categories: %w", err)
	}
	if dueDate.Valid {
		due, err := time.Parse(timeLayout, dueDate.String)
		if err != nil {
			return model.Note{}, fmt.Errorf("due_date: %w", err)
		}
		n.DueDate = &due
	}
	if venue.Valid {
		n.Venue = &venue.String
	}
	if author.Valid {
		n.Author = &author.String
	}
	n.Completed = completed != 0
	return n, nil
}

func encodeList(v []string) string {
	if v == nil {
		v = []string{}
	}
	b, _ := json.Marshal(v)
	return string(b)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func nullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	// Keep the offset so reads return the zone the date was resolved in.
	return sql.NullString{String: t.Format(timeLayout), Valid: true}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
