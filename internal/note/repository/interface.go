package repository

import (
	"context"

	"smart-notes/internal/model"
)

// Repository is the data store for notes.
type Repository interface {
	CreateNote(ctx context.Context, note model.Note) (model.Note, error)
	// GetNote returns a zero-value Note (ID == "") when id is unknown.
	GetNote(ctx context.Context, id string) (model.Note, error)
	ListNotes(ctx context.Context, opt ListNotesOptions) ([]model.Note, error)
	// UpdateNote returns a zero-value Note when opt.ID is unknown.
	UpdateNote(ctx context.Context, opt UpdateNoteOptions) (model.Note, error)
	DeleteNote(ctx context.Context, id string) error
}
