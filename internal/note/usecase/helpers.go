package usecase

import (
	"context"

	"smart-notes/internal/countdown"
	"smart-notes/internal/model"
	"smart-notes/internal/note"
)

func targetFor(n model.Note) countdown.Target {
	return countdown.Target{NoteID: n.ID, Summary: n.Summary, DueDate: *n.DueDate}
}

// getNote loads a note, mapping a missing row to note.ErrNotFound.
func (uc *implUseCase) getNote(ctx context.Context, id string) (model.Note, error) {
	n, err := uc.repo.GetNote(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "repo.GetNote %s: %v", id, err)
		return model.Note{}, err
	}
	if n.ID == "" {
		return model.Note{}, note.ErrNotFound
	}
	return n, nil
}
