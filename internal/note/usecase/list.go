package usecase

import (
	"context"

	"smart-notes/internal/countdown"
	"smart-notes/internal/model"
	"smart-notes/internal/note"
	"smart-notes/internal/note/repository"
)

// List returns notes newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input note.ListInput) (note.ListOutput, error) {
	notes, err := uc.repo.ListNotes(ctx, repository.ListNotesOptions{Query: input.Query})
	if err != nil {
		uc.l.Errorf(ctx, "List: repo.ListNotes: %v", err)
		return note.ListOutput{}, err
	}
	return note.ListOutput{Notes: notes, Total: len(notes)}, nil
}

// Detail returns one note.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Note, error) {
	return uc.getNote(ctx, id)
}

// Countdown returns the live countdown of a note, or a detached view when
// none is running.
func (uc *implUseCase) Countdown(ctx context.Context, sc model.Scope, id string) (countdown.State, error) {
	n, err := uc.getNote(ctx, id)
	if err != nil {
		return countdown.State{}, err
	}
	if n.DueDate == nil {
		return countdown.State{}, note.ErrNoDueDate
	}
	if st, ok := uc.countdowns.State(id); ok {
		return st, nil
	}
	return countdown.Detached(id, *n.DueDate, uc.clock.Now()), nil
}
