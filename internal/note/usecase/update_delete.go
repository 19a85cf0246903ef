package usecase

import (
	"context"

	"smart-notes/internal/model"
	"smart-notes/internal/note"
	"smart-notes/internal/note/repository"
	"smart-notes/pkg/sse"
)

// Delete removes a note, stopping its countdown and calendar event.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	n, err := uc.getNote(ctx, id)
	if err != nil {
		return err
	}

	uc.countdowns.Detach(id)

	if err := uc.repo.DeleteNote(ctx, id); err != nil {
		uc.l.Errorf(ctx, "Delete: repo.DeleteNote %s: %v", id, err)
		return err
	}

	if uc.calendar != nil && n.CalendarEventID != "" {
		if err := uc.calendar.DeleteEvent(ctx, uc.calendarID, n.CalendarEventID); err != nil {
			uc.l.Warnf(ctx, "Delete: calendar event %s not removed (non-fatal): %v", n.CalendarEventID, err)
		}
	}

	uc.events.Publish(sse.Event{Type: note.EventDeleted, Data: note.Event{ID: id}})
	uc.l.Infof(ctx, "Delete: removed note id=%s", id)
	return nil
}

// ToggleComplete flips completion. Completing stops the countdown;
// reopening restarts it while the due date is still ahead.
func (uc *implUseCase) ToggleComplete(ctx context.Context, sc model.Scope, id string) (model.Note, error) {
	n, err := uc.getNote(ctx, id)
	if err != nil {
		return model.Note{}, err
	}

	completed := !n.Completed
	updated, err := uc.repo.UpdateNote(ctx, repository.UpdateNoteOptions{ID: id, Completed: &completed})
	if err != nil {
		uc.l.Errorf(ctx, "ToggleComplete: repo.UpdateNote %s: %v", id, err)
		return model.Note{}, err
	}
	if updated.ID == "" {
		return model.Note{}, note.ErrNotFound
	}

	if updated.Completed {
		uc.countdowns.Detach(id)
	} else if updated.HasUpcomingDue(uc.clock.Now()) {
		uc.countdowns.Attach(targetFor(updated))
	}

	uc.events.Publish(sse.Event{Type: note.EventUpdated, Data: note.NewEvent(updated)})
	uc.l.Infof(ctx, "ToggleComplete: note id=%s completed=%t", id, updated.Completed)
	return updated, nil
}
