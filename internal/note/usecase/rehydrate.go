package usecase

import (
	"context"

	"smart-notes/internal/note/repository"
)

// Rehydrate attaches a countdown for every stored open note whose due date
// is still ahead.
func (uc *implUseCase) Rehydrate(ctx context.Context) (int, error) {
	notes, err := uc.repo.ListNotes(ctx, repository.ListNotesOptions{Pending: true})
	if err != nil {
		uc.l.Errorf(ctx, "Rehydrate: repo.ListNotes: %v", err)
		return 0, err
	}

	now := uc.clock.Now()
	attached := 0
	for _, n := range notes {
		if !n.HasUpcomingDue(now) {
			continue
		}
		uc.countdowns.Attach(targetFor(n))
		attached++
	}

	uc.l.Infof(ctx, "Rehydrate: attached %d of %d pending notes", attached, len(notes))
	return attached, nil
}
