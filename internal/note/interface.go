package note

import (
	"context"

	"smart-notes/internal/countdown"
	"smart-notes/internal/model"
)

// UseCase defines the business logic for notes.
type UseCase interface {
	// Create analyzes the content, stores the note and starts its countdown
	// when it has a future due date. A degraded analysis still stores the
	// note and sets CreateOutput.Warning.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	// List returns notes newest first, filtered by input.Query when set.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Note, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	// ToggleComplete flips the completed flag, stopping or restarting the
	// note's countdown.
	ToggleComplete(ctx context.Context, sc model.Scope, id string) (model.Note, error)
	Countdown(ctx context.Context, sc model.Scope, id string) (countdown.State, error)
	// Rehydrate re-attaches countdowns for stored notes after a restart.
	Rehydrate(ctx context.Context) (int, error)
}
