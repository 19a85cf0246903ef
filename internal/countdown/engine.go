package countdown

import (
	"context"
	"sync"
	"time"

	"smart-notes/internal/notify"
	"smart-notes/pkg/clock"
	pkgLog "smart-notes/pkg/log"
	"smart-notes/pkg/metrics"
)

// Engine runs one ticking loop per tracked note.
type Engine struct {
	l        pkgLog.Logger
	clock    clock.Clock
	notifier notify.Notifier
	policy   Policy
	icon     string

	root   context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	entries map[string]*entry
	wg      sync.WaitGroup
}

type entry struct {
	target Target
	cancel context.CancelFunc
	done   chan struct{}

	mu    sync.RWMutex
	state State
}

func (e *entry) snapshot() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// stop cancels the loop and waits for it to exit.
func (e *entry) stop() {
	e.cancel()
	<-e.done
}

func (e *entry) set(st State) {
	e.mu.Lock()
	e.state = st
	e.mu.Unlock()
}

// Option customizes an Engine.
type Option func(*Engine)

// WithIcon overrides the alert icon reference.
func WithIcon(icon string) Option {
	return func(e *Engine) {
		if icon != "" {
			e.icon = icon
		}
	}
}

// NewEngine creates an Engine. Close releases every loop it started.
func NewEngine(l pkgLog.Logger, clk clock.Clock, notifier notify.Notifier, policy Policy, opts ...Option) *Engine {
	root, cancel := context.WithCancel(context.Background())
	e := &Engine{
		l:        l,
		clock:    clk,
		notifier: notifier,
		policy:   policy.withDefaults(),
		icon:     AlertIcon,
		root:     root,
		cancel:   cancel,
		entries:  make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Attach starts tracking t, replacing any countdown already running for the
// same note. The first evaluation happens immediately and is returned. The
// ticker exists by the time Attach returns.
func (e *Engine) Attach(t Target) State {
	ctx, cancel := context.WithCancel(e.root)
	en := &entry{target: t, cancel: cancel, done: make(chan struct{})}

	first := e.evaluate(ctx, en, e.clock.Now())

	var ticker clock.Ticker
	if first.Phase == PhaseDue {
		cancel()
		close(en.done)
	} else {
		ticker = e.clock.NewTicker(e.policy.Tick)
		e.wg.Add(1)
	}

	e.mu.Lock()
	prev := e.entries[t.NoteID]
	e.entries[t.NoteID] = en
	e.mu.Unlock()

	if prev != nil {
		prev.stop()
	}
	if ticker == nil {
		return first
	}

	go e.run(ctx, en, ticker)

	e.l.Debugf(ctx, "countdown: attached note %s due %s (%s)", t.NoteID, t.DueDate.Format("2006-01-02 15:04:05 MST"), first.Phase)
	return first
}

// Detach stops tracking noteID and returns its last state marked detached.
func (e *Engine) Detach(noteID string) (State, bool) {
	e.mu.Lock()
	en, ok := e.entries[noteID]
	if ok {
		delete(e.entries, noteID)
	}
	e.mu.Unlock()
	if !ok {
		return State{}, false
	}

	en.stop()

	st := en.snapshot()
	st.Phase = PhaseDetached
	st.PreciseCountdown = ""
	return st, true
}

// State returns the latest state for noteID.
func (e *Engine) State(noteID string) (State, bool) {
	e.mu.Lock()
	en, ok := e.entries[noteID]
	e.mu.Unlock()
	if !ok {
		return State{}, false
	}
	return en.snapshot(), true
}

// Tracked returns the ids currently tracked, ticking or due.
func (e *Engine) Tracked() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	ids := make([]string, 0, len(e.entries))
	for id := range e.entries {
		ids = append(ids, id)
	}
	return ids
}

// Close stops every loop and waits for them to exit.
func (e *Engine) Close() {
	e.cancel()
	e.wg.Wait()
}

func (e *Engine) run(ctx context.Context, en *entry, ticker clock.Ticker) {
	defer e.wg.Done()
	defer close(en.done)
	defer ticker.Stop()

	metrics.ActiveCountdowns.Inc()
	defer metrics.ActiveCountdowns.Dec()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C():
			if st := e.evaluate(ctx, en, now); st.Phase == PhaseDue {
				e.l.Infof(ctx, "countdown: note %s is due", en.target.NoteID)
				return
			}
		}
	}
}

// evaluate recomputes and stores the state, raising the alert when due.
func (e *Engine) evaluate(ctx context.Context, en *entry, now time.Time) State {
	prev := en.snapshot()
	st, fire := Evaluate(en.target.DueDate, now, prev.AlertFired, e.policy)
	st.NoteID = en.target.NoteID
	en.set(st)

	if fire {
		e.l.Infof(ctx, "countdown: alert for note %s (%s left)", en.target.NoteID, st.PreciseCountdown)
		e.notifier.Notify(ctx, notify.Notification{
			Title:   AlertTitle,
			Body:    AlertBody(en.target.Summary, e.policy.LeadTime),
			Icon:    e.icon,
			NoteID:  en.target.NoteID,
			DueDate: en.target.DueDate,
		})
	}
	return st
}
