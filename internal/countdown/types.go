package countdown

import "time"

// Phase is a countdown's position relative to its due date.
type Phase string

const (
	PhaseWaiting  Phase = "waiting"  // more than the lead time left
	PhaseImminent Phase = "imminent" // within the lead time
	PhaseDue      Phase = "due"
	PhaseDetached Phase = "detached"
)

// Trigger selects when the lead-time alert fires.
type Trigger string

const (
	// TriggerRange fires on the first tick inside the lead window.
	TriggerRange Trigger = "range"
	// TriggerExact fires only on the tick that lands on the lead boundary,
	// within one tick period. A skipped tick means no alert.
	TriggerExact Trigger = "exact"
)

const (
	DefaultLeadTime = 15 * time.Minute
	DefaultTick     = time.Second

	DueNowText = "Due now!"

	AlertTitle = "Upcoming Event"
	AlertIcon  = "/notification-icon.png"
)

// Policy configures evaluation.
type Policy struct {
	LeadTime time.Duration
	Tick     time.Duration
	Trigger  Trigger
}

// DefaultPolicy is a 15 minute lead, 1 second tick, range trigger.
func DefaultPolicy() Policy {
	return Policy{LeadTime: DefaultLeadTime, Tick: DefaultTick, Trigger: TriggerRange}
}

func (p Policy) withDefaults() Policy {
	if p.LeadTime <= 0 {
		p.LeadTime = DefaultLeadTime
	}
	if p.Tick <= 0 {
		p.Tick = DefaultTick
	}
	if p.Trigger != TriggerExact {
		p.Trigger = TriggerRange
	}
	return p
}

// State is the per-note countdown view.
type State struct {
	NoteID           string        `json:"note_id"`
	Phase            Phase         `json:"phase"`
	DueDate          time.Time     `json:"due_date"`
	Remaining        time.Duration `json:"-"`
	RemainingMs      int64         `json:"remaining_ms"`
	DisplayDistance  string        `json:"display_distance"`
	PreciseCountdown string        `json:"precise_countdown,omitempty"`
	AlertFired       bool          `json:"alert_fired"`
}

// Target is what the engine needs to know about a note.
type Target struct {
	NoteID  string
	Summary string
	DueDate time.Time
}
