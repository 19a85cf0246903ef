package countdown

import (
	"fmt"
	"time"
)

// Evaluate computes the countdown state for due at now. fire reports whether
// this evaluation should raise the lead-time alert; it is never true when
// alertFired already is.
func Evaluate(due, now time.Time, alertFired bool, p Policy) (st State, fire bool) {
	p = p.withDefaults()
	remaining := due.Sub(now)

	st = State{
		DueDate:     due,
		Remaining:   remaining,
		RemainingMs: remaining.Milliseconds(),
		AlertFired:  alertFired,
	}

	if remaining <= 0 {
		st.Phase = PhaseDue
		st.DisplayDistance = DueNowText
		return st, false
	}

	st.DisplayDistance = FormatDistance(remaining)
	if remaining > p.LeadTime {
		st.Phase = PhaseWaiting
		return st, false
	}

	st.Phase = PhaseImminent
	st.PreciseCountdown = Precise(remaining)

	if alertFired {
		return st, false
	}
	switch p.Trigger {
	case TriggerExact:
		fire = remaining > p.LeadTime-p.Tick
	default:
		fire = true
	}
	if fire {
		st.AlertFired = true
	}
	return st, fire
}

// Precise renders d as "<minutes>m <seconds>s", truncating both.
func Precise(d time.Duration) string {
	ms := d.Milliseconds()
	return fmt.Sprintf("%dm %ds", ms/60000, (ms/1000)%60)
}

// AlertBody is the notification text for a note summary.
func AlertBody(summary string, lead time.Duration) string {
	return fmt.Sprintf("%s - Starting in exactly %d minutes", summary, int(lead.Minutes()))
}

// Detached is the view of a countdown that is not running, such as one for a
// completed note.
func Detached(noteID string, due, now time.Time) State {
	st, _ := Evaluate(due, now, true, DefaultPolicy())
	st.NoteID = noteID
	st.Phase = PhaseDetached
	st.PreciseCountdown = ""
	st.AlertFired = false
	return st
}
