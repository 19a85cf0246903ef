package countdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	due := time.Date(2024, 1, 2, 18, 0, 0, 0, time.UTC)
	policy := DefaultPolicy()

	tcs := map[string]struct {
		remaining  time.Duration
		alertFired bool
		wantPhase  Phase
		wantFire   bool
		wantExact  string
		wantDist   string
	}{
		"two hours out": {
			remaining: 2 * time.Hour,
			wantPhase: PhaseWaiting,
			wantDist:  "in about 2 hours",
		},
		"just over lead": {
			remaining: 15*time.Minute + time.Second,
			wantPhase: PhaseWaiting,
			wantDist:  "in 15 minutes",
		},
		"on lead boundary": {
			remaining: 15 * time.Minute,
			wantPhase: PhaseImminent,
			wantFire:  true,
			wantExact: "15m 0s",
			wantDist:  "in 15 minutes",
		},
		"inside lead window": {
			remaining: 10*time.Minute + 30*time.Second,
			wantPhase: PhaseImminent,
			wantFire:  true,
			wantExact: "10m 30s",
			wantDist:  "in 11 minutes",
		},
		"already alerted": {
			remaining:  5 * time.Minute,
			alertFired: true,
			wantPhase:  PhaseImminent,
			wantExact:  "5m 0s",
			wantDist:   "in 5 minutes",
		},
		"exactly due": {
			remaining: 0,
			wantPhase: PhaseDue,
			wantDist:  DueNowText,
		},
		"overdue": {
			remaining: -time.Hour,
			wantPhase: PhaseDue,
			wantDist:  DueNowText,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			st, fire := Evaluate(due, due.Add(-tc.remaining), tc.alertFired, policy)

			assert.Equal(t, tc.wantPhase, st.Phase)
			assert.Equal(t, tc.wantFire, fire)
			assert.Equal(t, tc.wantExact, st.PreciseCountdown)
			assert.Equal(t, tc.wantDist, st.DisplayDistance)
			assert.Equal(t, tc.remaining, st.Remaining)
			if fire {
				assert.True(t, st.AlertFired)
			}
		})
	}
}

func TestEvaluate_ExactTrigger(t *testing.T) {
	due := time.Date(2024, 1, 2, 18, 0, 0, 0, time.UTC)
	policy := Policy{Trigger: TriggerExact}

	_, fire := Evaluate(due, due.Add(-15*time.Minute), false, policy)
	assert.True(t, fire, "tick on the boundary fires")

	_, fire = Evaluate(due, due.Add(-(15*time.Minute - 400*time.Millisecond)), false, policy)
	assert.True(t, fire, "tick within one period of the boundary fires")

	_, fire = Evaluate(due, due.Add(-14*time.Minute), false, policy)
	assert.False(t, fire, "a later tick does not fire")

	_, fire = Evaluate(due, due.Add(-15*time.Minute), true, policy)
	assert.False(t, fire)
}

func TestPrecise(t *testing.T) {
	assert.Equal(t, "0m 59s", Precise(59*time.Second+999*time.Millisecond))
	assert.Equal(t, "14m 59s", Precise(14*time.Minute+59*time.Second))
	assert.Equal(t, "0m 0s", Precise(300*time.Millisecond))
}

func TestAlertBody(t *testing.T) {
	assert.Equal(t, "Team sync - Starting in exactly 15 minutes", AlertBody("Team sync", DefaultLeadTime))
}

func TestFormatDistance(t *testing.T) {
	tcs := []struct {
		d    time.Duration
		want string
	}{
		{20 * time.Second, "in less than a minute"},
		{70 * time.Second, "in 1 minute"},
		{30 * time.Minute, "in 30 minutes"},
		{50 * time.Minute, "in about 1 hour"},
		{5 * time.Hour, "in about 5 hours"},
		{30 * time.Hour, "in 1 day"},
		{3 * 24 * time.Hour, "in 3 days"},
		{40 * 24 * time.Hour, "in about 1 month"},
		{90 * 24 * time.Hour, "in 3 months"},
		{400 * 24 * time.Hour, "in about 1 year"},
		{500 * 24 * time.Hour, "in over 1 year"},
		{700 * 24 * time.Hour, "in almost 2 years"},
		{-3 * time.Hour, "about 3 hours ago"},
	}

	for _, tc := range tcs {
		assert.Equal(t, tc.want, FormatDistance(tc.d), tc.d.String())
	}
}

func TestDetached(t *testing.T) {
	due := time.Date(2024, 1, 2, 18, 0, 0, 0, time.UTC)

	st := Detached("n1", due, due.Add(-5*time.Minute))
	assert.Equal(t, "n1", st.NoteID)
	assert.Equal(t, PhaseDetached, st.Phase)
	assert.Empty(t, st.PreciseCountdown)
	assert.Equal(t, "in 5 minutes", st.DisplayDistance)

	st = Detached("n1", due, due.Add(time.Minute))
	assert.Equal(t, DueNowText, st.DisplayDistance)
}
