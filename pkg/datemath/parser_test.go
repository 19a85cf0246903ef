package datemath_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"smart-notes/pkg/clock"
	"smart-notes/pkg/datemath"
)

func TestResolve_NoZone(t *testing.T) {
	r := datemath.NewResolver(clock.FixedZone(nil))
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, datemath.ReferenceZone)

	tests := []struct {
		name   string
		expr   string
		want   time.Time
		wantOK bool
	}{
		{name: "Empty", expr: ""},
		{name: "None literal", expr: "none"},
		{name: "Tomorrow at 6 PM", expr: "tomorrow at 6 PM", want: time.Date(2024, 1, 2, 18, 0, 0, 0, datemath.ReferenceZone), wantOK: true},
		{name: "Tomorrow with minutes", expr: "Tomorrow 9:30 am", want: time.Date(2024, 1, 2, 9, 30, 0, 0, datemath.ReferenceZone), wantOK: true},
		{name: "Tomorrow dotted 24h", expr: "tomorrow 18.45", want: time.Date(2024, 1, 2, 18, 45, 0, 0, datemath.ReferenceZone), wantOK: true},
		{name: "Tomorrow 12 AM is midnight", expr: "tomorrow 12 AM", want: time.Date(2024, 1, 2, 0, 0, 0, 0, datemath.ReferenceZone), wantOK: true},
		{name: "Tomorrow 12 PM stays noon", expr: "tomorrow 12 PM", want: time.Date(2024, 1, 2, 12, 0, 0, 0, datemath.ReferenceZone), wantOK: true},
		{name: "Tomorrow without time", expr: "tomorrow"},
		{name: "Tomorrow with impossible hour", expr: "tomorrow at 37:00"},
		{name: "Malformed", expr: "banana"},
		{name: "Zone-less ISO read in reference zone", expr: "2024-03-05T14:00:00", want: time.Date(2024, 3, 5, 14, 0, 0, 0, datemath.ReferenceZone), wantOK: true},
		{name: "Explicit offset kept", expr: "2024-03-05T14:00:00Z", want: time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC), wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Resolve(tt.expr, now)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
			} else {
				assert.True(t, got.IsZero())
			}
		})
	}
}

func TestResolve_ReferenceOffset(t *testing.T) {
	r := datemath.NewResolver(clock.FixedZone(nil))
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	got, ok := r.Resolve("tomorrow at 6 PM", now)
	assert.True(t, ok)
	// 18:00 at UTC+5:30 is 12:30 UTC.
	assert.True(t, got.Equal(time.Date(2024, 1, 2, 12, 30, 0, 0, time.UTC)))
	_, offset := got.Zone()
	assert.Equal(t, 5*3600+1800, offset)
}

func TestResolve_NoZoneKeepsExplicitOffset(t *testing.T) {
	r := datemath.NewResolver(clock.FixedZone(nil))
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	got, ok := r.Resolve("2024-01-02T18:00:00Z", now)
	assert.True(t, ok)
	assert.True(t, got.Equal(time.Date(2024, 1, 2, 18, 0, 0, 0, time.UTC)))

	got, ok = r.Resolve("2024-01-02 18:00", now)
	assert.True(t, ok)
	assert.True(t, got.Equal(time.Date(2024, 1, 2, 12, 30, 0, 0, time.UTC)))
}

func TestResolve_LocalZone(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	r := datemath.NewResolver(clock.FixedZone(ny))
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, ny)

	got, ok := r.Resolve("tomorrow at 6 PM", now)
	assert.True(t, ok)
	assert.True(t, got.Equal(time.Date(2024, 1, 2, 18, 0, 0, 0, ny)))

	got, ok = r.Resolve("2024-03-05 09:15", now)
	assert.True(t, ok)
	assert.True(t, got.Equal(time.Date(2024, 3, 5, 9, 15, 0, 0, ny)))
}

func TestResolve_NoneForAnyNow(t *testing.T) {
	r := datemath.NewResolver(clock.FixedZone(time.UTC))
	for _, now := range []time.Time{
		time.Time{},
		time.Date(1999, 12, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC),
	} {
		_, ok := r.Resolve("none", now)
		assert.False(t, ok)
	}
}

func TestResolve_MonthRollover(t *testing.T) {
	r := datemath.NewResolver(clock.FixedZone(time.UTC))
	now := time.Date(2024, 1, 31, 22, 0, 0, 0, time.UTC)

	got, ok := r.Resolve("tomorrow at 7 am", now)
	assert.True(t, ok)
	assert.True(t, got.Equal(time.Date(2024, 2, 1, 7, 0, 0, 0, time.UTC)))
}
