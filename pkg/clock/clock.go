// Package clock abstracts wall-clock reads, tickers and local-zone detection
// so time-dependent code can be driven deterministically in tests.
package clock

import (
	"time"
)

// Clock supplies the current instant and periodic tickers.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// Ticker mirrors the parts of time.Ticker the service uses.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// ZoneProvider reports the caller's local timezone. ok is false when no zone
// can be determined.
type ZoneProvider interface {
	Location() (loc *time.Location, ok bool)
}

type realClock struct{}

// New returns the system clock.
func New() Clock { return realClock{} }

func (realClock) Now() time.Time { return time.Now() }

func (realClock) NewTicker(d time.Duration) Ticker {
	return &realTicker{t: time.NewTicker(d)}
}

type realTicker struct {
	t *time.Ticker
}

func (r *realTicker) C() <-chan time.Time { return r.t.C }
func (r *realTicker) Stop()               { r.t.Stop() }

// ZoneNone disables zone detection.
const ZoneNone = "none"

type fixedZone struct {
	loc *time.Location
}

func (z fixedZone) Location() (*time.Location, bool) {
	return z.loc, z.loc != nil
}

// NewZoneProvider resolves name once. An empty name means the process local
// zone; ZoneNone, or a name that does not load, means undeterminable.
func NewZoneProvider(name string) (ZoneProvider, error) {
	switch name {
	case "":
		return fixedZone{loc: time.Local}, nil
	case ZoneNone:
		return fixedZone{}, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fixedZone{}, err
	}
	return fixedZone{loc: loc}, nil
}

// FixedZone returns a provider that always reports loc. A nil loc reports
// no zone.
func FixedZone(loc *time.Location) ZoneProvider {
	return fixedZone{loc: loc}
}
