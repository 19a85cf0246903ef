package clock

import (
	"sort"
	"sync"
	"time"
)

// Fake is a manually advanced Clock. Ticks are delivered synchronously from
// Advance, one per elapsed period, so a receiver never misses one.
type Fake struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*fakeTicker
}

// NewFake returns a Fake clock frozen at now.
func NewFake(now time.Time) *Fake {
	return &Fake{now: now}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *Fake) NewTicker(d time.Duration) Ticker {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &fakeTicker{
		c:      make(chan time.Time),
		done:   make(chan struct{}),
		period: d,
		next:   f.now.Add(d),
	}
	f.tickers = append(f.tickers, t)
	return t
}

// Tickers reports how many tickers are live.
func (f *Fake) Tickers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prune()
	return len(f.tickers)
}

// Set moves the clock to t without delivering ticks.
func (f *Fake) Set(t time.Time) {
	f.mu.Lock()
	f.now = t
	for _, tk := range f.tickers {
		tk.next = t.Add(tk.period)
	}
	f.mu.Unlock()
}

// Advance moves the clock forward by d, firing every tick that falls inside
// the window in chronological order.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now.Add(d)
	for {
		f.prune()
		due := make([]*fakeTicker, 0, len(f.tickers))
		for _, tk := range f.tickers {
			if !tk.next.After(target) {
				due = append(due, tk)
			}
		}
		if len(due) == 0 {
			break
		}
		sort.Slice(due, func(i, j int) bool { return due[i].next.Before(due[j].next) })
		tk := due[0]
		f.now = tk.next
		tk.next = tk.next.Add(tk.period)
		now := f.now
		f.mu.Unlock()
		tk.deliver(now)
		f.mu.Lock()
	}
	f.now = target
	f.mu.Unlock()
}

func (f *Fake) prune() {
	live := f.tickers[:0]
	for _, tk := range f.tickers {
		if !tk.stopped() {
			live = append(live, tk)
		}
	}
	f.tickers = live
}

type fakeTicker struct {
	c      chan time.Time
	done   chan struct{}
	once   sync.Once
	period time.Duration
	next   time.Time
}

func (t *fakeTicker) C() <-chan time.Time { return t.c }

func (t *fakeTicker) Stop() {
	t.once.Do(func() { close(t.done) })
}

func (t *fakeTicker) stopped() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

func (t *fakeTicker) deliver(now time.Time) {
	select {
	case t.c <- now:
	case <-t.done:
	}
}
