package discovery

import (
	"sync"
	"time"
)

// DefaultQuietPeriod is how long an input must stay unchanged before
// the pending action fires.
const DefaultQuietPeriod = 500 * time.Millisecond

// Debouncer delays an action until its trigger has been quiet for a
// fixed period. Each Trigger supersedes any pending one, so a burst of
// keystrokes produces a single firing. Safe for concurrent use.
type Debouncer struct {
	mu     sync.Mutex
	period time.Duration
	timer  *time.Timer
}

// NewDebouncer returns a debouncer with the given quiet period;
// period <= 0 uses DefaultQuietPeriod.
func NewDebouncer(period time.Duration) *Debouncer {
	if period <= 0 {
		period = DefaultQuietPeriod
	}
	return &Debouncer{period: period}
}

// Trigger schedules fn to run once the quiet period elapses without
// another Trigger. fn runs on a timer goroutine.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.period, fn)
}

// Stop cancels any pending firing.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
