package search

import (
	"fmt"
	"sync"
	"time"
)

// DefaultWindow is the quiet period a query must survive before it is
// committed.
const DefaultWindow = 300 * time.Millisecond

// Debouncer coalesces rapid query edits into a single committed value.
// Each Schedule replaces the pending commit, so at most one delayed
// commit exists at a time, and Stop guarantees no commit fires after
// teardown.
type Debouncer struct {
	mu         sync.Mutex
	window     time.Duration
	commit     func(string)
	timer      *time.Timer
	generation uint64
	stopped    bool
}

// NewDebouncer builds a debouncer that invokes commit with the query
// value once the window elapses without another Schedule call.
func NewDebouncer(window time.Duration, commit func(string)) (*Debouncer, error) {
	if window <= 0 {
		window = DefaultWindow
	}
	if commit == nil {
		return nil, fmt.Errorf("commit callback required")
	}
	return &Debouncer{window: window, commit: commit}, nil
}

// Schedule arms a delayed commit for value, cancelling any pending one.
func (d *Debouncer) Schedule(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.generation++
	gen := d.generation
	d.timer = time.AfterFunc(d.window, func() {
		d.fire(gen, value)
	})
}

// Pending reports whether a commit is currently scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop cancels any pending commit. After Stop the debouncer is inert;
// a commit that already raced past the timer check still cannot fire.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// fire runs on the timer goroutine. The generation check drops commits
// that were superseded or cancelled between firing and locking.
func (d *Debouncer) fire(gen uint64, value string) {
	d.mu.Lock()
	if d.stopped || gen != d.generation {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.commit(value)
}
