package preview

import (
	"sync"
	"time"
)

// Debouncer delays an action until edits stop recurring for a fixed quiet
// period. Only one timer is ever outstanding: arming cancels and replaces
// any pending one, so a burst of edits results in exactly one firing with
// whatever state is current at the end of the window.
type Debouncer struct {
	mu     sync.Mutex
	window time.Duration
	timer  *time.Timer
}

func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{window: window}
}

// Arm schedules fn to run after the quiet period, replacing any pending
// schedule. fn runs on the timer's goroutine.
func (d *Debouncer) Arm(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, fn)
}

// Stop cancels any pending schedule.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
