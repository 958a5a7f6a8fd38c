package session

import (
	"sync"
	"time"
)

// Scheduler defers work by a delay and hands back a cancel function.
// Injecting it keeps session timing testable without real clocks.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) (cancel func())
}

// TimerScheduler runs scheduled work on real time.Timer instances.
type TimerScheduler struct{}

func (TimerScheduler) Schedule(delay time.Duration, fn func()) (cancel func()) {
	t := time.AfterFunc(delay, fn)
	return func() { t.Stop() }
}

// Debouncer coalesces bursts of triggers into a single delayed run.
// Each Trigger cancels the previous pending run and schedules a fresh
// one, so the work executes once the calls go quiet for the delay.
type Debouncer struct {
	sched Scheduler
	delay time.Duration

	mu      sync.Mutex
	pending func()
}

func NewDebouncer(sched Scheduler, delay time.Duration) *Debouncer {
	if sched == nil {
		sched = TimerScheduler{}
	}
	return &Debouncer{sched: sched, delay: delay}
}

// Trigger schedules fn to run after the configured delay, replacing any
// previously pending run.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending != nil {
		d.pending()
	}
	d.pending = d.sched.Schedule(d.delay, func() {
		d.mu.Lock()
		d.pending = nil
		d.mu.Unlock()
		fn()
	})
}

// Stop cancels any pending run without executing it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending != nil {
		d.pending()
		d.pending = nil
	}
}
