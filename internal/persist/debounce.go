package persist

import (
	"sync"
	"time"
)

// DefaultSaveDelay is the quiescence window before a layout is written.
const DefaultSaveDelay = 100 * time.Millisecond

// Debouncer coalesces bursts of writes: only the last function passed to
// Trigger runs, once no new trigger arrived for the delay.
type Debouncer struct {
	delay   time.Duration
	mu      sync.Mutex
	idle    *sync.Cond
	timer   *time.Timer
	pending func()
	running int
}

// NewDebouncer creates a debouncer. A non-positive delay uses DefaultSaveDelay.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultSaveDelay
	}
	d := &Debouncer{delay: delay}
	d.idle = sync.NewCond(&d.mu)
	return d
}

// Trigger schedules fn, replacing and resetting any pending call.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = fn
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	fn := d.take()
	d.timer = nil
	d.mu.Unlock()

	d.run(fn)
}

// take claims the pending call. Callers hold mu.
func (d *Debouncer) take() func() {
	fn := d.pending
	d.pending = nil
	if fn != nil {
		d.running++
	}
	return fn
}

func (d *Debouncer) run(fn func()) {
	if fn == nil {
		return
	}
	defer func() {
		d.mu.Lock()
		d.running--
		d.idle.Broadcast()
		d.mu.Unlock()
	}()
	fn()
}

// waitIdle blocks until no call is running. Callers hold mu.
func (d *Debouncer) waitIdle() {
	for d.running > 0 {
		d.idle.Wait()
	}
}

// Pending reports whether a call is waiting to run.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// Flush runs the pending call now, if any, and waits for running calls.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	fn := d.take()
	d.mu.Unlock()

	d.run(fn)

	d.mu.Lock()
	d.waitIdle()
	d.mu.Unlock()
}

// Stop drops the pending call and waits for any call already running.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
	d.waitIdle()
}
