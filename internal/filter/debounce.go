package filter

import (
	"sync"
	"time"
)

// DefaultQuiescence is how long input must stay unchanged before a
// debounced evaluation runs.
const DefaultQuiescence = 250 * time.Millisecond

// Debouncer delays fn until triggers stop arriving for a full window, then
// calls it once with the most recent value. Calls to fn never overlap.
type Debouncer[T any] struct {
	window time.Duration
	fn     func(T)

	mu      sync.Mutex
	timer   *time.Timer
	seq     uint64
	pending bool
	last    T
	stopped bool

	run sync.Mutex
}

// NewDebouncer creates a Debouncer. A non-positive window uses DefaultQuiescence.
func NewDebouncer[T any](window time.Duration, fn func(T)) *Debouncer[T] {
	if window <= 0 {
		window = DefaultQuiescence
	}
	return &Debouncer[T]{window: window, fn: fn}
}

// Trigger cancels any scheduled call and schedules fn(v) after the window.
func (d *Debouncer[T]) Trigger(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.pending = true
	d.last = v
	d.timer = time.AfterFunc(d.window, func() { d.fire(seq) })
}

// Cancel drops a scheduled call, if any.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
}

func (d *Debouncer[T]) cancelLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
	d.pending = false
}

// Pending reports whether a call is scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Flush runs a scheduled call immediately instead of waiting for the window.
// It reports whether there was one to run.
func (d *Debouncer[T]) Flush() bool {
	d.mu.Lock()
	if !d.pending || d.stopped {
		d.mu.Unlock()
		return false
	}
	v := d.last
	d.cancelLocked()
	d.mu.Unlock()

	d.call(v)
	return true
}

// Stop cancels any scheduled call; later triggers are ignored.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
	d.stopped = true
}

func (d *Debouncer[T]) fire(seq uint64) {
	d.mu.Lock()
	if d.stopped || seq != d.seq {
		d.mu.Unlock()
		return
	}
	v := d.last
	d.timer = nil
	d.pending = false
	d.mu.Unlock()

	d.call(v)
}

func (d *Debouncer[T]) call(v T) {
	d.run.Lock()
	defer d.run.Unlock()
	d.fn(v)
}
