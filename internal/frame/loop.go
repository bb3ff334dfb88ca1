// Package frame schedules per-frame callbacks on the host tick, in the
// manner of a browser's requestAnimationFrame.
package frame

// ID identifies a requested frame callback.
type ID uint64

// Scheduler requests and cancels callbacks for the next frame.
type Scheduler interface {
	Request(fn func()) ID
	Cancel(id ID)
}

type request struct {
	id ID
	fn func()
}

// Loop is a single-threaded Scheduler. The host calls Tick once per
// display frame.
type Loop struct {
	next    ID
	pending []request
	running []request
	frames  uint64
}

// NewLoop returns an empty loop.
func NewLoop() *Loop {
	return &Loop{}
}

// Request queues fn for the next Tick and returns its handle.
func (l *Loop) Request(fn func()) ID {
	l.next++
	l.pending = append(l.pending, request{id: l.next, fn: fn})
	return l.next
}

// Cancel drops a queued callback. Unknown or already run IDs are ignored.
func (l *Loop) Cancel(id ID) {
	for i, r := range l.pending {
		if r.id == id {
			l.pending = append(l.pending[:i], l.pending[i+1:]...)
			return
		}
	}
	// Cancelled from inside a callback of the current tick.
	for i := range l.running {
		if l.running[i].id == id {
			l.running[i].fn = nil
			return
		}
	}
}

// Tick runs every callback queued before the call, in request order, and
// returns how many ran. Callbacks requested while ticking wait for the next
// Tick.
func (l *Loop) Tick() int {
	l.frames++
	l.running = l.pending
	l.pending = nil

	ran := 0
	for i := 0; i < len(l.running); i++ {
		fn := l.running[i].fn
		if fn == nil {
			continue
		}
		l.running[i].fn = nil
		fn()
		ran++
	}
	l.running = nil
	return ran
}

// Pending returns the number of callbacks waiting for the next Tick.
func (l *Loop) Pending() int {
	return len(l.pending)
}

// Frames returns how many ticks have run.
func (l *Loop) Frames() uint64 {
	return l.frames
}
