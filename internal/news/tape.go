package news

import "sync"

// Tape maintains a bounded ring buffer of the most recent news events.
// The full log is kept elsewhere; the tape is what the display layer reads.
type Tape struct {
	mu    sync.RWMutex
	buf   []Event
	size  int
	start int
	count int
}

// NewTape creates a Tape with the given capacity.
func NewTape(capacity int) *Tape {
	if capacity <= 0 {
		capacity = 37
	}
	return &Tape{
		buf:  make([]Event, capacity),
		size: capacity,
	}
}

// Append adds an event, overwriting the oldest once the tape is full.
func (t *Tape) Append(ev Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.count < t.size {
		t.buf[(t.start+t.count)%t.size] = ev
		t.count++
		return
	}
	// overwrite oldest
	t.buf[t.start] = ev
	t.start = (t.start + 1) % t.size
}

// Latest returns the last n events in chronological order (oldest first).
// Returns a copy, not internal references.
func (t *Tape) Latest(n int) []Event {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n <= 0 || t.count == 0 {
		return nil
	}
	if n > t.count {
		n = t.count
	}

	out := make([]Event, n)
	first := (t.start + (t.count - n)) % t.size
	for i := 0; i < n; i++ {
		out[i] = t.buf[(first+i)%t.size]
	}
	return out
}

// All returns every event currently on the tape, oldest first.
func (t *Tape) All() []Event {
	return t.Latest(t.size)
}

// Count returns the number of events on the tape.
func (t *Tape) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.count
}
