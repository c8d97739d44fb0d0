package event

import "sync/atomic"

// Latch remembers the most recently activated id out of a fixed set.
type Latch struct {
	last atomic.Uint32
	set  atomic.Bool
}

// Latch registers callbacks for ids on e and returns the latch they update.
func (e *Event) Latch(ids ...uint32) *Latch {
	l := &Latch{}
	for _, id := range ids {
		e.Register(id, l.store)
	}
	return l
}

func (l *Latch) store(id uint32) {
	l.last.Store(id)
	l.set.Store(true)
}

// Last returns the latest id, or false if none of the ids has fired yet.
func (l *Latch) Last() (uint32, bool) {
	if !l.set.Load() {
		return 0, false
	}
	return l.last.Load(), true
}
