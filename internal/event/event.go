// Package event provides the in-process event object each robot module
// exposes. An Event maps numeric ids to callbacks and can forward ids from
// another Event, which makes it a binding.Endpoint.
package event

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	"github.com/specialistvlad/eventbinder/internal/binding"
)

var (
	// ErrForeignSource is returned by Bind when the source endpoint is not backed by an *Event.
	ErrForeignSource = errors.New("source endpoint is not an event")
	// ErrSelfLoop is returned by Bind when an id would be forwarded onto itself.
	ErrSelfLoop = errors.New("event bound to itself")
	// ErrCycle is returned by Bind when the new forward would let an id
	// reach itself again through other bound events.
	ErrCycle = errors.New("binding would create a forwarding cycle")
)

// Callback is invoked with the id that was activated.
type Callback func(id uint32)

// Source is implemented by *Event and by any type embedding one.
type Source interface {
	Base() *Event
}

// Event dispatches activated ids to their callbacks synchronously.
// It is safe for concurrent use.
type Event struct {
	mu        sync.RWMutex
	callbacks map[uint32][]Callback
	any       []Callback
	forwards  map[uint32][]node
	logger    *slog.Logger
}

// node is one id on one event, a vertex of the forwarding graph.
type node struct {
	ev *Event
	id uint32
}

// New creates an empty event. A nil logger means slog.Default().
func New(logger *slog.Logger) *Event {
	if logger == nil {
		logger = slog.Default()
	}
	return &Event{
		callbacks: make(map[uint32][]Callback),
		forwards:  make(map[uint32][]node),
		logger:    logger,
	}
}

// Base returns e, so that types embedding *Event satisfy Source.
func (e *Event) Base() *Event { return e }

// Register adds cb for id. Callbacks for one id run in registration order.
func (e *Event) Register(id uint32, cb Callback) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.callbacks[id] = append(e.callbacks[id], cb)
}

// OnAny adds cb for every id. It runs after the id-specific callbacks.
func (e *Event) OnAny(cb Callback) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.any = append(e.any, cb)
}

// Active fires id. A panicking callback is logged and recovered so the
// remaining callbacks still run.
func (e *Event) Active(id uint32) {
	e.mu.RLock()
	specific := make([]Callback, len(e.callbacks[id]))
	copy(specific, e.callbacks[id])
	wildcard := make([]Callback, len(e.any))
	copy(wildcard, e.any)
	e.mu.RUnlock()

	for _, cb := range specific {
		e.safeCall(cb, id)
	}
	for _, cb := range wildcard {
		e.safeCall(cb, id)
	}
}

func (e *Event) safeCall(cb Callback, id uint32) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("Event callback panicked.", "id", id, "panic", fmt.Sprint(r), "stack", string(debug.Stack()))
		}
	}()
	cb(id)
}

// Bind makes every activation of sourceEvent on source activate targetEvent on e.
// Forwards that would close a loop are rejected.
func (e *Event) Bind(source binding.Endpoint, sourceEvent, targetEvent uint32) error {
	src, ok := source.(Source)
	if !ok || src.Base() == nil {
		return fmt.Errorf("%w: %T", ErrForeignSource, source)
	}
	from := src.Base()
	if from == e && sourceEvent == targetEvent {
		return fmt.Errorf("%w: id %d", ErrSelfLoop, sourceEvent)
	}
	if reaches(node{ev: e, id: targetEvent}, node{ev: from, id: sourceEvent}) {
		return fmt.Errorf("%w: id %d -> id %d", ErrCycle, sourceEvent, targetEvent)
	}

	from.mu.Lock()
	defer from.mu.Unlock()
	from.callbacks[sourceEvent] = append(from.callbacks[sourceEvent], func(uint32) {
		e.Active(targetEvent)
	})
	from.forwards[sourceEvent] = append(from.forwards[sourceEvent], node{ev: e, id: targetEvent})
	return nil
}

// reaches reports whether goal is reachable from start over installed forwards.
func reaches(start, goal node) bool {
	seen := make(map[node]bool)
	stack := []node{start}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == goal {
			return true
		}
		if seen[n] {
			continue
		}
		seen[n] = true

		n.ev.mu.RLock()
		stack = append(stack, n.ev.forwards[n.id]...)
		n.ev.mu.RUnlock()
	}
	return false
}

// CallbackCount returns the number of registered callbacks, wildcard ones included.
func (e *Event) CallbackCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	count := len(e.any)
	for _, cbs := range e.callbacks {
		count += len(cbs)
	}
	return count
}
