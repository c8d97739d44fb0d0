package testutil

import (
	"context"
	"sync"

	"github.com/specialistvlad/eventbinder/internal/binding"
	"github.com/specialistvlad/eventbinder/internal/ctxlog"
	"github.com/specialistvlad/eventbinder/internal/event"
	"github.com/specialistvlad/eventbinder/internal/registry"
)

// Activation is one event observed by a recording endpoint.
type Activation struct {
	Module string
	ID     uint32
}

// Recorder collects activations from every recording endpoint sharing it.
type Recorder struct {
	mu   sync.Mutex
	seen []Activation
}

func (r *Recorder) record(module string, id uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, Activation{Module: module, ID: id})
}

// Activations returns a copy of everything recorded so far, in order.
func (r *Recorder) Activations() []Activation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Activation(nil), r.seen...)
}

// RecordingModule is a test helper that registers a module kind whose endpoints
// record every event they receive.
type RecordingModule struct {
	Kind     string
	Events   map[string]uint32
	Recorder *Recorder
}

// Register implements the registry.Module interface.
func (m *RecordingModule) Register(r *registry.Registry) {
	events := m.Events
	if events == nil {
		events = map[string]uint32{}
	}
	r.RegisterKind(m.Kind, &registry.RegisteredKind{
		Description: "Test recorder.",
		Events:      events,
		New: func(ctx context.Context, name string, _ any) (binding.Endpoint, error) {
			ev := event.New(ctxlog.FromContext(ctx))
			ev.OnAny(func(id uint32) { m.Recorder.record(name, id) })
			return ev, nil
		},
	})
}
