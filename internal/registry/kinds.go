package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/specialistvlad/eventbinder/internal/binding"
)

// RegisteredKind holds the compiled Go parts of a module kind.
type RegisteredKind struct {
	Description string
	// Events maps symbolic names, as used in `events.<kind>.<name>`, to ids.
	Events map[string]uint32
	// NewInput returns a pointer to the kind's arguments struct, or nil when
	// the kind takes no arguments.
	NewInput func() any
	// New builds the endpoint of one module instance.
	New func(ctx context.Context, name string, input any) (binding.Endpoint, error)
}

// RegisterKind registers a module kind under name.
func (r *Registry) RegisterKind(name string, kind *RegisteredKind) {
	if _, exists := r.KindRegistry[name]; exists {
		panic(fmt.Sprintf("module kind '%s' already registered", name))
	}
	if kind == nil || kind.New == nil {
		panic(fmt.Sprintf("module kind '%s' has no constructor", name))
	}
	slog.Debug("Registering module kind.", "kind", name, "events", len(kind.Events))
	r.KindRegistry[name] = kind
}

// EventID resolves an event of the given kind by symbolic name.
func (r *Registry) EventID(kind, event string) (uint32, bool) {
	k, ok := r.KindRegistry[kind]
	if !ok {
		return 0, false
	}
	id, ok := k.Events[event]
	return id, ok
}
