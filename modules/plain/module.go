// Package plain provides the `event` module kind: a bare event endpoint with
// no named events, for modules this binary has no dedicated kind for.
package plain

import (
	"context"

	"github.com/specialistvlad/eventbinder/internal/binding"
	"github.com/specialistvlad/eventbinder/internal/ctxlog"
	"github.com/specialistvlad/eventbinder/internal/event"
	"github.com/specialistvlad/eventbinder/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the event kind.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterKind("event", &registry.RegisteredKind{
		Description: "Generic event endpoint with numeric ids only.",
		Events:      map[string]uint32{},
		New: func(ctx context.Context, name string, input any) (binding.Endpoint, error) {
			logger := ctxlog.FromContext(ctx)
			ev := event.New(logger)
			ev.OnAny(func(id uint32) {
				logger.Debug("Event activated.", "id", id)
			})
			return ev, nil
		},
	})
}
