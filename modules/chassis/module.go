// Package chassis provides the `chassis` module kind. Its events switch the
// chassis control mode; the endpoint remembers the mode last requested.
package chassis

import (
	"context"
	"log/slog"

	"github.com/specialistvlad/eventbinder/internal/binding"
	"github.com/specialistvlad/eventbinder/internal/ctxlog"
	"github.com/specialistvlad/eventbinder/internal/event"
	"github.com/specialistvlad/eventbinder/internal/registry"
)

// Mode is a chassis mode event id.
type Mode uint32

const (
	SetModeRelax Mode = iota
	SetModeFollow
	SetModeRotor
	SetModeIndependent
)

func (m Mode) String() string {
	switch m {
	case SetModeRelax:
		return "relax"
	case SetModeFollow:
		return "follow"
	case SetModeRotor:
		return "rotor"
	case SetModeIndependent:
		return "independent"
	default:
		return "unknown"
	}
}

// Events maps the names usable as `events.chassis.<name>` to their ids.
var Events = map[string]uint32{
	"set_mode_relax":       uint32(SetModeRelax),
	"set_mode_follow":      uint32(SetModeFollow),
	"set_mode_rotor":       uint32(SetModeRotor),
	"set_mode_independent": uint32(SetModeIndependent),
}

// Chassis is the endpoint of a chassis module.
type Chassis struct {
	*event.Event
	mode *event.Latch
}

// New creates a chassis endpoint. The chassis starts relaxed.
func New(logger *slog.Logger) *Chassis {
	if logger == nil {
		logger = slog.Default()
	}
	ev := event.New(logger)
	c := &Chassis{
		Event: ev,
		mode:  ev.Latch(uint32(SetModeRelax), uint32(SetModeFollow), uint32(SetModeRotor), uint32(SetModeIndependent)),
	}
	ev.OnAny(func(id uint32) {
		if id <= uint32(SetModeIndependent) {
			logger.Info("Chassis mode changed.", "mode", Mode(id).String())
		}
	})
	return c
}

// Mode returns the current mode.
func (c *Chassis) Mode() Mode {
	id, ok := c.mode.Last()
	if !ok {
		return SetModeRelax
	}
	return Mode(id)
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the chassis kind.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterKind("chassis", &registry.RegisteredKind{
		Description: "Chassis controller mode switching.",
		Events:      Events,
		New: func(ctx context.Context, name string, input any) (binding.Endpoint, error) {
			return New(ctxlog.FromContext(ctx)), nil
		},
	})
}
