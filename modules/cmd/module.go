// Package cmd provides the `cmd` module kind: the command-mode selector that
// decides whether the operator or the autonomous controller drives the robot.
package cmd

import (
	"context"
	"log/slog"

	"github.com/specialistvlad/eventbinder/internal/binding"
	"github.com/specialistvlad/eventbinder/internal/ctxlog"
	"github.com/specialistvlad/eventbinder/internal/event"
	"github.com/specialistvlad/eventbinder/internal/registry"
)

// Mode is a command mode event id.
type Mode uint32

const (
	OpCtrl Mode = iota
	AutoCtrl
)

func (m Mode) String() string {
	switch m {
	case OpCtrl:
		return "operator"
	case AutoCtrl:
		return "auto"
	default:
		return "unknown"
	}
}

// Events maps the names usable as `events.cmd.<name>` to their ids.
var Events = map[string]uint32{
	"op_ctrl":   uint32(OpCtrl),
	"auto_ctrl": uint32(AutoCtrl),
}

// Selector is the endpoint of a cmd module.
type Selector struct {
	*event.Event
	mode *event.Latch
}

// NewSelector creates a selector in operator mode.
func NewSelector(logger *slog.Logger) *Selector {
	if logger == nil {
		logger = slog.Default()
	}
	ev := event.New(logger)
	s := &Selector{Event: ev, mode: ev.Latch(uint32(OpCtrl), uint32(AutoCtrl))}
	ev.OnAny(func(id uint32) {
		if id <= uint32(AutoCtrl) {
			logger.Info("Command mode changed.", "mode", Mode(id).String())
		}
	})
	return s
}

// Mode returns the selected mode.
func (s *Selector) Mode() Mode {
	id, ok := s.mode.Last()
	if !ok {
		return OpCtrl
	}
	return Mode(id)
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the cmd kind.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterKind("cmd", &registry.RegisteredKind{
		Description: "Operator/autonomous command mode selector.",
		Events:      Events,
		New: func(ctx context.Context, name string, input any) (binding.Endpoint, error) {
			return NewSelector(ctxlog.FromContext(ctx)), nil
		},
	})
}
