// Package dr16 provides the `dr16` module kind: the DR16 remote-control
// receiver, whose events are the positions of its two three-way switches.
package dr16

import (
	"context"

	"github.com/specialistvlad/eventbinder/internal/binding"
	"github.com/specialistvlad/eventbinder/internal/ctxlog"
	"github.com/specialistvlad/eventbinder/internal/event"
	"github.com/specialistvlad/eventbinder/internal/registry"
)

// SwitchPos is a switch position event id.
type SwitchPos uint32

const (
	SwLPosTop SwitchPos = iota
	SwLPosBot
	SwLPosMid
	SwRPosTop
	SwRPosBot
	SwRPosMid
)

// Events maps the names usable as `events.dr16.<name>` to their ids.
var Events = map[string]uint32{
	"sw_l_pos_top": uint32(SwLPosTop),
	"sw_l_pos_bot": uint32(SwLPosBot),
	"sw_l_pos_mid": uint32(SwLPosMid),
	"sw_r_pos_top": uint32(SwRPosTop),
	"sw_r_pos_bot": uint32(SwRPosBot),
	"sw_r_pos_mid": uint32(SwRPosMid),
}

// Receiver is the endpoint of a dr16 module.
type Receiver struct {
	*event.Event
}

// NewReceiver creates a receiver endpoint.
func NewReceiver(ctx context.Context) *Receiver {
	return &Receiver{Event: event.New(ctxlog.FromContext(ctx))}
}

// Switch reports a switch position, firing its event.
func (r *Receiver) Switch(pos SwitchPos) {
	r.Active(uint32(pos))
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the dr16 kind.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterKind("dr16", &registry.RegisteredKind{
		Description: "DR16 remote-control receiver switch positions.",
		Events:      Events,
		New: func(ctx context.Context, name string, input any) (binding.Endpoint, error) {
			return NewReceiver(ctx), nil
		},
	})
}
