package binding

import (
	"context"
	"errors"
)

// ErrAlreadyInstalled is returned by FinishInstall on every call after the first.
var ErrAlreadyInstalled = errors.New("bindings already installed")

// State is the lifecycle position of a Binder.
type State int

const (
	StateUninitialized State = iota
	StateInstalling
	StateInstalled
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInstalling:
		return "installing"
	case StateInstalled:
		return "installed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Binder owns the module registry and a pending binding list until the
// bindings are installed. It is not safe for concurrent use; it is meant to
// be driven by single-threaded startup code.
type Binder struct {
	registry *Registry
	groups   []Group
	state    State
	report   *Report
}

// Create builds the registry and holds groups for a later FinishInstall.
// Nothing is bound yet.
func Create(modules []Module, groups []Group) *Binder {
	return &Binder{
		registry: NewRegistry(modules...),
		groups:   groups,
		state:    StateUninitialized,
	}
}

// New creates a Binder and installs its bindings immediately.
func New(ctx context.Context, modules []Module, groups []Group) (*Binder, error) {
	b := Create(modules, groups)
	if _, err := b.FinishInstall(ctx); err != nil {
		return nil, err
	}
	return b, nil
}

// FinishInstall installs the pending bindings. It may run exactly once.
// The binding list is dropped afterwards whatever the outcome.
func (b *Binder) FinishInstall(ctx context.Context) (*Report, error) {
	if b.state != StateUninitialized {
		return b.report, ErrAlreadyInstalled
	}
	b.state = StateInstalling

	report, err := Install(ctx, b.registry, b.groups)
	b.groups = nil
	b.report = report
	if err != nil {
		b.state = StateFailed
		return report, err
	}
	b.state = StateInstalled
	return report, nil
}

// Registry returns the module registry. It stays queryable after installation.
func (b *Binder) Registry() *Registry { return b.registry }

// State returns the current lifecycle state.
func (b *Binder) State() State { return b.state }

// Report returns the result of FinishInstall, or nil before it ran.
func (b *Binder) Report() *Report { return b.report }
