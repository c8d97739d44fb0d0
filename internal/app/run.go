package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/specialistvlad/eventbinder/internal/ctxlog"
)

var (
	// ErrUnknownModule is returned when a trigger names a module that is not instantiated.
	ErrUnknownModule = errors.New("unknown module")
	// ErrUnknownEvent is returned when a trigger's event is neither an id nor a known name.
	ErrUnknownEvent = errors.New("unknown event")
	// ErrNotFireable is returned when a module's endpoint cannot be activated directly.
	ErrNotFireable = errors.New("module endpoint cannot be fired")
)

// activator is implemented by endpoints that can fire an event id.
type activator interface {
	Active(id uint32)
}

// Run fires the configured triggers and, when a health check port is set,
// serves until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.HealthcheckPort > 0 {
		if err := a.startHealthcheckServer(ctx); err != nil {
			return err
		}
		defer a.closeHealthcheckServer(ctx)
	}

	for _, trigger := range a.config.Triggers {
		if err := a.Fire(ctx, trigger); err != nil {
			return fmt.Errorf("failed to fire %s: %w", trigger, err)
		}
	}

	if a.httpServer != nil {
		a.logger.Info("Serving until interrupted.")
		<-ctx.Done()
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// Fire activates the trigger's event on the trigger's module.
func (a *App) Fire(ctx context.Context, trigger Trigger) error {
	logger := ctxlog.FromContext(ctx)

	endpoint, ok := a.binder.Registry().Resolve(trigger.Module)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownModule, trigger.Module)
	}
	act, ok := endpoint.(activator)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFireable, trigger.Module)
	}

	id, err := a.eventID(trigger)
	if err != nil {
		return err
	}

	logger.Info("Firing event.", "module", trigger.Module, "event", trigger.Event, "id", id)
	act.Active(id)
	return nil
}

// eventID resolves a trigger's event as a decimal id or as a name in the
// event table of the module's kind.
func (a *App) eventID(trigger Trigger) (uint32, error) {
	if n, err := strconv.ParseUint(trigger.Event, 10, 32); err == nil {
		return uint32(n), nil
	}
	for _, inst := range a.instances {
		if inst.Decl.Name != trigger.Module {
			continue
		}
		if id, ok := a.registry.EventID(inst.Decl.Kind, trigger.Event); ok {
			return id, nil
		}
		break
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownEvent, trigger)
}
