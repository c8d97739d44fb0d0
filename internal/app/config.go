package app

import (
	"errors"
	"fmt"
	"strings"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ConfigPath is an .hcl file or a directory of them. Empty selects the
	// embedded default wiring.
	ConfigPath string

	LogFormat       string
	LogLevel        string
	HealthcheckPort int

	// Strict turns skipped binding rules into a startup error.
	Strict bool

	// Triggers are fired, in order, by Run.
	Triggers []Trigger
}

// Trigger names an event to fire on a module. Event is either a decimal id
// or a name from the module kind's event table.
type Trigger struct {
	Module string
	Event  string
}

func (t Trigger) String() string {
	return t.Module + ":" + t.Event
}

// ParseTrigger parses the "module:event" form.
func ParseTrigger(s string) (Trigger, error) {
	module, ev, ok := strings.Cut(s, ":")
	if !ok || module == "" || ev == "" {
		return Trigger{}, fmt.Errorf("invalid trigger %q: expected module:event", s)
	}
	return Trigger{Module: module, Event: ev}, nil
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, errors.New("HealthcheckPort must be between 0 and 65535")
	}
	for _, t := range cfg.Triggers {
		if t.Module == "" || t.Event == "" {
			return nil, fmt.Errorf("invalid trigger %q: module and event are required", t.String())
		}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	return &cfg, nil
}
