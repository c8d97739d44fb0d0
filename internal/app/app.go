package app

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/specialistvlad/eventbinder/internal/binding"
	"github.com/specialistvlad/eventbinder/internal/config"
	"github.com/specialistvlad/eventbinder/internal/ctxlog"
	"github.com/specialistvlad/eventbinder/internal/registry"
)

//go:embed default.hcl
var defaultConfig []byte

// ErrSkippedRules is returned by NewApp in strict mode when at least one
// binding rule named a module that is not instantiated.
var ErrSkippedRules = errors.New("binding rules were skipped")

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	registry   *registry.Registry
	model      *config.Model
	instances  []registry.Instance
	binder     *binding.Binder
	httpServer *http.Server
}

// NewApp builds a fully wired application: module kinds registered,
// configuration loaded and validated, endpoints created and bindings
// installed. If no modules are given, the compiled-in kinds are used.
func NewApp(ctx context.Context, outW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(modules))

	model, conv, err := loadModel(ctx, cfg, loader, reg.Catalog())
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	reg.PopulateDefinitionsFromModel(model)
	if err := reg.ValidateRegistry(ctx); err != nil {
		return nil, err
	}
	logger.Debug("Registry validation passed.")

	a := &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		model:    model,
	}

	a.instances, err = reg.Instantiate(ctx, conv)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.binder, err = binding.New(ctx, registry.BindingModules(a.instances), reg.BindingGroups())
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to install bindings: %w", err)
	}

	report := a.binder.Report()
	logger.Info("Bindings installed.", "modules", a.binder.Registry().Len(), "installed", report.Installed, "skipped", len(report.Skipped))
	for _, s := range report.Skipped {
		logger.Warn("Binding rule skipped.", "group", s.Group, "index", s.Index, "rule", s.Rule.String(), "reason", s.Reason.String())
	}

	if cfg.Strict && len(report.Skipped) > 0 {
		a.Close()
		return nil, fmt.Errorf("%w: %d of %d", ErrSkippedRules, len(report.Skipped), model.RuleCount())
	}
	return a, nil
}

func loadModel(ctx context.Context, cfg *Config, loader config.Loader, catalog config.EventCatalog) (*config.Model, config.Converter, error) {
	if cfg.ConfigPath == "" {
		ctxlog.FromContext(ctx).Info("No configuration path given, using the built-in wiring.")
		return loader.LoadSource(ctx, catalog, "default.hcl", defaultConfig)
	}
	return loader.Load(ctx, catalog, cfg.ConfigPath)
}

// Close releases endpoints that hold external resources.
func (a *App) Close() error {
	var errs []error
	for _, inst := range a.instances {
		if c, ok := inst.Endpoint.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, fmt.Errorf("module '%s': %w", inst.Decl.Name, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Binder returns the application's binder. This is primarily for testing.
func (a *App) Binder() *binding.Binder {
	return a.binder
}

// Model returns the loaded configuration model.
func (a *App) Model() *config.Model {
	return a.model
}

// Endpoint returns the endpoint registered under name.
func (a *App) Endpoint(name string) (binding.Endpoint, bool) {
	return a.binder.Registry().Resolve(name)
}
