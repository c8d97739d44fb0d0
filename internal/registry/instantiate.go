package registry

import (
	"context"
	"fmt"

	"github.com/specialistvlad/eventbinder/internal/binding"
	"github.com/specialistvlad/eventbinder/internal/config"
	"github.com/specialistvlad/eventbinder/internal/ctxlog"
)

// Instance is an instantiated module: its declaration and endpoint.
type Instance struct {
	Decl     *config.ModuleDecl
	Endpoint binding.Endpoint
}

// Instantiate builds an endpoint for every enabled declaration, in
// declaration order. Disabled modules are left out, so rules naming them
// are skipped by the installer. On error the instances built so far are
// returned with it, so the caller can release them.
func (r *Registry) Instantiate(ctx context.Context, conv config.Converter) ([]Instance, error) {
	logger := ctxlog.FromContext(ctx)
	instances := make([]Instance, 0, len(r.Declarations))

	for _, decl := range r.Declarations {
		if !decl.Enabled {
			logger.Info("Module disabled, not instantiated.", "module", decl.Name, "kind", decl.Kind)
			continue
		}
		kind, ok := r.KindRegistry[decl.Kind]
		if !ok {
			return instances, fmt.Errorf("module '%s': unknown kind '%s'", decl.Name, decl.Kind)
		}

		var input any
		if kind.NewInput != nil {
			input = kind.NewInput()
			if err := conv.DecodeArguments(ctx, input, decl.Arguments); err != nil {
				return instances, fmt.Errorf("module '%s': %w", decl.Name, err)
			}
		} else if len(decl.Arguments) > 0 {
			return instances, fmt.Errorf("module '%s': kind '%s' takes no arguments", decl.Name, decl.Kind)
		}

		modCtx := ctxlog.With(ctx, "module", decl.Name, "kind", decl.Kind)
		endpoint, err := kind.New(modCtx, decl.Name, input)
		if err != nil {
			return instances, fmt.Errorf("module '%s': failed to create endpoint: %w", decl.Name, err)
		}
		instances = append(instances, Instance{Decl: decl, Endpoint: endpoint})
		logger.Debug("Module instantiated.", "module", decl.Name, "kind", decl.Kind)
	}
	return instances, nil
}

// BindingModules converts instances into the binding package's module list.
func BindingModules(instances []Instance) []binding.Module {
	mods := make([]binding.Module, len(instances))
	for i, inst := range instances {
		mods[i] = binding.Module{Name: inst.Decl.Name, Endpoint: inst.Endpoint}
	}
	return mods
}

// BindingGroups converts the loaded groups into the binding package's form.
func (r *Registry) BindingGroups() []binding.Group {
	groups := make([]binding.Group, len(r.Groups))
	for i, g := range r.Groups {
		rules := make([]binding.Rule, len(g.Rules))
		for j, rule := range g.Rules {
			rules[j] = binding.Rule{
				Source:      rule.Source,
				SourceEvent: rule.SourceEvent,
				Target:      rule.Target,
				TargetEvent: rule.TargetEvent,
			}
		}
		groups[i] = binding.Group{Name: g.Name, Rules: rules}
	}
	return groups
}
