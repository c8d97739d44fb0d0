// This file contains the translation from the HCL schema structs into the
// format-agnostic config model, including event id evaluation.

package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/eventbinder/internal/config"
	"github.com/specialistvlad/eventbinder/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// eventsVar is the root variable under which event constants are exposed.
const eventsVar = "events"

// newEvalContext exposes the catalog as `events.<kind>.<name>`.
func newEvalContext(catalog config.EventCatalog) *hcl.EvalContext {
	kinds := make(map[string]cty.Value, len(catalog))
	for kind, events := range catalog {
		attrs := make(map[string]cty.Value, len(events))
		for name, id := range events {
			attrs[name] = cty.NumberUIntVal(uint64(id))
		}
		kinds[kind] = cty.ObjectVal(attrs)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{eventsVar: cty.ObjectVal(kinds)},
	}
}

func translateFile(root *schema.File, filename string, evalCtx *hcl.EvalContext) (*config.Model, error) {
	model := &config.Model{}

	for _, m := range root.Modules {
		decl, err := translateModule(m, filename)
		if err != nil {
			return nil, err
		}
		model.Modules = append(model.Modules, decl)
	}

	if len(root.Rules) > 0 {
		group, err := translateGroup("", root.Rules, filename, evalCtx)
		if err != nil {
			return nil, err
		}
		model.Groups = append(model.Groups, group)
	}

	for _, g := range root.Groups {
		group, err := translateGroup(g.Name, g.Rules, filename, evalCtx)
		if err != nil {
			return nil, err
		}
		model.Groups = append(model.Groups, group)
	}
	return model, nil
}

func translateModule(m *schema.Module, filename string) (*config.ModuleDecl, error) {
	enabled := true
	if m.Enabled != nil {
		enabled = *m.Enabled
	}
	decl := &config.ModuleDecl{
		Name:    m.Name,
		Kind:    m.Kind,
		Enabled: enabled,
		Origin:  filename,
	}
	if m.Arguments != nil {
		args, err := extractAttributes(m.Arguments.Body)
		if err != nil {
			return nil, fmt.Errorf("module %q arguments: %w", m.Name, err)
		}
		decl.Arguments = args
	}
	return decl, nil
}

func translateGroup(name string, rules []*schema.Rule, filename string, evalCtx *hcl.EvalContext) (*config.BindingGroup, error) {
	group := &config.BindingGroup{Name: name, Origin: filename}
	for i, r := range rules {
		sourceEvent, err := evalEventID(r.SourceEvent, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("binding_group %q rule %d source_event: %w", name, i, err)
		}
		targetEvent, err := evalEventID(r.TargetEvent, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("binding_group %q rule %d target_event: %w", name, i, err)
		}
		group.Rules = append(group.Rules, &config.BindingRule{
			Source:      r.Source,
			SourceEvent: sourceEvent,
			Target:      r.Target,
			TargetEvent: targetEvent,
		})
	}
	return group, nil
}

// evalEventID evaluates expr and narrows it to a uint32 event id.
func evalEventID(expr hcl.Expression, evalCtx *hcl.EvalContext) (uint32, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return 0, diags
	}
	rng := expr.Range()
	if val.IsNull() || !val.IsWhollyKnown() {
		return 0, fmt.Errorf("%s: event id must be a known, non-null number", rng.String())
	}

	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("%s: event id must be a number, got %s", rng.String(), val.Type().FriendlyName())
	}

	var id uint32
	if err := gocty.FromCtyValue(num, &id); err != nil {
		return 0, fmt.Errorf("%s: invalid event id: %w", rng.String(), err)
	}
	return id, nil
}

// extractAttributes returns the attribute expressions of body. Nested blocks
// are not allowed in an arguments block.
func extractAttributes(body hcl.Body) (map[string]hcl.Expression, error) {
	if body == nil {
		return nil, nil
	}
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}
	if len(attrs) == 0 {
		return nil, nil
	}
	exprs := make(map[string]hcl.Expression, len(attrs))
	for name, attr := range attrs {
		exprs[name] = attr.Expr
	}
	return exprs, nil
}
