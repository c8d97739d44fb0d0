package config

import "github.com/hashicorp/hcl/v2"

// EventCatalog maps a module kind to its symbolic event names and ids.
type EventCatalog map[string]map[string]uint32

// Model is the unified representation of one robot's event wiring.
type Model struct {
	Modules []*ModuleDecl
	Groups  []*BindingGroup
}

// ModuleDecl is the format-agnostic representation of a `module` block.
type ModuleDecl struct {
	Name      string
	Kind      string
	Enabled   bool
	Arguments map[string]hcl.Expression
	// Origin is the file the declaration came from.
	Origin string
}

// BindingGroup is the format-agnostic representation of a `binding_group` block.
type BindingGroup struct {
	Name   string
	Rules  []*BindingRule
	Origin string
}

// BindingRule is one `rule` block: source module event -> target module event.
type BindingRule struct {
	Source      string
	SourceEvent uint32
	Target      string
	TargetEvent uint32
}

// Merge appends the declarations of other to m, keeping file order.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Modules = append(m.Modules, other.Modules...)
	m.Groups = append(m.Groups, other.Groups...)
}

// RuleCount returns the number of rules across all groups.
func (m *Model) RuleCount() int {
	n := 0
	for _, g := range m.Groups {
		n += len(g.Rules)
	}
	return n
}
