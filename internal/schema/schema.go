// Package schema holds the gohcl decoding targets for eventbinder's HCL
// files. The hcl package translates them into the format-agnostic config
// model; nothing else should depend on these types.
package schema

import "github.com/hashicorp/hcl/v2"

// ArgumentsBlock keeps a module's `arguments` body raw. It is decoded later,
// against the Go struct the module kind declares.
type ArgumentsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// Module represents a `module "<name>"` block: one participating robot
// module and the kind that implements it.
type Module struct {
	Name      string          `hcl:"name,label"`
	Kind      string          `hcl:"kind"`
	Enabled   *bool           `hcl:"enabled,optional"`
	Arguments *ArgumentsBlock `hcl:"arguments,block"`
}

// Rule represents a `rule` block. Event ids stay expressions so they can
// reference `events.<kind>.<name>` constants.
type Rule struct {
	Source      string         `hcl:"source"`
	SourceEvent hcl.Expression `hcl:"source_event"`
	Target      string         `hcl:"target"`
	TargetEvent hcl.Expression `hcl:"target_event"`
}

// BindingGroup represents a `binding_group "<name>"` block.
type BindingGroup struct {
	Name  string  `hcl:"name,label"`
	Rules []*Rule `hcl:"rule,block"`
}

// File is the top-level structure of any eventbinder HCL file. Top-level
// `rule` blocks form the file's unnamed group.
type File struct {
	Modules []*Module       `hcl:"module,block"`
	Rules   []*Rule         `hcl:"rule,block"`
	Groups  []*BindingGroup `hcl:"binding_group,block"`
}
