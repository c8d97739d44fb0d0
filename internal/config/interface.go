package config

import (
	"context"

	"github.com/hashicorp/hcl/v2"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given paths (files or directories)
	// and translates it into the format-agnostic model. The catalog supplies
	// symbolic event names that configuration may reference.
	Load(ctx context.Context, catalog EventCatalog, paths ...string) (*Model, Converter, error)

	// LoadSource is Load for a single in-memory document; filename is used
	// in diagnostics only.
	LoadSource(ctx context.Context, catalog EventCatalog, filename string, src []byte) (*Model, Converter, error)
}

// Converter binds raw module arguments to the Go structs that module kinds
// declare for them.
type Converter interface {
	// DecodeArguments evaluates args and stores them into target, a pointer
	// to a struct whose fields are tagged `arg:"name"` or
	// `arg:"name,optional"`.
	DecodeArguments(ctx context.Context, target any, args map[string]hcl.Expression) error
}
