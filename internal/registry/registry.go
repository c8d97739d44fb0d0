package registry

import (
	"github.com/specialistvlad/eventbinder/internal/config"
)

// Module is the interface that all module packages implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the registered kinds and the module declarations loaded
// from configuration for a single application instance.
type Registry struct {
	KindRegistry map[string]*RegisteredKind
	Declarations []*config.ModuleDecl
	Groups       []*config.BindingGroup
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		KindRegistry: make(map[string]*RegisteredKind),
	}
}

// PopulateDefinitionsFromModel copies the loaded declarations into the registry.
func (r *Registry) PopulateDefinitionsFromModel(model *config.Model) {
	r.Declarations = append(r.Declarations, model.Modules...)
	r.Groups = append(r.Groups, model.Groups...)
}

// Catalog returns every registered kind's event constants, keyed by kind.
func (r *Registry) Catalog() config.EventCatalog {
	catalog := make(config.EventCatalog, len(r.KindRegistry))
	for name, kind := range r.KindRegistry {
		events := make(map[string]uint32, len(kind.Events))
		for ev, id := range kind.Events {
			events[ev] = id
		}
		catalog[name] = events
	}
	return catalog
}
