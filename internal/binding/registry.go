package binding

// Endpoint is a module's event interface. Bind records that future
// occurrences of sourceEvent on source trigger targetEvent on the receiver.
type Endpoint interface {
	Bind(source Endpoint, sourceEvent, targetEvent uint32) error
}

// Module pairs a module name with its endpoint. The endpoint is borrowed;
// the registry never owns or closes it.
type Module struct {
	Name     string
	Endpoint Endpoint
}

// Registry resolves module names to endpoints. It is built once and never
// modified. The expected cardinality is single digits, so lookup is a linear
// scan over the registration order.
type Registry struct {
	modules []Module
}

// NewRegistry builds a registry from modules, preserving their order.
// Duplicate names are accepted; Resolve returns the first one registered.
func NewRegistry(modules ...Module) *Registry {
	cp := make([]Module, len(modules))
	copy(cp, modules)
	return &Registry{modules: cp}
}

// Resolve returns the endpoint of the first module whose name equals name.
// The boolean is false when no module matches.
func (r *Registry) Resolve(name string) (Endpoint, bool) {
	if r == nil {
		return nil, false
	}
	for _, m := range r.modules {
		if m.Name == name {
			return m.Endpoint, true
		}
	}
	return nil, false
}

// Len returns the number of registered modules, duplicates included.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.modules)
}

// Names returns module names in registration order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, len(r.modules))
	for i, m := range r.modules {
		names[i] = m.Name
	}
	return names
}
