package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/eventbinder/internal/ctxlog"
)

// ValidateRegistry checks the loaded declarations against the registered
// kinds. Unknown kinds and unnamed modules are errors. Duplicate module
// names produce a warning. Rules that name undeclared or disabled modules
// are only noted at debug level; the app warns once per skipped rule after
// installation.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	var errs []string

	declared := make(map[string]bool, len(r.Declarations))
	for _, decl := range r.Declarations {
		if decl.Name == "" {
			errs = append(errs, fmt.Sprintf("%s: module has an empty name", decl.Origin))
			continue
		}
		if _, ok := r.KindRegistry[decl.Kind]; !ok {
			errs = append(errs, fmt.Sprintf("module '%s': unknown kind '%s'", decl.Name, decl.Kind))
		}
		if enabled, dup := declared[decl.Name]; dup {
			logger.Warn("Module name declared more than once; the first enabled declaration wins.", "module", decl.Name, "origin", decl.Origin)
			declared[decl.Name] = enabled || decl.Enabled
			continue
		}
		declared[decl.Name] = decl.Enabled
	}

	for _, group := range r.Groups {
		for i, rule := range group.Rules {
			for _, name := range []string{rule.Source, rule.Target} {
				enabled, ok := declared[name]
				switch {
				case !ok:
					logger.Debug("Binding rule references an undeclared module and will be skipped.", "group", group.Name, "index", i, "module", name)
				case !enabled:
					logger.Debug("Binding rule references a disabled module and will be skipped.", "group", group.Name, "index", i, "module", name)
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
