package binding

import (
	"context"
	"fmt"

	"github.com/specialistvlad/eventbinder/internal/ctxlog"
)

// Install resolves every rule of every group through reg and issues one
// Bind call per resolvable rule, in group-then-rule order. Rules with an
// unresolvable module are skipped and recorded. The first Bind error stops
// installation; the returned report then covers the rules processed so far.
func Install(ctx context.Context, reg *Registry, groups []Group) (*Report, error) {
	logger := ctxlog.FromContext(ctx)
	report := &Report{Skipped: []SkippedRule{}}

	for _, group := range groups {
		for i, rule := range group.Rules {
			source, srcOK := reg.Resolve(rule.Source)
			target, tgtOK := reg.Resolve(rule.Target)

			if !srcOK || !tgtOK {
				skipped := SkippedRule{Group: group.Name, Index: i, Rule: rule, Reason: skipReason(srcOK, tgtOK)}
				report.Skipped = append(report.Skipped, skipped)
				logger.Debug("Binding rule skipped.", "group", group.Name, "index", i, "rule", rule.String(), "reason", skipped.Reason.String())
				continue
			}

			if err := target.Bind(source, rule.SourceEvent, rule.TargetEvent); err != nil {
				return report, fmt.Errorf("group %q rule %d (%s): %w", group.Name, i, rule, err)
			}
			report.Installed++
		}
	}

	logger.Debug("Binding installation finished.", "installed", report.Installed, "skipped", len(report.Skipped))
	return report, nil
}

func skipReason(srcOK, tgtOK bool) SkipReason {
	switch {
	case !srcOK && !tgtOK:
		return MissingBoth
	case !srcOK:
		return MissingSource
	default:
		return MissingTarget
	}
}
