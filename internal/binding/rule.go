package binding

import "fmt"

// Rule forwards SourceEvent on the Source module to TargetEvent on the
// Target module. Event ids are opaque to this package.
type Rule struct {
	Source      string `json:"source"`
	SourceEvent uint32 `json:"source_event"`
	Target      string `json:"target"`
	TargetEvent uint32 `json:"target_event"`
}

func (r Rule) String() string {
	return fmt.Sprintf("%s:%d -> %s:%d", r.Source, r.SourceEvent, r.Target, r.TargetEvent)
}

// Group is an ordered, optionally named collection of rules.
type Group struct {
	Name  string
	Rules []Rule
}

// SkipReason says which side of a rule failed to resolve.
type SkipReason int

const (
	MissingSource SkipReason = iota + 1
	MissingTarget
	MissingBoth
)

func (r SkipReason) String() string {
	switch r {
	case MissingSource:
		return "missing_source"
	case MissingTarget:
		return "missing_target"
	case MissingBoth:
		return "missing_both"
	default:
		return "unknown"
	}
}

// MarshalText lets reports render reasons by name in JSON and logs.
func (r SkipReason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *SkipReason) UnmarshalText(text []byte) error {
	for _, c := range []SkipReason{MissingSource, MissingTarget, MissingBoth} {
		if c.String() == string(text) {
			*r = c
			return nil
		}
	}
	return fmt.Errorf("unknown skip reason %q", text)
}

// SkippedRule records a rule that was not installed.
type SkippedRule struct {
	Group  string     `json:"group"`
	Index  int        `json:"index"`
	Rule   Rule       `json:"rule"`
	Reason SkipReason `json:"reason"`
}

// Report summarizes one installation pass.
type Report struct {
	Installed int           `json:"installed"`
	Skipped   []SkippedRule `json:"skipped"`
}
