package diag

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/targetconf/internal/option"
)

// Severities is the option type used to spell severities in tool settings.
var Severities = option.New("severity", hcl.DiagWarning,
	option.Variant[hcl.DiagnosticSeverity]{Value: hcl.DiagError, Ident: "error"},
	option.Variant[hcl.DiagnosticSeverity]{Value: hcl.DiagWarning, Ident: "warning"},
)

// Check identifies a validation rule whose severity may be overridden.
type Check struct {
	ID       string
	Summary  string
	Severity hcl.DiagnosticSeverity
}

// Policy overrides the default severity of checks by ID. A nil Policy
// applies every check's default severity.
type Policy struct {
	overrides map[string]hcl.DiagnosticSeverity
}

// NewPolicy returns a Policy with no overrides.
func NewPolicy() *Policy {
	return &Policy{overrides: make(map[string]hcl.DiagnosticSeverity)}
}

// PolicyFromSettings builds a Policy from check ID to severity name pairs.
func PolicyFromSettings(settings map[string]string) (*Policy, error) {
	p := NewPolicy()
	for id, name := range settings {
		severity, err := Severities.ForName(name)
		if err != nil {
			return nil, fmt.Errorf("severity override for %q: %w", id, err)
		}
		p.Override(id, severity)
	}
	return p, nil
}

// Override sets the severity reported for the check with the given ID.
func (p *Policy) Override(id string, severity hcl.DiagnosticSeverity) *Policy {
	p.overrides[id] = severity
	return p
}

// SeverityOf returns the effective severity of c.
func (p *Policy) SeverityOf(c Check) hcl.DiagnosticSeverity {
	if p != nil {
		if severity, ok := p.overrides[c.ID]; ok {
			return severity
		}
	}
	return c.Severity
}
