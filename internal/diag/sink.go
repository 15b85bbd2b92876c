package diag

import (
	"github.com/hashicorp/hcl/v2"
)

// Sink receives diagnostics as they are produced.
type Sink interface {
	Report(d *hcl.Diagnostic)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(d *hcl.Diagnostic)

// Report calls f(d).
func (f SinkFunc) Report(d *hcl.Diagnostic) {
	f(d)
}

// Collector is a Sink that keeps every diagnostic in arrival order.
// It is not safe for concurrent use; each run owns its own Collector.
type Collector struct {
	diags hcl.Diagnostics
}

// Report appends d.
func (c *Collector) Report(d *hcl.Diagnostic) {
	c.diags = append(c.diags, d)
}

// Diagnostics returns everything collected so far.
func (c *Collector) Diagnostics() hcl.Diagnostics {
	return c.diags
}

// HasErrors reports whether any collected diagnostic is an error.
func (c *Collector) HasErrors() bool {
	return c.diags.HasErrors()
}

// Count returns the number of collected diagnostics of the given severity.
func (c *Collector) Count(severity hcl.DiagnosticSeverity) int {
	n := 0
	for _, d := range c.diags {
		if d.Severity == severity {
			n++
		}
	}
	return n
}
