package target_test

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/targetconf/internal/diag"
	"github.com/specialistvlad/targetconf/internal/target"
	"github.com/specialistvlad/targetconf/internal/testutil"
)

func parseExpr(t *testing.T, exprStr string) hcl.Expression {
	t.Helper()
	return testutil.ParseExpr(t, exprStr)
}

func parseAttrs(t *testing.T, src string) hcl.Attributes {
	t.Helper()
	return testutil.ParseAttrs(t, src)
}

// loadResult bundles everything a test needs to inspect a loaded target block.
type loadResult struct {
	cfg       *target.Config
	attrs     hcl.Attributes
	collector *diag.Collector
}

// loadTarget parses src as a target block body and loads it.
func loadTarget(t *testing.T, src string) *loadResult {
	t.Helper()
	attrs := parseAttrs(t, src)
	collector := &diag.Collector{}
	cfg := target.Load(attrs, diag.NewReporter(collector, nil))
	return &loadResult{cfg: cfg, attrs: attrs, collector: collector}
}

// validate runs validation with the given policy and returns what it reported.
func (lr *loadResult) validate(policy *diag.Policy) hcl.Diagnostics {
	collector := &diag.Collector{}
	lr.cfg.Validate(diag.NewReporter(collector, policy))
	return collector.Diagnostics()
}
