package target

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/targetconf/internal/config"
	"github.com/specialistvlad/targetconf/internal/diag"
	"github.com/specialistvlad/targetconf/internal/hclast"
)

// Load resolves the attributes of a target block into a new Config.
// Attributes are processed in source order. Unknown keys are reported at the
// key; values that fail to parse are reported at the value and leave their
// property unset.
func Load(attrs hcl.Attributes, r *diag.Reporter) *Config {
	cfg := NewConfig()
	for _, attr := range sortedAttributes(attrs) {
		def, ok := Lookup(attr.Name)
		if !ok {
			r.Error(hclast.KeyRange(attr), "Unrecognized target property",
				fmt.Sprintf("%q is not a known target property. Known properties are: %s.%s",
					attr.Name, strings.Join(Names(), ", "), hclast.DidYouMean(attr.Name, Names())))
			continue
		}

		v, diags := def.decode(attr.Expr)
		r.Append(diags)
		if diags.HasErrors() {
			continue
		}
		cfg.set(def, v, attr)
	}
	return cfg
}

// FromProgram loads the program's target block and records the facts the
// program structure implies: declaring federates makes it federated unless
// the user said otherwise.
func FromProgram(p *config.Program, r *diag.Reporter) *Config {
	cfg := Load(p.Target, r)
	if p.IsFederated() && !cfg.IsSet(FederatedProperty) {
		Set(cfg, FederatedProperty, true, nil)
	}
	return cfg
}

func sortedAttributes(attrs hcl.Attributes) []*hcl.Attribute {
	sorted := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		sorted = append(sorted, attr)
	}
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i].Range, sorted[j].Range
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		return a.Start.Byte < b.Start.Byte
	})
	return sorted
}
