package target

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/targetconf/internal/diag"
	"github.com/specialistvlad/targetconf/internal/hclast"
	"github.com/specialistvlad/targetconf/internal/option"
)

// OptionProperty is a property whose value is one variant of an option type.
type OptionProperty[V comparable] struct {
	name        string
	description string
	typ         *option.Type[V]
	validate    func(self *OptionProperty[V], cfg *Config, r *diag.Reporter)
}

func (p *OptionProperty[V]) Name() string        { return p.name }
func (p *OptionProperty[V]) Description() string { return p.description }

// Type returns the option type backing p.
func (p *OptionProperty[V]) Type() *option.Type[V] {
	return p.typ
}

func (p *OptionProperty[V]) TypeName() string {
	return strings.Join(p.typ.Names(), " | ")
}

func (p *OptionProperty[V]) DefaultString() string {
	return p.typ.CanonicalName(p.typ.Default())
}

func (p *OptionProperty[V]) InitialValue() V {
	return p.typ.Default()
}

func (p *OptionProperty[V]) FromString(s string) (V, error) {
	return p.typ.ForName(s)
}

func (p *OptionProperty[V]) FromAST(expr hcl.Expression) (V, hcl.Diagnostics) {
	var zero V
	s, diags := hclast.SingleString(expr)
	if diags.HasErrors() {
		return zero, diags
	}
	v, err := p.FromString(s)
	if err != nil {
		return zero, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  fmt.Sprintf("Invalid %s value", p.name),
			Detail:   err.Error() + "." + hclast.DidYouMean(strings.ToLower(s), p.typ.Names()),
			Subject:  expr.Range().Ptr(),
		}}
	}
	return v, nil
}

func (p *OptionProperty[V]) ToAST(v V) hcl.Expression {
	return hclast.ParseTokens(p.tokens(v))
}

func (p *OptionProperty[V]) Validate(cfg *Config, r *diag.Reporter) {
	if p.validate != nil {
		p.validate(p, cfg, r)
	}
}

func (p *OptionProperty[V]) tokens(v V) hclwrite.Tokens {
	return hclast.StringTokens(p.typ.CanonicalName(v))
}

func (p *OptionProperty[V]) decode(expr hcl.Expression) (any, hcl.Diagnostics) {
	v, diags := p.FromAST(expr)
	return v, diags
}

func (p *OptionProperty[V]) encode(v any) hclwrite.Tokens {
	return p.tokens(v.(V))
}
