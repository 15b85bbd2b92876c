package target

import (
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/targetconf/internal/diag"
	"github.com/specialistvlad/targetconf/internal/hclast"
	"github.com/specialistvlad/targetconf/internal/option"
	"github.com/zclconf/go-cty/cty"
)

var bools = option.New("bool", false,
	option.Variant[bool]{Value: true, Ident: "true"},
	option.Variant[bool]{Value: false, Ident: "false"},
)

// BoolProperty is a property holding true or false. It accepts both the bool
// literals and their quoted spellings.
type BoolProperty struct {
	name        string
	description string
	initial     bool
}

func (p *BoolProperty) Name() string          { return p.name }
func (p *BoolProperty) Description() string   { return p.description }
func (p *BoolProperty) TypeName() string      { return "bool" }
func (p *BoolProperty) DefaultString() string { return strconv.FormatBool(p.initial) }
func (p *BoolProperty) InitialValue() bool    { return p.initial }

func (p *BoolProperty) FromString(s string) (bool, error) {
	return bools.ForName(s)
}

func (p *BoolProperty) FromAST(expr hcl.Expression) (bool, hcl.Diagnostics) {
	return decodeBool(expr)
}

func (p *BoolProperty) ToAST(v bool) hcl.Expression {
	return hclast.ParseTokens(p.tokens(v))
}

func (p *BoolProperty) Validate(*Config, *diag.Reporter) {}

func (p *BoolProperty) tokens(v bool) hclwrite.Tokens {
	return hclwrite.TokensForValue(cty.BoolVal(v))
}

func (p *BoolProperty) decode(expr hcl.Expression) (any, hcl.Diagnostics) {
	v, diags := p.FromAST(expr)
	return v, diags
}

func (p *BoolProperty) encode(v any) hclwrite.Tokens {
	return p.tokens(v.(bool))
}
