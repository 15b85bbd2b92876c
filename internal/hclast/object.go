package hclast

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// Field is one key/value pair of an object expression.
type Field struct {
	Name      string
	NameRange hcl.Range
	Expr      hcl.Expression
}

// Range covers the field from key to value.
func (f Field) Range() hcl.Range {
	return hcl.RangeBetween(f.NameRange, f.Expr.Range())
}

// ObjectFields splits an object constructor like `{ name = "zephyr" }` into
// its fields in source order. Keys may be bare identifiers or quoted strings.
func ObjectFields(expr hcl.Expression) ([]Field, hcl.Diagnostics) {
	pairs, diags := hcl.ExprMap(expr)
	if diags.HasErrors() {
		return nil, diags
	}

	fields := make([]Field, 0, len(pairs))
	for _, pair := range pairs {
		name, keyDiags := SingleString(pair.Key)
		if keyDiags.HasErrors() {
			diags = append(diags, keyDiags...)
			continue
		}
		fields = append(fields, Field{Name: name, NameRange: pair.Key.Range(), Expr: pair.Value})
	}
	return fields, diags
}

// IsObject reports whether expr is written as an object constructor.
func IsObject(expr hcl.Expression) bool {
	_, diags := hcl.ExprMap(expr)
	return !diags.HasErrors()
}

// ObjectTokens returns the tokens of an object constructor with the given
// attributes. Attributes are written in lexical order.
func ObjectTokens(attrs map[string]cty.Value) hclwrite.Tokens {
	return hclwrite.TokensForValue(cty.ObjectVal(attrs))
}
