package hclast

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// generatedFilename is used for the ranges of expressions built by ToExpr.
const generatedFilename = "<generated>"

// SingleString extracts a single scalar from expr. Bare keywords such as
// `ethernet` are returned as written; quoted strings, numbers and bools are
// converted to their string form. Collections, nulls and anything that needs
// an evaluation context are rejected with a diagnostic on the expression.
func SingleString(expr hcl.Expression) (string, hcl.Diagnostics) {
	// true, false and null are literals that also read as keywords.
	if _, literal := hcl.UnwrapExpression(expr).(*hclsyntax.LiteralValueExpr); !literal {
		if kw := hcl.ExprAsKeyword(expr); kw != "" {
			return kw, nil
		}
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", notScalar(expr, "The value must be a literal; references and function calls are not allowed here.")
	}
	if val.IsNull() || !val.IsWhollyKnown() {
		return "", notScalar(expr, "The value must not be null.")
	}
	if !val.Type().IsPrimitiveType() {
		return "", notScalar(expr, fmt.Sprintf("Expected a single value, but got %s.", val.Type().FriendlyName()))
	}

	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", notScalar(expr, err.Error())
	}
	return str.AsString(), nil
}

// ToExpr builds an expression that evaluates to the quoted string s.
// SingleString(ToExpr(s)) returns s for every s.
func ToExpr(s string) hcl.Expression {
	return ParseTokens(StringTokens(s))
}

// KeyRange is the span of the attribute's name.
func KeyRange(attr *hcl.Attribute) hcl.Range {
	return attr.NameRange
}

// ValueRange is the span of the attribute's value.
func ValueRange(attr *hcl.Attribute) hcl.Range {
	return attr.Expr.Range()
}

func notScalar(expr hcl.Expression, detail string) hcl.Diagnostics {
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  "Invalid value",
		Detail:   detail,
		Subject:  expr.Range().Ptr(),
	}}
}

// StringTokens returns the tokens of a quoted string literal holding s.
func StringTokens(s string) hclwrite.Tokens {
	return hclwrite.TokensForValue(cty.StringVal(s))
}

// ParseTokens turns generated tokens back into an expression.
func ParseTokens(tokens hclwrite.Tokens) hcl.Expression {
	expr, diags := hclsyntax.ParseExpression(tokens.Bytes(), generatedFilename, hcl.InitialPos)
	if diags.HasErrors() {
		panic(fmt.Sprintf("hclast: generated expression %q does not parse: %s", tokens.Bytes(), diags.Error()))
	}
	return expr
}
