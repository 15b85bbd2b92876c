package testutil

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/stretchr/testify/require"
)

// ParseExpr is a test helper to quickly get an hcl.Expression from a string.
func ParseExpr(t *testing.T, exprStr string) hcl.Expression {
	t.Helper()
	expr, diags := hclsyntax.ParseExpression([]byte(exprStr), "test.hcl", hcl.Pos{Line: 1, Column: 1})
	require.False(t, diags.HasErrors(), "Expression parsing failed: %s", diags.Error())
	return expr
}

// ParseAttrs parses src as the body of a target block.
func ParseAttrs(t *testing.T, src string) hcl.Attributes {
	t.Helper()
	file, diags := hclsyntax.ParseConfig([]byte(src), "target.hcl", hcl.Pos{Line: 1, Column: 1})
	require.False(t, diags.HasErrors(), "Config parsing failed: %s", diags.Error())
	attrs, diags := file.Body.JustAttributes()
	require.False(t, diags.HasErrors(), "Attribute extraction failed: %s", diags.Error())
	return attrs
}
