package target

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/targetconf/internal/diag"
)

// Definition is the type-erased view of a property used by the catalog and
// by Config. The unexported methods keep the set of implementations inside
// this package.
type Definition interface {
	// Name is both the source-level key and the diagnostic label.
	Name() string
	Description() string
	// TypeName describes the accepted values, e.g. "ethernet | sicslowpan".
	TypeName() string
	// DefaultString is the canonical form of the initial value.
	DefaultString() string
	// Validate reads cfg and reports findings. It never modifies cfg.
	Validate(cfg *Config, r *diag.Reporter)

	decode(expr hcl.Expression) (any, hcl.Diagnostics)
	encode(v any) hclwrite.Tokens
}

// Property is a named target property with values of type T.
type Property[T any] interface {
	Definition

	// InitialValue is used when the property is not set.
	InitialValue() T
	// FromString parses the raw textual form of a value.
	FromString(s string) (T, error)
	// FromAST extracts a value from an expression. Failures are reported
	// against the expression's range.
	FromAST(expr hcl.Expression) (T, hcl.Diagnostics)
	// ToAST is the inverse of FromAST: FromAST(ToAST(v)) == v.
	ToAST(v T) hcl.Expression
}

// Get returns the value of p in cfg, or its initial value when unset.
func Get[T any](cfg *Config, p Property[T]) T {
	if e, ok := cfg.entries[p]; ok {
		return e.value.(T)
	}
	return p.InitialValue()
}

// Set records v for p. attr is the attribute the value was read from, or nil
// when the value was derived rather than written by the user.
func Set[T any](cfg *Config, p Property[T], v T, attr *hcl.Attribute) {
	cfg.set(p, v, attr)
}
