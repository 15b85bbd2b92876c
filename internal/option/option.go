package option

import (
	"fmt"
	"strings"
)

// Variant binds an enumeration value to the identifier it is spelled with.
type Variant[V comparable] struct {
	Value V
	Ident string
}

// Type is an ordered, closed set of named variants with a designated default.
// A Type is immutable after construction and safe for concurrent use.
type Type[V comparable] struct {
	name     string
	variants []V
	names    []string
	def      V
}

// New builds a Type named typeName from the given variants. It panics if two
// variants share a name under case-insensitive comparison, if a value appears
// twice, or if def is not one of the variants.
func New[V comparable](typeName string, def V, variants ...Variant[V]) *Type[V] {
	if len(variants) == 0 {
		panic(fmt.Sprintf("option type %q has no variants", typeName))
	}

	t := &Type[V]{name: typeName, def: def}
	hasDefault := false
	for _, v := range variants {
		canonical := strings.ToLower(v.Ident)
		for i, existing := range t.names {
			if strings.EqualFold(existing, canonical) {
				panic(fmt.Sprintf("option type %q: variant %q duplicates %q", typeName, v.Ident, existing))
			}
			if t.variants[i] == v.Value {
				panic(fmt.Sprintf("option type %q: value of %q registered twice", typeName, v.Ident))
			}
		}
		if v.Value == def {
			hasDefault = true
		}
		t.variants = append(t.variants, v.Value)
		t.names = append(t.names, canonical)
	}
	if !hasDefault {
		panic(fmt.Sprintf("option type %q: default is not a declared variant", typeName))
	}
	return t
}

// Name returns the name of the enumeration, used in error messages.
func (t *Type[V]) Name() string {
	return t.name
}

// ForName returns the variant whose canonical name matches s, ignoring case.
// The input is matched as given; surrounding whitespace is not trimmed.
func (t *Type[V]) ForName(s string) (V, error) {
	for i, name := range t.names {
		if strings.EqualFold(name, s) {
			return t.variants[i], nil
		}
	}
	var zero V
	return zero, &UnrecognizedError{Type: t.name, Input: s, Valid: t.Names()}
}

// Default returns the designated default variant.
func (t *Type[V]) Default() V {
	return t.def
}

// CanonicalName returns the lowercase identifier of v. Values that are not
// variants of t yield an empty string.
func (t *Type[V]) CanonicalName(v V) string {
	for i, candidate := range t.variants {
		if candidate == v {
			return t.names[i]
		}
	}
	return ""
}

// Contains reports whether v is a declared variant.
func (t *Type[V]) Contains(v V) bool {
	for _, candidate := range t.variants {
		if candidate == v {
			return true
		}
	}
	return false
}

// Names returns the canonical names of all variants in declaration order.
func (t *Type[V]) Names() []string {
	return append([]string(nil), t.names...)
}

// Variants returns all variants in declaration order.
func (t *Type[V]) Variants() []V {
	return append([]V(nil), t.variants...)
}

// UnrecognizedError is returned by ForName when no variant matches.
type UnrecognizedError struct {
	Type  string
	Input string
	Valid []string
}

func (e *UnrecognizedError) Error() string {
	return fmt.Sprintf("unrecognized %s option %q; expected one of: %s", e.Type, e.Input, strings.Join(e.Valid, ", "))
}
