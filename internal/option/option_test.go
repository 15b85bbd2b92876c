package option_test

import (
	"errors"
	"testing"

	"github.com/specialistvlad/targetconf/internal/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type color int

const (
	red color = iota
	green
	blue
)

func newColors() *option.Type[color] {
	return option.New("color", green,
		option.Variant[color]{Value: red, Ident: "RED"},
		option.Variant[color]{Value: green, Ident: "Green"},
		option.Variant[color]{Value: blue, Ident: "blue"},
	)
}

func TestForName_RoundTrip(t *testing.T) {
	colors := newColors()
	for _, v := range colors.Variants() {
		got, err := colors.ForName(colors.CanonicalName(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestForName_CaseInsensitive(t *testing.T) {
	colors := newColors()
	for _, in := range []string{"RED", "red", "Red", "rEd"} {
		got, err := colors.ForName(in)
		require.NoError(t, err, in)
		assert.Equal(t, red, got, in)
	}
}

func TestForName_Unrecognized(t *testing.T) {
	colors := newColors()

	testCases := []struct {
		name  string
		input string
	}{
		{name: "unknown word", input: "bogus"},
		{name: "empty", input: ""},
		{name: "untrimmed", input: " red"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := colors.ForName(tc.input)
			require.Error(t, err)

			var unrecognized *option.UnrecognizedError
			require.True(t, errors.As(err, &unrecognized))
			assert.Equal(t, tc.input, unrecognized.Input)
			assert.Equal(t, []string{"red", "green", "blue"}, unrecognized.Valid)
			assert.Contains(t, err.Error(), `"`+tc.input+`"`)
		})
	}
}

func TestDefaultAndNames(t *testing.T) {
	colors := newColors()
	assert.Equal(t, green, colors.Default())
	assert.Equal(t, "green", colors.CanonicalName(colors.Default()))
	assert.Equal(t, []string{"red", "green", "blue"}, colors.Names())
	assert.Equal(t, "", colors.CanonicalName(color(42)))
	assert.False(t, colors.Contains(color(42)))
}

func TestNew_PanicsOnInvalidDeclarations(t *testing.T) {
	assert.Panics(t, func() {
		option.New("dup", red,
			option.Variant[color]{Value: red, Ident: "red"},
			option.Variant[color]{Value: green, Ident: "RED"},
		)
	}, "case-insensitive duplicate names")

	assert.Panics(t, func() {
		option.New("dupvalue", red,
			option.Variant[color]{Value: red, Ident: "red"},
			option.Variant[color]{Value: red, Ident: "crimson"},
		)
	}, "duplicate values")

	assert.Panics(t, func() {
		option.New("nodefault", blue,
			option.Variant[color]{Value: red, Ident: "red"},
		)
	}, "default not declared")

	assert.Panics(t, func() {
		option.New[color]("empty", red)
	}, "no variants")
}
