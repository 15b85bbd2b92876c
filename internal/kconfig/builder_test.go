package kconfig_test

import (
	"testing"

	"github.com/specialistvlad/targetconf/internal/kconfig"
	"github.com/stretchr/testify/assert"
)

func TestBuilder_PreservesOrder(t *testing.T) {
	b := kconfig.New().Comment("a").Blank().Append("X", "1")
	assert.Equal(t, "# a\n\nCONFIG_X=1\n", b.Render())
	assert.Equal(t, 3, b.Len())
}

func TestBuilder_NoReorderingOrDedup(t *testing.T) {
	b := kconfig.New().
		Append("B", "2").
		Append("A", "1").
		Append("B", "2")
	assert.Equal(t, "CONFIG_B=2\nCONFIG_A=1\nCONFIG_B=2\n", b.Render())
}

func TestBuilder_Heading(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected string
	}{
		{name: "empty", text: "", expected: "\n#  #\n#  #\n\n"},
		{name: "one character", text: "X", expected: "\n# X #\n# - #\n\n"},
		{name: "word", text: "Foo", expected: "\n# Foo #\n# --- #\n\n"},
		{name: "phrase", text: "Network Shell", expected: "\n# Network Shell #\n# ------------- #\n\n"},
		{name: "multi-byte runes", text: "Réseau", expected: "\n# Réseau #\n# ------ #\n\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := kconfig.New().Heading(tc.text)
			assert.Equal(t, tc.expected, b.Render())
			assert.Equal(t, 4, b.Len())
		})
	}
}

func TestBuilder_AppendIf(t *testing.T) {
	with := kconfig.New().Comment("c").AppendIf(false, "X", "1").Append("Y", "y")
	without := kconfig.New().Comment("c").Append("Y", "y")
	assert.Equal(t, without.Render(), with.Render())
	assert.Equal(t, without.Len(), with.Len())

	b := kconfig.New().AppendIf(true, "X", "1")
	assert.Equal(t, "CONFIG_X=1\n", b.Render())
}

func TestBuilder_RenderIsIdempotent(t *testing.T) {
	b := kconfig.New().Heading("Logging").Append("LOG", kconfig.Bool(true))
	first := b.Render()
	assert.Equal(t, first, b.Render())
	assert.Equal(t, first, b.String())
}

func TestBuilder_Empty(t *testing.T) {
	assert.Equal(t, "", kconfig.New().Render())
}

func TestLiterals(t *testing.T) {
	assert.Equal(t, "y", kconfig.Bool(true))
	assert.Equal(t, "n", kconfig.Bool(false))
	assert.Equal(t, `"fd01::1"`, kconfig.Quote("fd01::1"))
}
