package target_test

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/targetconf/internal/target"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatform_FromAST(t *testing.T) {
	testCases := []struct {
		name      string
		expr      string
		expected  target.PlatformOptions
		expectErr string
	}{
		{
			name:     "bare name",
			expr:     `zephyr`,
			expected: target.PlatformOptions{Platform: target.Zephyr},
		},
		{
			name:     "quoted name in upper case",
			expr:     `"RIOT"`,
			expected: target.PlatformOptions{Platform: target.RIOT},
		},
		{
			name: "object with every option",
			expr: `{ name = "zephyr", board = "rpi_pico", baud-rate = 115200, flash = true }`,
			expected: target.PlatformOptions{
				Platform: target.Zephyr,
				Board:    target.Settable[string]{Value: "rpi_pico", SetByUser: true},
				BaudRate: target.Settable[int]{Value: 115200, SetByUser: true},
				Flash:    true,
			},
		},
		{
			name: "object without name keeps default platform",
			expr: `{ board = "nrf52840dk_nrf52840" }`,
			expected: target.PlatformOptions{
				Platform: target.Auto,
				Board:    target.Settable[string]{Value: "nrf52840dk_nrf52840", SetByUser: true},
			},
		},
		{
			name:     "numeric string baud-rate",
			expr:     `{ name = native, baud-rate = "9600" }`,
			expected: target.PlatformOptions{Platform: target.Native, BaudRate: target.Settable[int]{Value: 9600, SetByUser: true}},
		},
		{name: "error - unknown name", expr: `"zephir"`, expectErr: "Invalid platform value"},
		{name: "error - unknown field", expr: `{ name = "zephyr", bord = "x" }`, expectErr: "Unsupported platform option"},
		{name: "error - negative baud-rate", expr: `{ baud-rate = -1 }`, expectErr: "Invalid baud-rate"},
		{name: "error - fractional baud-rate", expr: `{ baud-rate = 1.5 }`, expectErr: "Invalid number"},
		{name: "error - list", expr: `["zephyr"]`, expectErr: "Invalid value"},
		{name: "error - null board", expr: `{ name = "zephyr", board = null }`, expectErr: "Invalid value"},
		{name: "error - null name", expr: `null`, expectErr: "Invalid value"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, diags := target.PlatformProperty.FromAST(parseExpr(t, tc.expr))
			if tc.expectErr != "" {
				require.True(t, diags.HasErrors())
				assert.Equal(t, tc.expectErr, diags[0].Summary)
				return
			}
			require.False(t, diags.HasErrors(), diags.Error())
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestPlatform_UnknownFieldSuggestion(t *testing.T) {
	_, diags := target.PlatformProperty.FromAST(parseExpr(t, `{ bord = "x" }`))
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Detail, `Did you mean "board"?`)
}

func TestPlatform_RoundTrip(t *testing.T) {
	values := []target.PlatformOptions{
		{Platform: target.Zephyr, Board: target.Settable[string]{Value: "rpi_pico", SetByUser: true}},
		{Platform: target.Native, BaudRate: target.Settable[int]{Value: 9600, SetByUser: true}, Flash: true},
	}
	for _, p := range target.Platforms.Variants() {
		values = append(values, target.PlatformOptions{Platform: p})
	}

	for _, v := range values {
		got, diags := target.PlatformProperty.FromAST(target.PlatformProperty.ToAST(v))
		require.False(t, diags.HasErrors(), diags.Error())
		assert.Equal(t, v, got)

		name := target.Platforms.CanonicalName(v.Platform)
		fromString, err := target.PlatformProperty.FromString(name)
		require.NoError(t, err)
		assert.Equal(t, v.Platform, fromString.Platform)
	}
}

func TestPlatform_BoardIgnored(t *testing.T) {
	lr := loadTarget(t, `platform = { name = "native", board = "rpi_pico" }`)
	require.Empty(t, lr.collector.Diagnostics())

	diags := lr.validate(nil)
	require.Len(t, diags, 1)
	assert.Equal(t, hcl.DiagWarning, diags[0].Severity)
	assert.Equal(t, target.CheckBoardIgnored.Summary, diags[0].Summary)

	fields, _ := hcl.ExprMap(lr.attrs["platform"].Expr)
	require.Len(t, fields, 2)
	assert.Equal(t, fields[1].Value.Range(), *diags[0].Subject)
}

func TestPlatform_BoardOnZephyrIsFine(t *testing.T) {
	lr := loadTarget(t, `platform = { name = "zephyr", board = "rpi_pico" }`)
	assert.Empty(t, lr.validate(nil))
	assert.Equal(t, target.Zephyr, lr.cfg.Platform())
}

func TestOptionStringers(t *testing.T) {
	assert.Equal(t, "zephyr", target.Zephyr.String())
	assert.Equal(t, "sicslowpan", target.SixLoWPAN.String())
	assert.Equal(t, "debug", target.LogDebug.String())

	assert.Equal(t, "Platform(42)", target.Platform(42).String())
	assert.Equal(t, "NetInterface(-1)", target.NetInterface(-1).String())
	assert.Equal(t, "LogLevel(9)", target.LogLevel(9).String())
}
