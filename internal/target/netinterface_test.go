package target_test

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/targetconf/internal/diag"
	"github.com/specialistvlad/targetconf/internal/target"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetInterface_RoundTrip(t *testing.T) {
	p := target.NetInterfaceProperty
	for _, v := range target.NetInterfaces.Variants() {
		fromString, err := p.FromString(target.NetInterfaces.CanonicalName(v))
		require.NoError(t, err)
		assert.Equal(t, v, fromString)

		fromAST, diags := p.FromAST(p.ToAST(v))
		require.False(t, diags.HasErrors(), diags.Error())
		assert.Equal(t, v, fromAST)
	}
}

func TestNetInterface_CaseInsensitive(t *testing.T) {
	for _, in := range []string{"ETHERNET", "ethernet", "Ethernet"} {
		v, err := target.NetInterfaceProperty.FromString(in)
		require.NoError(t, err)
		assert.Equal(t, target.Ethernet, v)
	}
}

func TestNetInterface_UnknownOption(t *testing.T) {
	_, err := target.NetInterfaceProperty.FromString("bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")

	_, diags := target.NetInterfaceProperty.FromAST(parseExpr(t, `"bogus"`))
	require.True(t, diags.HasErrors())
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Detail, `"bogus"`)
	assert.Contains(t, diags[0].Detail, "ethernet, sicslowpan")
}

func TestNetInterface_FromASTRejectsStructuredValues(t *testing.T) {
	for _, src := range []string{`["ethernet"]`, `{ name = "ethernet" }`, `null`} {
		_, diags := target.NetInterfaceProperty.FromAST(parseExpr(t, src))
		assert.True(t, diags.HasErrors(), src)
	}
}

func TestNetInterface_Default(t *testing.T) {
	assert.Equal(t, target.Ethernet, target.NetInterfaces.Default())
	assert.Equal(t, target.Ethernet, target.NetInterfaceProperty.InitialValue())
	assert.Equal(t, "ethernet", target.Ethernet.String())
	assert.Equal(t, "sicslowpan", target.SixLoWPAN.String())

	cfg := target.NewConfig()
	assert.Equal(t, target.Ethernet, target.Get(cfg, target.NetInterfaceProperty))
	assert.False(t, cfg.IsSet(target.NetInterfaceProperty))
	assert.Nil(t, cfg.Lookup(target.NetInterfaceProperty))
}

func TestNetInterface_Validate(t *testing.T) {
	testCases := []struct {
		name          string
		src           string
		expectCount   int
		expectSev     hcl.DiagnosticSeverity
		expectAnchor  string // "key" or "value"
		expectSummary string
	}{
		{
			name:        "unset is a no-op even when not federated",
			src:         `platform = "native"`,
			expectCount: 0,
		},
		{
			name: "not federated reports one key-anchored error",
			src: `
net-interface = "ethernet"
`,
			expectCount:   1,
			expectSev:     hcl.DiagError,
			expectAnchor:  "key",
			expectSummary: "Property requires a federated program",
		},
		{
			name: "not federated stops before the platform check",
			src: `
net-interface = "sicslowpan"
platform      = "native"
`,
			expectCount:   1,
			expectSev:     hcl.DiagError,
			expectAnchor:  "key",
			expectSummary: "Property requires a federated program",
		},
		{
			name: "sicslowpan off zephyr reports one value-anchored warning",
			src: `
federated     = true
net-interface = sicslowpan
platform      = "native"
`,
			expectCount:   1,
			expectSev:     hcl.DiagWarning,
			expectAnchor:  "value",
			expectSummary: target.CheckSixLoWPANPlatform.Summary,
		},
		{
			name: "sicslowpan with default platform warns",
			src: `
federated     = true
net-interface = "SICSLOWPAN"
`,
			expectCount:   1,
			expectSev:     hcl.DiagWarning,
			expectAnchor:  "value",
			expectSummary: target.CheckSixLoWPANPlatform.Summary,
		},
		{
			name: "sicslowpan on zephyr is fine",
			src: `
federated     = true
net-interface = "sicslowpan"
platform      = "zephyr"
`,
			expectCount: 0,
		},
		{
			name: "ethernet on any platform is fine",
			src: `
federated     = true
net-interface = "ethernet"
platform      = "riot"
`,
			expectCount: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lr := loadTarget(t, tc.src)
			require.Empty(t, lr.collector.Diagnostics(), "loading should not report anything")

			diags := lr.validate(nil)
			require.Len(t, diags, tc.expectCount, diags.Error())
			if tc.expectCount == 0 {
				return
			}

			d := diags[0]
			assert.Equal(t, tc.expectSev, d.Severity)
			assert.Equal(t, tc.expectSummary, d.Summary)

			attr := lr.attrs["net-interface"]
			require.NotNil(t, attr)
			require.NotNil(t, d.Subject)
			switch tc.expectAnchor {
			case "key":
				assert.Equal(t, attr.NameRange, *d.Subject)
			case "value":
				assert.Equal(t, attr.Expr.Range(), *d.Subject)
			}
		})
	}
}

func TestNetInterface_SeverityPolicy(t *testing.T) {
	lr := loadTarget(t, `
federated     = true
net-interface = "sicslowpan"
platform      = "native"
`)
	policy := diag.NewPolicy().Override(target.CheckSixLoWPANPlatform.ID, hcl.DiagError)

	diags := lr.validate(policy)
	require.Len(t, diags, 1)
	assert.Equal(t, hcl.DiagError, diags[0].Severity)
}

func TestNetInterface_ValidateDoesNotMutate(t *testing.T) {
	lr := loadTarget(t, `net-interface = "sicslowpan"`)
	before := lr.cfg.Defined()

	lr.validate(nil)
	lr.validate(nil)

	assert.Equal(t, before, lr.cfg.Defined())
	assert.Equal(t, target.SixLoWPAN, target.Get(lr.cfg, target.NetInterfaceProperty))
	assert.False(t, lr.cfg.IsFederated())
}
