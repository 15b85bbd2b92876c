package target_test

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/targetconf/internal/target"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_Canonicalizes(t *testing.T) {
	src := `net-interface = SICSLOWPAN
platform = { board = "rpi_pico", name = Zephyr }
logging = "Debug"
bogus = 1
`
	lr := loadTarget(t, src)
	target.Set(lr.cfg, target.FederatedProperty, true, nil)

	f, diags := hclwrite.ParseConfig([]byte(src), "target.hcl", hcl.Pos{Line: 1, Column: 1})
	require.False(t, diags.HasErrors())

	target.Write(lr.cfg, f.Body())
	out := string(hclwrite.Format(f.Bytes()))

	assert.Regexp(t, `net-interface\s+= "sicslowpan"`, out)
	assert.Regexp(t, `logging\s+= "debug"`, out)
	assert.Regexp(t, `name\s+= "zephyr"`, out)
	assert.Regexp(t, `bogus\s+= 1`, out, "unknown attributes are left alone")
	assert.NotContains(t, out, "federated", "derived values are not written")

	reloaded := loadTarget(t, out)
	assert.Equal(t, target.Get(lr.cfg, target.PlatformProperty), target.Get(reloaded.cfg, target.PlatformProperty))
	assert.Equal(t, target.SixLoWPAN, target.Get(reloaded.cfg, target.NetInterfaceProperty))
}

func TestTokens(t *testing.T) {
	cfg := target.NewConfig()
	assert.Nil(t, target.Tokens(cfg, target.LoggingProperty))

	target.Set(cfg, target.LoggingProperty, target.LogWarn, nil)
	assert.Equal(t, `"warn"`, string(target.Tokens(cfg, target.LoggingProperty).Bytes()))
}
