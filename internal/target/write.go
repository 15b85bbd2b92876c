package target

import (
	"github.com/hashicorp/hcl/v2/hclwrite"
)

// Write sets every property the user wrote in cfg on body, in its canonical
// spelling. Derived values are not written. Attributes already present in
// body keep their position; new ones are appended.
func Write(cfg *Config, body *hclwrite.Body) {
	for _, d := range cfg.Defined() {
		e := cfg.entries[d]
		if e.attr == nil {
			continue
		}
		body.SetAttributeRaw(d.Name(), Tokens(cfg, d))
	}
}

// Tokens returns the canonical tokens of the value recorded for d, or nil
// if d is unset.
func Tokens(cfg *Config, d Definition) hclwrite.Tokens {
	e, ok := cfg.entries[d]
	if !ok {
		return nil
	}
	return d.encode(e.value)
}
