package target

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/targetconf/internal/diag"
)

type entry struct {
	value any
	attr  *hcl.Attribute
}

// Config is the resolved target configuration of one run. It holds at most
// one value per property. A Config is not safe for concurrent use.
type Config struct {
	entries map[Definition]entry
}

// NewConfig returns an empty Config in which every property is unset.
func NewConfig() *Config {
	return &Config{entries: make(map[Definition]entry)}
}

func (c *Config) set(d Definition, v any, attr *hcl.Attribute) {
	c.entries[d] = entry{value: v, attr: attr}
}

// IsSet reports whether a value was recorded for d, whether written by the
// user or derived.
func (c *Config) IsSet(d Definition) bool {
	_, ok := c.entries[d]
	return ok
}

// Lookup returns the attribute the user wrote for d, or nil when d is unset
// or its value was derived.
func (c *Config) Lookup(d Definition) *hcl.Attribute {
	return c.entries[d].attr
}

// Defined returns the definitions that have a value, in catalog order.
func (c *Config) Defined() []Definition {
	var defs []Definition
	for _, d := range Definitions() {
		if c.IsSet(d) {
			defs = append(defs, d)
		}
	}
	return defs
}

// IsFederated reports whether the program is split across federates.
func (c *Config) IsFederated() bool {
	return Get(c, FederatedProperty)
}

// Platform returns the selected platform.
func (c *Config) Platform() Platform {
	return Get(c, PlatformProperty).Platform
}

// Validate runs every property's validation against c. A failing property
// does not stop the others from being checked.
func (c *Config) Validate(r *diag.Reporter) {
	for _, d := range Definitions() {
		d.Validate(c, r)
	}
}
