package target

import (
	"fmt"
)

// Catalog is an immutable, ordered set of property definitions with unique
// names.
type Catalog struct {
	defs   []Definition
	byName map[string]Definition
}

// NewCatalog builds a catalog and panics if two definitions share a name.
func NewCatalog(defs ...Definition) *Catalog {
	c := &Catalog{byName: make(map[string]Definition, len(defs))}
	for _, d := range defs {
		if _, exists := c.byName[d.Name()]; exists {
			panic(fmt.Sprintf("target property with name '%s' already registered", d.Name()))
		}
		c.byName[d.Name()] = d
		c.defs = append(c.defs, d)
	}
	return c
}

// Lookup returns the definition registered under name.
func (c *Catalog) Lookup(name string) (Definition, bool) {
	d, ok := c.byName[name]
	return d, ok
}

// Definitions returns the definitions in registration order.
func (c *Catalog) Definitions() []Definition {
	return append([]Definition(nil), c.defs...)
}

// Names returns the property names in registration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.defs))
	for i, d := range c.defs {
		names[i] = d.Name()
	}
	return names
}

// catalog holds every property known to this build. Validation runs in this
// order, so the mode flags come first.
var catalog = NewCatalog(
	FederatedProperty,
	PlatformProperty,
	NetInterfaceProperty,
	LoggingProperty,
)

// Lookup returns the built-in property registered under name.
func Lookup(name string) (Definition, bool) {
	return catalog.Lookup(name)
}

// Definitions returns all built-in properties.
func Definitions() []Definition {
	return catalog.Definitions()
}

// Names returns the names of all built-in properties.
func Names() []string {
	return catalog.Names()
}
