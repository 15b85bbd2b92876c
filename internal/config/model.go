package config

import (
	"github.com/hashicorp/hcl/v2"
)

// Program is the unified representation of one program description.
type Program struct {
	// Target holds the attributes of the target block, keyed by name.
	Target hcl.Attributes
	// TargetRange is the definition range of the target block, nil if the
	// program has none.
	TargetRange *hcl.Range
	Federates   []*Federate
	// Files maps filenames to parsed sources for diagnostic rendering.
	Files map[string]*hcl.File
}

// Federate is one node of a federated program.
type Federate struct {
	Name string
	// Board overrides the target board for this federate; empty if unset.
	Board string
	// Address is the IP address given by the user; empty if unset.
	Address      string
	AddressRange *hcl.Range
	DefRange     hcl.Range
}

// NewProgram returns an empty program.
func NewProgram() *Program {
	return &Program{
		Target: make(hcl.Attributes),
		Files:  make(map[string]*hcl.File),
	}
}

// IsFederated reports whether the program declares any federate.
func (p *Program) IsFederated() bool {
	return len(p.Federates) > 0
}

// Federate returns the federate with the given name, or nil.
func (p *Program) Federate(name string) *Federate {
	for _, f := range p.Federates {
		if f.Name == name {
			return f
		}
	}
	return nil
}
