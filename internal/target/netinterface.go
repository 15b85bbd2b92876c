package target

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/targetconf/internal/diag"
	"github.com/specialistvlad/targetconf/internal/hclast"
	"github.com/specialistvlad/targetconf/internal/option"
)

// NetInterface is the network interface federates communicate over.
type NetInterface int

const (
	Ethernet NetInterface = iota
	SixLoWPAN
)

// NetInterfaces enumerates the legal net-interface values.
var NetInterfaces = option.New("net-interface", Ethernet,
	option.Variant[NetInterface]{Value: Ethernet, Ident: "ETHERNET"},
	option.Variant[NetInterface]{Value: SixLoWPAN, Ident: "SICSLOWPAN"},
)

func (n NetInterface) String() string {
	if !NetInterfaces.Contains(n) {
		return fmt.Sprintf("NetInterface(%d)", int(n))
	}
	return NetInterfaces.CanonicalName(n)
}

// CheckSixLoWPANPlatform fires when sicslowpan is used off Zephyr. It is a
// warning by default; a Policy can promote it to an error.
var CheckSixLoWPANPlatform = diag.Check{
	ID:       "net-interface/sicslowpan-platform",
	Summary:  "Unsupported platform for sicslowpan",
	Severity: hcl.DiagWarning,
}

// NetInterfaceProperty selects the network interface used for federated
// execution.
var NetInterfaceProperty = &OptionProperty[NetInterface]{
	name:        "net-interface",
	description: "Network interface used for communication between federates.",
	typ:         NetInterfaces,
	validate:    validateNetInterface,
}

func validateNetInterface(self *OptionProperty[NetInterface], cfg *Config, r *diag.Reporter) {
	attr := cfg.Lookup(self)
	if attr == nil {
		return
	}

	if !cfg.IsFederated() {
		r.Error(hclast.KeyRange(attr),
			"Property requires a federated program",
			"The net-interface target property requires a federated program.")
		return
	}

	switch Get(cfg, self) {
	case Ethernet:
	case SixLoWPAN:
		if cfg.Platform() != Zephyr {
			r.Check(CheckSixLoWPANPlatform, hclast.ValueRange(attr),
				`The sicslowpan network interface requires the platform target property to be set to "zephyr".`)
		}
	}
}
