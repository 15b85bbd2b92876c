package zephyr

import (
	"fmt"
	"net/netip"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/targetconf/internal/config"
	"github.com/specialistvlad/targetconf/internal/kconfig"
	"github.com/specialistvlad/targetconf/internal/target"
)

// ConfFile is the name of the generated fragment.
const ConfFile = "prj_lf.conf"

// maxConnections bounds the sockets a federate keeps open.
const maxConnections = "10"

// Context says what a fragment is generated for. The zero value is a
// standalone program.
type Context struct {
	// Federate is nil for a standalone program.
	Federate *config.Federate
}

// Standalone is the context of a program that is not federated.
func Standalone() Context { return Context{} }

// Federated is the context of one federate.
func Federated(fed *config.Federate) Context { return Context{Federate: fed} }

// IsFederated reports whether the context names a federate.
func (c Context) IsFederated() bool { return c.Federate != nil }

// Artifact is one generated fragment.
type Artifact struct {
	// Federate is empty for a standalone program.
	Federate string
	Board    Board
	Content  string
}

// Path returns where the fragment goes, relative to the output directory.
func (a Artifact) Path() string {
	if a.Federate == "" {
		return ConfFile
	}
	return a.Federate + "/" + ConfFile
}

// PrjConf renders the fragment for one context. Federates on 6LoWPAN
// without an address of their own get the next address from alloc.
func PrjConf(cfg *target.Config, ctx Context, alloc *Allocator) (string, error) {
	b := kconfig.New()
	// Blank lines between the fragment and a board snippet. The 6LoWPAN
	// fragment is built section by section and is followed by two.
	gap := 1
	switch {
	case !ctx.IsFederated():
		standalone(b)
	case target.Get(cfg, target.NetInterfaceProperty) == target.Ethernet:
		federatedEthernet(b)
	default:
		addr, err := federateAddress(ctx.Federate, alloc)
		if err != nil {
			return "", err
		}
		federatedSixLoWPAN(b, addr, logLevel(target.Get(cfg, target.LoggingProperty)))
		gap = 2
	}

	if snippet := findSnippet(SelectBoard(cfg, ctx.Federate).Name); snippet != nil {
		for range gap {
			b.Blank()
		}
		snippet.apply(b)
	}
	return b.Render(), nil
}

// Generate renders one fragment per federate, or a single one for a
// standalone program. Addresses written on federates are reserved before
// any address is allocated.
func Generate(cfg *target.Config, program *config.Program) ([]Artifact, hcl.Diagnostics) {
	alloc := NewAllocator()
	var diags hcl.Diagnostics
	for _, fed := range program.Federates {
		if fed.Address == "" {
			continue
		}
		addr, err := netip.ParseAddr(fed.Address)
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid federate address",
				Detail:   fmt.Sprintf("Federate %q has an invalid IP address: %s.", fed.Name, err),
				Subject:  fed.AddressRange,
			})
			continue
		}
		alloc.Reserve(addr)
	}
	if diags.HasErrors() {
		return nil, diags
	}

	if !cfg.IsFederated() {
		content, err := PrjConf(cfg, Standalone(), alloc)
		if err != nil {
			return nil, generationFailed(err, nil)
		}
		return []Artifact{{Board: SelectBoard(cfg, nil), Content: content}}, nil
	}

	artifacts := make([]Artifact, 0, len(program.Federates))
	for _, fed := range program.Federates {
		content, err := PrjConf(cfg, Federated(fed), alloc)
		if err != nil {
			return nil, generationFailed(err, fed.DefRange.Ptr())
		}
		artifacts = append(artifacts, Artifact{
			Federate: fed.Name,
			Board:    SelectBoard(cfg, fed),
			Content:  content,
		})
	}
	return artifacts, nil
}

func generationFailed(err error, subject *hcl.Range) hcl.Diagnostics {
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  "Failed to generate Zephyr configuration",
		Detail:   err.Error(),
		Subject:  subject,
	}}
}

func federateAddress(fed *config.Federate, alloc *Allocator) (netip.Addr, error) {
	if fed.Address == "" {
		addr, err := alloc.Next()
		if err != nil {
			return netip.Addr{}, fmt.Errorf("federate %q: %w", fed.Name, err)
		}
		return addr, nil
	}
	addr, err := netip.ParseAddr(fed.Address)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("federate %q: %w", fed.Name, err)
	}
	if !addr.Is6() || addr.Is4In6() {
		return netip.Addr{}, fmt.Errorf("federate %q: 6LoWPAN needs an IPv6 address, got %s", fed.Name, addr)
	}
	return addr, nil
}

// logLevel maps a logging level to Zephyr's LOG_DEFAULT_LEVEL.
func logLevel(l target.LogLevel) string {
	switch l {
	case target.LogError:
		return "1"
	case target.LogWarn:
		return "2"
	case target.LogInfo, target.LogLog:
		return "3"
	case target.LogDebug:
		return "4"
	}
	return "3"
}

func tcpIPChannel(b *kconfig.Builder) {
	b.Append("POSIX_API", "y").
		Append("MAIN_STACK_SIZE", "16384").
		Append("HEAP_MEM_POOL_SIZE", "1024").
		Append("LF_TCP_IP_CHANNEL_STACK_SIZE", "4096").
		Append("LF_TCP_IP_CHANNEL_THREAD_PREEMPT_LEVEL", "0").
		Append("LF_TCP_IP_CHANNEL_THREAD_NAME", kconfig.Quote("lf_tcpip_rx"))
}

func standalone(b *kconfig.Builder) {
	b.Append("ETH_NATIVE_POSIX", "n").
		Append("NET_DRIVERS", "y").
		Append("NETWORKING", "y").
		Append("NET_TCP", "y").
		Append("NET_UDP", "y").
		Append("NET_IPV4", "y").
		Append("NET_SOCKETS", "y")
	tcpIPChannel(b)
}

func federatedEthernet(b *kconfig.Builder) {
	b.Append("ETH_NATIVE_POSIX", "n").
		Append("NET_DRIVERS", "y").
		Append("NETWORKING", "y").
		Append("NET_TCP", "y").
		Append("NET_IPV4", "y").
		Append("NET_SOCKETS", "y")
	tcpIPChannel(b)
	b.Blank().
		Comment("Network address config").
		Append("NET_CONFIG_SETTINGS", "y").
		Append("NET_CONFIG_NEED_IPV4", "y").
		Append("NET_CONFIG_MY_IPV4_ADDR", kconfig.Quote("127.0.0.1")).
		Append("NET_SOCKETS_OFFLOAD", "y").
		Append("NET_NATIVE_OFFLOADED_SOCKETS", "y")
}

func federatedSixLoWPAN(b *kconfig.Builder, addr netip.Addr, level string) {
	b.Comment("Lingua Franca Zephyr configuration file").
		Comment("This is a generated file, do not edit.").
		Blank().
		Append("PRINTK", "y").
		Append("USE_SEGGER_RTT", "y").
		Append("LOG_BACKEND_RTT", "y").
		Append("DEBUG_INFO", "y").
		Append("RTT_CONSOLE", "y").
		Append("UART_CONSOLE", "n").
		Append("LOG_MODE_IMMEDIATE", "y").
		Append("LOG", "y")

	b.Heading("Diagnostics and logging").
		Append("LOG_PROCESS_THREAD", "n").
		Append("LOG_DEFAULT_LEVEL", level)

	b.Heading("POSIX sockets and networking").
		Append("NETWORKING", "y").
		Append("NET_IPV6", "y").
		Append("NET_TCP", "y").
		Append("NET_SOCKETS", "y").
		Append("NET_CONNECTION_MANAGER", "y").
		Append("POSIX_API", "y")

	b.Heading("Network buffers").
		Append("NET_PKT_RX_COUNT", "8").
		Append("NET_PKT_TX_COUNT", "8").
		Append("NET_BUF_RX_COUNT", "16").
		Append("NET_BUF_TX_COUNT", "16").
		Append("NET_CONTEXT_NET_PKT_POOL", "n")

	b.Heading("IP address options").
		Append("NET_IF_UNICAST_IPV6_ADDR_COUNT", "3").
		Append("NET_IF_MCAST_IPV6_ADDR_COUNT", "4").
		Append("NET_MAX_CONTEXTS", "6").
		Append("NET_MAX_CONN", maxConnections)

	b.Heading("Network shell").
		Append("NET_SHELL", "n").
		Append("SHELL", "n")

	b.Heading("Network application options and configs").
		Append("NET_CONFIG_SETTINGS", "y").
		Append("NET_CONFIG_NEED_IPV4", "n").
		Append("NET_CONFIG_NEED_IPV6", "y").
		Append("NET_CONFIG_MY_IPV6_ADDR", kconfig.Quote(addr.String())).
		Append("NET_MAX_CONN", maxConnections).
		Append("ZVFS_OPEN_MAX", "16").
		Append("NET_IF_MAX_IPV6_COUNT", "2")

	b.Heading("IEEE802.15.4 6LoWPAN").
		Append("BT", "n").
		Append("NET_UDP", "y").
		Append("NET_IPV4", "n").
		Append("NET_L2_IEEE802154_FRAGMENT_REASS_CACHE_SIZE", "8").
		Append("NET_L2_IEEE802154_RADIO_CSMA_CA", "y").
		Append("NET_L2_IEEE802154_RADIO_ALOHA", "n").
		Append("NET_CONFIG_MY_IPV4_ADDR", kconfig.Quote("")).
		Append("NET_CONFIG_PEER_IPV4_ADDR", kconfig.Quote("")).
		Append("NET_L2_IEEE802154", "y").
		Append("NET_L2_IEEE802154_SHELL", "n").
		Append("NET_IPV6_ND", "n").
		Append("NET_IPV6_NBR_CACHE", "n").
		Append("NET_CONFIG_IEEE802154_CHANNEL", "26")

	b.Heading("Additional system configuration").
		Append("SYSTEM_WORKQUEUE_STACK_SIZE", "2048").
		Append("MAIN_STACK_SIZE", "4096").
		Append("LF_TCP_IP_CHANNEL_STACK_SIZE", "2048").
		Append("HEAP_MEM_POOL_SIZE", "1024").
		Append("THREAD_CUSTOM_DATA", "y").
		Comment("Enable floating point formatting/logging support.").
		Comment("This increases code size, so feel free to disable if not needed.").
		Append("CBPRINTF_FP_SUPPORT", "y")
}
