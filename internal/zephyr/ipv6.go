package zephyr

import (
	"errors"
	"fmt"
	"net/netip"
)

// ErrAddressesExhausted is returned when no suffix is left in the prefix.
var ErrAddressesExhausted = errors.New("no free IPv6 addresses left")

// Prefix is the unique local prefix federate addresses are taken from.
var Prefix = netip.MustParsePrefix("fd01::/64")

// maxSuffix is the largest suffix handed out; suffixes fill the last group.
const maxSuffix = 0xffff

// Allocator hands out distinct IPv6 addresses within Prefix. Suffixes start
// at 1. An Allocator belongs to one generation run and is not safe for
// concurrent use.
type Allocator struct {
	next     uint32
	reserved map[netip.Addr]struct{}
}

// NewAllocator returns an Allocator with nothing reserved.
func NewAllocator() *Allocator {
	return &Allocator{next: 1, reserved: make(map[netip.Addr]struct{})}
}

// Reserve marks addr as taken so that Next never returns it. IPv4 addresses
// are ignored. Reserving an address inside Prefix also moves the next suffix
// past it.
func (a *Allocator) Reserve(addr netip.Addr) {
	addr = addr.Unmap()
	if !addr.Is6() {
		return
	}
	addr = addr.WithZone("")
	a.reserved[addr] = struct{}{}

	b := addr.As16()
	if b[0] != 0xfd || b[1] != 0x01 {
		return
	}
	suffix := uint32(b[14])<<8 | uint32(b[15])
	a.next = max(a.next, suffix+1)
}

// Next returns the lowest unreserved address at or after the next suffix and
// reserves it. Once the suffixes above the highest reservation run out, it
// falls back to the lowest free suffix in Prefix.
func (a *Allocator) Next() (netip.Addr, error) {
	if addr, ok := a.claim(a.next); ok {
		return addr, nil
	}
	if addr, ok := a.claim(1); ok {
		return addr, nil
	}
	return netip.Addr{}, fmt.Errorf("%w in %s", ErrAddressesExhausted, Prefix)
}

// claim reserves the first free suffix in [from, maxSuffix].
func (a *Allocator) claim(from uint32) (netip.Addr, bool) {
	for suffix := from; suffix <= maxSuffix; suffix++ {
		candidate := suffixAddr(suffix)
		if _, taken := a.reserved[candidate]; taken {
			continue
		}
		a.reserved[candidate] = struct{}{}
		a.next = suffix + 1
		return candidate, true
	}
	return netip.Addr{}, false
}

func suffixAddr(suffix uint32) netip.Addr {
	b := Prefix.Addr().As16()
	b[14] = byte(suffix >> 8)
	b[15] = byte(suffix)
	return netip.AddrFrom16(b)
}
