// Package zephyr generates the Kconfig fragment (prj_lf.conf) that a Zephyr
// build of a program needs.
//
// The fragment depends on whether the program is federated, on the network
// interface federates talk over, on the logging level, and on the board.
// Federates on 6LoWPAN get an IPv6 address, either the one the user wrote on
// the federate or one handed out by an Allocator.
package zephyr
