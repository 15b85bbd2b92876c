// Package diag carries validation findings from target properties to the
// caller.
//
// Properties never return findings directly. They report through a Reporter,
// which decides the severity of policy-controlled checks and forwards every
// diagnostic to a Sink. The core never aggregates or deduplicates; that is
// left to the Sink, and Collector is the aggregating Sink used by the
// application layer.
package diag
