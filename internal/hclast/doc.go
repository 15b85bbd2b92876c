// Package hclast is the boundary between target properties and the HCL
// syntax tree they are written in.
//
// Properties only ever need three things from the tree: a single scalar
// string out of an expression, an expression built from a string, and the
// key and value spans of an attribute for anchoring diagnostics. Everything
// else about HCL stays behind this package.
package hclast
