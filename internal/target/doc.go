// Package target defines the catalog of target properties and the per-run
// configuration that holds their resolved values.
//
// Each property is a package-level singleton implementing Property[T] for
// its value type. The catalog of definitions is built once at init and never
// changes, so concurrent runs can share it freely. A Config, by contrast,
// belongs to exactly one run: it records the value of every property the
// run set, together with the HCL attribute it came from so that validation
// can point diagnostics at the key or the value of that attribute.
package target
