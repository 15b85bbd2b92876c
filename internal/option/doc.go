// Package option implements closed enumerations of string-named values.
//
// A Type lists every legal variant of an enumeration together with the
// identifier it is written as in source configuration. Lookups are case
// insensitive, every Type has exactly one default, and the canonical
// spelling of a variant is its lowercased identifier.
package option
