// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It parses program description files, enforces the top-level
// block structure (a single `target` block and any number of labelled
// `federate` blocks) and translates them into the format-agnostic model.
package hcl
