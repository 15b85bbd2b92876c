// Package config defines the format-agnostic model of a program description:
// the attributes of its target block and the federates it is split into,
// along with the Loader interface that produces it.
//
// Concrete loaders, such as the HCL one, live in separate packages. The
// `target` package resolves the model's attributes into typed properties.
package config
