// Package cli is responsible for parsing command-line arguments, loading
// tool settings, and handling process-level concerns like exit codes. It
// translates flags, environment and the settings file into the
// application's configuration.
package cli
