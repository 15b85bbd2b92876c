package config

import (
	"context"

	"github.com/hashicorp/hcl/v2"
)

// Loader is the interface for a format-specific program loader.
type Loader interface {
	// Load reads the program description from the given paths. The returned
	// Program is never nil, so that callers can render diagnostics against
	// its source files even when loading failed.
	Load(ctx context.Context, paths ...string) (*Program, hcl.Diagnostics)
}
