package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/targetconf/internal/ctxlog"
	"github.com/specialistvlad/targetconf/internal/target"
	"github.com/specialistvlad/targetconf/internal/zephyr"
)

// Generate checks the program at path and writes its Zephyr fragments
// under the configured output directory. It returns the written paths.
func (a *App) Generate(ctx context.Context, path string) ([]string, error) {
	ctx = a.withLogger(ctx)
	logger := ctxlog.FromContext(ctx)

	r := a.resolve(ctx, path)
	if !r.diags.HasErrors() {
		r.diags = append(r.diags, requireZephyr(r)...)
	}
	if err := a.printDiagnostics(r.program.Files, r.diags); err != nil {
		return nil, err
	}
	if r.diags.HasErrors() {
		return nil, errorsOf(r.diags)
	}

	artifacts, diags := zephyr.Generate(r.target, r.program)
	if diags.HasErrors() {
		if err := a.printDiagnostics(r.program.Files, diags); err != nil {
			return nil, err
		}
		return nil, diags
	}

	written := make([]string, 0, len(artifacts))
	for _, artifact := range artifacts {
		dest := filepath.Join(a.config.OutDir, filepath.FromSlash(artifact.Path()))
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return written, fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(dest, []byte(artifact.Content), 0o644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", dest, err)
		}
		logger.Info("Wrote Zephyr configuration.",
			"file", dest,
			"federate", artifact.Federate,
			"board", artifact.Board.Name,
			"default_board", !artifact.Board.Explicit,
			"board_snippet", zephyr.HasSnippet(artifact.Board.Name))
		fmt.Fprintln(a.outW, dest)
		written = append(written, dest)
	}
	return written, nil
}

// requireZephyr reports programs that cannot be generated for Zephyr.
func requireZephyr(r *run) hcl.Diagnostics {
	var diags hcl.Diagnostics
	if platform := r.target.Platform(); platform != target.Zephyr {
		subject := r.program.TargetRange
		if attr := r.target.Lookup(target.PlatformProperty); attr != nil {
			subject = attr.Expr.Range().Ptr()
		}
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unsupported platform",
			Detail:   fmt.Sprintf("Configuration can only be generated for the zephyr platform, not %q.", platform),
			Subject:  subject,
		})
	}
	if r.target.IsFederated() && !r.program.IsFederated() {
		subject := r.program.TargetRange
		if attr := r.target.Lookup(target.FederatedProperty); attr != nil {
			subject = attr.Expr.Range().Ptr()
		}
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "No federates declared",
			Detail:   "A federated program needs at least one federate block.",
			Subject:  subject,
		})
	}
	return diags
}
