package app

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/targetconf/internal/ctxlog"
	"github.com/specialistvlad/targetconf/internal/diag"
	"github.com/specialistvlad/targetconf/internal/target"
)

// Format rewrites the target block of the file at path so every property
// is spelled canonically, then formats the whole file. The result is
// printed, or written back to path when write is set.
func (a *App) Format(ctx context.Context, path string, write bool) error {
	ctx = a.withLogger(ctx)
	logger := ctxlog.FromContext(ctx)

	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	program, diags := a.loader.Load(ctx, path)
	collector := &diag.Collector{}
	cfg := target.Load(program.Target, diag.NewReporter(collector, a.policy))
	diags = append(diags, collector.Diagnostics()...)
	if diags.HasErrors() {
		if err := a.printDiagnostics(program.Files, diags); err != nil {
			return err
		}
		return errorsOf(diags)
	}

	f, diags := hclwrite.ParseConfig(src, path, hcl.InitialPos)
	if diags.HasErrors() {
		return diags
	}
	if block := f.Body().FirstMatchingBlock("target", nil); block != nil {
		target.Write(cfg, block.Body())
	}
	out := hclwrite.Format(f.Bytes())

	if !write {
		_, err := a.outW.Write(out)
		return err
	}
	if bytes.Equal(out, src) {
		logger.Debug("File already formatted.", "file", path)
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Info("Formatted file.", "file", path)
	fmt.Fprintln(a.outW, path)
	return nil
}
