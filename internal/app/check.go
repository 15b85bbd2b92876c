package app

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"golang.org/x/sync/errgroup"
)

// Check validates each path as an independent program. Programs are
// resolved concurrently; their diagnostics are printed in argument order.
// The returned error is the hcl.Diagnostics holding every error found.
func (a *App) Check(ctx context.Context, paths ...string) error {
	ctx = a.withLogger(ctx)
	a.logger.Debug("Check started.", "paths", paths)

	runs := make([]*run, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			runs[i] = a.resolve(gctx, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("check aborted: %w", err)
	}

	var errs hcl.Diagnostics
	for _, r := range runs {
		if err := a.printDiagnostics(r.program.Files, r.diags); err != nil {
			return err
		}
		errCount := countSeverity(r.diags, hcl.DiagError)
		warnCount := countSeverity(r.diags, hcl.DiagWarning)
		fmt.Fprintf(a.outW, "%s: %d error(s), %d warning(s)\n", r.path, errCount, warnCount)
		errs = append(errs, errorsOf(r.diags)...)
	}

	a.logger.Info("Check finished.", "programs", len(runs), "errors", len(errs))
	if len(errs) > 0 {
		return errs
	}
	return nil
}
