package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/targetconf/internal/config"
	"github.com/specialistvlad/targetconf/internal/ctxlog"
	"github.com/specialistvlad/targetconf/internal/diag"
	"github.com/specialistvlad/targetconf/internal/target"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
	policy *diag.Policy
	style  diagnosticStyle
}

// NewApp is the constructor for the main application. Results and
// diagnostics go to outW, logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger, err := newLogger(cfg, logW)
	if err != nil {
		return nil, err
	}
	logger.Debug("Logger configured successfully.")

	policy, err := diag.PolicyFromSettings(cfg.Severity)
	if err != nil {
		return nil, fmt.Errorf("invalid severity settings: %w", err)
	}
	logger.Debug("Severity policy configured.", "overrides", len(cfg.Severity))

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
		policy: policy,
		style:  styleFor(outW, cfg.Color),
	}, nil
}

// run is the outcome of resolving one program.
type run struct {
	path    string
	program *config.Program
	target  *target.Config
	diags   hcl.Diagnostics
}

// withLogger returns ctx carrying the app's logger.
func (a *App) withLogger(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

// resolve loads the program at path, resolves its target block and
// validates it. Each call owns its Config and collector.
func (a *App) resolve(ctx context.Context, path string) *run {
	ctx = ctxlog.With(ctx, "path", path)
	logger := ctxlog.FromContext(ctx)

	program, diags := a.loader.Load(ctx, path)
	r := &run{path: path, program: program, diags: diags}
	if diags.HasErrors() {
		logger.Debug("Program failed to load.", "diagnostics", len(diags))
		return r
	}

	collector := &diag.Collector{}
	reporter := diag.NewReporter(collector, a.policy)
	r.target = target.FromProgram(program, reporter)
	logger.Debug("Target block resolved.", "properties", len(r.target.Defined()))

	r.target.Validate(reporter)
	r.diags = append(r.diags, collector.Diagnostics()...)
	logger.Debug("Target validated.",
		"errors", collector.Count(hcl.DiagError),
		"warnings", collector.Count(hcl.DiagWarning))
	return r
}
