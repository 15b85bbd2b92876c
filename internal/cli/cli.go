package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/targetconf/internal/app"
	"github.com/specialistvlad/targetconf/internal/config"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	ExitDiagnostics = 1
	ExitUsage       = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	return &ExitError{Code: ExitUsage, Message: err.Error()}
}

// usageArgs turns argument validation failures into usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

// root carries what the subcommands share.
type root struct {
	outW, errW   io.Writer
	loader       config.Loader
	settingsFile string
	app          *app.App
}

// NewRootCmd builds the command tree. Results go to outW; logs go to errW.
func NewRootCmd(outW, errW io.Writer, loader config.Loader) *cobra.Command {
	r := &root{outW: outW, errW: errW, loader: loader}

	cmd := &cobra.Command{
		Use:   "targetconf",
		Short: "Check target properties and generate Zephyr configuration",
		Long: `targetconf reads program descriptions written in HCL: a target block with
target properties and optional federate blocks. It checks the properties
against each other and renders the Kconfig fragment (prj_lf.conf) a Zephyr
build needs.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			cfg, err := LoadSettings(r.settingsFile, cmd.Flags())
			if err != nil {
				return usageError(err)
			}
			a, err := app.NewApp(r.outW, r.errW, cfg, r.loader)
			if err != nil {
				return usageError(err)
			}
			r.app = a
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(outW)
	cmd.SetErr(errW)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	flags := cmd.PersistentFlags()
	flags.StringVar(&r.settingsFile, "config", "", "settings file (default: ./"+DefaultSettingsFile+")")
	flags.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.String("log-format", "", "Log output format. Options: 'text' or 'json'.")
	flags.String("color", "", "Colour diagnostics. Options: 'auto', 'always', 'never'.")
	flags.StringToString("severity", nil, "Override the severity of a check, e.g. net-interface/sicslowpan-platform=error.")

	_ = cmd.RegisterFlagCompletionFunc("log-level", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("color", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{app.ColorAuto, app.ColorAlways, app.ColorNever}, cobra.ShellCompDirectiveNoFileComp
	})

	cmd.AddCommand(
		newCheckCmd(r),
		newGenerateCmd(r),
		newFmtCmd(r),
		newPropertiesCmd(r),
	)
	return cmd
}

// Execute runs the command line args and maps failures to an *ExitError.
func Execute(ctx context.Context, args []string, outW, errW io.Writer, loader config.Loader) error {
	cmd := NewRootCmd(outW, errW, loader)
	cmd.SetArgs(args)
	return exitError(cmd.ExecuteContext(ctx))
}

func exitError(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	var diags hcl.Diagnostics
	if errors.As(err, &diags) {
		return &ExitError{Code: ExitDiagnostics, Message: summarize(diags)}
	}
	return &ExitError{Code: ExitDiagnostics, Message: err.Error()}
}

func summarize(diags hcl.Diagnostics) string {
	n := 0
	for _, d := range diags {
		if d.Severity == hcl.DiagError {
			n++
		}
	}
	if n == 1 {
		return "1 error found"
	}
	return fmt.Sprintf("%d errors found", n)
}
