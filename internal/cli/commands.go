package cli

import (
	"github.com/spf13/cobra"
)

func newCheckCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "check PATH...",
		Short: "Validate the target properties of one or more programs",
		Long: `Validate the target properties of each program. A path is a .hcl file or a
directory of .hcl files forming one program. Programs are checked
independently.`,
		Example: `  targetconf check main.hcl
  targetconf check --severity net-interface/sicslowpan-platform=error programs/*`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.app.Check(cmd.Context(), args...)
		},
	}
}

func newGenerateCmd(r *root) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate PATH",
		Short: "Write the Zephyr prj_lf.conf for a program",
		Long: `Check a program and write its Zephyr Kconfig fragment. A standalone
program gets OUT/prj_lf.conf; a federated one gets OUT/<federate>/prj_lf.conf
for every federate. The program must target the zephyr platform.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := r.app.Generate(cmd.Context(), args[0])
			return err
		},
	}
	cmd.Flags().StringP("out-dir", "o", "", "Output directory (default: "+DefaultOutDir+")")
	return cmd
}

func newFmtCmd(r *root) *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Rewrite target properties in their canonical spelling",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.app.Format(cmd.Context(), args[0], write)
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the result back to the file instead of printing it")
	return cmd
}

func newPropertiesCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "properties",
		Short: "List the known target properties",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(*cobra.Command, []string) error {
			r.app.Properties()
			return nil
		},
	}
}
