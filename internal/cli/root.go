package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/fractalwonder/fwdecode/pkg/buildinfo"
)

// Execute runs the fwdecode CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (decode, serve),
// configures logging based on the --verbose flag, and executes the command
// tree. The logger is attached to the context and accessible to all commands
// via loggerFromContext.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd builds the root command with persistent flags and subcommands.
func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "fwdecode",
		Short:         "fwdecode inspects FractalWonder share URLs",
		Long:          `fwdecode decodes the compressed state token embedded in FractalWonder share URLs and reports the viewport coordinates, zoom depth, and render settings it contains, at full precision.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/fwdecode/config.toml)")

	root.AddCommand(newDecodeCmd(&configPath))
	root.AddCommand(newServeCmd(&configPath))

	return root
}
