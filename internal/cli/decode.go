package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fractalwonder/fwdecode/pkg/statetoken"
)

// decodeOpts holds the command-line flags for the decode command.
type decodeOpts struct {
	jsonOnly bool   // print only the raw JSON document
	raw      bool   // append the raw JSON document to the report
	noColor  bool   // disable ANSI styling
	output   string // output file path (stdout if empty)
}

// newDecodeCmd creates the decode command. It accepts either a full share
// URL (only the fragment is used) or a bare v1: token.
func newDecodeCmd(configPath *string) *cobra.Command {
	var opts decodeOpts

	cmd := &cobra.Command{
		Use:   "decode <url-or-token>",
		Short: "Decode a share URL or token and print the state document",
		Long: `Decode a FractalWonder share URL or bare state token.

The default output is a human-readable report of the viewport coordinates
(converted from their binary fraction encoding at full precision), the zoom
depth estimate, and the render settings.

Examples:
  fwdecode decode "https://example.com/fractalwonder/#v1:7ZvN..."
  fwdecode decode "v1:7ZvN..."
  fwdecode decode --json "v1:7ZvN..."   # machine-readable document only`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runDecode(c, *configPath, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOnly, "json", false, "output only the decoded JSON document")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "include the raw JSON document in the report")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// runDecode decodes the input and writes either the report or the raw
// document to the selected output.
func runDecode(c *cobra.Command, configPath string, opts decodeOpts, input string) error {
	logger := loggerFromContext(c.Context())

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	opts.raw = opts.raw || cfg.Display.Raw
	opts.noColor = opts.noColor || cfg.Display.NoColor

	state, err := statetoken.Decode(input)
	if err != nil {
		return err
	}
	logger.Debug("decoded state document")

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if opts.jsonOnly {
		err = writeJSON(out, state.Raw())
	} else {
		err = renderReport(out, state, opts.raw, opts.noColor)
	}
	if err != nil {
		return err
	}

	if opts.output != "" {
		logger.Infof("Wrote output to %s", opts.output)
	}
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
