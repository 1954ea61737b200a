package cli

import (
	"github.com/spf13/cobra"

	"github.com/fractalwonder/fwdecode/internal/server"
)

// newServeCmd creates the serve command, which exposes the decoder as a
// small local HTTP API for tooling that wants machine-readable decodes
// without shelling out.
func newServeCmd(configPath *string) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the decoder as a local HTTP API",
		Long: `Serve the token decoder over HTTP.

Endpoints:
  POST /api/v1/decode   {"token": "<url-or-token>"} -> {"state": {...}}
  GET  /healthz         liveness probe`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			logger := loggerFromContext(c.Context())

			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			addr := listen
			if addr == "" {
				addr = cfg.Serve.Listen
			}
			if addr == "" {
				addr = defaultListen
			}

			srv := server.New(logger)
			logger.Infof("Listening on %s", addr)
			return srv.ListenAndServe(c.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "listen address (default "+defaultListen+")")

	return cmd
}
