package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/perchui/perch/internal/server"
)

// serveCommand creates the serve command for running the positioning HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the positioning HTTP API",
		Long: `Run the positioning HTTP API.

The serve command starts an HTTP server exposing the positioning engine:

  POST /v1/position   compute a position from a JSON scene
  GET  /healthz       liveness probe

The server shuts down gracefully on SIGINT/SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := server.New(c.Logger)
			printInfo("Listening on %s", addr)
			if err := srv.ListenAndServe(cmd.Context(), addr); err != nil {
				return fmt.Errorf("serve: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
