package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/vdiff/internal/counter"
	"github.com/vango-dev/vdiff/pkg/metrics"
	"github.com/vango-dev/vdiff/pkg/server"
)

func serveCmd(c *cli) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the live preview server",
		Long: `Serve the counter application. Each browser or client connection gets
its own session; clicks travel to the server as event frames and come back as
patch scripts.

Routes:
  /         server-rendered page
  /ws       websocket session
  /metrics  Prometheus metrics
  /healthz  liveness

Examples:
  vdiff serve
  vdiff serve --host 0.0.0.0 --port 9000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port > 0 {
				c.cfg.Server.Port = port
			}
			if host != "" {
				c.cfg.Server.Host = host
			}
			if err := c.cfg.Validate(); err != nil {
				return err
			}
			readTimeout, _ := c.cfg.ReadTimeout()

			s := server.New(server.Config{
				Address:     c.cfg.Address(),
				ReadTimeout: readTimeout,
			}, func() server.App {
				return counter.New()
			},
				server.WithLogger(c.logger),
				server.WithMetrics(metrics.New()),
			)

			success(cmd.OutOrStdout(), "serving on http://%s", c.cfg.Address())
			return s.Run(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port (default server.port from vdiff.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host (default server.host from vdiff.json)")
	return cmd
}
