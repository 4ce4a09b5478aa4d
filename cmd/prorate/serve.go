package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/caportal/prorate-calculator/internal/metrics"
	"github.com/caportal/prorate-calculator/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the proration API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				a.cfg.Port = port
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(a.cfg, a.engine, metrics.New(), a.logger)
			return srv.ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (default PRORATE_PORT)")
	return cmd
}
