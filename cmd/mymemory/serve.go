package main

import (
	"context"

	"github.com/ZanzyTHEbar/mymemory/mmfs/api"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var listen, metricsAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tree, listings and documents over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if listen != "" {
				a.cfg.Server.ListenAddr = listen
			}
			if cmd.Flags().Changed("metrics-addr") {
				a.cfg.Server.MetricsAddr = metricsAddr
			}

			fs, err := a.fileSystem()
			if err != nil {
				return err
			}
			srv := api.NewServer(fs, a.logger)

			p := pool.New().WithContext(cmd.Context()).WithCancelOnError()
			p.Go(func(ctx context.Context) error {
				return srv.Run(ctx, a.cfg.Server.ListenAddr)
			})
			if addr := a.cfg.Server.MetricsAddr; addr != "" {
				p.Go(func(ctx context.Context) error {
					return api.RunMetrics(ctx, addr, a.logger)
				})
			}
			return p.Wait()
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "listen address (overrides server.listenAddr)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Prometheus listen address, empty disables it")

	return cmd
}
