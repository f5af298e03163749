package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/greenaire/site/internal/ui/server"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var listen, assets string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site shell, WASM bundle and assets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Server.Listen = listen
			}
			if assets != "" {
				cfg.Server.Assets = assets
			}

			logger, closeLog, err := buildLogger("server", cfg.Log, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer closeLog()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.Run(ctx, server.Options{
				Listen:           cfg.Server.Listen,
				AssetsDir:        cfg.Server.Assets,
				AllowedOrigins:   cfg.Server.AllowedOrigins,
				RelayEndpoint:    cfg.Relay.Endpoint,
				FallbackEmail:    cfg.Relay.FallbackEmail,
				CarouselInterval: cfg.Carousel.Interval,
				LogLevel:         cfg.Log.Level,
				ShutdownTimeout:  cfg.Server.ShutdownTimeout,
				Logger:           logger,
			})
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "address to listen on (overrides server.listen)")
	cmd.Flags().StringVar(&assets, "assets", "", "directory with main.wasm and wasm_exec.js (overrides server.assets)")
	return cmd
}
