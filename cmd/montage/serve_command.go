package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"montage/internal/apiserver"
	"montage/internal/assets"
	"montage/internal/logging"
	"montage/internal/session"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string

	cmd := &cobra.Command{
		Use:   "serve <project>",
		Short: "Serve the timeline API for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			catalog, err := assets.Open(cfg)
			if err != nil {
				return err
			}
			defer catalog.Close()

			sess, err := session.Open(signalCtx, cfg, args[0], session.Options{
				Logger:   logger,
				Resolver: catalog,
			})
			if err != nil {
				return err
			}
			defer sess.Close()

			addr := bind
			if addr == "" {
				addr = cfg.Paths.APIBind
			}
			server := apiserver.NewServer(addr, sess, logger)

			errCh := make(chan error, 1)
			go func() {
				errCh <- server.Start()
			}()

			select {
			case err := <-errCh:
				return err
			case <-signalCtx.Done():
			}

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown server: %w", err)
			}
			return <-errCh
		},
	}

	cmd.Flags().StringVar(&bind, "bind", "", "Bind address (defaults to the configured api_bind)")
	return cmd
}
