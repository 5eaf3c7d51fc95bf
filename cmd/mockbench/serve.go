package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	grpc_service "github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/pkg/mockapi-grpc-service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the mock backend over gRPC",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		a, err := newApp(cfg, appOptions{logWriter: cmd.ErrOrStderr()})
		if err != nil {
			return err
		}
		defer a.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger := a.utils.GetLogger()
		logger.Info("gRPC server listening", "addr", cfg.Server.Listen, "run_id", a.svc.RunID())
		if err := grpc_service.ListenAndServe(ctx, a.svc, logger, cfg.Server.Listen); err != nil {
			return err
		}
		logger.Info("gRPC server stopped")
		return nil
	},
}
