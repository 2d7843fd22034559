package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rgehrsitz/ctcgo/internal/api"
	"github.com/rgehrsitz/ctcgo/internal/config"
	"github.com/rgehrsitz/ctcgo/internal/logging"
	"github.com/spf13/cobra"
)

const defaultAddr = ":8080"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculators as a JSON HTTP API",
	Long: `Serve the calculators as a JSON HTTP API under /api/v1. The listen address comes from
--addr, then CTCGO_ADDR, then :8080. Logs are JSON on stdout at LOG_LEVEL.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		logger := logging.Setup()

		regimesFile, _ := cmd.Flags().GetString("regimes-file")
		reg, err := config.LoadRegimeRegistry(regimesFile)
		if err != nil {
			logging.Fatal("failed to load regimes", "error", err, "file", regimesFile)
		}

		addr, _ := cmd.Flags().GetString("addr")
		if !cmd.Flags().Changed("addr") {
			if env := os.Getenv(envAddr); env != "" {
				addr = env
			}
		}

		s := api.NewServer(reg, logger)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- s.Start(addr)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				logging.Fatal("server failed", "error", err)
			}
			return
		case <-ctx.Done():
		}

		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logging.Fatal("graceful shutdown failed", "error", err)
		}
	},
}

func init() {
	serveCmd.Flags().String("addr", defaultAddr, "Listen address")
	rootCmd.AddCommand(serveCmd)
}
