package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/microstock-labs/stockmeta/internal/config"
	"github.com/microstock-labs/stockmeta/internal/handlers"
)

func newServeCmd() *cobra.Command {
	var (
		port       int
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start web server for the metadata workflow",
		Long: `Starts the stockmeta web interface.

The web interface lets you upload a batch of stock photos, generate
metadata for each image with Gemini, review and optimize keywords, and
download platform-specific CSV exports.`,
		Example: `  # Start server on the configured port (default 8888)
  stockmeta serve

  # Start server on custom port
  stockmeta serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}

			handler := handlers.New(cfg)

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/api/batches", handler.HandleBatches)
			mux.HandleFunc("/api/batches/", handler.HandleBatchDetail)
			mux.HandleFunc("/api/optimize", handler.HandleOptimize)
			mux.HandleFunc("/api/analysis", handler.HandleAnalysis)
			mux.HandleFunc("/api/platforms", handler.HandlePlatforms)
			mux.HandleFunc("/api/export/", handler.HandleExport)
			mux.HandleFunc("/", handler.HandleStatic)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := fmt.Sprintf(":%d", cfg.Server.Port)
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Stockmeta interface available", "addr", addr, "url", "http://localhost"+addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8888, "Port to listen on")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	return cmd
}
