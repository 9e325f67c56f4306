package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/carwise/carwise/internal/server"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the garage and scoring API over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if configured := viper.GetString("server.address"); addr == "" && configured != "" {
				addr = configured
			}
			if addr == "" {
				addr = ":8080"
			}

			srv := server.NewHTTPServer(addr, store)

			errCh := make(chan error, 1)
			go func() {
				slog.Info("Serving carwise API", "addr", addr)
				if serveErr := srv.ListenAndServe(); !errors.Is(serveErr, http.ErrServerClosed) {
					errCh <- serveErr
				}
			}()

			select {
			case serveErr := <-errCh:
				return fmt.Errorf("server failed: %w", serveErr)
			case <-ctx.Done():
				slog.Info("Shutting down server...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
					return fmt.Errorf("failed to shut down server: %w", shutdownErr)
				}
				return nil
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")
	_ = viper.BindPFlag("server.address", cmd.Flags().Lookup("addr"))

	return cmd
}
