package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"ctchen222/tictactoe/internal/api/controller"
	"ctchen222/tictactoe/internal/api/service"
	"ctchen222/tictactoe/internal/config"
	"ctchen222/tictactoe/internal/server"
	"ctchen222/tictactoe/internal/validator"

	"github.com/spf13/cobra"
)

func newServeCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the stateless move advisor HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validator.RegisterGin(); err != nil {
				return err
			}

			moveController := controller.NewMoveController(service.NewMoveService())
			srv := server.NewServer(moveController)

			httpServer := &http.Server{
				Addr:              cfg.HTTPAddr,
				Handler:           srv.Engine(),
				ReadHeaderTimeout: 5 * time.Second,
			}
			return serve(cmd.Context(), httpServer)
		},
	}

	cmd.Flags().StringVar(&cfg.HTTPAddr, "addr", cfg.HTTPAddr, "Listen address (env: TTT_HTTP_ADDR)")
	return cmd
}

// serve runs httpServer until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, httpServer *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "http server started", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}

	slog.Info("Server exiting")
	return nil
}
