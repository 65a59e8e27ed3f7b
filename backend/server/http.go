package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"recipe-book/backend/global"
)

const shutdownGrace = 15 * time.Second

// RunHTTPServer serves handler until ctx is cancelled, then shuts down
// gracefully.
func RunHTTPServer(ctx context.Context, host string, port int, readHeaderTimeout time.Duration, handler http.Handler) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort(host, fmt.Sprintf("%d", port)),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		global.Logger.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	global.Logger.Info().Msg("http server shutting down")
	return srv.Shutdown(shutdownCtx)
}
