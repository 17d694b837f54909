package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/recoverywallet/internal/pkg/logger"

	"github.com/urfave/cli/v3"
)

// shutdownTimeout bounds how long in-flight requests may take once a stop was requested.
const shutdownTimeout = 10 * time.Second

// serveCommand returns a CLI command that serves the HTTP API and, when
// watcher is not nil, runs it in the background for the server's lifetime.
//
// Usage example:
//
//	recoverywallet serve
//
// The server runs until it receives an interrupt (SIGINT or SIGTERM), the
// context is cancelled, the listener fails or the watcher stops.
func serveCommand(srv Server, watcher Watcher) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Description: "Serves the wallet HTTP API.",
		Usage:       "Runs the HTTP API. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			watchCtx, stopWatch := context.WithCancel(ctx)
			defer stopWatch()

			var watchCh chan error
			if watcher != nil {
				watchCh = make(chan error, 1)
				go func() {
					watchCh <- watcher.Run(watchCtx)
				}()
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.ListenAndServe()
			}()

			logger.Info(ctx, "http server started")

			var watchErr error
			select {
			case err := <-errCh:
				stopWatch()
				return errors.Join(err, wait(watchCh))
			case watchErr = <-watchCh:
				watchCh = nil
				if watchErr != nil {
					logger.Error(ctx, "background watcher stopped", "error", watchErr)
				}
			case <-quit:
			case <-ctx.Done():
			}

			logger.Info(ctx, "shutting down http server")
			stopWatch()

			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
			defer cancel()

			return errors.Join(watchErr, srv.Shutdown(shutdownCtx), <-errCh, wait(watchCh))
		},
	}
}

// wait returns the value sent on ch, or nil right away when ch is nil.
func wait(ch <-chan error) error {
	if ch == nil {
		return nil
	}
	return <-ch
}
