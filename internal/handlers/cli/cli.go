package cli

import (
	"context"
	"os"

	"github.com/gabapcia/recoverywallet/internal/recovery"

	"github.com/urfave/cli/v3"
)

// Server is the HTTP API run by the `serve` command.
type Server interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// Watcher is a background job run next to the HTTP API by the `serve`
// command, such as the deposit watcher.
type Watcher interface {
	Run(ctx context.Context) error
}

// Run initializes and executes the recoverywallet CLI application.
//
// It registers all available commands, including:
//
//   - `serve`: Serves the HTTP API until interrupted.
//   - `change-request`: Submits, confirms and shows spender change requests.
//   - `tx`: Submits, confirms, executes and shows transactions.
//   - `receive`: Credits a deposit to the wallet.
//   - `status`: Prints the spender, balance and policy.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - svc: The wallet service used by every command.
//   - srv: The HTTP server started by the serve command.
//   - watcher: An optional job run alongside the server. May be nil.
func Run(ctx context.Context, svc recovery.Service, srv Server, watcher Watcher) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "recoverywallet",
		Description:           "Command-line interface for operating a guardian-protected recovery wallet.",
		Usage:                 "recoverywallet [command] [flags]",
		Commands: []*cli.Command{
			serveCommand(srv, watcher),
			changeRequestCommand(svc),
			transactionCommand(svc),
			receiveCommand(svc),
			statusCommand(svc),
		},
	}

	return app.Run(ctx, os.Args)
}
