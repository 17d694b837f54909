// Package ethereum talks to Ethereum-compatible nodes over JSON-RPC. It
// implements recovery.CallExecutor to send the wallet's outbound calls and
// depositwatch.Blockchain to read blocks for deposit detection.
package ethereum

import (
	"github.com/gabapcia/recoverywallet/internal/depositwatch"
	"github.com/gabapcia/recoverywallet/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/recoverywallet/internal/recovery"
)

// client performs outbound wallet calls and reads blocks from an Ethereum node.
type client struct {
	conn jsonrpc.Client // Underlying JSON-RPC client used to interact with the Ethereum node
	send jsonrpc.Client // Client submitting transactions; must not resend requests
}

// Ensure client implements the recovery.CallExecutor and depositwatch.Blockchain interfaces at compile time.
var (
	_ recovery.CallExecutor   = (*client)(nil)
	_ depositwatch.Blockchain = (*client)(nil)
)

// Option configures optional behavior of the client.
type Option func(*client)

// WithSendConnection sets the JSON-RPC client used for eth_sendTransaction.
// Reads keep going through the connection given to NewClient, which may retry
// freely, while a resent transaction could transfer funds twice.
func WithSendConnection(conn jsonrpc.Client) Option {
	return func(c *client) {
		c.send = conn
	}
}

// NewClient creates a new Ethereum executor using the provided JSON-RPC connection.
// The node must be able to sign for the wallet's own account (unlocked or
// managed by a signer sitting in front of the node).
func NewClient(conn jsonrpc.Client, opts ...Option) *client {
	c := &client{
		conn: conn,
		send: conn,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
