// Command recoverywallet runs a guardian-protected recovery wallet. It loads
// its configuration from the environment, restores the wallet from Redis and
// hands control to the CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/recoverywallet/internal/config"
	"github.com/gabapcia/recoverywallet/internal/depositwatch"
	"github.com/gabapcia/recoverywallet/internal/handlers/api"
	"github.com/gabapcia/recoverywallet/internal/handlers/cli"
	"github.com/gabapcia/recoverywallet/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/recoverywallet/internal/infra/storage/redis"
	"github.com/gabapcia/recoverywallet/internal/pkg/logger"
	"github.com/gabapcia/recoverywallet/internal/pkg/resilience/retry"
	"github.com/gabapcia/recoverywallet/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/recoverywallet/internal/pkg/transport/http"
	"github.com/gabapcia/recoverywallet/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/recoverywallet/internal/recovery"

	"github.com/ethereum/go-ethereum/common"
)

// storageRetryDelay is the base backoff between Redis attempts.
const storageRetryDelay = 100 * time.Millisecond

// ethereumNode is what the process needs from the node: outbound calls and
// block reads for deposit detection.
type ethereumNode interface {
	recovery.CallExecutor
	depositwatch.Blockchain
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.TelemetryEnabled {
		shutdown, initErr := telemetry.Init(ctx, cfg.ServiceName)
		if initErr != nil {
			return fmt.Errorf("initializing telemetry: %w", initErr)
		}
		defer func() {
			err = errors.Join(err, shutdown(context.WithoutCancel(ctx)))
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	store, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}
	defer store.Close()

	storageRetry := retry.New(
		retry.WithAttempts(cfg.Redis.RetryAttempts),
		retry.WithDelay(storageRetryDelay),
		retry.WithRetryIf(func(err error) bool {
			return !recovery.IsRejection(err) && !errors.Is(err, recovery.ErrStateConflict)
		}),
	)

	opts := []recovery.Option{
		recovery.WithStateStorage(store),
		recovery.WithRetry(storageRetry),
	}

	apiOpts := []api.Option{
		api.WithIdempotency(store, cfg.HTTP.IdempotencyClaimTTL, cfg.HTTP.IdempotencyTTL),
	}

	var node ethereumNode
	if cfg.Ethereum.RPCURL != "" {
		node = newEthereumNode(cfg.Ethereum)
		opts = append(opts, recovery.WithCallExecutor(node))
		apiOpts = append(apiOpts, api.WithoutDeposits())
	} else {
		logger.Warn(ctx, "no ethereum rpc url configured, outbound calls stay on the local ledger")
	}

	svc, err := recovery.New(ctx, cfg.Wallet.Recovery(), opts...)
	if err != nil {
		return err
	}

	handler := api.NewHandler(svc, []byte(cfg.HTTP.JWTSecret), apiOpts...)
	srv := api.NewServer(cfg.HTTP.Addr, handler)

	var watcher cli.Watcher
	if cfg.DepositWatch.Enabled {
		watchOpts := []depositwatch.Option{
			depositwatch.WithCheckpointStorage(store),
			depositwatch.WithIdempotency(store, cfg.DepositWatch.ClaimTTL, cfg.DepositWatch.Retention),
			depositwatch.WithRetry(storageRetry),
			depositwatch.WithPollInterval(cfg.DepositWatch.PollInterval),
			depositwatch.WithConfirmations(cfg.DepositWatch.Confirmations),
		}
		if cfg.DepositWatch.StartBlock != nil {
			watchOpts = append(watchOpts, depositwatch.WithStartHeight(*cfg.DepositWatch.StartBlock))
		}

		watcher = depositwatch.New(common.HexToAddress(cfg.Wallet.Address), node, svc, watchOpts...)
	}

	return cli.Run(ctx, svc, srv, watcher)
}

// newEthereumNode builds the JSON-RPC backed client sending the wallet's
// outbound calls to an Ethereum node and reading its blocks. Reads retry up
// to RPCRetryMax times; transactions are sent once.
func newEthereumNode(cfg config.EthereumConfig) ethereumNode {
	reads := newRPCClient(cfg, transporthttp.WithRetryMax(cfg.RPCRetryMax))
	sends := newRPCClient(cfg, transporthttp.WithoutRetries())

	return ethereum.NewClient(reads, ethereum.WithSendConnection(sends))
}

func newRPCClient(cfg config.EthereumConfig, opts ...transporthttp.Option) jsonrpc.Client {
	opts = append([]transporthttp.Option{
		transporthttp.WithTimeout(cfg.RPCTimeout),
		transporthttp.WithRetryLogging(),
	}, opts...)

	rpcOpts := []jsonrpc.Option{jsonrpc.WithHTTPClient(transporthttp.NewClient(opts...))}
	if cfg.RPCAPIKey != "" {
		rpcOpts = append(rpcOpts, jsonrpc.WithHeader("Authorization", "Bearer "+cfg.RPCAPIKey))
	}

	return jsonrpc.NewClient(cfg.RPCURL, rpcOpts...)
}
