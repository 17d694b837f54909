// Package depositwatch credits on-chain transfers into the wallet's own
// account. It polls the chain for blocks, picks the transactions paying the
// wallet and hands each one to the wallet's Receive operation, keeping a
// checkpoint of the last scanned block.
package depositwatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/recoverywallet/internal/idempotency"
	"github.com/gabapcia/recoverywallet/internal/pkg/logger"
	"github.com/gabapcia/recoverywallet/internal/pkg/resilience/retry"

	"github.com/ethereum/go-ethereum/common"
)

// averageBlockTime is the default poll interval, matching Ethereum's slot time.
const averageBlockTime = 12 * time.Second

// Service watches the chain for deposits into one wallet.
type Service interface {
	// Run polls until ctx is cancelled. It only returns an error when the
	// starting height cannot be determined; later failures are logged and the
	// failed block is retried on the next poll.
	Run(ctx context.Context) error
}

type config struct {
	checkpoints   CheckpointStorage
	guard         idempotency.Store
	claimTTL      time.Duration
	retention     time.Duration
	retry         retry.Retry
	pollInterval  time.Duration
	confirmations uint64
	startHeight   *uint64
}

// Option configures the deposit watcher.
type Option func(*config)

// WithCheckpointStorage persists the last scanned block so restarts resume
// where they stopped.
func WithCheckpointStorage(cs CheckpointStorage) Option {
	return func(c *config) {
		c.checkpoints = cs
	}
}

// WithIdempotency records credited transactions in store so a block rescanned
// after a partial failure does not credit the same transaction twice. Claims
// expire after claimTTL and records are kept for retention.
func WithIdempotency(store idempotency.Store, claimTTL, retention time.Duration) Option {
	return func(c *config) {
		c.guard = store
		c.claimTTL = claimTTL
		c.retention = retention
	}
}

// WithRetry sets the retry policy used around node and checkpoint calls.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithPollInterval sets how often the chain head is checked.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}

// WithConfirmations only scans blocks buried under n newer blocks.
func WithConfirmations(n uint64) Option {
	return func(c *config) {
		c.confirmations = n
	}
}

// WithStartHeight sets the first block scanned when no checkpoint exists.
// Without it the watcher starts after the current safe head.
func WithStartHeight(height uint64) Option {
	return func(c *config) {
		c.startHeight = &height
	}
}

type service struct {
	wallet    common.Address
	chain     Blockchain
	depositor Depositor

	checkpoints   CheckpointStorage
	guard         idempotency.Store
	claimTTL      time.Duration
	retention     time.Duration
	retry         retry.Retry
	pollInterval  time.Duration
	confirmations uint64
	startHeight   *uint64
}

var _ Service = (*service)(nil)

// New returns a watcher crediting deposits into wallet, read from chain, to depositor.
func New(wallet common.Address, chain Blockchain, depositor Depositor, opts ...Option) *service {
	cfg := config{
		checkpoints:  nopCheckpoint{},
		guard:        nopGuard{},
		claimTTL:     time.Minute,
		retention:    7 * 24 * time.Hour,
		retry:        retry.New(retry.WithAttempts(1)),
		pollInterval: averageBlockTime,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		wallet:        wallet,
		chain:         chain,
		depositor:     depositor,
		checkpoints:   cfg.checkpoints,
		guard:         cfg.guard,
		claimTTL:      cfg.claimTTL,
		retention:     cfg.retention,
		retry:         cfg.retry,
		pollInterval:  cfg.pollInterval,
		confirmations: cfg.confirmations,
		startHeight:   cfg.startHeight,
	}
}

func (s *service) Run(ctx context.Context) error {
	ctx = logger.Derive(ctx, "wallet.address", s.wallet.Hex())

	next, err := s.resumeHeight(ctx)
	if err != nil {
		return err
	}

	logger.Info(ctx, "deposit watcher started", "block.next", next)

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		next = s.poll(ctx, next)

		select {
		case <-ctx.Done():
			logger.Info(ctx, "deposit watcher stopped", "block.next", next)
			return nil
		case <-ticker.C:
		}
	}
}

// resumeHeight returns the first block to scan: the one after the checkpoint,
// the configured start height, or the one after the current safe head.
func (s *service) resumeHeight(ctx context.Context) (uint64, error) {
	var (
		checkpoint uint64
		found      bool
	)
	err := s.retry.Execute(ctx, func() error {
		var err error
		checkpoint, err = s.checkpoints.LoadLatestCheckpoint(ctx, s.wallet)
		if errors.Is(err, ErrNoCheckpointFound) {
			found = false
			return nil
		}
		found = err == nil
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("loading deposit checkpoint: %w", err)
	}

	if found {
		return checkpoint + 1, nil
	}

	if s.startHeight != nil {
		return *s.startHeight, nil
	}

	head, ok, err := s.safeHead(ctx)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	return head + 1, nil
}

// safeHead returns the newest block with enough confirmations. ok is false
// when the chain is still shorter than the confirmation depth.
func (s *service) safeHead(ctx context.Context) (head uint64, ok bool, err error) {
	var latest uint64
	err = s.retry.Execute(ctx, func() error {
		var err error
		latest, err = s.chain.LatestBlockNumber(ctx)
		return err
	})
	if err != nil {
		return 0, false, err
	}

	if latest < s.confirmations {
		return 0, false, nil
	}
	return latest - s.confirmations, true, nil
}

// poll scans every safe block from next on and returns the next block to
// scan. It stops at the first block that fails so no deposit is skipped.
func (s *service) poll(ctx context.Context, next uint64) uint64 {
	head, ok, err := s.safeHead(ctx)
	if err != nil {
		logger.Error(ctx, "failed to fetch chain head", "error", err)
		return next
	}
	if !ok {
		return next
	}

	for next <= head && ctx.Err() == nil {
		if err := s.scan(ctx, next); err != nil {
			logger.Error(ctx, "failed to scan block for deposits",
				"block.number", next,
				"error", err,
			)
			return next
		}
		next++
	}

	return next
}

// scan credits the deposits of block height and checkpoints it.
func (s *service) scan(ctx context.Context, height uint64) error {
	var block Block
	err := s.retry.Execute(ctx, func() error {
		var err error
		block, err = s.chain.FetchBlockByNumber(ctx, height)
		return err
	})
	if err != nil {
		return err
	}

	for _, tx := range block.Transactions {
		if !s.isDeposit(tx) {
			continue
		}

		if err := s.credit(ctx, block, tx); err != nil {
			return err
		}
	}

	return s.retry.Execute(ctx, func() error {
		return s.checkpoints.SaveCheckpoint(ctx, s.wallet, height)
	})
}
