package depositwatch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabapcia/recoverywallet/internal/idempotency"
	"github.com/gabapcia/recoverywallet/internal/pkg/logger"
	"github.com/gabapcia/recoverywallet/internal/recovery"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Outcomes recorded for a claimed deposit.
const (
	outcomeCredited = iota
	outcomeRejected
)

// Depositor credits deposits to the wallet.
type Depositor interface {
	Receive(ctx context.Context, from common.Address, amount *uint256.Int) error
}

// nopGuard claims every deposit, relying on checkpoints alone.
type nopGuard struct{}

var _ idempotency.Store = nopGuard{}

func (nopGuard) Claim(context.Context, string, time.Duration) (*idempotency.Record, error) {
	return nil, nil
}

func (nopGuard) Complete(context.Context, string, idempotency.Record, time.Duration) error {
	return nil
}

func (nopGuard) Release(context.Context, string) error {
	return nil
}

// depositKey identifies the credit of one transaction to one wallet.
func depositKey(wallet common.Address, tx common.Hash) string {
	return fmt.Sprintf("deposit|%s|%s", strings.ToLower(wallet.Hex()), tx.Hex())
}

func (s *service) isDeposit(tx Transaction) bool {
	return tx.To != nil && *tx.To == s.wallet && tx.Value != nil && !tx.Value.IsZero()
}

// credit hands one deposit to the wallet at most once per recorded key.
//
// Wallet rejections (such as a balance overflow) are logged and recorded, since
// crediting the same transaction again would fail the same way. Any other
// failure releases the claim so the block is rescanned on the next poll.
func (s *service) credit(ctx context.Context, block Block, tx Transaction) error {
	key := depositKey(s.wallet, tx.Hash)

	rec, err := s.guard.Claim(ctx, key, s.claimTTL)
	if err != nil {
		return fmt.Errorf("claiming deposit %s: %w", tx.Hash.Hex(), err)
	}
	if rec != nil {
		logger.Debug(ctx, "deposit already credited", "tx.hash", tx.Hash.Hex())
		return nil
	}

	outcome := idempotency.Record{Status: outcomeCredited}

	err = s.depositor.Receive(ctx, tx.From, tx.Value)
	switch {
	case err == nil:
		logger.Info(ctx, "on-chain deposit credited",
			"block.number", block.Number,
			"tx.hash", tx.Hash.Hex(),
			"deposit.from", tx.From.Hex(),
			"deposit.amount", tx.Value.Dec(),
		)
	case recovery.IsRejection(err):
		outcome.Status = outcomeRejected
		logger.Error(ctx, "on-chain deposit rejected by wallet",
			"block.number", block.Number,
			"tx.hash", tx.Hash.Hex(),
			"reason", recovery.Reason(err),
			"error", err,
		)
	default:
		return errors.Join(
			fmt.Errorf("crediting deposit %s: %w", tx.Hash.Hex(), err),
			s.guard.Release(ctx, key),
		)
	}

	if err := s.guard.Complete(ctx, key, outcome, s.retention); err != nil {
		logger.Warn(ctx, "failed to record credited deposit", "tx.hash", tx.Hash.Hex(), "error", err)
	}

	return nil
}
