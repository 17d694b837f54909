package depositwatch

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
)

// ErrNoCheckpointFound is returned by LoadLatestCheckpoint when no checkpoint
// has been saved yet for the requested wallet.
var ErrNoCheckpointFound = errors.New("no checkpoint found for wallet")

// CheckpointStorage persists the latest block scanned for deposits, per wallet.
type CheckpointStorage interface {
	// SaveCheckpoint records height as the latest scanned block of wallet,
	// overwriting any previous checkpoint.
	SaveCheckpoint(ctx context.Context, wallet common.Address, height uint64) error

	// LoadLatestCheckpoint returns the latest scanned block of wallet, or
	// ErrNoCheckpointFound.
	LoadLatestCheckpoint(ctx context.Context, wallet common.Address) (uint64, error)
}

// nopCheckpoint forgets every checkpoint, so each run starts from the head.
type nopCheckpoint struct{}

var _ CheckpointStorage = nopCheckpoint{}

func (nopCheckpoint) SaveCheckpoint(context.Context, common.Address, uint64) error {
	return nil
}

func (nopCheckpoint) LoadLatestCheckpoint(context.Context, common.Address) (uint64, error) {
	return 0, ErrNoCheckpointFound
}
