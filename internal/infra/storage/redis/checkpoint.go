package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/recoverywallet/internal/depositwatch"

	"github.com/ethereum/go-ethereum/common"
	"github.com/redis/go-redis/v9"
)

// checkpointKey constructs the key storing the latest block scanned for
// deposits into wallet.
//
// Format: "recoverywallet:checkpoint:<wallet address>"
func checkpointKey(wallet common.Address) string {
	return fmt.Sprintf("%s:checkpoint:%s", keyPrefix, strings.ToLower(wallet.Hex()))
}

// SaveCheckpoint persists the most recent block height scanned for wallet.
//
// This allows the deposit watcher to resume from the correct position after
// restarts. The checkpoint is stored with no expiration.
func (c *client) SaveCheckpoint(ctx context.Context, wallet common.Address, height uint64) error {
	return c.conn.Set(ctx, checkpointKey(wallet), height, 0).Err()
}

// LoadLatestCheckpoint retrieves the most recently saved checkpoint for wallet.
//
// If no checkpoint exists yet, it returns depositwatch.ErrNoCheckpointFound.
func (c *client) LoadLatestCheckpoint(ctx context.Context, wallet common.Address) (uint64, error) {
	height, err := c.conn.Get(ctx, checkpointKey(wallet)).Uint64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = depositwatch.ErrNoCheckpointFound
		}

		return 0, err
	}

	return height, nil
}

// Compile-time assertion to ensure client implements the CheckpointStorage interface.
var _ depositwatch.CheckpointStorage = (*client)(nil)
