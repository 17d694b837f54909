package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/recoverywallet/internal/recovery"

	"github.com/ethereum/go-ethereum/common"
	"github.com/redis/go-redis/v9"
)

// walletStateKey returns the key holding the snapshot of wallet. The address
// is lower-cased so checksummed and plain spellings share one key.
//
// Format: "recoverywallet:state:<wallet address>"
func walletStateKey(wallet common.Address) string {
	return fmt.Sprintf("%s:state:%s", keyPrefix, strings.ToLower(wallet.Hex()))
}

// LoadState implements recovery.StateStorage. A missing key is reported as
// recovery.ErrNoStateFound.
func (c *client) LoadState(ctx context.Context, wallet common.Address) (recovery.Snapshot, error) {
	val, err := c.conn.Get(ctx, walletStateKey(wallet)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = fmt.Errorf("%w: wallet %s", recovery.ErrNoStateFound, wallet.Hex())
		}
		return recovery.Snapshot{}, err
	}

	return decodeSnapshot(val)
}

// saveStateScript stores ARGV[2] under KEYS[1] only if the version of the
// snapshot held there (0 when the key is missing) equals ARGV[1]. It returns 1
// when the snapshot was stored and 0 otherwise.
var saveStateScript = redis.NewScript(`
local current = redis.call('GET', KEYS[1])
local version = 0
if current then
	version = tonumber(cjson.decode(current)['version']) or 0
end
if version ~= tonumber(ARGV[1]) then
	return 0
end
redis.call('SET', KEYS[1], ARGV[2])
return 1
`)

// SaveState implements recovery.StateStorage. The snapshot is stored as JSON
// with no expiration, and only on top of the version it was derived from:
// anything else is reported as recovery.ErrStateConflict.
func (c *client) SaveState(ctx context.Context, wallet common.Address, snapshot recovery.Snapshot) error {
	if snapshot.Version == 0 {
		return fmt.Errorf("%w: wallet %s snapshot has no version", recovery.ErrStateConflict, wallet.Hex())
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	stored, err := saveStateScript.Run(ctx, c.conn, []string{walletStateKey(wallet)}, snapshot.Version-1, data).Int()
	if err != nil {
		return err
	}

	if stored == 0 {
		return fmt.Errorf("%w: wallet %s is no longer at version %d", recovery.ErrStateConflict, wallet.Hex(), snapshot.Version-1)
	}

	return nil
}

func decodeSnapshot(data []byte) (recovery.Snapshot, error) {
	var snap recovery.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return recovery.Snapshot{}, fmt.Errorf("decoding wallet snapshot: %w", err)
	}
	return snap, nil
}

// Ensure the client satisfies the StateStorage interface at compile time.
var _ recovery.StateStorage = (*client)(nil)
