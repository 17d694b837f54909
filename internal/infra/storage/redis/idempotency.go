package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/recoverywallet/internal/idempotency"

	"github.com/redis/go-redis/v9"
)

// idempotencyKey builds the key tracking one client request.
//
// Format: "recoverywallet:idempotency:<key>"
func idempotencyKey(key string) string {
	return fmt.Sprintf("%s:idempotency:%s", keyPrefix, key)
}

// Claim implements idempotency.Store.
//
// Behavior:
//   - If the key holds a recorded outcome, it is decoded and returned.
//   - If the key exists but is still empty, idempotency.ErrStillInProgress is returned.
//   - Otherwise an empty value is set with ttl to reserve the claim.
func (c *client) Claim(ctx context.Context, key string, ttl time.Duration) (*idempotency.Record, error) {
	k := idempotencyKey(key)

	val, err := c.conn.Get(ctx, k).Bytes()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	if len(val) > 0 {
		var rec idempotency.Record
		if err := json.Unmarshal(val, &rec); err != nil {
			return nil, fmt.Errorf("decoding idempotency record: %w", err)
		}
		return &rec, nil
	}

	ok, err := c.conn.SetNX(ctx, k, "", ttl).Result()
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, idempotency.ErrStillInProgress
	}

	return nil, nil
}

// Complete implements idempotency.Store by overwriting the claim with the
// encoded outcome.
func (c *client) Complete(ctx context.Context, key string, rec idempotency.Record, retention time.Duration) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return c.conn.Set(ctx, idempotencyKey(key), data, retention).Err()
}

// Release implements idempotency.Store.
func (c *client) Release(ctx context.Context, key string) error {
	return c.conn.Del(ctx, idempotencyKey(key)).Err()
}

// Ensure the client satisfies the idempotency.Store interface at compile time.
var _ idempotency.Store = (*client)(nil)
