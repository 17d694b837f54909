// Package idempotency defines how repeated deliveries of the same client
// request are detected so that a retried call is answered with the first
// outcome instead of being applied twice.
package idempotency

import (
	"context"
	"errors"
	"time"
)

// ErrStillInProgress is returned by Store.Claim when another delivery of the
// same request holds the claim and has not completed yet.
var ErrStillInProgress = errors.New("request still in progress")

// Record is the outcome of a completed request, replayed verbatim to later
// deliveries of it.
type Record struct {
	Status int    `json:"status"`
	Body   []byte `json:"body"`
}

// Store tracks request claims and their recorded outcomes.
type Store interface {
	// Claim reserves key for ttl. It returns the recorded outcome when key has
	// already completed, ErrStillInProgress when it is held by another
	// delivery, and (nil, nil) when the caller now owns the claim.
	Claim(ctx context.Context, key string, ttl time.Duration) (*Record, error)

	// Complete stores rec as the outcome of key and keeps it for retention.
	Complete(ctx context.Context, key string, rec Record, retention time.Duration) error

	// Release drops an unfinished claim so the request can be retried.
	Release(ctx context.Context, key string) error
}
