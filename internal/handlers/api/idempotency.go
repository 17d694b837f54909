package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gabapcia/recoverywallet/internal/idempotency"
	"github.com/gabapcia/recoverywallet/internal/pkg/logger"
)

const (
	idempotencyKeyHeader     = "Idempotency-Key"
	idempotentReplayedHeader = "Idempotent-Replayed"
)

// idempotent replays the recorded outcome of a request carrying an
// Idempotency-Key that was already handled. Keys are scoped to the caller and
// the route. Server errors are not recorded so the request can be retried.
func (h *handler) idempotent(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := h.cfg.idempotency
		key := r.Header.Get(idempotencyKeyHeader)
		if store == nil || key == "" {
			next(w, r)
			return
		}

		ctx := r.Context()
		scoped := scopeKey(r, key)

		rec, err := store.Claim(ctx, scoped, h.cfg.idempotencyClaimTTL)
		switch {
		case errors.Is(err, idempotency.ErrStillInProgress):
			writeError(w, r, http.StatusConflict, "request_in_progress", err)
			return
		case err != nil:
			logger.Error(ctx, "failed to claim idempotency key", "error", err)
			writeError(w, r, http.StatusInternalServerError, "internal", errors.New("internal error"))
			return
		case rec != nil:
			w.Header().Set(idempotentReplayedHeader, "true")
			if len(rec.Body) > 0 {
				w.Header().Set("Content-Type", "application/json")
			}
			w.WriteHeader(rec.Status)
			_, _ = w.Write(rec.Body)
			return
		}

		resp := newResponseRecorder(w, true)
		next(resp, r)

		if resp.status >= http.StatusInternalServerError {
			if err := store.Release(ctx, scoped); err != nil {
				logger.Warn(ctx, "failed to release idempotency key", "error", err)
			}
			return
		}

		outcome := idempotency.Record{
			Status: resp.status,
			Body:   resp.body.Bytes(),
		}
		if err := store.Complete(ctx, scoped, outcome, h.cfg.idempotencyRetention); err != nil {
			logger.Warn(ctx, "failed to record idempotent outcome", "error", err)
		}
	}
}

func scopeKey(r *http.Request, key string) string {
	owner := "anonymous"
	if caller, ok := callerFrom(r.Context()); ok {
		owner = caller.Hex()
	}
	return fmt.Sprintf("%s|%s %s|%s", owner, r.Method, r.URL.Path, key)
}
