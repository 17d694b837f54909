// Package api exposes the recovery wallet over HTTP.
//
// Mutating routes identify the caller through the `sub` claim of an HS256
// bearer token that must carry an expiry. Read routes and, when enabled,
// deposits are public. Every response body is
// JSON; failures are rendered as {"error": ..., "code": ...} where code is the
// stable rejection reason of the wallet.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gabapcia/recoverywallet/internal/idempotency"
	"github.com/gabapcia/recoverywallet/internal/recovery"

	"github.com/gorilla/mux"
)

// readHeaderTimeout bounds how long a client may take to send request headers.
const readHeaderTimeout = 10 * time.Second

type config struct {
	idempotency          idempotency.Store
	idempotencyClaimTTL  time.Duration
	idempotencyRetention time.Duration
	noDeposits           bool
}

// Option configures optional behavior of the HTTP handler.
type Option func(*config)

// WithIdempotency enables the Idempotency-Key header on mutating routes.
// A delivery holds its key for claimTTL while it is handled, and outcomes are
// recorded in store and replayed for retention.
func WithIdempotency(store idempotency.Store, claimTTL, retention time.Duration) Option {
	return func(c *config) {
		c.idempotency = store
		c.idempotencyClaimTTL = claimTTL
		c.idempotencyRetention = retention
	}
}

// WithoutDeposits leaves POST /deposits unregistered. Use it when the wallet
// holds funds on a node and deposits are read from the chain instead of being
// reported by clients.
func WithoutDeposits() Option {
	return func(c *config) {
		c.noDeposits = true
	}
}

type handler struct {
	svc    recovery.Service
	secret []byte
	cfg    config
}

// NewHandler builds the router serving svc. Bearer tokens must be signed with
// secret.
func NewHandler(svc recovery.Service, secret []byte, opts ...Option) http.Handler {
	cfg := config{
		idempotencyClaimTTL:  time.Minute,
		idempotencyRetention: 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	h := &handler{
		svc:    svc,
		secret: secret,
		cfg:    cfg,
	}

	r := mux.NewRouter()
	r.Use(requestLogging)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "not_found", errors.New("route not found"))
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, "method_not_allowed", errors.New("method not allowed"))
	})

	r.HandleFunc("/change-requests", h.authenticate(h.idempotent(h.submitChangeRequest))).Methods(http.MethodPost)
	r.HandleFunc("/change-requests/{id:[0-9]+}", h.getChangeRequest).Methods(http.MethodGet)
	r.HandleFunc("/change-requests/{id:[0-9]+}/confirmations", h.authenticate(h.idempotent(h.confirmChangeRequest))).Methods(http.MethodPost)

	r.HandleFunc("/transactions", h.authenticate(h.idempotent(h.submitTransaction))).Methods(http.MethodPost)
	r.HandleFunc("/transactions/{id:[0-9]+}", h.getTransaction).Methods(http.MethodGet)
	r.HandleFunc("/transactions/{id:[0-9]+}/confirmations", h.authenticate(h.idempotent(h.confirmTransaction))).Methods(http.MethodPost)
	r.HandleFunc("/transactions/{id:[0-9]+}/execution", h.authenticate(h.idempotent(h.executeTransaction))).Methods(http.MethodPost)

	if !cfg.noDeposits {
		r.HandleFunc("/deposits", h.idempotent(h.deposit)).Methods(http.MethodPost)
	}
	r.HandleFunc("/wallet", h.getWallet).Methods(http.MethodGet)

	return r
}

type server struct {
	srv *http.Server
}

// NewServer returns an HTTP server listening on addr and serving h.
func NewServer(addr string, h http.Handler) *server {
	return &server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           h,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// ListenAndServe blocks until the server stops. A graceful shutdown is not
// reported as an error.
func (s *server) ListenAndServe() error {
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
