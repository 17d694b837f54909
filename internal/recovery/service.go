// Package recovery implements a social-recovery wallet: a spender that
// proposes outbound transactions, and a fixed set of guardians that co-sign
// those transactions and can vote to replace the spender.
package recovery

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gabapcia/recoverywallet/internal/pkg/logger"
	"github.com/gabapcia/recoverywallet/internal/pkg/resilience/retry"
	"github.com/gabapcia/recoverywallet/internal/pkg/validator"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"go.opentelemetry.io/otel/attribute"
)

// Service is the wallet interface exposed to external callers.
//
// Every mutating method is atomic: it either applies all of its effects or
// returns an error and leaves the wallet unchanged.
type Service interface {
	// SubmitChangeRequest proposes newSpender as the wallet spender. The
	// submitting guardian counts as the first confirmation, so the spender may
	// rotate immediately.
	SubmitChangeRequest(ctx context.Context, caller, newSpender common.Address) (uint64, error)

	// ConfirmChangeRequest adds the caller's confirmation to request id and
	// rotates the spender once the threshold is met.
	ConfirmChangeRequest(ctx context.Context, caller common.Address, id uint64) error

	// SubmitTransaction records an outbound call proposed by the current spender.
	SubmitTransaction(ctx context.Context, caller, destination common.Address, amount *uint256.Int, payload []byte) (uint64, error)

	// ConfirmTransaction adds the caller's confirmation to transaction id.
	ConfirmTransaction(ctx context.Context, caller common.Address, id uint64) error

	// ExecuteTransaction performs the outbound call of a sufficiently
	// confirmed transaction and debits the balance.
	ExecuteTransaction(ctx context.Context, caller common.Address, id uint64) error

	// Receive credits a deposit from any sender.
	Receive(ctx context.Context, from common.Address, amount *uint256.Int) error

	// CurrentSpender returns the identity allowed to submit and execute transactions.
	CurrentSpender(ctx context.Context) common.Address

	// Balance returns the current native-asset balance.
	Balance(ctx context.Context) *uint256.Int

	// ChangeRequest returns change request id.
	ChangeRequest(ctx context.Context, id uint64) (ChangeRequest, error)

	// Transaction returns transaction id.
	Transaction(ctx context.Context, id uint64) (Transaction, error)

	// ChangeRequestCount returns how many change requests were submitted.
	ChangeRequestCount(ctx context.Context) uint64

	// TransactionCount returns how many transactions were submitted.
	TransactionCount(ctx context.Context) uint64

	// Policy returns the guardian set and thresholds.
	Policy(ctx context.Context) Policy
}

// Config holds the construction parameters of a wallet. They are fixed for
// the wallet's lifetime.
type Config struct {
	Address                common.Address   // the wallet's own account; origin of outbound calls
	InitialSpender         common.Address   `validate:"required"`
	Guardians              []common.Address `validate:"min=1"`
	SpenderChangeThreshold uint             `validate:"gte=1"`
	TransactionThreshold   uint             `validate:"gte=1"`
	ReservedThreshold      uint             // stored and reported, never interpreted
}

type options struct {
	storage  StateStorage
	executor CallExecutor
	retry    retry.Retry
}

// Option configures optional collaborators of the service.
type Option func(*options)

// WithStateStorage persists the wallet after every successful mutation.
// Several services may share one storage: a mutation that loses a save race
// reloads the wallet and runs again on top of the winner's state.
func WithStateStorage(storage StateStorage) Option {
	return func(o *options) {
		o.storage = storage
	}
}

// WithCallExecutor sets the executor performing the outbound calls of
// executed transactions.
func WithCallExecutor(executor CallExecutor) Option {
	return func(o *options) {
		o.executor = executor
	}
}

// WithRetry sets the retry policy used around state storage calls.
func WithRetry(r retry.Retry) Option {
	return func(o *options) {
		o.retry = r
	}
}

type service struct {
	address  common.Address
	registry *GuardianRegistry
	reserved uint
	storage  StateStorage
	executor CallExecutor
	retry    retry.Retry
	telem    instruments

	mu    sync.Mutex
	state *state
}

var _ Service = (*service)(nil)

// New validates cfg, restores the persisted wallet if there is one and returns
// a ready service.
func New(ctx context.Context, cfg Config, opts ...Option) (*service, error) {
	o := options{
		storage:  nopStateStorage{},
		executor: ledgerCallExecutor{},
		retry:    retry.New(retry.WithAttempts(1)),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := validator.Validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	registry, err := NewGuardianRegistry(cfg.Guardians, cfg.SpenderChangeThreshold, cfg.TransactionThreshold)
	if err != nil {
		return nil, err
	}

	s := &service{
		address:  cfg.Address,
		registry: registry,
		reserved: cfg.ReservedThreshold,
		storage:  o.storage,
		executor: o.executor,
		retry:    o.retry,
		telem:    newInstruments(),
	}

	st, err := s.load(ctx, cfg.InitialSpender)
	if err != nil {
		return nil, err
	}
	s.state = st

	logger.Info(ctx, "wallet ready",
		"wallet.address", s.address.Hex(),
		"wallet.spender", st.wallet.currentSpender().Hex(),
		"wallet.balance", st.wallet.balance.Dec(),
		"wallet.guardians", registry.guardians.Len(),
		"wallet.change_requests", len(st.changeRequests.requests),
		"wallet.transactions", len(st.transactions.txs),
	)

	return s, nil
}

// load restores the persisted wallet, or builds a fresh one when storage has
// nothing for this address.
func (s *service) load(ctx context.Context, initialSpender common.Address) (*state, error) {
	var (
		snap  Snapshot
		found bool
	)
	err := s.retry.Execute(ctx, func() error {
		var err error
		snap, err = s.storage.LoadState(ctx, s.address)
		if errors.Is(err, ErrNoStateFound) {
			found = false
			return nil
		}
		found = err == nil
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("loading wallet state: %w", err)
	}

	if !found {
		return newState(s.registry, s.executor, s.address, initialSpender), nil
	}

	if !s.matches(snap.Policy) {
		return nil, fmt.Errorf("%w: wallet %s", ErrConfigMismatch, s.address.Hex())
	}

	return restoreState(s.registry, s.executor, s.address, snap)
}

func (s *service) matches(p Policy) bool {
	other, err := NewGuardianRegistry(p.Guardians, p.SpenderChangeThreshold, p.TransactionThreshold)
	if err != nil {
		return false
	}
	return s.reserved == p.ReservedThreshold && s.registry.sameAs(other)
}

func (s *service) policy() Policy {
	return Policy{
		Guardians:              s.registry.Guardians(),
		SpenderChangeThreshold: s.registry.spenderChangeThreshold,
		TransactionThreshold:   s.registry.transactionThreshold,
		ReservedThreshold:      s.reserved,
	}
}

// save persists st through the retry policy as the next version of the
// snapshot it was loaded from.
func (s *service) save(ctx context.Context, st *state) error {
	snap := st.snapshot(s.policy())
	snap.Version = st.version + 1

	err := s.retry.Execute(ctx, func() error {
		return s.storage.SaveState(ctx, s.address, snap)
	})
	if err != nil {
		return err
	}

	st.version = snap.Version
	return nil
}

// maxSaveConflicts bounds how many times commit reloads the wallet after
// losing a save race.
const maxSaveConflicts = 3

// mutate runs fn against a copy of the live state and swaps the copy in only
// when fn and persistence both succeed.
func (s *service) mutate(ctx context.Context, fn func(st *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.commit(ctx, fn)
}

// commit is mutate without the lock. When another process saved the wallet
// first, the live state is reloaded from storage and fn runs again on it.
func (s *service) commit(ctx context.Context, fn func(st *state) error) error {
	for conflicts := 0; ; conflicts++ {
		next := s.state.clone()
		if err := fn(next); err != nil {
			logger.Debug(ctx, "wallet operation rejected", "reason", Reason(err), "error", err)
			return err
		}

		err := s.save(ctx, next)
		if err == nil {
			s.state = next
			return nil
		}

		if !errors.Is(err, ErrStateConflict) || conflicts == maxSaveConflicts {
			return fmt.Errorf("saving wallet state: %w", err)
		}

		logger.Warn(ctx, "wallet state changed concurrently, reloading",
			"wallet.version", next.version,
			"error", err,
		)

		if err := s.reload(ctx); err != nil {
			return err
		}
	}
}

// reload replaces the live state with the stored one.
func (s *service) reload(ctx context.Context) error {
	st, err := s.load(ctx, s.state.wallet.currentSpender())
	if err != nil {
		return err
	}

	s.state = st
	return nil
}

func (s *service) SubmitChangeRequest(ctx context.Context, caller, newSpender common.Address) (id uint64, err error) {
	ctx, end := s.telem.start(ctx, "submit_change_request",
		attribute.String("caller", caller.Hex()),
		attribute.String("new_spender", newSpender.Hex()),
	)
	defer func() { end(&err) }()

	err = s.mutate(ctx, func(st *state) error {
		var err error
		id, err = st.changeRequests.submit(ctx, caller, newSpender)
		return err
	})
	return id, err
}

func (s *service) ConfirmChangeRequest(ctx context.Context, caller common.Address, id uint64) (err error) {
	ctx, end := s.telem.start(ctx, "confirm_change_request",
		attribute.String("caller", caller.Hex()),
		attribute.Int64("request.id", int64(id)),
	)
	defer func() { end(&err) }()

	return s.mutate(ctx, func(st *state) error {
		return st.changeRequests.confirm(ctx, caller, id)
	})
}

func (s *service) SubmitTransaction(ctx context.Context, caller, destination common.Address, amount *uint256.Int, payload []byte) (id uint64, err error) {
	ctx, end := s.telem.start(ctx, "submit_transaction",
		attribute.String("caller", caller.Hex()),
		attribute.String("destination", destination.Hex()),
	)
	defer func() { end(&err) }()

	err = s.mutate(ctx, func(st *state) error {
		var err error
		id, err = st.transactions.submit(ctx, caller, destination, amount, payload)
		return err
	})
	return id, err
}

func (s *service) ConfirmTransaction(ctx context.Context, caller common.Address, id uint64) (err error) {
	ctx, end := s.telem.start(ctx, "confirm_transaction",
		attribute.String("caller", caller.Hex()),
		attribute.Int64("tx.id", int64(id)),
	)
	defer func() { end(&err) }()

	return s.mutate(ctx, func(st *state) error {
		return st.transactions.confirm(ctx, caller, id)
	})
}

// ExecuteTransaction persists the transaction as pending with its amount
// reserved before the outbound call is made, then records the outcome. A
// restart or a second process therefore never repeats a call that may have
// gone out.
func (s *service) ExecuteTransaction(ctx context.Context, caller common.Address, id uint64) (err error) {
	ctx, end := s.telem.start(ctx, "execute_transaction",
		attribute.String("caller", caller.Hex()),
		attribute.Int64("tx.id", int64(id)),
	)
	defer func() { end(&err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	var call Call
	err = s.commit(ctx, func(st *state) error {
		var err error
		call, err = st.transactions.begin(ctx, caller, id)
		return err
	})
	if err != nil {
		return err
	}

	ref, callErr := s.executor.PerformCall(ctx, call)

	// The call is out: its outcome is recorded even if the caller went away.
	ctx = context.WithoutCancel(ctx)

	var outcome error
	settle := func(st *state) error {
		outcome = st.transactions.settle(ctx, id, ref, callErr)
		return nil
	}

	if err := s.commit(ctx, settle); err != nil {
		logger.Error(ctx, "failed to persist transaction outcome",
			"tx.id", id,
			"error", err,
		)

		next := s.state.clone()
		_ = settle(next)
		s.state = next
	}

	return outcome
}

func (s *service) Receive(ctx context.Context, from common.Address, amount *uint256.Int) (err error) {
	ctx, end := s.telem.start(ctx, "receive",
		attribute.String("from", from.Hex()),
	)
	defer func() { end(&err) }()

	if amount == nil {
		amount = new(uint256.Int)
	}

	return s.mutate(ctx, func(st *state) error {
		if err := st.wallet.receive(amount); err != nil {
			return err
		}

		logger.Info(ctx, "deposit received",
			"deposit.from", from.Hex(),
			"deposit.amount", amount.Dec(),
			"wallet.balance", st.wallet.balance.Dec(),
		)
		return nil
	})
}

func (s *service) CurrentSpender(_ context.Context) common.Address {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.wallet.currentSpender()
}

func (s *service) Balance(_ context.Context) *uint256.Int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.wallet.balance.Clone()
}

func (s *service) ChangeRequest(_ context.Context, id uint64) (ChangeRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.state.changeRequests.get(id)
	if err != nil {
		return ChangeRequest{}, err
	}
	return req.view(id), nil
}

func (s *service) Transaction(_ context.Context, id uint64) (Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.state.transactions.get(id)
	if err != nil {
		return Transaction{}, err
	}
	return tx.view(id), nil
}

func (s *service) ChangeRequestCount(_ context.Context) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return uint64(len(s.state.changeRequests.requests))
}

func (s *service) TransactionCount(_ context.Context) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return uint64(len(s.state.transactions.txs))
}

func (s *service) Policy(_ context.Context) Policy {
	return s.policy()
}
