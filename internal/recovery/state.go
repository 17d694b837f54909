package recovery

import (
	"context"
	"fmt"

	"github.com/gabapcia/recoverywallet/internal/pkg/types"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Snapshot is the persisted form of a wallet: spender, balance, policy and
// both append-only logs. Entries are stored in id order.
//
// Version counts the saves of the wallet. A snapshot derived from version n
// is saved as version n+1.
type Snapshot struct {
	Version        uint64          `json:"version"`
	Spender        common.Address  `json:"spender"`
	Balance        *uint256.Int    `json:"balance"`
	Policy         Policy          `json:"policy"`
	ChangeRequests []ChangeRequest `json:"changeRequests"`
	Transactions   []Transaction   `json:"transactions"`
}

// StateStorage persists wallet snapshots keyed by the wallet's own address.
type StateStorage interface {
	// LoadState returns the last saved snapshot of wallet, or ErrNoStateFound
	// when nothing was saved yet.
	LoadState(ctx context.Context, wallet common.Address) (Snapshot, error)

	// SaveState replaces the stored snapshot of wallet when the stored version
	// (zero when nothing is stored) is snapshot.Version-1, and returns
	// ErrStateConflict otherwise.
	SaveState(ctx context.Context, wallet common.Address, snapshot Snapshot) error
}

// nopStateStorage keeps nothing. Every wallet starts fresh.
type nopStateStorage struct{}

var _ StateStorage = nopStateStorage{}

func (nopStateStorage) LoadState(_ context.Context, wallet common.Address) (Snapshot, error) {
	return Snapshot{}, fmt.Errorf("%w: wallet %s", ErrNoStateFound, wallet.Hex())
}

func (nopStateStorage) SaveState(context.Context, common.Address, Snapshot) error {
	return nil
}

// state groups the wallet and both managers so a call can work on a private
// copy and swap it in only when it fully succeeds.
type state struct {
	version        uint64 // version of the snapshot this state was loaded from or last saved as
	wallet         *walletCore
	changeRequests *changeRequestManager
	transactions   *transactionManager
}

func newState(registry *GuardianRegistry, executor CallExecutor, origin, spender common.Address) *state {
	wallet := newWalletCore(spender)
	return bind(registry, executor, origin, &wallet, nil, nil)
}

func bind(registry *GuardianRegistry, executor CallExecutor, origin common.Address, wallet *walletCore, requests []*changeRequest, txs []*transaction) *state {
	return &state{
		wallet: wallet,
		changeRequests: &changeRequestManager{
			registry: registry,
			wallet:   wallet,
			requests: requests,
		},
		transactions: &transactionManager{
			registry: registry,
			wallet:   wallet,
			executor: executor,
			origin:   origin,
			txs:      txs,
		},
	}
}

// clone deep-copies the state and rebinds the managers to the copied wallet.
func (s *state) clone() *state {
	wallet := s.wallet.clone()

	requests := make([]*changeRequest, len(s.changeRequests.requests))
	for i, r := range s.changeRequests.requests {
		requests[i] = r.clone()
	}

	txs := make([]*transaction, len(s.transactions.txs))
	for i, tx := range s.transactions.txs {
		txs[i] = tx.clone()
	}

	next := bind(s.changeRequests.registry, s.transactions.executor, s.transactions.origin, &wallet, requests, txs)
	next.version = s.version
	return next
}

func (s *state) snapshot(policy Policy) Snapshot {
	snap := Snapshot{
		Version:        s.version,
		Spender:        s.wallet.spender,
		Balance:        s.wallet.balance.Clone(),
		Policy:         policy,
		ChangeRequests: make([]ChangeRequest, len(s.changeRequests.requests)),
		Transactions:   make([]Transaction, len(s.transactions.txs)),
	}

	for i, r := range s.changeRequests.requests {
		snap.ChangeRequests[i] = r.view(uint64(i))
	}

	for i, tx := range s.transactions.txs {
		snap.Transactions[i] = tx.view(uint64(i))
	}

	return snap
}

// restoreState rebuilds a state from snap. Entries must be dense and in id
// order, and every confirmation must come from a guardian.
func restoreState(registry *GuardianRegistry, executor CallExecutor, origin common.Address, snap Snapshot) (*state, error) {
	wallet := walletCore{
		spender: snap.Spender,
		balance: new(uint256.Int),
	}
	if snap.Balance != nil {
		wallet.balance = snap.Balance.Clone()
	}

	requests := make([]*changeRequest, len(snap.ChangeRequests))
	for i, r := range snap.ChangeRequests {
		if r.ID != uint64(i) {
			return nil, fmt.Errorf("%w: change request at position %d has id %d", ErrInvalidConfig, i, r.ID)
		}

		confirmations, err := restoreConfirmations(registry, r.Confirmations)
		if err != nil {
			return nil, fmt.Errorf("change request %d: %w", r.ID, err)
		}

		requests[i] = &changeRequest{
			newSpender:    r.NewSpender,
			confirmations: confirmations,
			applied:       r.Applied,
		}
	}

	txs := make([]*transaction, len(snap.Transactions))
	for i, tx := range snap.Transactions {
		if tx.ID != uint64(i) {
			return nil, fmt.Errorf("%w: transaction at position %d has id %d", ErrInvalidConfig, i, tx.ID)
		}

		confirmations, err := restoreConfirmations(registry, tx.Confirmations)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", tx.ID, err)
		}

		amount := new(uint256.Int)
		if tx.Amount != nil {
			amount = tx.Amount.Clone()
		}

		txs[i] = &transaction{
			destination:   tx.Destination,
			amount:        amount,
			payload:       tx.Payload,
			confirmations: confirmations,
			executed:      tx.Executed,
			pending:       tx.Pending,
			executionRef:  tx.ExecutionRef,
		}
	}

	st := bind(registry, executor, origin, &wallet, requests, txs)
	st.version = snap.Version
	return st, nil
}

func restoreConfirmations(registry *GuardianRegistry, guardians []common.Address) (types.Set[common.Address], error) {
	set := types.NewSet[common.Address]()
	for _, g := range guardians {
		if !registry.IsGuardian(g) {
			return nil, fmt.Errorf("%w: confirmation from non-guardian %s", ErrInvalidConfig, g.Hex())
		}
		set.Add(g)
	}
	return set, nil
}
