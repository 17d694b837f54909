package recovery

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/recoverywallet/internal/pkg/logger"
	"github.com/gabapcia/recoverywallet/internal/pkg/types"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// Transaction is a read-only view of an outbound call proposed by the spender.
type Transaction struct {
	ID            uint64           `json:"id"`
	Destination   common.Address   `json:"destination"`
	Amount        *uint256.Int     `json:"amount"`
	Payload       hexutil.Bytes    `json:"payload"`
	Confirmations []common.Address `json:"confirmations"`
	Executed      bool             `json:"executed"`
	Pending       bool             `json:"pending,omitempty"`
	ExecutionRef  string           `json:"executionRef,omitempty"`
}

type transaction struct {
	destination   common.Address
	amount        *uint256.Int
	payload       []byte
	confirmations types.Set[common.Address]
	executed      bool
	pending       bool // funds reserved, call sent or about to be, outcome not recorded
	executionRef  string
}

func (tx *transaction) clone() *transaction {
	return &transaction{
		destination:   tx.destination,
		amount:        tx.amount.Clone(),
		payload:       bytes.Clone(tx.payload),
		confirmations: tx.confirmations.Clone(),
		executed:      tx.executed,
		pending:       tx.pending,
		executionRef:  tx.executionRef,
	}
}

func (tx *transaction) view(id uint64) Transaction {
	return Transaction{
		ID:            id,
		Destination:   tx.destination,
		Amount:        tx.amount.Clone(),
		Payload:       bytes.Clone(tx.payload),
		Confirmations: tx.confirmations.ToSortedSlice(compareAddresses),
		Executed:      tx.executed,
		Pending:       tx.pending,
		ExecutionRef:  tx.executionRef,
	}
}

// transactionManager is the append-only log of spender transactions, indexed
// by id. Unlike change requests, submission is not a confirmation and
// execution is never automatic.
type transactionManager struct {
	registry *GuardianRegistry
	wallet   *walletCore
	executor CallExecutor
	origin   common.Address
	txs      []*transaction
}

// submit records a transaction proposed by the current spender.
func (m *transactionManager) submit(ctx context.Context, caller, destination common.Address, amount *uint256.Int, payload []byte) (uint64, error) {
	if caller != m.wallet.currentSpender() {
		return 0, fmt.Errorf("%w: not spender", ErrUnauthorized)
	}

	if amount == nil {
		amount = new(uint256.Int)
	}

	id := uint64(len(m.txs))
	m.txs = append(m.txs, &transaction{
		destination:   destination,
		amount:        amount.Clone(),
		payload:       bytes.Clone(payload),
		confirmations: types.NewSet[common.Address](),
	})

	logger.Info(ctx, "transaction submitted",
		"tx.id", id,
		"tx.destination", destination.Hex(),
		"tx.amount", amount.Dec(),
		"tx.payload_size", len(payload),
	)

	return id, nil
}

// confirm adds guardian caller's vote to transaction id.
func (m *transactionManager) confirm(ctx context.Context, caller common.Address, id uint64) error {
	if !m.registry.IsGuardian(caller) {
		return fmt.Errorf("%w: not guardian", ErrUnauthorized)
	}

	tx, err := m.get(id)
	if err != nil {
		return err
	}

	if tx.executed {
		return fmt.Errorf("%w: transaction %d", ErrAlreadyExecuted, id)
	}

	if tx.confirmations.Has(caller) {
		return fmt.Errorf("%w: guardian %s already confirmed transaction %d", ErrDuplicateConfirmation, caller.Hex(), id)
	}

	tx.confirmations.Add(caller)

	logger.Info(ctx, "transaction confirmed",
		"tx.id", id,
		"tx.confirmations", tx.confirmations.Len(),
		"guardian", caller.Hex(),
	)

	return nil
}

// begin reserves the amount of transaction id for its outbound call and
// returns the call to perform. The spender is checked at call time, so a
// spender rotated after submission executes in its place.
//
// A begun transaction stays pending until settle records the outcome, and
// cannot be begun again meanwhile.
func (m *transactionManager) begin(ctx context.Context, caller common.Address, id uint64) (Call, error) {
	if caller != m.wallet.currentSpender() {
		return Call{}, fmt.Errorf("%w: not spender", ErrUnauthorized)
	}

	tx, err := m.get(id)
	if err != nil {
		return Call{}, err
	}

	if tx.executed {
		return Call{}, fmt.Errorf("%w: transaction %d already executed", ErrCannotExecute, id)
	}

	if tx.pending {
		return Call{}, fmt.Errorf("%w: transaction %d has an execution in flight or with unknown outcome", ErrCannotExecute, id)
	}

	if !m.registry.MeetsTransactionThreshold(tx.confirmations.Len()) {
		return Call{}, fmt.Errorf("%w: transaction %d has %d confirmations", ErrCannotExecute, id, tx.confirmations.Len())
	}

	if err := m.wallet.debit(tx.amount); err != nil {
		return Call{}, err
	}
	tx.pending = true

	logger.Debug(ctx, "transaction execution started", "tx.id", id)

	return Call{
		From:  m.origin,
		To:    tx.destination,
		Value: tx.amount.Clone(),
		Data:  bytes.Clone(tx.payload),
	}, nil
}

// settle records the outcome of the call begun for transaction id and returns
// callErr as an ErrCallFailed. A successful call marks the transaction
// executed. A failed call refunds the reservation and reopens the transaction,
// unless callErr wraps ErrCallOutcomeUnknown: the funds may have left, so the
// transaction stays pending.
func (m *transactionManager) settle(ctx context.Context, id uint64, ref string, callErr error) error {
	tx, err := m.get(id)
	if err != nil {
		return err
	}

	if !tx.pending {
		return fmt.Errorf("%w: transaction %d has no execution in flight", ErrCannotExecute, id)
	}

	switch {
	case callErr == nil:
		tx.pending = false
		tx.executed = true
		tx.executionRef = ref

		logger.Info(ctx, "transaction executed",
			"tx.id", id,
			"tx.destination", tx.destination.Hex(),
			"tx.amount", tx.amount.Dec(),
			"tx.execution_ref", ref,
		)
		return nil
	case errors.Is(callErr, ErrCallOutcomeUnknown):
		logger.Error(ctx, "transaction outcome unknown, keeping its funds reserved",
			"tx.id", id,
			"error", callErr,
		)
	default:
		tx.pending = false
		m.wallet.refund(tx.amount)

		logger.Warn(ctx, "transaction call failed",
			"tx.id", id,
			"error", callErr,
		)
	}

	return fmt.Errorf("%w: %w", ErrCallFailed, callErr)
}

func (m *transactionManager) get(id uint64) (*transaction, error) {
	if id >= uint64(len(m.txs)) {
		return nil, fmt.Errorf("%w: transaction %d", ErrNotFound, id)
	}
	return m.txs[id], nil
}
