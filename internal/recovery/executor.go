package recovery

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Call is an outbound value-and-data call performed on behalf of the wallet.
type Call struct {
	From  common.Address // the wallet's own account
	To    common.Address
	Value *uint256.Int
	Data  []byte
}

// CallExecutor performs outbound calls for executed transactions.
//
// Implementations deliver Value and Data to To, and must either complete the
// transfer or return an error. A returned error means no funds left the
// wallet, unless it wraps ErrCallOutcomeUnknown. Implementations must not
// resend a call whose delivery is uncertain.
type CallExecutor interface {
	// PerformCall executes call and returns a reference to it (for example an
	// on-chain transaction hash), which may be empty.
	PerformCall(ctx context.Context, call Call) (string, error)
}

// ledgerCallExecutor is the default CallExecutor. It moves no funds outside the
// wallet's own ledger and always succeeds, which is enough for local use and tests.
type ledgerCallExecutor struct{}

var _ CallExecutor = ledgerCallExecutor{}

// PerformCall accepts every call and returns an empty reference.
func (ledgerCallExecutor) PerformCall(_ context.Context, _ Call) (string, error) {
	return "", nil
}
