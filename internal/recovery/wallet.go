package recovery

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// walletCore owns the current spender and the native-asset balance. The two
// managers hold a pointer to it and never keep their own copy of either value.
type walletCore struct {
	spender common.Address
	balance *uint256.Int
}

func newWalletCore(spender common.Address) walletCore {
	return walletCore{
		spender: spender,
		balance: new(uint256.Int),
	}
}

func (w *walletCore) clone() walletCore {
	return walletCore{
		spender: w.spender,
		balance: w.balance.Clone(),
	}
}

// currentSpender returns the identity allowed to submit and execute transactions.
func (w *walletCore) currentSpender() common.Address {
	return w.spender
}

// receive credits amount to the balance. Deposits are not authorization-gated.
func (w *walletCore) receive(amount *uint256.Int) error {
	sum, overflow := new(uint256.Int).AddOverflow(w.balance, amount)
	if overflow {
		return fmt.Errorf("%w: depositing %s onto %s", ErrBalanceOverflow, amount.Dec(), w.balance.Dec())
	}

	w.balance = sum
	return nil
}

// rotateSpender overwrites the current spender. Only the change request apply
// step calls it.
func (w *walletCore) rotateSpender(newSpender common.Address) common.Address {
	previous := w.spender
	w.spender = newSpender
	return previous
}

// debit takes amount off the balance, or fails leaving it untouched when the
// balance is insufficient.
func (w *walletCore) debit(amount *uint256.Int) error {
	if w.balance.Lt(amount) {
		return fmt.Errorf("%w: insufficient balance: have %s, need %s", ErrCallFailed, w.balance.Dec(), amount.Dec())
	}

	w.balance = new(uint256.Int).Sub(w.balance, amount)
	return nil
}

// refund gives back an amount taken by debit.
func (w *walletCore) refund(amount *uint256.Int) {
	w.balance = new(uint256.Int).Add(w.balance, amount)
}
