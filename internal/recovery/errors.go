package recovery

import "errors"

var (
	// ErrUnauthorized is returned when the caller lacks the role an operation
	// requires: it is not a guardian, or it is not the current spender.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned when a change request or transaction id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateConfirmation is returned when a guardian confirms the same item twice.
	ErrDuplicateConfirmation = errors.New("duplicate confirmation")

	// ErrAlreadyApplied is returned when a confirmation targets a change request
	// that has already rotated the spender.
	ErrAlreadyApplied = errors.New("change request already applied")

	// ErrAlreadyExecuted is returned when a confirmation targets an executed transaction.
	ErrAlreadyExecuted = errors.New("transaction already executed")

	// ErrCannotExecute is returned when a transaction is executed before reaching
	// the confirmation threshold, or after it has already been executed.
	ErrCannotExecute = errors.New("cannot execute tx")

	// ErrCallFailed is returned when the outbound call of an authorized
	// transaction fails, including when the wallet balance is insufficient.
	ErrCallFailed = errors.New("call failed")

	// ErrCallOutcomeUnknown is wrapped by a CallExecutor error when the call may
	// have been delivered even though the executor could not confirm it, such
	// as a lost response. The transaction then stays pending and cannot be
	// executed again.
	ErrCallOutcomeUnknown = errors.New("call outcome unknown")

	// ErrBalanceOverflow is returned when a deposit would overflow the 256-bit balance.
	ErrBalanceOverflow = errors.New("balance overflow")

	// ErrInvalidConfig is returned by New when the construction parameters break
	// the guardian set or threshold rules.
	ErrInvalidConfig = errors.New("invalid wallet config")

	// ErrConfigMismatch is returned by New when the persisted wallet was created
	// with a different guardian set or different thresholds.
	ErrConfigMismatch = errors.New("persisted wallet does not match config")

	// ErrNoStateFound is returned by StateStorage.LoadState when nothing has been
	// persisted for the wallet yet.
	ErrNoStateFound = errors.New("no wallet state found")

	// ErrStateConflict is returned by StateStorage.SaveState when the stored
	// snapshot is not the one the saved snapshot was derived from, because
	// another process saved the wallet first.
	ErrStateConflict = errors.New("wallet state changed concurrently")
)

// reasons maps every rejection sentinel to its stable, machine-readable code.
var reasons = []struct {
	err  error
	code string
}{
	{ErrUnauthorized, "unauthorized"},
	{ErrNotFound, "not_found"},
	{ErrDuplicateConfirmation, "duplicate_confirmation"},
	{ErrAlreadyApplied, "already_applied"},
	{ErrAlreadyExecuted, "already_executed"},
	{ErrCannotExecute, "cannot_execute"},
	{ErrCallFailed, "call_failed"},
	{ErrBalanceOverflow, "balance_overflow"},
	{ErrInvalidConfig, "invalid_config"},
	{ErrConfigMismatch, "config_mismatch"},
	{ErrStateConflict, "state_conflict"},
}

// Reason returns the stable code of the rejection carried by err, "" for a nil
// error and "internal" for errors that are not wallet rejections (storage
// failures, cancelled contexts).
func Reason(err error) string {
	if err == nil {
		return ""
	}

	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.code
		}
	}

	return "internal"
}

// IsRejection reports whether err is a wallet rejection, as opposed to an
// infrastructure failure or a state conflict. Rejections are deterministic
// and never worth retrying.
func IsRejection(err error) bool {
	switch Reason(err) {
	case "", "internal", "state_conflict":
		return false
	default:
		return true
	}
}
