package recovery

import (
	"bytes"
	"fmt"

	"github.com/gabapcia/recoverywallet/internal/pkg/types"

	"github.com/ethereum/go-ethereum/common"
)

// Policy is a read-only view of the guardian set and thresholds.
type Policy struct {
	Guardians              []common.Address `json:"guardians"`
	SpenderChangeThreshold uint             `json:"spenderChangeThreshold"`
	TransactionThreshold   uint             `json:"transactionThreshold"`
	ReservedThreshold      uint             `json:"reservedThreshold"`
}

// GuardianRegistry holds the immutable guardian set and the two confirmation
// thresholds. All methods are pure.
type GuardianRegistry struct {
	guardians              types.Set[common.Address]
	spenderChangeThreshold uint
	transactionThreshold   uint
}

// NewGuardianRegistry validates and builds a registry.
//
// It fails with ErrInvalidConfig when the guardian list is empty, contains the
// zero address or a duplicate, or when either threshold is 0 or exceeds the
// number of guardians.
func NewGuardianRegistry(guardians []common.Address, spenderChangeThreshold, transactionThreshold uint) (*GuardianRegistry, error) {
	if len(guardians) == 0 {
		return nil, fmt.Errorf("%w: guardian set is empty", ErrInvalidConfig)
	}

	set := types.NewSet[common.Address]()
	for _, g := range guardians {
		if g == (common.Address{}) {
			return nil, fmt.Errorf("%w: zero address in guardian set", ErrInvalidConfig)
		}
		if set.Has(g) {
			return nil, fmt.Errorf("%w: duplicate guardian %s", ErrInvalidConfig, g.Hex())
		}
		set.Add(g)
	}

	thresholds := []struct {
		name  string
		value uint
	}{
		{"spender change", spenderChangeThreshold},
		{"transaction", transactionThreshold},
	}
	for _, t := range thresholds {
		if t.value == 0 || t.value > uint(set.Len()) {
			return nil, fmt.Errorf("%w: %s threshold %d must be between 1 and %d", ErrInvalidConfig, t.name, t.value, set.Len())
		}
	}

	return &GuardianRegistry{
		guardians:              set,
		spenderChangeThreshold: spenderChangeThreshold,
		transactionThreshold:   transactionThreshold,
	}, nil
}

// IsGuardian reports whether identity belongs to the guardian set.
func (r *GuardianRegistry) IsGuardian(identity common.Address) bool {
	return r.guardians.Has(identity)
}

// MeetsSpenderChangeThreshold reports whether count confirmations are enough
// to rotate the spender.
func (r *GuardianRegistry) MeetsSpenderChangeThreshold(count int) bool {
	return count >= int(r.spenderChangeThreshold)
}

// MeetsTransactionThreshold reports whether count confirmations are enough to
// execute a transaction.
func (r *GuardianRegistry) MeetsTransactionThreshold(count int) bool {
	return count >= int(r.transactionThreshold)
}

// Guardians returns the guardian set in ascending address order.
func (r *GuardianRegistry) Guardians() []common.Address {
	return r.guardians.ToSortedSlice(compareAddresses)
}

// sameAs reports whether other describes the same guardian set and thresholds.
func (r *GuardianRegistry) sameAs(other *GuardianRegistry) bool {
	if r.spenderChangeThreshold != other.spenderChangeThreshold ||
		r.transactionThreshold != other.transactionThreshold ||
		r.guardians.Len() != other.guardians.Len() {
		return false
	}

	for g := range other.guardians {
		if !r.guardians.Has(g) {
			return false
		}
	}

	return true
}

func compareAddresses(a, b common.Address) int {
	return bytes.Compare(a[:], b[:])
}
