package recovery

import (
	"context"
	"fmt"

	"github.com/gabapcia/recoverywallet/internal/pkg/logger"
	"github.com/gabapcia/recoverywallet/internal/pkg/types"

	"github.com/ethereum/go-ethereum/common"
)

// ChangeRequest is a read-only view of a proposal to replace the spender.
type ChangeRequest struct {
	ID            uint64           `json:"id"`
	NewSpender    common.Address   `json:"newSpender"`
	Confirmations []common.Address `json:"confirmations"`
	Applied       bool             `json:"applied"`
}

type changeRequest struct {
	newSpender    common.Address
	confirmations types.Set[common.Address]
	applied       bool
}

func (r *changeRequest) clone() *changeRequest {
	return &changeRequest{
		newSpender:    r.newSpender,
		confirmations: r.confirmations.Clone(),
		applied:       r.applied,
	}
}

func (r *changeRequest) view(id uint64) ChangeRequest {
	return ChangeRequest{
		ID:            id,
		NewSpender:    r.newSpender,
		Confirmations: r.confirmations.ToSortedSlice(compareAddresses),
		Applied:       r.applied,
	}
}

// changeRequestManager is the append-only log of spender change requests,
// indexed by id. It mutates the wallet only through rotateSpender.
type changeRequestManager struct {
	registry *GuardianRegistry
	wallet   *walletCore
	requests []*changeRequest
}

// submit records a new request from guardian caller, counts the submission as
// the caller's confirmation and applies it right away if that already meets
// the threshold.
func (m *changeRequestManager) submit(ctx context.Context, caller, newSpender common.Address) (uint64, error) {
	if !m.registry.IsGuardian(caller) {
		return 0, fmt.Errorf("%w: not guardian", ErrUnauthorized)
	}

	id := uint64(len(m.requests))
	req := &changeRequest{
		newSpender:    newSpender,
		confirmations: types.NewSet[common.Address](),
	}
	m.requests = append(m.requests, req)

	logger.Info(ctx, "spender change requested",
		"request.id", id,
		"request.new_spender", newSpender.Hex(),
		"guardian", caller.Hex(),
	)

	m.confirmAndApply(ctx, id, req, caller)
	return id, nil
}

// confirm adds guardian caller's vote to request id.
func (m *changeRequestManager) confirm(ctx context.Context, caller common.Address, id uint64) error {
	if !m.registry.IsGuardian(caller) {
		return fmt.Errorf("%w: not guardian", ErrUnauthorized)
	}

	req, err := m.get(id)
	if err != nil {
		return err
	}

	if req.applied {
		return fmt.Errorf("%w: request %d", ErrAlreadyApplied, id)
	}

	if req.confirmations.Has(caller) {
		return fmt.Errorf("%w: guardian %s already confirmed request %d", ErrDuplicateConfirmation, caller.Hex(), id)
	}

	m.confirmAndApply(ctx, id, req, caller)
	return nil
}

func (m *changeRequestManager) confirmAndApply(ctx context.Context, id uint64, req *changeRequest, guardian common.Address) {
	req.confirmations.Add(guardian)

	logger.Info(ctx, "spender change confirmed",
		"request.id", id,
		"request.confirmations", req.confirmations.Len(),
		"guardian", guardian.Hex(),
	)

	m.applyIfAuthorized(ctx, id, req)
}

// applyIfAuthorized is the single Open -> Applied transition. It is a no-op
// for applied requests and for requests below the threshold.
func (m *changeRequestManager) applyIfAuthorized(ctx context.Context, id uint64, req *changeRequest) bool {
	if req.applied || !m.registry.MeetsSpenderChangeThreshold(req.confirmations.Len()) {
		return false
	}

	req.applied = true
	previous := m.wallet.rotateSpender(req.newSpender)

	logger.Info(ctx, "spender rotated",
		"request.id", id,
		"spender.previous", previous.Hex(),
		"spender.current", req.newSpender.Hex(),
	)

	return true
}

func (m *changeRequestManager) get(id uint64) (*changeRequest, error) {
	if id >= uint64(len(m.requests)) {
		return nil, fmt.Errorf("%w: change request %d", ErrNotFound, id)
	}
	return m.requests[id], nil
}
