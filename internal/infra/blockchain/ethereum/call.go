package ethereum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/recoverywallet/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/recoverywallet/internal/recovery"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// TransactionArgs is the eth_sendTransaction request object.
type TransactionArgs struct {
	From  common.Address  `json:"from"`
	To    *common.Address `json:"to"`
	Value *hexutil.Big    `json:"value"`
	Data  hexutil.Bytes   `json:"data,omitempty"`
}

func newTransactionArgs(call recovery.Call) TransactionArgs {
	to := call.To
	args := TransactionArgs{
		From:  call.From,
		To:    &to,
		Value: new(hexutil.Big),
		Data:  call.Data,
	}

	if call.Value != nil {
		args.Value = (*hexutil.Big)(call.Value.ToBig())
	}

	return args
}

// PerformCall implements recovery.CallExecutor by submitting the call with
// eth_sendTransaction and returning the transaction hash reported by the node.
//
// Only a JSON-RPC error object proves the node refused the transaction. Any
// other failure, such as a lost or unreadable response, is wrapped with
// recovery.ErrCallOutcomeUnknown since the transaction may be in the pool.
func (c *client) PerformCall(ctx context.Context, call recovery.Call) (string, error) {
	raw, err := c.send.Fetch(ctx, "eth_sendTransaction", newTransactionArgs(call))
	if err != nil {
		if errors.Is(err, jsonrpc.ErrProviderReturnedError) {
			return "", err
		}
		return "", fmt.Errorf("%w: sending transaction: %w", recovery.ErrCallOutcomeUnknown, err)
	}

	var hash common.Hash
	if err := json.Unmarshal(raw, &hash); err != nil {
		return "", fmt.Errorf("%w: decoding transaction hash: %w", recovery.ErrCallOutcomeUnknown, err)
	}

	return hash.Hex(), nil
}
