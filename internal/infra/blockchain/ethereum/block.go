package ethereum

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/recoverywallet/internal/depositwatch"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

type (
	// TransactionResponse is the part of a transaction object returned by
	// eth_getBlockByNumber that deposit detection needs.
	TransactionResponse struct {
		Hash  common.Hash     `json:"hash"`
		From  common.Address  `json:"from"`
		To    *common.Address `json:"to"`
		Value *hexutil.Big    `json:"value"`
	}

	// BlockResponse is the part of a block object returned by
	// eth_getBlockByNumber that deposit detection needs.
	BlockResponse struct {
		Number       hexutil.Uint64        `json:"number"`
		Hash         common.Hash           `json:"hash"`
		Transactions []TransactionResponse `json:"transactions"`
	}
)

// toDepositTransaction converts a TransactionResponse into a depositwatch.Transaction.
func (t TransactionResponse) toDepositTransaction() (depositwatch.Transaction, error) {
	value := new(uint256.Int)
	if t.Value != nil {
		var overflow bool
		if value, overflow = uint256.FromBig(t.Value.ToInt()); overflow {
			return depositwatch.Transaction{}, fmt.Errorf("transaction %s: value overflows 256 bits", t.Hash.Hex())
		}
	}

	return depositwatch.Transaction{
		Hash:  t.Hash,
		From:  t.From,
		To:    t.To,
		Value: value,
	}, nil
}

// toDepositBlock converts a BlockResponse into a depositwatch.Block.
func (b BlockResponse) toDepositBlock() (depositwatch.Block, error) {
	transactions := make([]depositwatch.Transaction, len(b.Transactions))
	for i, t := range b.Transactions {
		tx, err := t.toDepositTransaction()
		if err != nil {
			return depositwatch.Block{}, err
		}
		transactions[i] = tx
	}

	return depositwatch.Block{
		Number:       uint64(b.Number),
		Hash:         b.Hash,
		Transactions: transactions,
	}, nil
}

// LatestBlockNumber implements depositwatch.Blockchain using eth_blockNumber.
func (c *client) LatestBlockNumber(ctx context.Context) (uint64, error) {
	data, err := c.conn.Fetch(ctx, "eth_blockNumber")
	if err != nil {
		return 0, err
	}

	var number hexutil.Uint64
	if err := json.Unmarshal(data, &number); err != nil {
		return 0, fmt.Errorf("decoding block number: %w", err)
	}

	return uint64(number), nil
}

// FetchBlockByNumber implements depositwatch.Blockchain using
// eth_getBlockByNumber with full transaction objects. A null result means the
// node has not seen the block yet and is reported as depositwatch.ErrBlockNotFound.
func (c *client) FetchBlockByNumber(ctx context.Context, height uint64) (depositwatch.Block, error) {
	data, err := c.conn.Fetch(ctx, "eth_getBlockByNumber", hexutil.Uint64(height), true)
	if err != nil {
		return depositwatch.Block{}, err
	}

	var resp *BlockResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return depositwatch.Block{}, fmt.Errorf("decoding block %d: %w", height, err)
	}

	if resp == nil {
		return depositwatch.Block{}, fmt.Errorf("%w: %d", depositwatch.ErrBlockNotFound, height)
	}

	return resp.toDepositBlock()
}
