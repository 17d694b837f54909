package depositwatch

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// ErrBlockNotFound is returned by Blockchain.FetchBlockByNumber when the node
// does not know the requested block yet.
var ErrBlockNotFound = errors.New("block not found")

// Transaction is the part of an on-chain transaction relevant to deposits.
type Transaction struct {
	Hash  common.Hash
	From  common.Address
	To    *common.Address // nil for contract creations
	Value *uint256.Int
}

// Block is a block with its transactions.
type Block struct {
	Number       uint64
	Hash         common.Hash
	Transactions []Transaction
}

// Blockchain is a source of blocks for the watched network.
type Blockchain interface {
	// LatestBlockNumber returns the height of the chain head.
	LatestBlockNumber(ctx context.Context) (uint64, error)

	// FetchBlockByNumber returns the block at height with its full transactions.
	FetchBlockByNumber(ctx context.Context, height uint64) (Block, error)
}
