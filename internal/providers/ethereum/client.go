package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/patronly/boost-ledger/internal/adapter"
	"github.com/patronly/boost-ledger/internal/logger"
)

// ErrReceiptTimeout is returned when a receipt did not appear within the
// polling window.
var ErrReceiptTimeout = errors.New("timed out waiting for transaction receipt")

// DefaultPollInterval is the delay between receipt polls
const DefaultPollInterval = 3 * time.Second

// ChainClient reads settlement state from the L2
//
//go:generate mockgen -source=client.go -destination=../../mocks/chain_client.go -package=mocks -mock_names=ChainClient=MockChainClient
type ChainClient interface {
	// WaitForReceipt polls for the receipt of a transaction until it is
	// mined or the timeout elapses. Returns ErrReceiptTimeout if the
	// transaction is still unknown when the window closes.
	WaitForReceipt(ctx context.Context, txHash string, timeout time.Duration) (*types.Receipt, error)

	// GetBlockTimestamp returns the timestamp of a block by number
	GetBlockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error)

	// ChainID returns the chain ID the client is connected to
	ChainID(ctx context.Context) (uint64, error)

	// Close closes the connection
	Close()
}

type chainClient struct {
	client       adapter.EthClient
	clock        adapter.Clock
	pollInterval time.Duration
}

// NewClient creates a chain client on top of an Ethereum RPC connection
func NewClient(client adapter.EthClient, clock adapter.Clock, pollInterval time.Duration) ChainClient {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	return &chainClient{client: client, clock: clock, pollInterval: pollInterval}
}

// WaitForReceipt polls for the receipt of a transaction until it is mined or
// the timeout elapses
func (c *chainClient) WaitForReceipt(ctx context.Context, txHash string, timeout time.Duration) (*types.Receipt, error) {
	hash := common.HexToHash(txHash)
	deadline := c.clock.Now().Add(timeout)

	for {
		receipt, err := c.client.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, fmt.Errorf("failed to get transaction receipt: %w", err)
		}

		if c.clock.Now().After(deadline) {
			logger.WarnCtx(ctx, "Receipt polling window elapsed",
				zap.String("txHash", txHash),
				zap.Duration("timeout", timeout))
			return nil, ErrReceiptTimeout
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-c.clock.After(c.pollInterval):
		}
	}
}

// GetBlockTimestamp returns the timestamp of a block by number
func (c *chainClient) GetBlockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error) {
	header, err := c.client.HeaderByNumber(ctx, new(big.Int).SetUint64(blockNumber))
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get header %d: %w", blockNumber, err)
	}

	return c.clock.Unix(int64(header.Time), 0).UTC(), nil //nolint:gosec,G115 // header.Time is a uint64 from geth which is safe to cast
}

// ChainID returns the chain ID the client is connected to
func (c *chainClient) ChainID(ctx context.Context) (uint64, error) {
	id, err := c.client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}
	return id.Uint64(), nil
}

// Close closes the connection
func (c *chainClient) Close() {
	c.client.Close()
}
