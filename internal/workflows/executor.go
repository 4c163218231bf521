package workflows

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/patronly/boost-ledger/internal/domain"
	"github.com/patronly/boost-ledger/internal/logger"
	"github.com/patronly/boost-ledger/internal/projector"
	"github.com/patronly/boost-ledger/internal/providers/ethereum"
	"github.com/patronly/boost-ledger/internal/store"
)

// WaitForReceiptInput bounds a single receipt poll
type WaitForReceiptInput struct {
	TxHash  string        `json:"tx_hash"`
	Timeout time.Duration `json:"timeout"`
}

// ReceiptResult is the settlement outcome read from the chain
type ReceiptResult struct {
	Reverted    bool   `json:"reverted"`
	BlockNumber uint64 `json:"block_number"`
}

// FinalizeRecordInput carries a terminal transition to the store
type FinalizeRecordInput struct {
	Ref    domain.RecordRef          `json:"ref"`
	Result domain.ConfirmationResult `json:"result"`
}

// MirrorActivityStatusInput mirrors a terminal status onto the activity feed
type MirrorActivityStatusInput struct {
	TxHash string        `json:"tx_hash"`
	Status domain.Status `json:"status"`
}

// Executor defines the interface for executing activities
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor.go -package=mocks -mock_names=Executor=MockExecutor
type Executor interface {
	// GetLedgerRecord loads the unified view of a record (nil if missing)
	GetLedgerRecord(ctx context.Context, ref domain.RecordRef) (*domain.LedgerRecord, error)

	// WaitForReceipt polls the chain for a transaction receipt within the
	// given window and maps the execution outcome
	WaitForReceipt(ctx context.Context, input WaitForReceiptInput) (*ReceiptResult, error)

	// GetBlockTimestamp returns a block's timestamp in ISO 8601
	GetBlockTimestamp(ctx context.Context, blockNumber uint64) (string, error)

	// FinalizeRecord writes a terminal status to the record, returning
	// false if the record was no longer pending
	FinalizeRecord(ctx context.Context, input FinalizeRecordInput) (bool, error)

	// MirrorActivityStatus mirrors a terminal status onto the feed entry
	// for a tx hash. Projection failures are logged, never returned.
	MirrorActivityStatus(ctx context.Context, input MirrorActivityStatusInput) error
}

// executor is the concrete implementation of Executor
type executor struct {
	store     store.Store
	chain     ethereum.ChainClient
	projector projector.Projector
}

// NewExecutor creates a new executor instance
func NewExecutor(st store.Store, chain ethereum.ChainClient, proj projector.Projector) Executor {
	return &executor{
		store:     st,
		chain:     chain,
		projector: proj,
	}
}

// GetLedgerRecord loads the unified view of a record
func (e *executor) GetLedgerRecord(ctx context.Context, ref domain.RecordRef) (*domain.LedgerRecord, error) {
	return e.store.GetLedgerRecord(ctx, ref)
}

// WaitForReceipt polls the chain for a transaction receipt
func (e *executor) WaitForReceipt(ctx context.Context, input WaitForReceiptInput) (*ReceiptResult, error) {
	receipt, err := e.chain.WaitForReceipt(ctx, input.TxHash, input.Timeout)
	if err != nil {
		return nil, err
	}

	return &ReceiptResult{
		Reverted:    receipt.Status == types.ReceiptStatusFailed,
		BlockNumber: receipt.BlockNumber.Uint64(),
	}, nil
}

// GetBlockTimestamp returns a block's timestamp in ISO 8601
func (e *executor) GetBlockTimestamp(ctx context.Context, blockNumber uint64) (string, error) {
	ts, err := e.chain.GetBlockTimestamp(ctx, blockNumber)
	if err != nil {
		return "", err
	}
	return ts.Format(time.RFC3339), nil
}

// FinalizeRecord writes a terminal status to the record
func (e *executor) FinalizeRecord(ctx context.Context, input FinalizeRecordInput) (bool, error) {
	return e.store.FinalizeLedgerRecord(ctx, input.Ref, input.Result)
}

// MirrorActivityStatus mirrors a terminal status onto the feed entry.
// The feed is a best-effort projection of the ledger, so a failed mirror is
// logged and swallowed rather than failing the confirmation.
func (e *executor) MirrorActivityStatus(ctx context.Context, input MirrorActivityStatusInput) error {
	eventID, err := e.projector.SetStatusByTxHash(ctx, input.TxHash, input.Status)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to mirror activity status",
			zap.String("txHash", input.TxHash),
			zap.String("status", string(input.Status)),
			zap.Error(err))
		return nil
	}
	if eventID == nil {
		logger.DebugCtx(ctx, "No activity event to mirror",
			zap.String("txHash", input.TxHash))
	}
	return nil
}
