package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/patronly/boost-ledger/internal/domain"
	"github.com/patronly/boost-ledger/internal/logger"
)

// ReceiptWaitTimeout bounds the chain receipt poll for one confirmation attempt
const ReceiptWaitTimeout = 120 * time.Second

// blockTimestampTimeout bounds the best-effort block timestamp fetch
const blockTimestampTimeout = 15 * time.Second

// ConfirmDeposit reconciles a pending ledger record against the canonical
// chain outcome: pending -> confirmed on a successful receipt, pending ->
// failed on revert, malformed hash, timeout or RPC error. Both outcomes are
// terminal; re-running the workflow for a terminal record is a no-op.
func (w *workerCore) ConfirmDeposit(ctx workflow.Context, ref domain.RecordRef) error {
	logger.InfoWf(ctx, "Confirming deposit",
		zap.String("source", string(ref.Source)),
		zap.Int64("recordID", ref.ID),
	)

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	// Step 1: idempotency guard. A missing or already-terminal record makes
	// redundant scheduling (writer + sweep) safe.
	var record *domain.LedgerRecord
	err := workflow.ExecuteActivity(ctx, w.executor.GetLedgerRecord, ref).Get(ctx, &record)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to load ledger record"),
			zap.Error(err),
			zap.Int64("recordID", ref.ID),
		)
		return err
	}
	if record == nil {
		logger.InfoWf(ctx, "Record does not exist, nothing to confirm",
			zap.Int64("recordID", ref.ID),
		)
		return nil
	}
	if record.Status.IsTerminal() {
		logger.InfoWf(ctx, "Record already terminal, skipping",
			zap.Int64("recordID", ref.ID),
			zap.String("status", string(record.Status)),
		)
		return nil
	}

	// Step 2: legacy or corrupted rows with an unparseable hash fail
	// without a chain call.
	if !domain.ValidTxHash(record.TxHash) {
		logger.WarnWf(ctx, "Record has malformed tx hash, marking failed",
			zap.Int64("recordID", ref.ID),
			zap.String("txHash", record.TxHash),
		)
		return w.finalize(ctx, ref, record.TxHash, domain.ConfirmationResult{
			Status:      domain.StatusFailed,
			ConfirmedAt: workflow.Now(ctx).UTC(),
		})
	}

	// Step 3: chain poll, single attempt. A timeout or RPC error here
	// resolves the record to failed permanently; the sweeper only
	// re-targets pending rows and never sees it again.
	pollCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: ReceiptWaitTimeout + 10*time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	})
	var receipt ReceiptResult
	err = workflow.ExecuteActivity(pollCtx, w.executor.WaitForReceipt, WaitForReceiptInput{
		TxHash:  record.TxHash,
		Timeout: ReceiptWaitTimeout,
	}).Get(pollCtx, &receipt)
	if err != nil {
		logger.WarnWf(ctx, "Chain poll failed, marking record failed",
			zap.Int64("recordID", ref.ID),
			zap.String("txHash", record.TxHash),
			zap.Error(err),
		)
		return w.finalize(ctx, ref, record.TxHash, domain.ConfirmationResult{
			Status:      domain.StatusFailed,
			ConfirmedAt: workflow.Now(ctx).UTC(),
		})
	}

	status := domain.StatusConfirmed
	if receipt.Reverted {
		status = domain.StatusFailed
	}

	result := domain.ConfirmationResult{
		Status:        status,
		L2BlockNumber: &receipt.BlockNumber,
		ConfirmedAt:   workflow.Now(ctx).UTC(),
	}

	// Best-effort block timestamp; a failure here never fails the confirmation
	tsCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: blockTimestampTimeout,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	})
	var timestampIso string
	if err := workflow.ExecuteActivity(tsCtx, w.executor.GetBlockTimestamp, receipt.BlockNumber).Get(tsCtx, &timestampIso); err != nil {
		logger.WarnWf(ctx, "Failed to fetch block timestamp, proceeding without it",
			zap.Uint64("blockNumber", receipt.BlockNumber),
			zap.Error(err),
		)
	} else {
		result.L2TimestampIso = &timestampIso
	}

	return w.finalize(ctx, ref, record.TxHash, result)
}

// finalize writes the terminal state and mirrors it onto the activity feed
func (w *workerCore) finalize(ctx workflow.Context, ref domain.RecordRef, txHash string, result domain.ConfirmationResult) error {
	var applied bool
	err := workflow.ExecuteActivity(ctx, w.executor.FinalizeRecord, FinalizeRecordInput{
		Ref:    ref,
		Result: result,
	}).Get(ctx, &applied)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to finalize ledger record"),
			zap.Error(err),
			zap.Int64("recordID", ref.ID),
		)
		return err
	}
	if !applied {
		// Lost the race with another confirmation attempt; the record is
		// already terminal and must not change again.
		logger.InfoWf(ctx, "Record was finalized concurrently, skipping mirror",
			zap.Int64("recordID", ref.ID),
		)
		return nil
	}

	if err := workflow.ExecuteActivity(ctx, w.executor.MirrorActivityStatus, MirrorActivityStatusInput{
		TxHash: txHash,
		Status: result.Status,
	}).Get(ctx, nil); err != nil {
		logger.WarnWf(ctx, "Failed to mirror status onto activity feed",
			zap.String("txHash", txHash),
			zap.Error(err),
		)
	}

	logger.InfoWf(ctx, "Deposit confirmation finished",
		zap.Int64("recordID", ref.ID),
		zap.String("status", string(result.Status)),
	)

	return nil
}
