package workflows_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patronly/boost-ledger/internal/domain"
	"github.com/patronly/boost-ledger/internal/logger"
	"github.com/patronly/boost-ledger/internal/mocks"
	"github.com/patronly/boost-ledger/internal/workflows"
)

// testExecutorMocks contains all the mocks needed for testing the executor
type testExecutorMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	chain     *mocks.MockChainClient
	projector *mocks.MockProjector
	executor  workflows.Executor
}

// setupTestExecutor creates all the mocks and executor for testing
func setupTestExecutor(t *testing.T) *testExecutorMocks {
	// Initialize logger for tests (required for activities that log)
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)

	tm := &testExecutorMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		chain:     mocks.NewMockChainClient(ctrl),
		projector: mocks.NewMockProjector(ctrl),
	}

	tm.executor = workflows.NewExecutor(tm.store, tm.chain, tm.projector)

	return tm
}

// tearDownTestExecutor cleans up the test mocks
func tearDownTestExecutor(mocks *testExecutorMocks) {
	mocks.ctrl.Finish()
}

func TestExecutorGetLedgerRecord(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	ref := domain.RecordRef{Source: domain.SourceTransactionRecord, ID: 7}
	record := &domain.LedgerRecord{Ref: ref, Status: domain.StatusPending}

	tm.store.EXPECT().GetLedgerRecord(gomock.Any(), ref).Return(record, nil)

	got, err := tm.executor.GetLedgerRecord(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestExecutorWaitForReceipt(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	t.Run("successful receipt", func(t *testing.T) {
		tm.chain.EXPECT().
			WaitForReceipt(gomock.Any(), testTxHash, workflows.ReceiptWaitTimeout).
			Return(&types.Receipt{
				Status:      types.ReceiptStatusSuccessful,
				BlockNumber: big.NewInt(1234),
			}, nil)

		got, err := tm.executor.WaitForReceipt(context.Background(), workflows.WaitForReceiptInput{
			TxHash:  testTxHash,
			Timeout: workflows.ReceiptWaitTimeout,
		})
		require.NoError(t, err)
		assert.False(t, got.Reverted)
		assert.Equal(t, uint64(1234), got.BlockNumber)
	})

	t.Run("reverted receipt", func(t *testing.T) {
		tm.chain.EXPECT().
			WaitForReceipt(gomock.Any(), testTxHash, workflows.ReceiptWaitTimeout).
			Return(&types.Receipt{
				Status:      types.ReceiptStatusFailed,
				BlockNumber: big.NewInt(5678),
			}, nil)

		got, err := tm.executor.WaitForReceipt(context.Background(), workflows.WaitForReceiptInput{
			TxHash:  testTxHash,
			Timeout: workflows.ReceiptWaitTimeout,
		})
		require.NoError(t, err)
		assert.True(t, got.Reverted)
		assert.Equal(t, uint64(5678), got.BlockNumber)
	})

	t.Run("chain error propagates", func(t *testing.T) {
		chainErr := errors.New("no receipt within timeout")
		tm.chain.EXPECT().
			WaitForReceipt(gomock.Any(), testTxHash, workflows.ReceiptWaitTimeout).
			Return(nil, chainErr)

		_, err := tm.executor.WaitForReceipt(context.Background(), workflows.WaitForReceiptInput{
			TxHash:  testTxHash,
			Timeout: workflows.ReceiptWaitTimeout,
		})
		assert.ErrorIs(t, err, chainErr)
	})
}

func TestExecutorGetBlockTimestamp(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	ts := time.Date(2026, 5, 12, 10, 30, 0, 0, time.UTC)
	tm.chain.EXPECT().GetBlockTimestamp(gomock.Any(), uint64(1234)).Return(ts, nil)

	got, err := tm.executor.GetBlockTimestamp(context.Background(), 1234)
	require.NoError(t, err)
	assert.Equal(t, "2026-05-12T10:30:00Z", got)
}

func TestExecutorFinalizeRecord(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	ref := domain.RecordRef{Source: domain.SourceCampaignReceipt, ID: 3}
	result := domain.ConfirmationResult{Status: domain.StatusConfirmed, ConfirmedAt: time.Now().UTC()}

	tm.store.EXPECT().FinalizeLedgerRecord(gomock.Any(), ref, result).Return(true, nil)

	applied, err := tm.executor.FinalizeRecord(context.Background(), workflows.FinalizeRecordInput{
		Ref:    ref,
		Result: result,
	})
	require.NoError(t, err)
	assert.True(t, applied)
}

func TestExecutorMirrorActivityStatus(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	t.Run("mirrors status", func(t *testing.T) {
		eventID := "01JQ5D4WJ3M8X0T3V8H1N2P4QR"
		tm.projector.EXPECT().
			SetStatusByTxHash(gomock.Any(), testTxHash, domain.StatusConfirmed).
			Return(&eventID, nil)

		err := tm.executor.MirrorActivityStatus(context.Background(), workflows.MirrorActivityStatusInput{
			TxHash: testTxHash,
			Status: domain.StatusConfirmed,
		})
		assert.NoError(t, err)
	})

	t.Run("projection failure is swallowed", func(t *testing.T) {
		tm.projector.EXPECT().
			SetStatusByTxHash(gomock.Any(), testTxHash, domain.StatusFailed).
			Return(nil, errors.New("feed unavailable"))

		err := tm.executor.MirrorActivityStatus(context.Background(), workflows.MirrorActivityStatusInput{
			TxHash: testTxHash,
			Status: domain.StatusFailed,
		})
		assert.NoError(t, err)
	})

	t.Run("missing feed entry is not an error", func(t *testing.T) {
		tm.projector.EXPECT().
			SetStatusByTxHash(gomock.Any(), testTxHash, domain.StatusFailed).
			Return(nil, nil)

		err := tm.executor.MirrorActivityStatus(context.Background(), workflows.MirrorActivityStatusInput{
			TxHash: testTxHash,
			Status: domain.StatusFailed,
		})
		assert.NoError(t, err)
	})
}
