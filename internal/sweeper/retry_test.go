package sweeper_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/client"

	"github.com/patronly/boost-ledger/internal/domain"
	"github.com/patronly/boost-ledger/internal/logger"
	"github.com/patronly/boost-ledger/internal/mocks"
	"github.com/patronly/boost-ledger/internal/sweeper"
)

// testRetrySweeperMocks contains all the mocks needed for testing the sweeper
type testRetrySweeperMocks struct {
	ctrl         *gomock.Controller
	store        *mocks.MockStore
	clock        *mocks.MockClock
	orchestrator *mocks.MockTemporalOrchestrator
	sweeper      sweeper.Sweeper
}

// setupTestRetrySweeper creates all the mocks and sweeper for testing
func setupTestRetrySweeper(t *testing.T, config *sweeper.RetrySweeperConfig) *testRetrySweeperMocks {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)

	tm := &testRetrySweeperMocks{
		ctrl:         ctrl,
		store:        mocks.NewMockStore(ctrl),
		clock:        mocks.NewMockClock(ctrl),
		orchestrator: mocks.NewMockTemporalOrchestrator(ctrl),
	}

	tm.sweeper = sweeper.NewRetrySweeper(
		config,
		tm.store,
		tm.clock,
		tm.orchestrator,
		"test-task-queue",
	)

	return tm
}

// tearDownTestRetrySweeper cleans up the test mocks
func tearDownTestRetrySweeper(mocks *testRetrySweeperMocks) {
	mocks.ctrl.Finish()
}

// expectClock wires the standard clock expectations: After returns a channel
// that fires after a brief delay so Stop can interrupt the loop.
func (tm *testRetrySweeperMocks) expectClock() {
	now := time.Now()
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()
	tm.clock.EXPECT().After(gomock.Any()).DoAndReturn(func(d time.Duration) <-chan time.Time {
		ch := make(chan time.Time, 1)
		go func() {
			time.Sleep(50 * time.Millisecond)
			ch <- time.Now()
		}()
		return ch
	}).AnyTimes()
}

func TestRetrySweeper_Name(t *testing.T) {
	mocks := setupTestRetrySweeper(t, &sweeper.RetrySweeperConfig{})
	defer tearDownTestRetrySweeper(mocks)

	assert.Equal(t, "retry-sweeper", mocks.sweeper.Name())
}

func TestRetrySweeper_ReschedulesPendingRecords(t *testing.T) {
	config := &sweeper.RetrySweeperConfig{
		Interval:       time.Minute,
		BatchSize:      10,
		WorkerPoolSize: 2,
	}
	mocks := setupTestRetrySweeper(t, config)
	defer tearDownTestRetrySweeper(mocks)

	ctx := context.Background()
	refs := []domain.RecordRef{
		{Source: domain.SourceTransactionRecord, ID: 1},
		{Source: domain.SourceCampaignReceipt, ID: 2},
	}

	mocks.expectClock()

	// First cycle returns the stuck records, then nothing is left
	gomock.InOrder(
		mocks.store.EXPECT().
			ListPendingLedgerRefs(gomock.Any(), 10).
			Return(refs, nil).
			Times(1),
		mocks.store.EXPECT().
			ListPendingLedgerRefs(gomock.Any(), 10).
			Return(nil, nil).
			MinTimes(1),
	)

	scheduled := make(map[string]bool)
	mocks.orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opt client.StartWorkflowOptions, _ interface{}, _ ...interface{}) (client.WorkflowRun, error) {
			assert.Equal(t, "test-task-queue", opt.TaskQueue)
			scheduled[opt.ID] = true
			return nil, nil
		}).
		Times(2)

	// Start sweeper in goroutine and stop it after processing
	go func() {
		time.Sleep(200 * time.Millisecond)
		_ = mocks.sweeper.Stop(ctx)
	}()

	err := mocks.sweeper.Start(ctx)
	require.NoError(t, err)

	assert.True(t, scheduled["confirm-transaction_record-1"])
	assert.True(t, scheduled["confirm-campaign_receipt-2"])
}

func TestRetrySweeper_SchedulingFailureDoesNotStopCycle(t *testing.T) {
	config := &sweeper.RetrySweeperConfig{
		Interval:       time.Minute,
		BatchSize:      10,
		WorkerPoolSize: 2,
	}
	mocks := setupTestRetrySweeper(t, config)
	defer tearDownTestRetrySweeper(mocks)

	ctx := context.Background()
	refs := []domain.RecordRef{
		{Source: domain.SourceTransactionRecord, ID: 1},
		{Source: domain.SourceTransactionRecord, ID: 2},
	}

	mocks.expectClock()

	gomock.InOrder(
		mocks.store.EXPECT().
			ListPendingLedgerRefs(gomock.Any(), 10).
			Return(refs, nil).
			Times(1),
		mocks.store.EXPECT().
			ListPendingLedgerRefs(gomock.Any(), 10).
			Return(nil, nil).
			MinTimes(1),
	)

	// One record fails to schedule; the other still goes through
	mocks.orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("temporal unavailable")).
		Times(1)
	mocks.orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(1)

	go func() {
		time.Sleep(200 * time.Millisecond)
		_ = mocks.sweeper.Stop(ctx)
	}()

	err := mocks.sweeper.Start(ctx)
	require.NoError(t, err)
}

func TestRetrySweeper_ListFailureContinuesSweeping(t *testing.T) {
	config := &sweeper.RetrySweeperConfig{
		Interval:       time.Minute,
		BatchSize:      10,
		WorkerPoolSize: 2,
	}
	mocks := setupTestRetrySweeper(t, config)
	defer tearDownTestRetrySweeper(mocks)

	ctx := context.Background()

	mocks.expectClock()

	// A failed list aborts the cycle but not the loop
	mocks.store.EXPECT().
		ListPendingLedgerRefs(gomock.Any(), 10).
		Return(nil, errors.New("database unavailable")).
		MinTimes(1)

	go func() {
		time.Sleep(150 * time.Millisecond)
		_ = mocks.sweeper.Stop(ctx)
	}()

	err := mocks.sweeper.Start(ctx)
	require.NoError(t, err)
}

func TestRetrySweeper_StartTwiceFails(t *testing.T) {
	config := &sweeper.RetrySweeperConfig{
		Interval:       time.Minute,
		BatchSize:      10,
		WorkerPoolSize: 2,
	}
	mocks := setupTestRetrySweeper(t, config)
	defer tearDownTestRetrySweeper(mocks)

	ctx := context.Background()

	mocks.expectClock()
	mocks.store.EXPECT().
		ListPendingLedgerRefs(gomock.Any(), 10).
		Return(nil, nil).
		AnyTimes()

	go func() {
		time.Sleep(100 * time.Millisecond)
		_ = mocks.sweeper.Stop(ctx)
	}()

	started := make(chan struct{})
	go func() {
		close(started)
		_ = mocks.sweeper.Start(ctx)
	}()
	<-started
	time.Sleep(20 * time.Millisecond)

	err := mocks.sweeper.Start(ctx)
	assert.Error(t, err)

	// Let the first Start wind down before the controller checks expectations
	time.Sleep(150 * time.Millisecond)
}

func TestRetrySweeper_ContextCancellationStopsLoop(t *testing.T) {
	config := &sweeper.RetrySweeperConfig{
		Interval:       time.Minute,
		BatchSize:      10,
		WorkerPoolSize: 2,
	}
	mocks := setupTestRetrySweeper(t, config)
	defer tearDownTestRetrySweeper(mocks)

	ctx, cancel := context.WithCancel(context.Background())

	mocks.expectClock()
	mocks.store.EXPECT().
		ListPendingLedgerRefs(gomock.Any(), 10).
		Return(nil, nil).
		AnyTimes()

	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	err := mocks.sweeper.Start(ctx)
	require.NoError(t, err)
}

func TestRetrySweeper_ConfigClamping(t *testing.T) {
	// Oversized batch clamps to the maximum, zero pool size gets the default
	mocks := setupTestRetrySweeper(t, &sweeper.RetrySweeperConfig{
		Interval:  time.Minute,
		BatchSize: 500,
	})
	defer tearDownTestRetrySweeper(mocks)

	ctx := context.Background()

	mocks.expectClock()
	mocks.store.EXPECT().
		ListPendingLedgerRefs(gomock.Any(), sweeper.MaxRetryBatchSize).
		Return(nil, nil).
		MinTimes(1)

	go func() {
		time.Sleep(100 * time.Millisecond)
		_ = mocks.sweeper.Stop(ctx)
	}()

	err := mocks.sweeper.Start(ctx)
	require.NoError(t, err)
}
