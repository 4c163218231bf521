package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/patronly/boost-ledger/internal/adapter"
	"github.com/patronly/boost-ledger/internal/domain"
	"github.com/patronly/boost-ledger/internal/logger"
	"github.com/patronly/boost-ledger/internal/providers/temporal"
	"github.com/patronly/boost-ledger/internal/store"
	"github.com/patronly/boost-ledger/internal/workflows"
)

const (
	// DefaultRetrySweepInterval is the pause between retry sweep cycles
	DefaultRetrySweepInterval = time.Minute

	// DefaultRetryBatchSize is the number of pending records re-scheduled per cycle
	DefaultRetryBatchSize = 25

	// MinRetryBatchSize and MaxRetryBatchSize clamp the configured batch size
	MinRetryBatchSize = 1
	MaxRetryBatchSize = 100
)

// RetrySweeperConfig holds configuration for the retry sweeper
type RetrySweeperConfig struct {
	Interval       time.Duration // Pause between sweep cycles
	BatchSize      int           // Pending records per cycle, clamped to [1,100]
	WorkerPoolSize int           // Concurrent scheduling workers
}

// retrySweeper re-schedules confirmation workflows for records stuck in
// pending. It is a safety net for tasks that were scheduled but never ran
// (e.g. a restart between submission and execution), not a retry mechanism
// for chain-level failures: those are already terminal.
type retrySweeper struct {
	config                *RetrySweeperConfig
	store                 store.Store
	pool                  pond.Pool
	clock                 adapter.Clock
	orchestrator          temporal.TemporalOrchestrator
	orchestratorTaskQueue string
	running               atomic.Bool
	stopChan              chan struct{}
	stoppedCh             chan struct{}
}

// NewRetrySweeper creates a new retry sweeper
func NewRetrySweeper(
	config *RetrySweeperConfig,
	st store.Store,
	clock adapter.Clock,
	orchestrator temporal.TemporalOrchestrator,
	orchestratorTaskQueue string,
) Sweeper {
	if config.Interval <= 0 {
		config.Interval = DefaultRetrySweepInterval
	}
	if config.BatchSize == 0 {
		config.BatchSize = DefaultRetryBatchSize
	}
	if config.BatchSize < MinRetryBatchSize {
		config.BatchSize = MinRetryBatchSize
	}
	if config.BatchSize > MaxRetryBatchSize {
		config.BatchSize = MaxRetryBatchSize
	}
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = 5
	}

	return &retrySweeper{
		config:                config,
		store:                 st,
		clock:                 clock,
		orchestrator:          orchestrator,
		orchestratorTaskQueue: orchestratorTaskQueue,
		stopChan:              make(chan struct{}),
		stoppedCh:             make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *retrySweeper) Name() string {
	return "retry-sweeper"
}

// Start begins the sweeper's main loop
func (s *retrySweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting retry sweeper",
		zap.Duration("interval", s.config.Interval),
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Retry sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Retry sweeper stop requested")
			return nil
		default:
			if err := s.runSweepCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}
			if !s.sleep(ctx, s.config.Interval) {
				return nil
			}
		}
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *retrySweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping retry sweeper")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Retry sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Retry sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle re-schedules confirmation for one batch of pending records
func (s *retrySweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()

	refs, err := s.store.ListPendingLedgerRefs(ctx, s.config.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to list pending records: %w", err)
	}

	if len(refs) == 0 {
		logger.DebugCtx(ctx, "No pending records to re-schedule")
		return nil
	}

	logger.InfoCtx(ctx, "Re-scheduling confirmation for pending records",
		zap.Int("count", len(refs)),
	)

	var scheduled, failed atomic.Int32

	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.BatchSize),
		pond.WithContext(ctx),
	)
	for _, ref := range refs {
		s.pool.Submit(func() {
			if err := s.scheduleConfirmation(ctx, ref); err != nil {
				failed.Add(1)
				logger.ErrorCtx(ctx, err,
					zap.String("source", string(ref.Source)),
					zap.Int64("recordID", ref.ID),
				)
				return
			}
			scheduled.Add(1)
		})
	}
	s.pool.StopAndWait()

	logger.InfoCtx(ctx, "Retry sweep cycle completed",
		zap.Duration("duration", s.clock.Since(startTime)),
		zap.Int("total", len(refs)),
		zap.Int32("scheduled", scheduled.Load()),
		zap.Int32("failed", failed.Load()),
	)

	return nil
}

// scheduleConfirmation enqueues a confirmation workflow for one pending record.
// The workflow's own idempotency guard makes racing with an in-flight
// confirmation safe.
func (s *retrySweeper) scheduleConfirmation(ctx context.Context, ref domain.RecordRef) error {
	opt := client.StartWorkflowOptions{
		ID:                    workflows.ConfirmWorkflowID(ref),
		TaskQueue:             s.orchestratorTaskQueue,
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
	}

	w := workflows.NewWorkerCore(nil)
	workflowRun, err := s.orchestrator.ExecuteWorkflow(ctx, opt, w.ConfirmDeposit, ref)
	if err != nil {
		return fmt.Errorf("failed to schedule confirmation workflow: %w", err)
	}

	if workflowRun != nil {
		logger.DebugCtx(ctx, "Confirmation workflow scheduled",
			zap.String("workflow_id", workflowRun.GetID()),
			zap.String("run_id", workflowRun.GetRunID()),
		)
	}

	return nil
}

// sleep sleeps for the given duration but can be interrupted by context
// cancellation or a stop request. Returns false if interrupted.
func (s *retrySweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
