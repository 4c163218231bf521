package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/patronly/boost-ledger/internal/adapter"
	"github.com/patronly/boost-ledger/internal/leaderboard"
	"github.com/patronly/boost-ledger/internal/logger"
)

// DefaultLeaderboardInterval is the pause between leaderboard recomputes
const DefaultLeaderboardInterval = time.Minute

// leaderboardSweeper drives the periodic full leaderboard recompute. A failed
// cycle writes nothing; readers keep seeing the previous snapshot.
type leaderboardSweeper struct {
	interval   time.Duration
	aggregator leaderboard.Aggregator
	clock      adapter.Clock
	running    atomic.Bool
	stopChan   chan struct{}
	stoppedCh  chan struct{}
}

// NewLeaderboardSweeper creates a new leaderboard sweeper
func NewLeaderboardSweeper(interval time.Duration, agg leaderboard.Aggregator, clock adapter.Clock) Sweeper {
	if interval <= 0 {
		interval = DefaultLeaderboardInterval
	}
	return &leaderboardSweeper{
		interval:   interval,
		aggregator: agg,
		clock:      clock,
		stopChan:   make(chan struct{}),
		stoppedCh:  make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *leaderboardSweeper) Name() string {
	return "leaderboard-sweeper"
}

// Start begins the sweeper's main loop
func (s *leaderboardSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting leaderboard sweeper",
		zap.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Leaderboard sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Leaderboard sweeper stop requested")
			return nil
		default:
			if _, err := s.aggregator.Recompute(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					// The cycle is aborted whole; stale-but-consistent
					// beats a partial snapshot
					logger.ErrorCtx(ctx, fmt.Errorf("leaderboard cycle aborted: %w", err))
				}
			}
			if !s.sleep(ctx, s.interval) {
				return nil
			}
		}
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *leaderboardSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping leaderboard sweeper")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Leaderboard sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Leaderboard sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// sleep sleeps for the given duration but can be interrupted by context
// cancellation or a stop request. Returns false if interrupted.
func (s *leaderboardSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
