// Package leaderboard recomputes ranked creator and booster totals from
// confirmed ledger records. Every cycle is a full recompute over exact
// big-integer arithmetic; results are persisted as immutable snapshots and
// only the latest snapshot is ever served.
package leaderboard

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"sort"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/patronly/boost-ledger/internal/adapter"
	"github.com/patronly/boost-ledger/internal/domain"
	"github.com/patronly/boost-ledger/internal/logger"
	"github.com/patronly/boost-ledger/internal/store"
	"github.com/patronly/boost-ledger/internal/store/schema"
)

// TopN is the number of entries kept per ranking
const TopN = 10

// persistMaxElapsed bounds the snapshot-write retry window
const persistMaxElapsed = 30 * time.Second

// Aggregator recomputes and persists leaderboard snapshots
//
//go:generate mockgen -source=aggregator.go -destination=../mocks/aggregator.go -package=mocks -mock_names=Aggregator=MockAggregator
type Aggregator interface {
	// Recompute scans all confirmed records, ranks creators and boosters,
	// and persists one new snapshot. A read failure aborts the cycle with
	// no snapshot written; the previous snapshot stays the latest.
	Recompute(ctx context.Context) (*schema.LeaderboardSnapshot, error)
}

type aggregator struct {
	store store.Store
	clock adapter.Clock
}

// NewAggregator creates a new leaderboard aggregator
func NewAggregator(st store.Store, clock adapter.Clock) Aggregator {
	return &aggregator{store: st, clock: clock}
}

// creatorTotals accumulates exact per-creator sums during one recompute
type creatorTotals struct {
	sponsoredWei *big.Int
	boostWei     *big.Int
}

// Recompute scans all confirmed records and persists one new snapshot
func (a *aggregator) Recompute(ctx context.Context) (*schema.LeaderboardSnapshot, error) {
	startTime := a.clock.Now()

	receipts, err := a.store.ListConfirmedCampaignReceipts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan confirmed campaign receipts: %w", err)
	}

	records, err := a.store.ListConfirmedTransactionRecords(ctx, []domain.DepositKind{
		domain.KindBoostDeposit,
		domain.KindSponsorDeposit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan confirmed transaction records: %w", err)
	}

	creators := make(map[string]*creatorTotals)
	boosters := make(map[string]*big.Int)

	addCreator := func(creatorID string) *creatorTotals {
		totals, ok := creators[creatorID]
		if !ok {
			totals = &creatorTotals{
				sponsoredWei: new(big.Int),
				boostWei:     new(big.Int),
			}
			creators[creatorID] = totals
		}
		return totals
	}
	addBooster := func(wallet string, amount *big.Int) {
		total, ok := boosters[wallet]
		if !ok {
			total = new(big.Int)
			boosters[wallet] = total
		}
		total.Add(total, amount)
	}

	// Campaign receipts feed creator sponsored totals and, being sponsor
	// deposits, the depositing wallet's booster total
	for i := range receipts {
		receipt := &receipts[i]
		amount := domain.ParseWei(receipt.AssetsWei)
		if amount == nil {
			logger.WarnCtx(ctx, "Skipping receipt with unparsable amount",
				zap.Int64("receiptID", receipt.ID),
				zap.String("assetsWei", receipt.AssetsWei))
			continue
		}

		if receipt.CreatorID != nil {
			totals := addCreator(*receipt.CreatorID)
			totals.sponsoredWei.Add(totals.sponsoredWei, amount)
		}
		addBooster(receipt.Wallet, amount)
	}

	// Transaction records feed creator boost totals and booster totals
	for i := range records {
		record := &records[i]
		amount := domain.ParseWei(record.AssetsWei)
		if amount == nil {
			logger.WarnCtx(ctx, "Skipping record with unparsable amount",
				zap.Int64("recordID", record.ID),
				zap.String("assetsWei", record.AssetsWei))
			continue
		}

		if record.Kind == domain.KindBoostDeposit && record.CreatorID != nil {
			totals := addCreator(*record.CreatorID)
			totals.boostWei.Add(totals.boostWei, amount)
		}
		addBooster(record.Wallet, amount)
	}

	snapshot, err := a.buildSnapshot(creators, boosters)
	if err != nil {
		return nil, err
	}

	if err := a.persistWithRetry(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to persist leaderboard snapshot: %w", err)
	}

	logger.InfoCtx(ctx, "Leaderboard recompute completed",
		zap.Duration("duration", a.clock.Since(startTime)),
		zap.Int("receipts", len(receipts)),
		zap.Int("records", len(records)),
		zap.Int("creators", len(creators)),
		zap.Int("boosters", len(boosters)),
	)

	return snapshot, nil
}

// buildSnapshot ranks the accumulated totals and encodes them for storage
func (a *aggregator) buildSnapshot(creators map[string]*creatorTotals, boosters map[string]*big.Int) (*schema.LeaderboardSnapshot, error) {
	type creatorEntry struct {
		id       string
		totals   *creatorTotals
		combined *big.Int
	}
	creatorEntries := make([]creatorEntry, 0, len(creators))
	for id, totals := range creators {
		creatorEntries = append(creatorEntries, creatorEntry{
			id:       id,
			totals:   totals,
			combined: new(big.Int).Add(totals.sponsoredWei, totals.boostWei),
		})
	}
	// Descending by sponsored+boost, exact comparison; ties break by
	// creator ID ascending so ranking is stable across cycles
	sort.Slice(creatorEntries, func(i, j int) bool {
		if cmp := creatorEntries[i].combined.Cmp(creatorEntries[j].combined); cmp != 0 {
			return cmp > 0
		}
		return creatorEntries[i].id < creatorEntries[j].id
	})
	if len(creatorEntries) > TopN {
		creatorEntries = creatorEntries[:TopN]
	}

	creatorStandings := make([]schema.CreatorStanding, 0, len(creatorEntries))
	for _, entry := range creatorEntries {
		creatorStandings = append(creatorStandings, schema.CreatorStanding{
			CreatorID:    entry.id,
			SponsoredWei: entry.totals.sponsoredWei.String(),
			BoostWei:     entry.totals.boostWei.String(),
		})
	}

	type boosterEntry struct {
		wallet string
		total  *big.Int
	}
	boosterEntries := make([]boosterEntry, 0, len(boosters))
	for wallet, total := range boosters {
		boosterEntries = append(boosterEntries, boosterEntry{wallet: wallet, total: total})
	}
	sort.Slice(boosterEntries, func(i, j int) bool {
		if cmp := boosterEntries[i].total.Cmp(boosterEntries[j].total); cmp != 0 {
			return cmp > 0
		}
		return boosterEntries[i].wallet < boosterEntries[j].wallet
	})
	if len(boosterEntries) > TopN {
		boosterEntries = boosterEntries[:TopN]
	}

	boosterStandings := make([]schema.BoosterStanding, 0, len(boosterEntries))
	for _, entry := range boosterEntries {
		boosterStandings = append(boosterStandings, schema.BoosterStanding{
			Wallet:   entry.wallet,
			BoostWei: entry.total.String(),
		})
	}

	creatorsJSON, err := json.Marshal(creatorStandings)
	if err != nil {
		return nil, fmt.Errorf("failed to encode creator standings: %w", err)
	}
	boostersJSON, err := json.Marshal(boosterStandings)
	if err != nil {
		return nil, fmt.Errorf("failed to encode booster standings: %w", err)
	}

	return &schema.LeaderboardSnapshot{
		Creators:  creatorsJSON,
		Boosters:  boostersJSON,
		CreatedAt: a.clock.Now().UTC(),
	}, nil
}

// persistWithRetry writes the snapshot with exponential backoff so one flaky
// insert does not discard a whole recompute
func (a *aggregator) persistWithRetry(ctx context.Context, snapshot *schema.LeaderboardSnapshot) error {
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = persistMaxElapsed

	return backoff.Retry(func() error {
		return a.store.InsertLeaderboardSnapshot(ctx, snapshot)
	}, backoff.WithContext(policy, ctx))
}
