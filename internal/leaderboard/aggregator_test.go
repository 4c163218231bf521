package leaderboard_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patronly/boost-ledger/internal/domain"
	"github.com/patronly/boost-ledger/internal/leaderboard"
	"github.com/patronly/boost-ledger/internal/logger"
	"github.com/patronly/boost-ledger/internal/mocks"
	"github.com/patronly/boost-ledger/internal/store/schema"
)

// testAggregatorMocks contains all the mocks needed for testing the aggregator
type testAggregatorMocks struct {
	ctrl       *gomock.Controller
	store      *mocks.MockStore
	clock      *mocks.MockClock
	aggregator leaderboard.Aggregator
}

func setupTestAggregator(t *testing.T) *testAggregatorMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)

	tm := &testAggregatorMocks{
		ctrl:  ctrl,
		store: mocks.NewMockStore(ctrl),
		clock: mocks.NewMockClock(ctrl),
	}
	tm.aggregator = leaderboard.NewAggregator(tm.store, tm.clock)

	now := time.Date(2026, 5, 12, 10, 30, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()

	return tm
}

func tearDownTestAggregator(tm *testAggregatorMocks) {
	tm.ctrl.Finish()
}

func strPtr(s string) *string {
	return &s
}

func boostRecord(id int64, wallet, creator, amount string) schema.TransactionRecord {
	return schema.TransactionRecord{
		ID:        id,
		Kind:      domain.KindBoostDeposit,
		Wallet:    wallet,
		CreatorID: strPtr(creator),
		AssetsWei: amount,
		Status:    domain.StatusConfirmed,
	}
}

func sponsorReceipt(id int64, wallet, creator, amount string) schema.CampaignReceipt {
	return schema.CampaignReceipt{
		ID:        id,
		Kind:      domain.KindSponsorDeposit,
		Wallet:    wallet,
		CreatorID: strPtr(creator),
		AssetsWei: amount,
		Status:    domain.StatusConfirmed,
	}
}

func decodeStandings(t *testing.T, snapshot *schema.LeaderboardSnapshot) ([]schema.CreatorStanding, []schema.BoosterStanding) {
	t.Helper()

	var creators []schema.CreatorStanding
	require.NoError(t, json.Unmarshal(snapshot.Creators, &creators))

	var boosters []schema.BoosterStanding
	require.NoError(t, json.Unmarshal(snapshot.Boosters, &boosters))

	return creators, boosters
}

func TestRecomputeRanksByExactBigIntegerTotals(t *testing.T) {
	tm := setupTestAggregator(t)
	defer tearDownTestAggregator(tm)

	// 2^64 overflows uint64 arithmetic; exact comparison must still rank
	// creator-b (2^64 + 1) above creator-a (2^64)
	twoTo64 := "18446744073709551616"
	twoTo64Plus1 := "18446744073709551617"

	tm.store.EXPECT().ListConfirmedCampaignReceipts(gomock.Any()).Return(nil, nil)
	tm.store.EXPECT().
		ListConfirmedTransactionRecords(gomock.Any(), []domain.DepositKind{
			domain.KindBoostDeposit,
			domain.KindSponsorDeposit,
		}).
		Return([]schema.TransactionRecord{
			boostRecord(1, "0xwallet-1", "creator-a", twoTo64),
			boostRecord(2, "0xwallet-2", "creator-b", twoTo64Plus1),
		}, nil)
	tm.store.EXPECT().InsertLeaderboardSnapshot(gomock.Any(), gomock.Any()).Return(nil)

	snapshot, err := tm.aggregator.Recompute(context.Background())
	require.NoError(t, err)

	creators, boosters := decodeStandings(t, snapshot)
	require.Len(t, creators, 2)
	assert.Equal(t, "creator-b", creators[0].CreatorID)
	assert.Equal(t, twoTo64Plus1, creators[0].BoostWei)
	assert.Equal(t, "0", creators[0].SponsoredWei)
	assert.Equal(t, "creator-a", creators[1].CreatorID)

	require.Len(t, boosters, 2)
	assert.Equal(t, "0xwallet-2", boosters[0].Wallet)
	assert.Equal(t, twoTo64Plus1, boosters[0].BoostWei)
}

func TestRecomputeCombinesSponsoredAndBoostTotals(t *testing.T) {
	tm := setupTestAggregator(t)
	defer tearDownTestAggregator(tm)

	tm.store.EXPECT().ListConfirmedCampaignReceipts(gomock.Any()).Return([]schema.CampaignReceipt{
		sponsorReceipt(1, "0xsponsor", "creator-a", "600"),
	}, nil)
	tm.store.EXPECT().ListConfirmedTransactionRecords(gomock.Any(), gomock.Any()).Return([]schema.TransactionRecord{
		boostRecord(1, "0xbooster", "creator-a", "100"),
		boostRecord(2, "0xbooster", "creator-b", "500"),
	}, nil)
	tm.store.EXPECT().InsertLeaderboardSnapshot(gomock.Any(), gomock.Any()).Return(nil)

	snapshot, err := tm.aggregator.Recompute(context.Background())
	require.NoError(t, err)

	creators, boosters := decodeStandings(t, snapshot)

	// creator-a ranks first on sponsored 600 + boost 100 = 700 over
	// creator-b's 500
	require.Len(t, creators, 2)
	assert.Equal(t, "creator-a", creators[0].CreatorID)
	assert.Equal(t, "600", creators[0].SponsoredWei)
	assert.Equal(t, "100", creators[0].BoostWei)
	assert.Equal(t, "creator-b", creators[1].CreatorID)

	// The sponsoring wallet contributes to booster totals too
	require.Len(t, boosters, 2)
	assert.Equal(t, "0xsponsor", boosters[0].Wallet)
	assert.Equal(t, "600", boosters[0].BoostWei)
	assert.Equal(t, "0xbooster", boosters[1].Wallet)
	assert.Equal(t, "600", boosters[1].BoostWei)
}

func TestRecomputeBreaksTiesAscending(t *testing.T) {
	tm := setupTestAggregator(t)
	defer tearDownTestAggregator(tm)

	tm.store.EXPECT().ListConfirmedCampaignReceipts(gomock.Any()).Return(nil, nil)
	tm.store.EXPECT().ListConfirmedTransactionRecords(gomock.Any(), gomock.Any()).Return([]schema.TransactionRecord{
		boostRecord(1, "0xwallet-b", "creator-z", "100"),
		boostRecord(2, "0xwallet-a", "creator-y", "100"),
	}, nil)
	tm.store.EXPECT().InsertLeaderboardSnapshot(gomock.Any(), gomock.Any()).Return(nil)

	snapshot, err := tm.aggregator.Recompute(context.Background())
	require.NoError(t, err)

	creators, boosters := decodeStandings(t, snapshot)

	// Equal totals order by identifier ascending, keeping rankings stable
	// across cycles
	require.Len(t, creators, 2)
	assert.Equal(t, "creator-y", creators[0].CreatorID)
	assert.Equal(t, "creator-z", creators[1].CreatorID)

	require.Len(t, boosters, 2)
	assert.Equal(t, "0xwallet-a", boosters[0].Wallet)
	assert.Equal(t, "0xwallet-b", boosters[1].Wallet)
}

func TestRecomputeTruncatesToTopN(t *testing.T) {
	tm := setupTestAggregator(t)
	defer tearDownTestAggregator(tm)

	records := make([]schema.TransactionRecord, 0, leaderboard.TopN+5)
	for i := 0; i < leaderboard.TopN+5; i++ {
		records = append(records, boostRecord(
			int64(i+1),
			fmt.Sprintf("0xwallet-%02d", i),
			fmt.Sprintf("creator-%02d", i),
			fmt.Sprintf("%d", (i+1)*100),
		))
	}

	tm.store.EXPECT().ListConfirmedCampaignReceipts(gomock.Any()).Return(nil, nil)
	tm.store.EXPECT().ListConfirmedTransactionRecords(gomock.Any(), gomock.Any()).Return(records, nil)
	tm.store.EXPECT().InsertLeaderboardSnapshot(gomock.Any(), gomock.Any()).Return(nil)

	snapshot, err := tm.aggregator.Recompute(context.Background())
	require.NoError(t, err)

	creators, boosters := decodeStandings(t, snapshot)
	assert.Len(t, creators, leaderboard.TopN)
	assert.Len(t, boosters, leaderboard.TopN)

	// Highest amount first
	assert.Equal(t, "creator-14", creators[0].CreatorID)
	assert.Equal(t, "1500", creators[0].BoostWei)
}

func TestRecomputeSkipsUnparsableAmounts(t *testing.T) {
	tm := setupTestAggregator(t)
	defer tearDownTestAggregator(tm)

	tm.store.EXPECT().ListConfirmedCampaignReceipts(gomock.Any()).Return([]schema.CampaignReceipt{
		sponsorReceipt(1, "0xsponsor", "creator-a", "not-a-number"),
	}, nil)
	tm.store.EXPECT().ListConfirmedTransactionRecords(gomock.Any(), gomock.Any()).Return([]schema.TransactionRecord{
		boostRecord(1, "0xbooster", "creator-a", "100"),
		boostRecord(2, "0xbooster", "creator-b", "1.5"),
	}, nil)
	tm.store.EXPECT().InsertLeaderboardSnapshot(gomock.Any(), gomock.Any()).Return(nil)

	snapshot, err := tm.aggregator.Recompute(context.Background())
	require.NoError(t, err)

	creators, boosters := decodeStandings(t, snapshot)
	require.Len(t, creators, 1)
	assert.Equal(t, "creator-a", creators[0].CreatorID)
	assert.Equal(t, "0", creators[0].SponsoredWei)
	assert.Equal(t, "100", creators[0].BoostWei)

	require.Len(t, boosters, 1)
	assert.Equal(t, "100", boosters[0].BoostWei)
}

func TestRecomputeEmptyLedgerProducesEmptySnapshot(t *testing.T) {
	tm := setupTestAggregator(t)
	defer tearDownTestAggregator(tm)

	tm.store.EXPECT().ListConfirmedCampaignReceipts(gomock.Any()).Return(nil, nil)
	tm.store.EXPECT().ListConfirmedTransactionRecords(gomock.Any(), gomock.Any()).Return(nil, nil)
	tm.store.EXPECT().InsertLeaderboardSnapshot(gomock.Any(), gomock.Any()).Return(nil)

	snapshot, err := tm.aggregator.Recompute(context.Background())
	require.NoError(t, err)

	creators, boosters := decodeStandings(t, snapshot)
	assert.Empty(t, creators)
	assert.Empty(t, boosters)
}

func TestRecomputeReadFailureWritesNoSnapshot(t *testing.T) {
	tm := setupTestAggregator(t)
	defer tearDownTestAggregator(tm)

	tm.store.EXPECT().
		ListConfirmedCampaignReceipts(gomock.Any()).
		Return(nil, errors.New("database unavailable"))

	// No InsertLeaderboardSnapshot call; the previous snapshot stays latest
	_, err := tm.aggregator.Recompute(context.Background())
	assert.Error(t, err)
}

func TestRecomputeRetriesPersistence(t *testing.T) {
	tm := setupTestAggregator(t)
	defer tearDownTestAggregator(tm)

	tm.store.EXPECT().ListConfirmedCampaignReceipts(gomock.Any()).Return(nil, nil)
	tm.store.EXPECT().ListConfirmedTransactionRecords(gomock.Any(), gomock.Any()).Return([]schema.TransactionRecord{
		boostRecord(1, "0xbooster", "creator-a", "100"),
	}, nil)

	gomock.InOrder(
		tm.store.EXPECT().
			InsertLeaderboardSnapshot(gomock.Any(), gomock.Any()).
			Return(errors.New("connection reset")),
		tm.store.EXPECT().
			InsertLeaderboardSnapshot(gomock.Any(), gomock.Any()).
			Return(nil),
	)

	snapshot, err := tm.aggregator.Recompute(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, snapshot)
}
