package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/patronly/boost-ledger/internal/domain"
	"github.com/patronly/boost-ledger/internal/store/schema"
)

var (
	testDB      *gorm.DB
	pgContainer *postgres.PostgresContainer
)

// TestMain sets up the test database before running tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	// Check if we should use an external database (for CI or local development)
	dbHost := os.Getenv("TEST_DB_HOST")
	dbPort := os.Getenv("TEST_DB_PORT")
	dbUser := os.Getenv("TEST_DB_USER")
	dbPassword := os.Getenv("TEST_DB_PASSWORD")
	dbName := os.Getenv("TEST_DB_NAME")

	var dsn string
	var err error

	if dbHost != "" {
		// Use external database
		if dbPort == "" {
			dbPort = "5432"
		}
		if dbUser == "" {
			dbUser = "postgres"
		}
		if dbPassword == "" {
			dbPassword = "postgres"
		}
		if dbName == "" {
			dbName = "test_db"
		}

		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPassword, dbName)

		fmt.Printf("Using external database: %s:%s/%s\n", dbHost, dbPort, dbName)
	} else {
		// Start a PostgreSQL container for testing
		pgContainer, err = postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			fmt.Printf("Failed to start PostgreSQL container: %v\n", err)
			os.Exit(1)
		}

		dsn, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Printf("Failed to get connection string: %v\n", err)
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
			os.Exit(1)
		}

		fmt.Printf("Started PostgreSQL container\n")
	}

	// Connect to the database
	testDB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		if pgContainer != nil {
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	// Initialize the database schema
	if err := Migrate(testDB); err != nil {
		fmt.Printf("Failed to migrate database: %v\n", err)
		if pgContainer != nil {
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	// Run tests
	code := m.Run()

	// Cleanup
	if pgContainer != nil {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
		}
	}

	os.Exit(code)
}

// initPGTestDB initializes a test database for each test.
// Each test runs inside its own transaction and rolls back on cleanup.
func initPGTestDB(t *testing.T) Store {
	tx := testDB.Begin()
	require.NotNil(t, tx)
	require.NoError(t, tx.Error)

	t.Cleanup(func() {
		tx.Rollback()
	})

	return NewPGStore(tx)
}

func txHash(n int) string {
	return fmt.Sprintf("0x%064x", n)
}

func strPtr(s string) *string {
	return &s
}

func recordInput(n int) CreateTransactionRecordInput {
	return CreateTransactionRecordInput{
		Kind:      domain.KindBoostDeposit,
		Wallet:    "0x8ba1f109551bD432803012645Ac136ddd64DBA72",
		CreatorID: strPtr("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"),
		PostID:    strPtr("post-42"),
		AssetsWei: "1000000000000000000",
		TxHash:    txHash(n),
		ChainID:   8453,
	}
}

func receiptInput(n int) CreateCampaignReceiptInput {
	base := recordInput(n)
	base.Kind = domain.KindSponsorDeposit
	return CreateCampaignReceiptInput{
		CreateTransactionRecordInput: base,
		SponsorName:                  "Acme Corp",
		Objective:                    "Promote the spring collection",
		Deliverables:                 []byte(`["3 posts","1 video"]`),
		StartDate:                    "2026-03-01",
		EndDate:                      "2026-03-31",
		Disclosure:                   "Paid partnership",
		TermsHash:                    "0x" + fmt.Sprintf("%064x", n),
	}
}

func TestCreateTransactionRecord(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	record, err := st.CreateTransactionRecord(ctx, recordInput(1))
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.NotZero(t, record.ID)
	assert.Equal(t, domain.StatusPending, record.Status)
	assert.Equal(t, txHash(1), record.TxHash)
	assert.Nil(t, record.ConfirmedAt)

	// Same hash again hits the unique index
	_, err = st.CreateTransactionRecord(ctx, recordInput(1))
	assert.ErrorIs(t, err, domain.ErrDuplicateTxHash)
}

func TestCreateCampaignReceipt(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	receipt, err := st.CreateCampaignReceipt(ctx, receiptInput(2))
	require.NoError(t, err)
	require.NotNil(t, receipt)

	assert.NotZero(t, receipt.ID)
	assert.Equal(t, domain.StatusPending, receipt.Status)
	assert.Equal(t, "Acme Corp", receipt.SponsorName)
	assert.JSONEq(t, `["3 posts","1 video"]`, string(receipt.Deliverables))

	_, err = st.CreateCampaignReceipt(ctx, receiptInput(2))
	assert.ErrorIs(t, err, domain.ErrDuplicateTxHash)
}

func TestGetLedgerRecord(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	record, err := st.CreateTransactionRecord(ctx, recordInput(3))
	require.NoError(t, err)
	receipt, err := st.CreateCampaignReceipt(ctx, receiptInput(4))
	require.NoError(t, err)

	t.Run("transaction record source", func(t *testing.T) {
		got, err := st.GetLedgerRecord(ctx, domain.RecordRef{
			Source: domain.SourceTransactionRecord,
			ID:     record.ID,
		})
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, record.TxHash, got.TxHash)
		assert.Equal(t, domain.StatusPending, got.Status)
		assert.Equal(t, domain.KindBoostDeposit, got.Kind)
	})

	t.Run("campaign receipt source", func(t *testing.T) {
		got, err := st.GetLedgerRecord(ctx, domain.RecordRef{
			Source: domain.SourceCampaignReceipt,
			ID:     receipt.ID,
		})
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, receipt.TxHash, got.TxHash)
		assert.Equal(t, domain.KindSponsorDeposit, got.Kind)
	})

	t.Run("missing record returns nil", func(t *testing.T) {
		got, err := st.GetLedgerRecord(ctx, domain.RecordRef{
			Source: domain.SourceTransactionRecord,
			ID:     99999,
		})
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("unknown source is an error", func(t *testing.T) {
		_, err := st.GetLedgerRecord(ctx, domain.RecordRef{Source: "other", ID: 1})
		assert.Error(t, err)
	})
}

func TestFinalizeLedgerRecord(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	record, err := st.CreateTransactionRecord(ctx, recordInput(5))
	require.NoError(t, err)

	ref := domain.RecordRef{Source: domain.SourceTransactionRecord, ID: record.ID}
	blockNumber := uint64(1234)
	timestampIso := "2026-05-12T10:30:00Z"
	result := domain.ConfirmationResult{
		Status:         domain.StatusConfirmed,
		L2BlockNumber:  &blockNumber,
		L2TimestampIso: &timestampIso,
		ConfirmedAt:    time.Now().UTC(),
	}

	applied, err := st.FinalizeLedgerRecord(ctx, ref, result)
	require.NoError(t, err)
	assert.True(t, applied)

	got, err := st.GetTransactionRecordByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
	require.NotNil(t, got.L2BlockNumber)
	assert.Equal(t, blockNumber, *got.L2BlockNumber)
	require.NotNil(t, got.L2TimestampIso)
	assert.Equal(t, timestampIso, *got.L2TimestampIso)
	assert.NotNil(t, got.ConfirmedAt)

	// The pending guard makes a second finalize a no-op, even with a
	// different terminal status
	applied, err = st.FinalizeLedgerRecord(ctx, ref, domain.ConfirmationResult{
		Status:      domain.StatusFailed,
		ConfirmedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.False(t, applied)

	got, err = st.GetTransactionRecordByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
}

func TestFinalizeLedgerRecordRejectsNonTerminalStatus(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	record, err := st.CreateTransactionRecord(ctx, recordInput(6))
	require.NoError(t, err)

	_, err = st.FinalizeLedgerRecord(ctx,
		domain.RecordRef{Source: domain.SourceTransactionRecord, ID: record.ID},
		domain.ConfirmationResult{Status: domain.StatusPending})
	assert.Error(t, err)
}

func TestFinalizeCampaignReceipt(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	receipt, err := st.CreateCampaignReceipt(ctx, receiptInput(7))
	require.NoError(t, err)

	ref := domain.RecordRef{Source: domain.SourceCampaignReceipt, ID: receipt.ID}
	applied, err := st.FinalizeLedgerRecord(ctx, ref, domain.ConfirmationResult{
		Status:      domain.StatusFailed,
		ConfirmedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.True(t, applied)

	got, err := st.GetCampaignReceiptByID(ctx, receipt.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, got.Status)
}

func TestListPendingLedgerRefs(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	r1, err := st.CreateTransactionRecord(ctx, recordInput(10))
	require.NoError(t, err)
	r2, err := st.CreateTransactionRecord(ctx, recordInput(11))
	require.NoError(t, err)
	r3, err := st.CreateTransactionRecord(ctx, recordInput(12))
	require.NoError(t, err)
	c1, err := st.CreateCampaignReceipt(ctx, receiptInput(13))
	require.NoError(t, err)

	// A terminal record drops out of the sweep
	_, err = st.FinalizeLedgerRecord(ctx,
		domain.RecordRef{Source: domain.SourceTransactionRecord, ID: r2.ID},
		domain.ConfirmationResult{Status: domain.StatusConfirmed, ConfirmedAt: time.Now().UTC()})
	require.NoError(t, err)

	refs, err := st.ListPendingLedgerRefs(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []domain.RecordRef{
		{Source: domain.SourceTransactionRecord, ID: r1.ID},
		{Source: domain.SourceTransactionRecord, ID: r3.ID},
		{Source: domain.SourceCampaignReceipt, ID: c1.ID},
	}, refs)

	// The limit spans both tables
	refs, err = st.ListPendingLedgerRefs(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []domain.RecordRef{
		{Source: domain.SourceTransactionRecord, ID: r1.ID},
		{Source: domain.SourceTransactionRecord, ID: r3.ID},
	}, refs)
}

func TestListTransactionRecords(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	otherWallet := "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"

	for i := 20; i < 25; i++ {
		input := recordInput(i)
		if i == 24 {
			input.Wallet = otherWallet
			input.Kind = domain.KindYieldDeposit
		}
		_, err := st.CreateTransactionRecord(ctx, input)
		require.NoError(t, err)
	}

	t.Run("no filter returns everything newest first", func(t *testing.T) {
		records, total, err := st.ListTransactionRecords(ctx, RecordQueryFilter{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, uint64(5), total)
		require.Len(t, records, 5)
		assert.Equal(t, txHash(24), records[0].TxHash)
	})

	t.Run("wallet filter", func(t *testing.T) {
		records, total, err := st.ListTransactionRecords(ctx, RecordQueryFilter{
			Wallet: strPtr(otherWallet),
			Limit:  10,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, records, 1)
		assert.Equal(t, txHash(24), records[0].TxHash)
	})

	t.Run("kind filter", func(t *testing.T) {
		kind := domain.KindBoostDeposit
		_, total, err := st.ListTransactionRecords(ctx, RecordQueryFilter{
			Kind:  &kind,
			Limit: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(4), total)
	})

	t.Run("pagination", func(t *testing.T) {
		records, total, err := st.ListTransactionRecords(ctx, RecordQueryFilter{
			Limit:  2,
			Offset: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(5), total)
		require.Len(t, records, 2)
		assert.Equal(t, txHash(22), records[0].TxHash)
	})
}

func TestUpsertActivityEvent(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	input := UpsertActivityEventInput{
		Wallet:      "0x8ba1f109551bD432803012645Ac136ddd64DBA72",
		ChainID:     8453,
		TxHash:      txHash(30),
		Kind:        domain.KindBoostDeposit,
		Status:      domain.StatusPending,
		Title:       "Boosted a post",
		Subtitle:    strPtr("Creator 7"),
		Href:        "/posts/42",
		AmountWei:   strPtr("1000000000000000000"),
		AssetSymbol: strPtr("ETH"),
	}

	eventID, err := st.UpsertActivityEvent(ctx, input)
	require.NoError(t, err)
	assert.NotEmpty(t, eventID)

	// Re-upserting the same hash replaces the row and keeps the event ID
	input.Title = "Boosted a post again"
	input.Status = domain.StatusConfirmed
	secondID, err := st.UpsertActivityEvent(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, eventID, secondID)

	event, err := st.GetActivityEventByTxHash(ctx, txHash(30))
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, eventID, event.ID)
	assert.Equal(t, "Boosted a post again", event.Title)
	assert.Equal(t, domain.StatusConfirmed, event.Status)
}

func TestSetActivityStatusByTxHash(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	eventID, err := st.UpsertActivityEvent(ctx, UpsertActivityEventInput{
		Wallet:  "0x8ba1f109551bD432803012645Ac136ddd64DBA72",
		ChainID: 8453,
		TxHash:  txHash(31),
		Kind:    domain.KindYieldDeposit,
		Status:  domain.StatusPending,
		Title:   "Deposited into the yield vault",
		Href:    "/tx/" + txHash(31),
	})
	require.NoError(t, err)

	got, err := st.SetActivityStatusByTxHash(ctx, txHash(31), domain.StatusConfirmed)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, eventID, *got)

	event, err := st.GetActivityEventByTxHash(ctx, txHash(31))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, event.Status)

	// Missing entry is not an error
	got, err = st.SetActivityStatusByTxHash(ctx, txHash(32), domain.StatusFailed)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListActivityEvents(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	otherWallet := "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"

	for i := 40; i < 44; i++ {
		wallet := "0x8ba1f109551bD432803012645Ac136ddd64DBA72"
		kind := domain.KindBoostDeposit
		if i == 43 {
			wallet = otherWallet
			kind = domain.KindSponsorDeposit
		}
		_, err := st.UpsertActivityEvent(ctx, UpsertActivityEventInput{
			Wallet:  wallet,
			ChainID: 8453,
			TxHash:  txHash(i),
			Kind:    kind,
			Status:  domain.StatusPending,
			Title:   "Boosted a post",
			Href:    "/tx/" + txHash(i),
		})
		require.NoError(t, err)
	}

	t.Run("newest first", func(t *testing.T) {
		events, total, err := st.ListActivityEvents(ctx, ActivityQueryFilter{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, uint64(4), total)
		require.Len(t, events, 4)
		assert.Equal(t, txHash(43), events[0].TxHash)
	})

	t.Run("wallet filter", func(t *testing.T) {
		events, total, err := st.ListActivityEvents(ctx, ActivityQueryFilter{
			Wallet: strPtr(otherWallet),
			Limit:  10,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, events, 1)
		assert.Equal(t, txHash(43), events[0].TxHash)
	})

	t.Run("kind filter", func(t *testing.T) {
		kind := domain.KindSponsorDeposit
		_, total, err := st.ListActivityEvents(ctx, ActivityQueryFilter{
			Kind:  &kind,
			Limit: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
	})
}

func TestListConfirmedRecordsForAggregation(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	boost, err := st.CreateTransactionRecord(ctx, recordInput(50))
	require.NoError(t, err)

	yieldInput := recordInput(51)
	yieldInput.Kind = domain.KindYieldDeposit
	yield, err := st.CreateTransactionRecord(ctx, yieldInput)
	require.NoError(t, err)

	receipt, err := st.CreateCampaignReceipt(ctx, receiptInput(52))
	require.NoError(t, err)

	// Still-pending rows never reach the aggregator
	_, err = st.CreateTransactionRecord(ctx, recordInput(53))
	require.NoError(t, err)

	for _, ref := range []domain.RecordRef{
		{Source: domain.SourceTransactionRecord, ID: boost.ID},
		{Source: domain.SourceTransactionRecord, ID: yield.ID},
		{Source: domain.SourceCampaignReceipt, ID: receipt.ID},
	} {
		_, err = st.FinalizeLedgerRecord(ctx, ref, domain.ConfirmationResult{
			Status:      domain.StatusConfirmed,
			ConfirmedAt: time.Now().UTC(),
		})
		require.NoError(t, err)
	}

	records, err := st.ListConfirmedTransactionRecords(ctx, []domain.DepositKind{
		domain.KindBoostDeposit,
		domain.KindSponsorDeposit,
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, boost.ID, records[0].ID)

	receipts, err := st.ListConfirmedCampaignReceipts(ctx)
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	assert.Equal(t, receipt.ID, receipts[0].ID)
}

func TestLeaderboardSnapshots(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	got, err := st.GetLatestLeaderboardSnapshot(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	first := &schema.LeaderboardSnapshot{
		Creators:  []byte(`[{"creator_id":"a","sponsored_wei":"1","boost_wei":"2"}]`),
		Boosters:  []byte(`[]`),
		CreatedAt: time.Now().UTC().Add(-time.Minute),
	}
	require.NoError(t, st.InsertLeaderboardSnapshot(ctx, first))

	second := &schema.LeaderboardSnapshot{
		Creators:  []byte(`[]`),
		Boosters:  []byte(`[{"wallet":"0xw","boost_wei":"3"}]`),
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, st.InsertLeaderboardSnapshot(ctx, second))

	got, err = st.GetLatestLeaderboardSnapshot(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, second.ID, got.ID)
	assert.JSONEq(t, `[{"wallet":"0xw","boost_wei":"3"}]`, string(got.Boosters))
}
