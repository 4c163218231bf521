package store

import (
	"context"

	"gorm.io/datatypes"

	"github.com/patronly/boost-ledger/internal/domain"
	"github.com/patronly/boost-ledger/internal/store/schema"
)

// CreateTransactionRecordInput holds the fields for inserting a pending
// transaction record
type CreateTransactionRecordInput struct {
	Kind      domain.DepositKind
	Wallet    string
	CreatorID *string
	PostID    *string
	AssetsWei string
	TxHash    string
	ChainID   uint64
}

// CreateCampaignReceiptInput holds the fields for inserting a pending
// campaign receipt
type CreateCampaignReceiptInput struct {
	CreateTransactionRecordInput
	SponsorName  string
	Objective    string
	Deliverables datatypes.JSON
	StartDate    string
	EndDate      string
	Disclosure   string
	TermsHash    string
}

// UpsertActivityEventInput holds the full display payload for an activity
// feed entry. All fields except TxHash are overwritten on conflict.
type UpsertActivityEventInput struct {
	Wallet      string
	ChainID     uint64
	TxHash      string
	Kind        domain.DepositKind
	Status      domain.Status
	Title       string
	Subtitle    *string
	Href        string
	AmountWei   *string
	AssetSymbol *string
}

// RecordQueryFilter filters transaction record and campaign receipt listings
type RecordQueryFilter struct {
	Wallet *string
	Kind   *domain.DepositKind
	Status *domain.Status
	Limit  int
	Offset uint64
}

// ActivityQueryFilter filters the activity feed
type ActivityQueryFilter struct {
	Wallet *string
	Kind   *domain.DepositKind
	Limit  int
	Offset uint64
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateTransactionRecord inserts a pending transaction record.
	// Returns domain.ErrDuplicateTxHash if the tx hash is already recorded.
	CreateTransactionRecord(ctx context.Context, input CreateTransactionRecordInput) (*schema.TransactionRecord, error)

	// CreateCampaignReceipt inserts a pending campaign receipt.
	// Returns domain.ErrDuplicateTxHash if the tx hash is already recorded.
	CreateCampaignReceipt(ctx context.Context, input CreateCampaignReceiptInput) (*schema.CampaignReceipt, error)

	// GetTransactionRecordByID retrieves a transaction record by ID (nil if missing)
	GetTransactionRecordByID(ctx context.Context, id int64) (*schema.TransactionRecord, error)

	// GetCampaignReceiptByID retrieves a campaign receipt by ID (nil if missing)
	GetCampaignReceiptByID(ctx context.Context, id int64) (*schema.CampaignReceipt, error)

	// GetCampaignReceiptByTxHash retrieves a campaign receipt by tx hash (nil if missing)
	GetCampaignReceiptByTxHash(ctx context.Context, txHash string) (*schema.CampaignReceipt, error)

	// ListTransactionRecords retrieves transaction records with filters and pagination
	ListTransactionRecords(ctx context.Context, filter RecordQueryFilter) ([]schema.TransactionRecord, uint64, error)

	// ListCampaignReceipts retrieves campaign receipts with filters and pagination
	ListCampaignReceipts(ctx context.Context, filter RecordQueryFilter) ([]schema.CampaignReceipt, uint64, error)

	// GetLedgerRecord retrieves the unified confirmation view of a record (nil if missing)
	GetLedgerRecord(ctx context.Context, ref domain.RecordRef) (*domain.LedgerRecord, error)

	// FinalizeLedgerRecord writes a terminal status and block metadata to a
	// record, guarded so it only applies while the record is still pending.
	// Returns false if the record was already terminal or missing.
	FinalizeLedgerRecord(ctx context.Context, ref domain.RecordRef, result domain.ConfirmationResult) (bool, error)

	// ListPendingLedgerRefs returns refs of records still pending, oldest
	// first, across both ledger tables, up to limit
	ListPendingLedgerRefs(ctx context.Context, limit int) ([]domain.RecordRef, error)

	// UpsertActivityEvent atomically inserts or fully replaces the feed entry
	// for a tx hash, returning the event ID
	UpsertActivityEvent(ctx context.Context, input UpsertActivityEventInput) (string, error)

	// SetActivityStatusByTxHash mirrors a status change onto the feed entry
	// for a tx hash. Returns nil with no error if no entry exists.
	SetActivityStatusByTxHash(ctx context.Context, txHash string, status domain.Status) (*string, error)

	// GetActivityEventByTxHash retrieves the feed entry for a tx hash (nil if missing)
	GetActivityEventByTxHash(ctx context.Context, txHash string) (*schema.ActivityEvent, error)

	// ListActivityEvents retrieves feed entries, newest first, with filters
	ListActivityEvents(ctx context.Context, filter ActivityQueryFilter) ([]schema.ActivityEvent, uint64, error)

	// ListConfirmedTransactionRecords retrieves all confirmed transaction
	// records of the given kinds (full scan, used by the aggregator)
	ListConfirmedTransactionRecords(ctx context.Context, kinds []domain.DepositKind) ([]schema.TransactionRecord, error)

	// ListConfirmedCampaignReceipts retrieves all confirmed campaign receipts
	ListConfirmedCampaignReceipts(ctx context.Context) ([]schema.CampaignReceipt, error)

	// InsertLeaderboardSnapshot appends a new immutable snapshot
	InsertLeaderboardSnapshot(ctx context.Context, snapshot *schema.LeaderboardSnapshot) error

	// GetLatestLeaderboardSnapshot retrieves the most recent snapshot (nil if none)
	GetLatestLeaderboardSnapshot(ctx context.Context) (*schema.LeaderboardSnapshot, error)
}
