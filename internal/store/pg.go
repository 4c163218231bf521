package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/patronly/boost-ledger/internal/domain"
	"github.com/patronly/boost-ledger/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the ledger tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.TransactionRecord{},
		&schema.CampaignReceipt{},
		&schema.ActivityEvent{},
		&schema.LeaderboardSnapshot{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to reasonable defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// CreateTransactionRecord inserts a pending transaction record
func (s *pgStore) CreateTransactionRecord(ctx context.Context, input CreateTransactionRecordInput) (*schema.TransactionRecord, error) {
	record := schema.TransactionRecord{
		Kind:      input.Kind,
		Wallet:    input.Wallet,
		CreatorID: input.CreatorID,
		PostID:    input.PostID,
		AssetsWei: input.AssetsWei,
		TxHash:    input.TxHash,
		ChainID:   input.ChainID,
		Status:    domain.StatusPending,
	}

	// ON CONFLICT DO NOTHING on the unique tx_hash index; a zero ID after
	// create means the hash was already recorded
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tx_hash"}},
			DoNothing: true,
		}).
		Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(&record).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction record: %w", err)
	}
	if record.ID == 0 {
		return nil, domain.ErrDuplicateTxHash
	}

	return &record, nil
}

// CreateCampaignReceipt inserts a pending campaign receipt
func (s *pgStore) CreateCampaignReceipt(ctx context.Context, input CreateCampaignReceiptInput) (*schema.CampaignReceipt, error) {
	receipt := schema.CampaignReceipt{
		Kind:         input.Kind,
		Wallet:       input.Wallet,
		CreatorID:    input.CreatorID,
		PostID:       input.PostID,
		AssetsWei:    input.AssetsWei,
		TxHash:       input.TxHash,
		ChainID:      input.ChainID,
		Status:       domain.StatusPending,
		SponsorName:  input.SponsorName,
		Objective:    input.Objective,
		Deliverables: input.Deliverables,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Disclosure:   input.Disclosure,
		TermsHash:    input.TermsHash,
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tx_hash"}},
			DoNothing: true,
		}).
		Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(&receipt).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create campaign receipt: %w", err)
	}
	if receipt.ID == 0 {
		return nil, domain.ErrDuplicateTxHash
	}

	return &receipt, nil
}

// GetTransactionRecordByID retrieves a transaction record by ID
func (s *pgStore) GetTransactionRecordByID(ctx context.Context, id int64) (*schema.TransactionRecord, error) {
	var record schema.TransactionRecord
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction record: %w", err)
	}
	return &record, nil
}

// GetCampaignReceiptByID retrieves a campaign receipt by ID
func (s *pgStore) GetCampaignReceiptByID(ctx context.Context, id int64) (*schema.CampaignReceipt, error) {
	var receipt schema.CampaignReceipt
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&receipt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get campaign receipt: %w", err)
	}
	return &receipt, nil
}

// GetCampaignReceiptByTxHash retrieves a campaign receipt by tx hash
func (s *pgStore) GetCampaignReceiptByTxHash(ctx context.Context, txHash string) (*schema.CampaignReceipt, error) {
	var receipt schema.CampaignReceipt
	err := s.db.WithContext(ctx).Where("tx_hash = ?", txHash).First(&receipt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get campaign receipt by tx hash: %w", err)
	}
	return &receipt, nil
}

func applyRecordFilter(query *gorm.DB, filter RecordQueryFilter) *gorm.DB {
	if filter.Wallet != nil {
		query = query.Where("wallet = ?", *filter.Wallet)
	}
	if filter.Kind != nil {
		query = query.Where("kind = ?", *filter.Kind)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	return query
}

// ListTransactionRecords retrieves transaction records with filters and pagination
func (s *pgStore) ListTransactionRecords(ctx context.Context, filter RecordQueryFilter) ([]schema.TransactionRecord, uint64, error) {
	query := applyRecordFilter(s.db.WithContext(ctx).Model(&schema.TransactionRecord{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transaction records: %w", err)
	}

	var records []schema.TransactionRecord
	err := query.Order("id DESC").Limit(filter.Limit).Offset(int(filter.Offset)).Find(&records).Error //nolint:gosec,G115
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transaction records: %w", err)
	}

	return records, uint64(total), nil //nolint:gosec,G115
}

// ListCampaignReceipts retrieves campaign receipts with filters and pagination
func (s *pgStore) ListCampaignReceipts(ctx context.Context, filter RecordQueryFilter) ([]schema.CampaignReceipt, uint64, error) {
	query := applyRecordFilter(s.db.WithContext(ctx).Model(&schema.CampaignReceipt{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count campaign receipts: %w", err)
	}

	var receipts []schema.CampaignReceipt
	err := query.Order("id DESC").Limit(filter.Limit).Offset(int(filter.Offset)).Find(&receipts).Error //nolint:gosec,G115
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list campaign receipts: %w", err)
	}

	return receipts, uint64(total), nil //nolint:gosec,G115
}

// GetLedgerRecord retrieves the unified confirmation view of a record
func (s *pgStore) GetLedgerRecord(ctx context.Context, ref domain.RecordRef) (*domain.LedgerRecord, error) {
	switch ref.Source {
	case domain.SourceTransactionRecord:
		record, err := s.GetTransactionRecordByID(ctx, ref.ID)
		if err != nil || record == nil {
			return nil, err
		}
		return &domain.LedgerRecord{
			Ref:       ref,
			Kind:      record.Kind,
			Wallet:    record.Wallet,
			CreatorID: record.CreatorID,
			AssetsWei: record.AssetsWei,
			TxHash:    record.TxHash,
			ChainID:   record.ChainID,
			Status:    record.Status,
		}, nil
	case domain.SourceCampaignReceipt:
		receipt, err := s.GetCampaignReceiptByID(ctx, ref.ID)
		if err != nil || receipt == nil {
			return nil, err
		}
		return &domain.LedgerRecord{
			Ref:       ref,
			Kind:      receipt.Kind,
			Wallet:    receipt.Wallet,
			CreatorID: receipt.CreatorID,
			AssetsWei: receipt.AssetsWei,
			TxHash:    receipt.TxHash,
			ChainID:   receipt.ChainID,
			Status:    receipt.Status,
		}, nil
	default:
		return nil, fmt.Errorf("unknown record source: %s", ref.Source)
	}
}

// FinalizeLedgerRecord writes a terminal status guarded on the record still
// being pending. The guard is what makes repeated confirmation a no-op.
func (s *pgStore) FinalizeLedgerRecord(ctx context.Context, ref domain.RecordRef, result domain.ConfirmationResult) (bool, error) {
	if !result.Status.IsTerminal() {
		return false, fmt.Errorf("refusing to finalize with non-terminal status %q", result.Status)
	}

	updates := map[string]interface{}{
		"status":       result.Status,
		"confirmed_at": result.ConfirmedAt,
	}
	if result.L2BlockNumber != nil {
		updates["l2_block_number"] = *result.L2BlockNumber
	}
	if result.L2TimestampIso != nil {
		updates["l2_timestamp_iso"] = *result.L2TimestampIso
	}

	var tx *gorm.DB
	switch ref.Source {
	case domain.SourceTransactionRecord:
		tx = s.db.WithContext(ctx).Model(&schema.TransactionRecord{}).
			Where("id = ? AND status = ?", ref.ID, domain.StatusPending).
			Updates(updates)
	case domain.SourceCampaignReceipt:
		tx = s.db.WithContext(ctx).Model(&schema.CampaignReceipt{}).
			Where("id = ? AND status = ?", ref.ID, domain.StatusPending).
			Updates(updates)
	default:
		return false, fmt.Errorf("unknown record source: %s", ref.Source)
	}

	if tx.Error != nil {
		return false, fmt.Errorf("failed to finalize ledger record: %w", tx.Error)
	}

	return tx.RowsAffected > 0, nil
}

// ListPendingLedgerRefs returns refs of records still pending, oldest first
func (s *pgStore) ListPendingLedgerRefs(ctx context.Context, limit int) ([]domain.RecordRef, error) {
	var recordIDs []int64
	err := s.db.WithContext(ctx).Model(&schema.TransactionRecord{}).
		Where("status = ?", domain.StatusPending).
		Order("id ASC").
		Limit(limit).
		Pluck("id", &recordIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending transaction records: %w", err)
	}

	refs := make([]domain.RecordRef, 0, len(recordIDs))
	for _, id := range recordIDs {
		refs = append(refs, domain.RecordRef{Source: domain.SourceTransactionRecord, ID: id})
	}

	if remaining := limit - len(refs); remaining > 0 {
		var receiptIDs []int64
		err = s.db.WithContext(ctx).Model(&schema.CampaignReceipt{}).
			Where("status = ?", domain.StatusPending).
			Order("id ASC").
			Limit(remaining).
			Pluck("id", &receiptIDs).Error
		if err != nil {
			return nil, fmt.Errorf("failed to list pending campaign receipts: %w", err)
		}
		for _, id := range receiptIDs {
			refs = append(refs, domain.RecordRef{Source: domain.SourceCampaignReceipt, ID: id})
		}
	}

	return refs, nil
}

// UpsertActivityEvent atomically inserts or fully replaces the feed entry for
// a tx hash. The upsert is a single INSERT ... ON CONFLICT (tx_hash) DO
// UPDATE so two writers racing on the same hash converge on one row.
func (s *pgStore) UpsertActivityEvent(ctx context.Context, input UpsertActivityEventInput) (string, error) {
	event := schema.ActivityEvent{
		ID:          ulid.Make().String(),
		Wallet:      input.Wallet,
		ChainID:     input.ChainID,
		TxHash:      input.TxHash,
		Kind:        input.Kind,
		Status:      input.Status,
		Title:       input.Title,
		Subtitle:    input.Subtitle,
		Href:        input.Href,
		AmountWei:   input.AmountWei,
		AssetSymbol: input.AssetSymbol,
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "tx_hash"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"wallet", "chain_id", "kind", "status",
				"title", "subtitle", "href", "amount_wei", "asset_symbol",
				"updated_at",
			}),
		}).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "id"}}}).
		Create(&event).Error
	if err != nil {
		return "", fmt.Errorf("failed to upsert activity event: %w", err)
	}

	return event.ID, nil
}

// SetActivityStatusByTxHash mirrors a status change onto the feed entry for a
// tx hash. Missing entries are not an error; the feed is best-effort relative
// to the ledger.
func (s *pgStore) SetActivityStatusByTxHash(ctx context.Context, txHash string, status domain.Status) (*string, error) {
	var event schema.ActivityEvent
	tx := s.db.WithContext(ctx).Model(&event).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "id"}}}).
		Where("tx_hash = ?", txHash).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now().UTC(),
		})
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to set activity status: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}

	return &event.ID, nil
}

// GetActivityEventByTxHash retrieves the feed entry for a tx hash
func (s *pgStore) GetActivityEventByTxHash(ctx context.Context, txHash string) (*schema.ActivityEvent, error) {
	var event schema.ActivityEvent
	err := s.db.WithContext(ctx).Where("tx_hash = ?", txHash).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get activity event by tx hash: %w", err)
	}
	return &event, nil
}

// ListActivityEvents retrieves feed entries, newest first
func (s *pgStore) ListActivityEvents(ctx context.Context, filter ActivityQueryFilter) ([]schema.ActivityEvent, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.ActivityEvent{})
	if filter.Wallet != nil {
		query = query.Where("wallet = ?", *filter.Wallet)
	}
	if filter.Kind != nil {
		query = query.Where("kind = ?", *filter.Kind)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count activity events: %w", err)
	}

	// ULIDs are time-sortable, so id DESC is newest-first
	var events []schema.ActivityEvent
	err := query.Order("id DESC").Limit(filter.Limit).Offset(int(filter.Offset)).Find(&events).Error //nolint:gosec,G115
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list activity events: %w", err)
	}

	return events, uint64(total), nil //nolint:gosec,G115
}

// ListConfirmedTransactionRecords retrieves all confirmed transaction records
// of the given kinds. Uses the kind+status composite index.
func (s *pgStore) ListConfirmedTransactionRecords(ctx context.Context, kinds []domain.DepositKind) ([]schema.TransactionRecord, error) {
	var records []schema.TransactionRecord
	err := s.db.WithContext(ctx).
		Where("kind IN ? AND status = ?", kinds, domain.StatusConfirmed).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list confirmed transaction records: %w", err)
	}
	return records, nil
}

// ListConfirmedCampaignReceipts retrieves all confirmed campaign receipts
func (s *pgStore) ListConfirmedCampaignReceipts(ctx context.Context) ([]schema.CampaignReceipt, error) {
	var receipts []schema.CampaignReceipt
	err := s.db.WithContext(ctx).
		Where("status = ?", domain.StatusConfirmed).
		Find(&receipts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list confirmed campaign receipts: %w", err)
	}
	return receipts, nil
}

// InsertLeaderboardSnapshot appends a new immutable snapshot
func (s *pgStore) InsertLeaderboardSnapshot(ctx context.Context, snapshot *schema.LeaderboardSnapshot) error {
	if err := s.db.WithContext(ctx).Create(snapshot).Error; err != nil {
		return fmt.Errorf("failed to insert leaderboard snapshot: %w", err)
	}
	return nil
}

// GetLatestLeaderboardSnapshot retrieves the most recent snapshot
func (s *pgStore) GetLatestLeaderboardSnapshot(ctx context.Context) (*schema.LeaderboardSnapshot, error) {
	var snapshot schema.LeaderboardSnapshot
	err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest leaderboard snapshot: %w", err)
	}
	return &snapshot, nil
}
