package schema

import (
	"time"

	"github.com/patronly/boost-ledger/internal/domain"
)

// ActivityEvent represents the activity_events table - the wallet-facing feed
// projection of a transaction record, keyed uniquely by tx_hash. It is written
// only through atomic upserts; its status mirrors the source record's status
// eventually, not transactionally.
type ActivityEvent struct {
	// ID is a ULID assigned on first insert (time-sortable feed ordering)
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Wallet is the actor wallet address
	Wallet string `gorm:"column:wallet;not null;type:text;index:idx_activity_events_wallet;index:idx_activity_events_wallet_kind,priority:1"`
	// ChainID is the numeric network identifier
	ChainID uint64 `gorm:"column:chain_id;not null"`
	// TxHash links the event to its source transaction record
	TxHash string `gorm:"column:tx_hash;not null;uniqueIndex;type:text"`
	// Kind is the deposit kind this event projects
	Kind domain.DepositKind `gorm:"column:kind;not null;type:text;index:idx_activity_events_wallet_kind,priority:2"`
	// Status mirrors the source record's status
	Status domain.Status `gorm:"column:status;not null;type:text;index:idx_activity_events_status"`
	// Title is the feed headline
	Title string `gorm:"column:title;not null;type:text"`
	// Subtitle is the optional secondary line
	Subtitle *string `gorm:"column:subtitle;type:text"`
	// Href is the link target for the feed entry
	Href string `gorm:"column:href;not null;type:text"`
	// AmountWei is the display amount as a decimal string, if any
	AmountWei *string `gorm:"column:amount_wei;type:text"`
	// AssetSymbol is the display asset symbol, if any
	AssetSymbol *string `gorm:"column:asset_symbol;type:text"`
	// CreatedAt is the first-insert timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is bumped on every upsert
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the ActivityEvent model
func (ActivityEvent) TableName() string {
	return "activity_events"
}
