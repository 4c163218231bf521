package schema

import (
	"time"

	"github.com/patronly/boost-ledger/internal/domain"
)

// TransactionRecord represents the transaction_records table - a speculative
// vault deposit recorded at submission time and reconciled against the chain.
// A record is created exactly once by the ledger writer, transitions out of
// pending at most once, and is never deleted.
type TransactionRecord struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Kind is the deposit kind (boost-deposit, sponsor-deposit, yield-deposit)
	Kind domain.DepositKind `gorm:"column:kind;not null;type:text;index:idx_tx_records_kind_status,priority:1;index:idx_tx_records_wallet_kind,priority:2"`
	// Wallet is the depositing wallet address (EIP-55 checksummed)
	Wallet string `gorm:"column:wallet;not null;type:text;index:idx_tx_records_wallet;index:idx_tx_records_wallet_kind,priority:1"`
	// CreatorID is the boosted/sponsored creator address, if any
	CreatorID *string `gorm:"column:creator_id;type:text;index:idx_tx_records_creator"`
	// PostID references the boosted content, if any
	PostID *string `gorm:"column:post_id;type:text"`
	// AssetsWei is the deposit amount as a decimal string (arbitrary precision)
	AssetsWei string `gorm:"column:assets_wei;not null;type:text"`
	// TxHash is the canonical chain transaction hash, unique per record
	TxHash string `gorm:"column:tx_hash;not null;uniqueIndex;type:text"`
	// ChainID is the numeric network identifier
	ChainID uint64 `gorm:"column:chain_id;not null"`
	// Status is the reconciliation state (pending, confirmed, failed)
	Status domain.Status `gorm:"column:status;not null;type:text;index:idx_tx_records_status;index:idx_tx_records_kind_status,priority:2"`
	// CreatedAt is the submission timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// ConfirmedAt is set on the terminal transition, never updated afterwards
	ConfirmedAt *time.Time `gorm:"column:confirmed_at"`
	// L2BlockNumber is the block the transaction landed in, when known
	L2BlockNumber *uint64 `gorm:"column:l2_block_number"`
	// L2TimestampIso is the block timestamp in ISO 8601, when known
	L2TimestampIso *string `gorm:"column:l2_timestamp_iso;type:text"`
}

// TableName specifies the table name for the TransactionRecord model
func (TransactionRecord) TableName() string {
	return "transaction_records"
}
