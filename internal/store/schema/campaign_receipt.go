package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/patronly/boost-ledger/internal/domain"
)

// CampaignReceipt represents the campaign_receipts table - the richer
// sponsor-deposit variant of a transaction record. The ledger contract is
// identical to TransactionRecord; the terms fields are immutable once written.
type CampaignReceipt struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Kind is always sponsor-deposit for receipts, kept for index symmetry
	Kind domain.DepositKind `gorm:"column:kind;not null;type:text;index:idx_campaign_receipts_kind_status,priority:1;index:idx_campaign_receipts_wallet_kind,priority:2"`
	// Wallet is the sponsoring wallet address
	Wallet string `gorm:"column:wallet;not null;type:text;index:idx_campaign_receipts_wallet;index:idx_campaign_receipts_wallet_kind,priority:1"`
	// CreatorID is the sponsored creator address
	CreatorID *string `gorm:"column:creator_id;type:text;index:idx_campaign_receipts_creator"`
	// PostID references sponsored content, if any
	PostID *string `gorm:"column:post_id;type:text"`
	// AssetsWei is the sponsorship amount as a decimal string
	AssetsWei string `gorm:"column:assets_wei;not null;type:text"`
	// TxHash is the canonical chain transaction hash, unique per receipt
	TxHash string `gorm:"column:tx_hash;not null;uniqueIndex;type:text"`
	// ChainID is the numeric network identifier
	ChainID uint64 `gorm:"column:chain_id;not null"`
	// Status is the reconciliation state (pending, confirmed, failed)
	Status domain.Status `gorm:"column:status;not null;type:text;index:idx_campaign_receipts_status;index:idx_campaign_receipts_kind_status,priority:2"`

	// SponsorName is the display name of the sponsor
	SponsorName string `gorm:"column:sponsor_name;not null;type:text"`
	// Objective is the campaign objective text
	Objective string `gorm:"column:objective;not null;type:text"`
	// Deliverables is the agreed deliverable list as a JSON array
	Deliverables datatypes.JSON `gorm:"column:deliverables;not null;type:jsonb"`
	// StartDate is the campaign start (ISO 8601 date)
	StartDate string `gorm:"column:start_date;not null;type:text"`
	// EndDate is the campaign end (ISO 8601 date)
	EndDate string `gorm:"column:end_date;not null;type:text"`
	// Disclosure is the sponsorship disclosure text shown alongside content
	Disclosure string `gorm:"column:disclosure;type:text"`
	// TermsHash is the content-addressed hash of the canonical terms
	TermsHash string `gorm:"column:terms_hash;not null;type:text"`

	// CreatedAt is the submission timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// ConfirmedAt is set on the terminal transition, never updated afterwards
	ConfirmedAt *time.Time `gorm:"column:confirmed_at"`
	// L2BlockNumber is the block the transaction landed in, when known
	L2BlockNumber *uint64 `gorm:"column:l2_block_number"`
	// L2TimestampIso is the block timestamp in ISO 8601, when known
	L2TimestampIso *string `gorm:"column:l2_timestamp_iso;type:text"`
}

// TableName specifies the table name for the CampaignReceipt model
func (CampaignReceipt) TableName() string {
	return "campaign_receipts"
}
