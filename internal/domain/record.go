package domain

// RecordSource identifies which ledger table a record lives in.
// Campaign receipts share the transaction-record contract but carry the
// richer terms payload in their own table.
type RecordSource string

const (
	SourceTransactionRecord RecordSource = "transaction_record"
	SourceCampaignReceipt   RecordSource = "campaign_receipt"
)

// IsValidSource checks if a record source is recognized
func IsValidSource(source RecordSource) bool {
	return source == SourceTransactionRecord || source == SourceCampaignReceipt
}

// RecordRef is the stable handle passed to confirmation tasks. It is safe to
// schedule the same ref any number of times; confirmation is idempotent once
// the record is terminal.
type RecordRef struct {
	Source RecordSource `json:"source"`
	ID     int64        `json:"id"`
}

// LedgerRecord is the unified read view of a transaction record or campaign
// receipt used by the confirmation worker
type LedgerRecord struct {
	Ref       RecordRef
	Kind      DepositKind
	Wallet    string
	CreatorID *string
	AssetsWei string
	TxHash    string
	ChainID   uint64
	Status    Status
}
