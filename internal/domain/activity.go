package domain

import "time"

// ActivityFeedEvent is the payload pushed to the feed stream whenever an
// activity entry is created or changes status.
type ActivityFeedEvent struct {
	EventID     string      `json:"eventId"`
	Wallet      string      `json:"wallet"`
	ChainID     uint64      `json:"chainId"`
	TxHash      string      `json:"txHash"`
	Kind        DepositKind `json:"kind"`
	Status      Status      `json:"status"`
	Title       string      `json:"title"`
	Subtitle    *string     `json:"subtitle,omitempty"`
	Href        string      `json:"href"`
	AmountWei   *string     `json:"amountWei,omitempty"`
	AssetSymbol *string     `json:"assetSymbol,omitempty"`
	OccurredAt  time.Time   `json:"occurredAt"`
}
