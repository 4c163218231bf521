package dto

import (
	"encoding/json"
	"time"

	"github.com/patronly/boost-ledger/internal/domain"
	"github.com/patronly/boost-ledger/internal/store/schema"
)

// DepositResponse is the public shape of a transaction record
type DepositResponse struct {
	ID             int64              `json:"id"`
	Kind           domain.DepositKind `json:"kind"`
	Wallet         string             `json:"wallet"`
	CreatorID      *string            `json:"creator_id,omitempty"`
	PostID         *string            `json:"post_id,omitempty"`
	AssetsWei      string             `json:"assets_wei"`
	TxHash         string             `json:"tx_hash"`
	ChainID        uint64             `json:"chain_id"`
	Status         domain.Status      `json:"status"`
	CreatedAt      time.Time          `json:"created_at"`
	ConfirmedAt    *time.Time         `json:"confirmed_at,omitempty"`
	L2BlockNumber  *uint64            `json:"l2_block_number,omitempty"`
	L2TimestampIso *string            `json:"l2_timestamp_iso,omitempty"`
}

// CampaignResponse is the public shape of a campaign receipt
type CampaignResponse struct {
	DepositResponse
	SponsorName  string   `json:"sponsor_name"`
	Objective    string   `json:"objective"`
	Deliverables []string `json:"deliverables"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Disclosure   string   `json:"disclosure,omitempty"`
	TermsHash    string   `json:"terms_hash"`
}

// ActivityEventResponse is the public shape of an activity feed entry
type ActivityEventResponse struct {
	ID          string             `json:"id"`
	Wallet      string             `json:"wallet"`
	ChainID     uint64             `json:"chain_id"`
	TxHash      string             `json:"tx_hash"`
	Kind        domain.DepositKind `json:"kind"`
	Status      domain.Status      `json:"status"`
	Title       string             `json:"title"`
	Subtitle    *string            `json:"subtitle,omitempty"`
	Href        string             `json:"href"`
	AmountWei   *string            `json:"amount_wei,omitempty"`
	AssetSymbol *string            `json:"asset_symbol,omitempty"`
	OccurredAt  time.Time          `json:"occurred_at"`
}

// ListResponse wraps a paginated collection
type ListResponse[T any] struct {
	Items  []T    `json:"items"`
	Total  uint64 `json:"total"`
	Limit  int    `json:"limit"`
	Offset uint64 `json:"offset"`
}

// LeaderboardResponse is the latest leaderboard snapshot. Both lists are
// present (possibly empty) even before the first aggregation cycle ran.
type LeaderboardResponse struct {
	Creators    []schema.CreatorStanding `json:"creators"`
	Boosters    []schema.BoosterStanding `json:"boosters"`
	GeneratedAt *time.Time               `json:"generated_at,omitempty"`
}

// FromTransactionRecord converts a transaction record to its response shape
func FromTransactionRecord(r *schema.TransactionRecord) DepositResponse {
	return DepositResponse{
		ID:             r.ID,
		Kind:           r.Kind,
		Wallet:         r.Wallet,
		CreatorID:      r.CreatorID,
		PostID:         r.PostID,
		AssetsWei:      r.AssetsWei,
		TxHash:         r.TxHash,
		ChainID:        r.ChainID,
		Status:         r.Status,
		CreatedAt:      r.CreatedAt,
		ConfirmedAt:    r.ConfirmedAt,
		L2BlockNumber:  r.L2BlockNumber,
		L2TimestampIso: r.L2TimestampIso,
	}
}

// FromCampaignReceipt converts a campaign receipt to its response shape
func FromCampaignReceipt(r *schema.CampaignReceipt) CampaignResponse {
	var deliverables []string
	_ = json.Unmarshal(r.Deliverables, &deliverables)

	return CampaignResponse{
		DepositResponse: DepositResponse{
			ID:             r.ID,
			Kind:           r.Kind,
			Wallet:         r.Wallet,
			CreatorID:      r.CreatorID,
			PostID:         r.PostID,
			AssetsWei:      r.AssetsWei,
			TxHash:         r.TxHash,
			ChainID:        r.ChainID,
			Status:         r.Status,
			CreatedAt:      r.CreatedAt,
			ConfirmedAt:    r.ConfirmedAt,
			L2BlockNumber:  r.L2BlockNumber,
			L2TimestampIso: r.L2TimestampIso,
		},
		SponsorName:  r.SponsorName,
		Objective:    r.Objective,
		Deliverables: deliverables,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Disclosure:   r.Disclosure,
		TermsHash:    r.TermsHash,
	}
}

// FromActivityEvent converts an activity event to its response shape
func FromActivityEvent(e *schema.ActivityEvent) ActivityEventResponse {
	return ActivityEventResponse{
		ID:          e.ID,
		Wallet:      e.Wallet,
		ChainID:     e.ChainID,
		TxHash:      e.TxHash,
		Kind:        e.Kind,
		Status:      e.Status,
		Title:       e.Title,
		Subtitle:    e.Subtitle,
		Href:        e.Href,
		AmountWei:   e.AmountWei,
		AssetSymbol: e.AssetSymbol,
		OccurredAt:  e.CreatedAt,
	}
}

// FromLeaderboardSnapshot converts the latest snapshot to its response shape.
// A nil snapshot yields an empty leaderboard.
func FromLeaderboardSnapshot(s *schema.LeaderboardSnapshot) LeaderboardResponse {
	resp := LeaderboardResponse{
		Creators: []schema.CreatorStanding{},
		Boosters: []schema.BoosterStanding{},
	}
	if s == nil {
		return resp
	}

	_ = json.Unmarshal(s.Creators, &resp.Creators)
	_ = json.Unmarshal(s.Boosters, &resp.Boosters)
	generatedAt := s.CreatedAt
	resp.GeneratedAt = &generatedAt
	return resp
}
