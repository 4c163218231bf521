// Package projector maintains the wallet-facing activity feed, a denormalized
// projection of the ledger keyed by transaction hash.
package projector

import (
	"context"

	"go.uber.org/zap"

	"github.com/patronly/boost-ledger/internal/adapter"
	"github.com/patronly/boost-ledger/internal/domain"
	"github.com/patronly/boost-ledger/internal/logger"
	"github.com/patronly/boost-ledger/internal/messaging"
	"github.com/patronly/boost-ledger/internal/store"
)

// Projector defines the idempotent activity feed projection
//
//go:generate mockgen -source=projector.go -destination=../mocks/projector.go -package=mocks -mock_names=Projector=MockProjector
type Projector interface {
	// Upsert creates or fully replaces the feed entry for a tx hash and
	// returns the event ID. Invalid wallet or tx hash input is rejected
	// with a domain.ValidationError and nothing is written.
	Upsert(ctx context.Context, input store.UpsertActivityEventInput) (string, error)

	// SetStatusByTxHash mirrors a status change onto the feed entry for a
	// tx hash without re-supplying display metadata. A malformed hash or a
	// missing entry returns (nil, nil); the feed is best-effort relative
	// to the ledger.
	SetStatusByTxHash(ctx context.Context, txHash string, status domain.Status) (*string, error)
}

type projector struct {
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
}

// NewProjector creates a new activity feed projector. The publisher is
// optional; without it the feed is persisted but no push events go out.
func NewProjector(st store.Store, publisher messaging.Publisher, clock adapter.Clock) Projector {
	return &projector{
		store:     st,
		publisher: publisher,
		clock:     clock,
	}
}

// Upsert creates or fully replaces the feed entry for a tx hash
func (p *projector) Upsert(ctx context.Context, input store.UpsertActivityEventInput) (string, error) {
	if !domain.ValidAddress(input.Wallet) {
		return "", domain.NewValidationError("wallet", "not a valid address")
	}
	if !domain.ValidTxHash(input.TxHash) {
		return "", domain.NewValidationError("txHash", "not a valid transaction hash")
	}

	input.Wallet = domain.NormalizeAddress(input.Wallet)
	input.TxHash = domain.NormalizeTxHash(input.TxHash)

	eventID, err := p.store.UpsertActivityEvent(ctx, input)
	if err != nil {
		return "", err
	}

	p.publish(ctx, &domain.ActivityFeedEvent{
		EventID:     eventID,
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
		OccurredAt:  p.clock.Now().UTC(),
	})

	return eventID, nil
}

// SetStatusByTxHash mirrors a status change onto the feed entry for a tx hash
func (p *projector) SetStatusByTxHash(ctx context.Context, txHash string, status domain.Status) (*string, error) {
	if !domain.ValidTxHash(txHash) {
		return nil, nil
	}
	txHash = domain.NormalizeTxHash(txHash)

	eventID, err := p.store.SetActivityStatusByTxHash(ctx, txHash, status)
	if err != nil {
		return nil, err
	}
	if eventID == nil {
		return nil, nil
	}

	event, err := p.store.GetActivityEventByTxHash(ctx, txHash)
	if err != nil || event == nil {
		// The status write already landed; treat a missed read as a
		// skipped push, not a failure.
		if err != nil {
			logger.WarnCtx(ctx, "Failed to load activity event for push",
				zap.String("txHash", txHash),
				zap.Error(err))
		}
		return eventID, nil
	}

	p.publish(ctx, &domain.ActivityFeedEvent{
		EventID:     event.ID,
		Wallet:      event.Wallet,
		ChainID:     event.ChainID,
		TxHash:      event.TxHash,
		Kind:        event.Kind,
		Status:      event.Status,
		Title:       event.Title,
		Subtitle:    event.Subtitle,
		Href:        event.Href,
		AmountWei:   event.AmountWei,
		AssetSymbol: event.AssetSymbol,
		OccurredAt:  p.clock.Now().UTC(),
	})

	return eventID, nil
}

// publish pushes a feed change event to the broker, logging failures instead
// of propagating them
func (p *projector) publish(ctx context.Context, event *domain.ActivityFeedEvent) {
	if p.publisher == nil {
		return
	}

	if err := p.publisher.PublishActivityEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish activity event",
			zap.String("txHash", event.TxHash),
			zap.String("status", string(event.Status)),
			zap.Error(err))
	}
}
