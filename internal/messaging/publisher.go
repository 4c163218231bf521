package messaging

import (
	"context"

	"github.com/patronly/boost-ledger/internal/domain"
)

// Publisher defines the interface for publishing activity feed events to the
// message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishActivityEvent publishes an activity feed event
	PublishActivityEvent(ctx context.Context, event *domain.ActivityFeedEvent) error
	// Close closes the connection
	Close()
}
