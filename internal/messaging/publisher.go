package messaging

import (
	"context"

	"github.com/rwalabs/rwa-indexer/internal/domain"
)

// Publisher defines the interface for publishing block notifications to
// the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishBlockProcessed announces a committed block to downstream
	// consumers
	PublishBlockProcessed(ctx context.Context, notification *domain.BlockNotification) error
	// Close closes the connection
	Close()
}
