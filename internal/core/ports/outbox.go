package ports

import (
	"context"
	"time"

	"loadbooking/internal/core/domain/model/kernel"
)

// OutboxMessage is a serialized domain event waiting to be published.
type OutboxMessage struct {
	ID          kernel.UUID
	Name        string
	AggregateID kernel.UUID
	Payload     []byte
	OccurredAt  time.Time
}

// OutboxRepository stores domain events in the same transaction as the
// aggregates that raised them.
type OutboxRepository interface {
	// Add stores messages as unpublished.
	Add(ctx context.Context, messages ...OutboxMessage) error

	// FetchUnpublished claims up to limit unpublished messages, oldest first.
	// Rows claimed by another open transaction are skipped.
	FetchUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkPublished stamps the given messages as published at the given time.
	MarkPublished(ctx context.Context, ids []kernel.UUID, publishedAt time.Time) error

	// DeletePublishedBefore removes messages published before cutoff and
	// returns how many were removed.
	DeletePublishedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// EventPublisher delivers one outbox message to the broker.
type EventPublisher interface {
	Publish(ctx context.Context, message OutboxMessage) error
}
