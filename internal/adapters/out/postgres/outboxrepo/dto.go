// Package outboxrepo stores domain events in the "outbox_events" table until
// the relay publishes them.
package outboxrepo

import (
	"time"

	"loadbooking/internal/core/domain/model/kernel"
	"loadbooking/internal/core/ports"

	"github.com/google/uuid"
)

// OutboxEventDTO is one serialized domain event. A NULL published_at marks it
// as pending; the partial ordering index serves the relay's claim query.
type OutboxEventDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"not null"`
	AggregateID uuid.UUID  `gorm:"type:uuid;not null"`
	Payload     []byte     `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time  `gorm:"type:timestamptz;not null;index:idx_outbox_pending,where:published_at IS NULL"`
	PublishedAt *time.Time `gorm:"type:timestamptz;index"`
}

func (OutboxEventDTO) TableName() string {
	return "outbox_events"
}

func fromMessage(message ports.OutboxMessage) OutboxEventDTO {
	return OutboxEventDTO{
		ID:          message.ID.Bytes(),
		Name:        message.Name,
		AggregateID: message.AggregateID.Bytes(),
		Payload:     message.Payload,
		OccurredAt:  message.OccurredAt,
	}
}

func toMessage(dto OutboxEventDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:          id,
		Name:        dto.Name,
		AggregateID: aggregateID,
		Payload:     dto.Payload,
		OccurredAt:  dto.OccurredAt.UTC(),
	}, nil
}
