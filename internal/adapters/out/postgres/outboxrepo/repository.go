package outboxrepo

import (
	"context"
	"fmt"
	"time"

	"loadbooking/internal/core/domain/model/kernel"
	"loadbooking/internal/core/ports"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add inserts messages in one statement. An empty call is a no-op.
func (r *GormOutboxRepository) Add(ctx context.Context, messages ...ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	dtos := make([]OutboxEventDTO, 0, len(messages))
	for _, message := range messages {
		dtos = append(dtos, fromMessage(message))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return fmt.Errorf("insert outbox events: %w", err)
	}
	return nil
}

// FetchUnpublished claims pending rows with FOR UPDATE SKIP LOCKED so that
// concurrent relays never publish the same message twice in parallel.
func (r *GormOutboxRepository) FetchUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []OutboxEventDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL").
		Order("occurred_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, fmt.Errorf("query outbox events: %w", err)
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		message, mapErr := toMessage(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		messages = append(messages, message)
	}

	return messages, nil
}

func (r *GormOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, publishedAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.String())
	}

	err := r.db.WithContext(ctx).
		Model(&OutboxEventDTO{}).
		Where("id = ANY(?)", pq.Array(raw)).
		Update("published_at", publishedAt).Error
	if err != nil {
		return fmt.Errorf("mark outbox events published: %w", err)
	}
	return nil
}

func (r *GormOutboxRepository) DeletePublishedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("published_at IS NOT NULL AND published_at < ?", cutoff).
		Delete(&OutboxEventDTO{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete published outbox events: %w", result.Error)
	}
	return result.RowsAffected, nil
}
