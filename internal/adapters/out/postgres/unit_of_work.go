// Package postgres provides the GORM-based Unit of Work and schema migration.
// The Unit of Work keeps one transaction open across the load, booking and
// outbox repositories and records the domain events of every aggregate it
// touched into the outbox right before committing.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	l, err := uow.LoadRepository().GetForUpdate(ctx, loadID)
//	if err != nil {
//	    return err
//	}
//	// ... change the aggregate and store it
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Cross-aggregate operations lock the load row first and keep the lock until commit
package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"loadbooking/internal/adapters/out/postgres/bookingrepo"
	"loadbooking/internal/adapters/out/postgres/loadrepo"
	"loadbooking/internal/adapters/out/postgres/outboxrepo"
	"loadbooking/internal/core/domain/model/kernel"
	"loadbooking/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// eventSource is implemented by aggregates that record domain events.
type eventSource interface {
	DomainEvents() []kernel.DomainEvent
	ClearDomainEvents()
}

// GormUnitOfWorkFactory creates UnitOfWork instances over one GORM connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh UnitOfWork with its own transaction state and tracking list.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates changed inside it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it twice keeps the first transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit writes the pending domain events of every tracked aggregate to the
// outbox and commits. If writing the events fails the transaction is rolled
// back, so a change is never stored without its events.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	messages, err := uow.collectOutboxMessages()
	if err == nil {
		err = outboxrepo.NewGormOutboxRepository(uow.tx).Add(ctx, messages...)
	}
	if err != nil {
		_ = uow.tx.Rollback()
		uow.tx = nil
		return err
	}

	err = uow.tx.Commit().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// Rollback discards the transaction. After Commit it returns
// gorm.ErrInvalidTransaction, which deferred callers ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// LoadRepository returns a load repository bound to the current transaction,
// or to the pool when no transaction is active.
func (uow *GormUnitOfWork) LoadRepository() ports.LoadRepository {
	return loadrepo.NewGormLoadRepository(uow.conn(), uow)
}

// BookingRepository returns a booking repository bound to the current transaction.
func (uow *GormUnitOfWork) BookingRepository() ports.BookingRepository {
	return bookingrepo.NewGormBookingRepository(uow.conn(), uow)
}

// OutboxRepository returns an outbox repository bound to the current transaction.
func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers an aggregate as modified within this unit of work.
// Repositories call it after every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// collectOutboxMessages drains the events of the tracked aggregates in
// tracking order. An aggregate tracked twice yields its events once.
func (uow *GormUnitOfWork) collectOutboxMessages() ([]ports.OutboxMessage, error) {
	messages := make([]ports.OutboxMessage, 0)
	for _, tracked := range uow.trackedAggregates {
		source, ok := tracked.Aggregate.(eventSource)
		if !ok {
			continue
		}

		for _, event := range source.DomainEvents() {
			payload, err := json.Marshal(event)
			if err != nil {
				return nil, fmt.Errorf("marshal %s event: %w", event.Meta().Name, err)
			}

			meta := event.Meta()
			messages = append(messages, ports.OutboxMessage{
				ID:          meta.ID,
				Name:        meta.Name,
				AggregateID: meta.AggregateID,
				Payload:     payload,
				OccurredAt:  meta.OccurredAt,
			})
		}
		source.ClearDomainEvents()
	}
	return messages, nil
}
