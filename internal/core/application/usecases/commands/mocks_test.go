package commands_test

import (
	"context"
	"log/slog"
	"time"

	"loadbooking/internal/core/application/usecases/commands"
	"loadbooking/internal/core/domain/model/booking"
	"loadbooking/internal/core/domain/model/kernel"
	"loadbooking/internal/core/domain/model/load"
	"loadbooking/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var discardLogger = slog.New(slog.DiscardHandler)

type MockLoadRepository struct{ mock.Mock }

func (m *MockLoadRepository) Add(ctx context.Context, l *load.Load) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLoadRepository) Update(ctx context.Context, l *load.Load) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*load.Load), args.Error(1)
}

func (m *MockLoadRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*load.Load), args.Error(1)
}

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) Add(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) Delete(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) GetAllByLoad(ctx context.Context, loadID kernel.UUID) ([]*booking.Booking, error) {
	args := m.Called(ctx, loadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*booking.Booking), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, messages ...ports.OutboxMessage) error {
	args := m.Called(ctx, messages)
	return args.Error(0)
}

func (m *MockOutboxRepository) FetchUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.OutboxMessage), args.Error(1)
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, publishedAt time.Time) error {
	args := m.Called(ctx, ids, publishedAt)
	return args.Error(0)
}

func (m *MockOutboxRepository) DeletePublishedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, message ports.OutboxMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockLoadUoW struct {
	mockTx
	loads *MockLoadRepository
}

func (m *MockLoadUoW) LoadRepository() ports.LoadRepository {
	return m.loads
}

type MockLoadUoWFactory struct{ mock.Mock }

func (m *MockLoadUoWFactory) Create() commands.LoadUoW {
	args := m.Called()
	return args.Get(0).(commands.LoadUoW)
}

type MockUoW struct {
	mockTx
	loads    *MockLoadRepository
	bookings *MockBookingRepository
}

func (m *MockUoW) LoadRepository() ports.LoadRepository {
	return m.loads
}

func (m *MockUoW) BookingRepository() ports.BookingRepository {
	return m.bookings
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOutboxUoW struct {
	mockTx
	outbox *MockOutboxRepository
}

func (m *MockOutboxUoW) OutboxRepository() ports.OutboxRepository {
	return m.outbox
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	args := m.Called()
	return args.Get(0).(commands.OutboxUoW)
}

func newMockUoW() (*MockUoW, *MockUoWFactory) {
	uow := &MockUoW{
		loads:    new(MockLoadRepository),
		bookings: new(MockBookingRepository),
	}
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func newMockLoadUoW() (*MockLoadUoW, *MockLoadUoWFactory) {
	uow := &MockLoadUoW{loads: new(MockLoadRepository)}
	factory := new(MockLoadUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func newMockOutboxUoW() (*MockOutboxUoW, *MockOutboxUoWFactory) {
	uow := &MockOutboxUoW{outbox: new(MockOutboxRepository)}
	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func validLoadSpec() commands.LoadSpec {
	return commands.LoadSpec{
		ShipperID:      "shipper-1",
		LoadingPoint:   "Delhi",
		UnloadingPoint: "Jaipur",
		LoadingDate:    time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
		UnloadingDate:  time.Date(2025, 3, 11, 18, 0, 0, 0, time.UTC),
		ProductType:    "Chemicals",
		TruckType:      "Canter",
		TruckCount:     2,
		Weight:         1200,
		Comment:        "fragile",
	}
}

func validBookingSpec() commands.BookingSpec {
	return commands.BookingSpec{
		TransporterID: "transporter-1",
		ProposedRate:  50000,
		Comment:       "can load tomorrow",
	}
}

func restoreLoad(status load.Status) *load.Load {
	spec := validLoadSpec()
	facility, err := load.NewFacility(spec.LoadingPoint, spec.UnloadingPoint, spec.LoadingDate, spec.UnloadingDate)
	if err != nil {
		panic(err)
	}
	details, err := load.NewDetails(spec.ShipperID, facility, spec.ProductType, spec.TruckType,
		spec.TruckCount, spec.Weight, spec.Comment)
	if err != nil {
		panic(err)
	}
	l, err := load.RestoreLoad(kernel.NewUUID(), details, time.Now().UTC(), status)
	if err != nil {
		panic(err)
	}
	return l
}

func restoreBooking(loadID kernel.UUID, status booking.Status) *booking.Booking {
	terms, err := booking.NewTerms("transporter-1", 50000, "")
	if err != nil {
		panic(err)
	}
	b, err := booking.RestoreBooking(kernel.NewUUID(), loadID, terms, time.Now().UTC(), status)
	if err != nil {
		panic(err)
	}
	return b
}
