package cmd

import (
	"log/slog"

	httpin "loadbooking/internal/adapters/in/http"
	"loadbooking/internal/adapters/out/postgres"
	"loadbooking/internal/core/application/usecases/commands"
	"loadbooking/internal/core/application/usecases/queries"
	"loadbooking/internal/core/ports"
	"loadbooking/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) loadUoWFactory() commands.LoadUoWFactory {
	return FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uowFactoryFunc() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) outboxUoWFactory() commands.OutboxUoWFactory {
	return FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateLoadCommandHandler() commands.CreateLoadCommandHandler {
	return commands.NewCreateLoadCommandHandler(c.loadUoWFactory())
}

func (c *CompositionRoot) CreateUpdateLoadCommandHandler() commands.UpdateLoadCommandHandler {
	return commands.NewUpdateLoadCommandHandler(c.loadUoWFactory())
}

func (c *CompositionRoot) CreateCancelLoadCommandHandler() commands.CancelLoadCommandHandler {
	return commands.NewCancelLoadCommandHandler(c.loadUoWFactory())
}

func (c *CompositionRoot) CreateChangeLoadStatusCommandHandler() commands.ChangeLoadStatusCommandHandler {
	return commands.NewChangeLoadStatusCommandHandler(c.loadUoWFactory())
}

func (c *CompositionRoot) CreateCreateBookingCommandHandler() commands.CreateBookingCommandHandler {
	return commands.NewCreateBookingCommandHandler(c.uowFactoryFunc(), c.logger)
}

func (c *CompositionRoot) CreateUpdateBookingCommandHandler() commands.UpdateBookingCommandHandler {
	return commands.NewUpdateBookingCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateAcceptBookingCommandHandler() commands.AcceptBookingCommandHandler {
	return commands.NewAcceptBookingCommandHandler(c.uowFactoryFunc(), c.logger)
}

func (c *CompositionRoot) CreateRejectBookingCommandHandler() commands.RejectBookingCommandHandler {
	return commands.NewRejectBookingCommandHandler(c.uowFactoryFunc(), c.logger)
}

func (c *CompositionRoot) CreateDeleteBookingCommandHandler() commands.DeleteBookingCommandHandler {
	return commands.NewDeleteBookingCommandHandler(c.uowFactoryFunc(), c.logger)
}

func (c *CompositionRoot) CreateRelayOutboxEventsCommandHandler() commands.RelayOutboxEventsCommandHandler {
	return commands.NewRelayOutboxEventsCommandHandler(c.outboxUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreatePurgeOutboxEventsCommandHandler() commands.PurgeOutboxEventsCommandHandler {
	return commands.NewPurgeOutboxEventsCommandHandler(c.outboxUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateGetLoadQueryHandler() queries.GetLoadQueryHandler {
	return queries.NewGetLoadQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListLoadsQueryHandler() queries.ListLoadsQueryHandler {
	return queries.NewListLoadsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBookingQueryHandler() queries.GetBookingQueryHandler {
	return queries.NewGetBookingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListBookingsQueryHandler() queries.ListBookingsQueryHandler {
	return queries.NewListBookingsQueryHandler(c.gormDB)
}

// CreateServer wires every use case into the HTTP server.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateLoad:       c.CreateCreateLoadCommandHandler(),
		UpdateLoad:       c.CreateUpdateLoadCommandHandler(),
		CancelLoad:       c.CreateCancelLoadCommandHandler(),
		ChangeLoadStatus: c.CreateChangeLoadStatusCommandHandler(),
		CreateBooking:    c.CreateCreateBookingCommandHandler(),
		UpdateBooking:    c.CreateUpdateBookingCommandHandler(),
		AcceptBooking:    c.CreateAcceptBookingCommandHandler(),
		RejectBooking:    c.CreateRejectBookingCommandHandler(),
		DeleteBooking:    c.CreateDeleteBookingCommandHandler(),
		GetLoad:          c.CreateGetLoadQueryHandler(),
		ListLoads:        c.CreateListLoadsQueryHandler(),
		GetBooking:       c.CreateGetBookingQueryHandler(),
		ListBookings:     c.CreateListBookingsQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	return jobs.NewJobManager(
		c.CreateRelayOutboxEventsCommandHandler(),
		c.CreatePurgeOutboxEventsCommandHandler(),
		jobs.Config{
			RelaySchedule: c.configs.OutboxRelaySchedule,
			BatchSize:     c.configs.OutboxBatchSize,
			Retention:     c.configs.OutboxRetention,
		},
		c.logger,
	)
}

type FuncLoadUoWFactory func() commands.LoadUoW

func (f FuncLoadUoWFactory) Create() commands.LoadUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
