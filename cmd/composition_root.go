package cmd

import (
	"log/slog"

	"traveldesk/internal/adapters/out/notifier"
	"traveldesk/internal/adapters/out/postgres"
	"traveldesk/internal/adapters/out/postgres/notificationrepo"
	"traveldesk/internal/core/application/usecases/commands"
	"traveldesk/internal/core/application/usecases/queries"
	"traveldesk/internal/core/ports"
	"traveldesk/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateTravelOrderCommandHandler() commands.CreateTravelOrderCommandHandler {
	var f commands.TravelOrderUoWFactory = FuncTravelOrderUoWFactory(func() commands.TravelOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTravelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateTravelOrderStatusCommandHandler() commands.UpdateTravelOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateTravelOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelTravelOrderCommandHandler() commands.CancelTravelOrderCommandHandler {
	var f commands.TravelOrderUoWFactory = FuncTravelOrderUoWFactory(func() commands.TravelOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelTravelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetTravelOrderQueryHandler() queries.GetTravelOrderQueryHandler {
	return queries.NewGetTravelOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListTravelOrdersQueryHandler() queries.ListTravelOrdersQueryHandler {
	return queries.NewListTravelOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateNotificationRepository() ports.NotificationRepository {
	return notificationrepo.NewGormNotificationRepository(c.gormDB)
}

func (c *CompositionRoot) CreateStatusNotifier() ports.StatusNotifier {
	return notifier.NewSlogStatusNotifier(c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateNotificationRepository(), c.CreateStatusNotifier(), c.logger)
}

type FuncTravelOrderUoWFactory func() commands.TravelOrderUoW

func (f FuncTravelOrderUoWFactory) Create() commands.TravelOrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
