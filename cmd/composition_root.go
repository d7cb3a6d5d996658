package cmd

import (
	"log/slog"

	httpadapter "cargotracker/internal/adapters/in/http"
	"cargotracker/internal/adapters/out/postgres"
	"cargotracker/internal/adapters/out/routefinder"
	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/application/usecases/queries"
	"cargotracker/internal/core/domain/services"
	"cargotracker/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateBookCargoCommandHandler() commands.BookCargoCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBookCargoCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCargoToRouteCommandHandler() commands.AssignCargoToRouteCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCargoToRouteCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeDestinationCommandHandler() commands.ChangeDestinationCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeDestinationCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterHandlingEventCommandHandler() commands.RegisterHandlingEventCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterHandlingEventCommandHandler(f)
}

func (c *CompositionRoot) CreateInspectCargosCommandHandler() commands.InspectCargosCommandHandler {
	var f commands.CargoHistoryUoWFactory = FuncCargoHistoryUoWFactory(func() commands.CargoHistoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewInspectCargosCommandHandler(f)
}

func (c *CompositionRoot) CreateTrackCargoQueryHandler() queries.TrackCargoQueryHandler {
	return queries.NewTrackCargoQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCargosQueryHandler() queries.GetAllCargosQueryHandler {
	return queries.NewGetAllCargosQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllLocationsQueryHandler() queries.GetAllLocationsQueryHandler {
	return queries.NewGetAllLocationsQueryHandler(c.gormDB)
}

// CreateRoutingService wires the routing service to the randomized route
// finder over the persisted locations and voyages.
func (c *CompositionRoot) CreateRoutingService() (services.RoutingService, error) {
	uow := c.uowFactory.Create()

	finder, err := routefinder.NewRandomRouteFinder(uow.LocationRepository(), uow.VoyageRepository())
	if err != nil {
		return services.RoutingService{}, err
	}

	return services.NewRoutingService(finder)
}

// CreateHTTPServer assembles the API server with all its handlers.
func (c *CompositionRoot) CreateHTTPServer() (*httpadapter.Server, error) {
	routingService, err := c.CreateRoutingService()
	if err != nil {
		return nil, err
	}

	return httpadapter.NewServer(
		c.CreateBookCargoCommandHandler(),
		c.CreateAssignCargoToRouteCommandHandler(),
		c.CreateChangeDestinationCommandHandler(),
		c.CreateRegisterHandlingEventCommandHandler(),
		c.CreateTrackCargoQueryHandler(),
		c.CreateGetAllCargosQueryHandler(),
		c.CreateGetAllLocationsQueryHandler(),
		routingService,
		&c.uowFactory,
	), nil
}

// CreateJobManager assembles the background job scheduler.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateInspectCargosCommandHandler(), logger)
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncCargoHistoryUoWFactory func() commands.CargoHistoryUoW

func (f FuncCargoHistoryUoWFactory) Create() commands.CargoHistoryUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
