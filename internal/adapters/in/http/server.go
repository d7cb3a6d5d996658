// Package http exposes the booking, routing and handling operations as a
// JSON API. Handlers translate requests into commands and queries and map
// domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/application/usecases/queries"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/services"
	"cargotracker/internal/core/ports"
	"cargotracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	bookCargoHandler             commands.BookCargoCommandHandler
	assignCargoToRouteHandler    commands.AssignCargoToRouteCommandHandler
	changeDestinationHandler     commands.ChangeDestinationCommandHandler
	registerHandlingEventHandler commands.RegisterHandlingEventCommandHandler

	// Query handlers
	trackCargoHandler      queries.TrackCargoQueryHandler
	getAllCargosHandler    queries.GetAllCargosQueryHandler
	getAllLocationsHandler queries.GetAllLocationsQueryHandler

	// Route candidates need the cargo's current route specification
	routingService services.RoutingService
	uowFactory     ports.UnitOfWorkFactory
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	bookCargoHandler commands.BookCargoCommandHandler,
	assignCargoToRouteHandler commands.AssignCargoToRouteCommandHandler,
	changeDestinationHandler commands.ChangeDestinationCommandHandler,
	registerHandlingEventHandler commands.RegisterHandlingEventCommandHandler,
	trackCargoHandler queries.TrackCargoQueryHandler,
	getAllCargosHandler queries.GetAllCargosQueryHandler,
	getAllLocationsHandler queries.GetAllLocationsQueryHandler,
	routingService services.RoutingService,
	uowFactory ports.UnitOfWorkFactory,
) *Server {
	return &Server{
		bookCargoHandler:             bookCargoHandler,
		assignCargoToRouteHandler:    assignCargoToRouteHandler,
		changeDestinationHandler:     changeDestinationHandler,
		registerHandlingEventHandler: registerHandlingEventHandler,
		trackCargoHandler:            trackCargoHandler,
		getAllCargosHandler:          getAllCargosHandler,
		getAllLocationsHandler:       getAllLocationsHandler,
		routingService:               routingService,
		uowFactory:                   uowFactory,
	}
}

// RegisterRoutes wires all API routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/cargos", s.BookCargo)
	api.GET("/cargos", s.GetCargos)
	api.GET("/cargos/:id", s.TrackCargo)
	api.GET("/cargos/:id/route-candidates", s.GetRouteCandidates)
	api.POST("/cargos/:id/route", s.AssignRoute)
	api.POST("/cargos/:id/destination", s.ChangeDestination)
	api.POST("/handling-events", s.RegisterHandlingEvent)
	api.GET("/locations", s.GetLocations)
}

// BookCargo handles POST /api/v1/cargos - books a new cargo.
// The tracking id is generated server side and returned to the caller.
func (s *Server) BookCargo(ctx echo.Context) error {
	var request BookCargoRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	trackingID := kernel.NextTrackingID()

	cmd, err := commands.NewBookCargoCommand(
		trackingID, request.Origin, request.Destination, request.ArrivalDeadline)
	if err != nil {
		return badRequest(ctx, "Invalid booking data: "+err.Error())
	}

	if handleErr := s.bookCargoHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, BookCargoResponse{
		TrackingID: trackingID.String(),
	})
}

// GetCargos handles GET /api/v1/cargos - lists the routing overview of all cargos.
func (s *Server) GetCargos(ctx echo.Context) error {
	query := queries.NewGetAllCargosQuery()

	cargos, err := s.getAllCargosHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve cargos")
	}

	response := make([]CargoOverviewResponse, len(cargos))
	for i, overview := range cargos {
		response[i] = CargoOverviewResponse{
			TrackingID:      overview.TrackingID,
			Origin:          overview.Origin,
			Destination:     overview.Destination,
			ArrivalDeadline: overview.ArrivalDeadline,
			RoutingStatus:   overview.RoutingStatus,
			TransportStatus: overview.TransportStatus,
			IsMisdirected:   overview.IsMisdirected,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// TrackCargo handles GET /api/v1/cargos/:id - retrieves the tracking view of one cargo.
func (s *Server) TrackCargo(ctx echo.Context) error {
	trackingID, err := kernel.NewTrackingID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking id")
	}

	query, err := queries.NewTrackCargoQuery(trackingID)
	if err != nil {
		return badRequest(ctx, "Invalid tracking id")
	}

	view, err := s.trackCargoHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, queries.ErrCargoNotFound) {
		return notFound(ctx, "Unknown tracking id")
	}
	if err != nil {
		return internalError(ctx, "Failed to track cargo")
	}

	legs := make([]RouteLegResponse, len(view.Legs))
	for i, leg := range view.Legs {
		legs[i] = RouteLegResponse{
			VoyageNumber:   leg.VoyageNumber,
			LoadLocation:   leg.LoadLocation,
			UnloadLocation: leg.UnloadLocation,
			LoadTime:       leg.LoadTime,
			UnloadTime:     leg.UnloadTime,
		}
	}

	events := make([]HandlingEventResponse, len(view.HandlingEvents))
	for i, event := range view.HandlingEvents {
		events[i] = HandlingEventResponse{
			EventType:      event.EventType,
			Location:       event.Location,
			VoyageNumber:   event.VoyageNumber,
			CompletionTime: event.CompletionTime,
		}
	}

	return ctx.JSON(http.StatusOK, TrackCargoResponse{
		TrackingID:              view.TrackingID,
		Origin:                  view.Origin,
		Destination:             view.Destination,
		ArrivalDeadline:         view.ArrivalDeadline,
		TransportStatus:         view.TransportStatus,
		RoutingStatus:           view.RoutingStatus,
		LastKnownLocation:       view.LastKnownLocation,
		CurrentVoyage:           view.CurrentVoyage,
		IsMisdirected:           view.IsMisdirected,
		IsUnloadedAtDestination: view.IsUnloadedAtDestination,
		ETA:                     view.ETA,
		Legs:                    legs,
		HandlingEvents:          events,
	})
}

// GetRouteCandidates handles GET /api/v1/cargos/:id/route-candidates -
// fetches itineraries satisfying the cargo's current route specification.
func (s *Server) GetRouteCandidates(ctx echo.Context) error {
	trackingID, err := kernel.NewTrackingID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking id")
	}

	requestCtx := ctx.Request().Context()

	aggregate, err := s.uowFactory.Create().CargoRepository().Get(requestCtx, trackingID)
	if err != nil {
		return domainError(ctx, err)
	}

	routes, err := s.routingService.FetchRoutesForSpecification(
		requestCtx, aggregate.RouteSpecification())
	if err != nil {
		return internalError(ctx, "Failed to fetch route candidates")
	}

	response := make([]RouteCandidateResponse, len(routes))
	for i, itinerary := range routes {
		response[i] = routeCandidateResponse(itinerary)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignRoute handles POST /api/v1/cargos/:id/route - assigns an itinerary to a cargo.
func (s *Server) AssignRoute(ctx echo.Context) error {
	trackingID, err := kernel.NewTrackingID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking id")
	}

	var request AssignRouteRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	legs := make([]commands.RouteLeg, 0, len(request.Legs))
	for _, leg := range request.Legs {
		routeLeg, legErr := commands.NewRouteLeg(
			leg.VoyageNumber, leg.LoadLocation, leg.UnloadLocation, leg.LoadTime, leg.UnloadTime)
		if legErr != nil {
			return badRequest(ctx, "Invalid leg: "+legErr.Error())
		}
		legs = append(legs, routeLeg)
	}

	cmd, err := commands.NewAssignCargoToRouteCommand(trackingID, legs)
	if err != nil {
		return badRequest(ctx, "Invalid route data: "+err.Error())
	}

	if handleErr := s.assignCargoToRouteHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// ChangeDestination handles POST /api/v1/cargos/:id/destination -
// changes the destination of an existing booking.
func (s *Server) ChangeDestination(ctx echo.Context) error {
	trackingID, err := kernel.NewTrackingID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking id")
	}

	var request ChangeDestinationRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeDestinationCommand(trackingID, request.Destination)
	if err != nil {
		return badRequest(ctx, "Invalid destination: "+err.Error())
	}

	if handleErr := s.changeDestinationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// RegisterHandlingEvent handles POST /api/v1/handling-events -
// registers a handling event for a cargo.
func (s *Server) RegisterHandlingEvent(ctx echo.Context) error {
	var request RegisterHandlingEventRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	trackingID, err := kernel.NewTrackingID(request.TrackingID)
	if err != nil {
		return badRequest(ctx, "Invalid tracking id")
	}

	eventType, err := handling.EventTypeFromString(request.EventType)
	if err != nil {
		return badRequest(ctx, "Invalid event type: "+request.EventType)
	}

	var voyageNumber string
	if request.VoyageNumber != nil {
		voyageNumber = *request.VoyageNumber
	}

	cmd, err := commands.NewRegisterHandlingEventCommand(
		trackingID, eventType, request.Location, voyageNumber, request.CompletionTime)
	if err != nil {
		return badRequest(ctx, "Invalid handling event: "+err.Error())
	}

	if handleErr := s.registerHandlingEventHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetLocations handles GET /api/v1/locations - lists the location reference data.
func (s *Server) GetLocations(ctx echo.Context) error {
	query := queries.NewGetAllLocationsQuery()

	locations, err := s.getAllLocationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve locations")
	}

	response := make([]LocationResponse, len(locations))
	for i, location := range locations {
		response[i] = LocationResponse{
			UNLocode: location.UNLocode,
			Name:     location.Name,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// routeCandidateResponse flattens a candidate itinerary for the API.
func routeCandidateResponse(itinerary *cargo.Itinerary) RouteCandidateResponse {
	legs := make([]RouteLegResponse, 0, len(itinerary.Legs()))
	for _, leg := range itinerary.Legs() {
		legs = append(legs, RouteLegResponse{
			VoyageNumber:   leg.Voyage().Number().String(),
			LoadLocation:   leg.LoadLocation().UNLocode().String(),
			UnloadLocation: leg.UnloadLocation().UNLocode().String(),
			LoadTime:       leg.LoadTime(),
			UnloadTime:     leg.UnloadTime(),
		})
	}

	return RouteCandidateResponse{Legs: legs}
}

// domainError maps application errors onto HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	var notFoundErr *errs.ObjectNotFoundError
	if errors.As(err, &notFoundErr) {
		return notFound(ctx, err.Error())
	}

	var invalidErr *errs.ValueIsInvalidError
	if errors.As(err, &invalidErr) {
		return badRequest(ctx, err.Error())
	}

	var requiredErr *errs.ValueIsRequiredError
	if errors.As(err, &requiredErr) {
		return badRequest(ctx, err.Error())
	}

	return internalError(ctx, err.Error())
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
