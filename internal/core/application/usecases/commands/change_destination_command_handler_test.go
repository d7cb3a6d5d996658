package commands_test

import (
	"context"
	"testing"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cargotracker/internal/pkg/errs"
)

func TestChangeDestinationCommandHandler_Handle(t *testing.T) {
	trackingID := createTrackingID(t, "ABC123")
	stockholm := createLocation(t, "SESTO", "Stockholm")
	melbourne := createLocation(t, "AUMEL", "Melbourne")
	helsinki := createLocation(t, "FIHEL", "Helsinki")

	newUoW := func(cargoRepo *CargoRepoMock, eventRepo *HandlingEventRepoMock,
		locationRepo *LocationRepoMock,
	) (*UnitOfWorkMock, *UoWFactoryMock) {
		uow := &UnitOfWorkMock{}
		uow.On("Begin", mock.Anything).Return(nil)
		uow.On("Rollback", mock.Anything).Return(nil)
		uow.On("Commit", mock.Anything).Return(nil)
		uow.On("CargoRepository").Return(cargoRepo)
		uow.On("HandlingEventRepository").Return(eventRepo)
		uow.On("LocationRepository").Return(locationRepo)

		factory := &UoWFactoryMock{}
		factory.On("Create").Return(uow)
		return uow, factory
	}

	t.Run("should replace destination keeping origin and deadline", func(t *testing.T) {
		tracked := createCargo(t, trackingID, stockholm, melbourne)
		originalDeadline := tracked.RouteSpecification().ArrivalDeadline()

		cargoRepo := &CargoRepoMock{}
		cargoRepo.On("Get", mock.Anything, trackingID).Return(tracked, nil)
		cargoRepo.On("Update", mock.Anything, mock.MatchedBy(func(updated *cargo.Cargo) bool {
			spec := updated.RouteSpecification()
			return spec.Origin().IsEqual(stockholm) &&
				spec.Destination().IsEqual(helsinki) &&
				spec.ArrivalDeadline().Equal(originalDeadline)
		})).Return(nil)

		eventRepo := &HandlingEventRepoMock{}
		eventRepo.On("GetHistory", mock.Anything, trackingID).Return(handling.EmptyHistory(), nil)

		locationRepo := &LocationRepoMock{}
		locationRepo.On("Get", mock.Anything, kernel.UNLocode("FIHEL")).Return(helsinki, nil)

		uow, factory := newUoW(cargoRepo, eventRepo, locationRepo)

		handler := commands.NewChangeDestinationCommandHandler(factory)
		cmd, err := commands.NewChangeDestinationCommand(trackingID, "FIHEL")
		require.NoError(t, err)

		require.NoError(t, handler.Handle(context.Background(), cmd))

		cargoRepo.AssertExpectations(t)
		uow.AssertCalled(t, "Commit", mock.Anything)
	})

	t.Run("should fail for unknown destination without committing", func(t *testing.T) {
		tracked := createCargo(t, trackingID, stockholm, melbourne)
		notFound := errs.NewObjectNotFoundError("location", "FIHEL")

		cargoRepo := &CargoRepoMock{}
		cargoRepo.On("Get", mock.Anything, trackingID).Return(tracked, nil)

		eventRepo := &HandlingEventRepoMock{}
		eventRepo.On("GetHistory", mock.Anything, trackingID).Return(handling.EmptyHistory(), nil)

		locationRepo := &LocationRepoMock{}
		locationRepo.On("Get", mock.Anything, kernel.UNLocode("FIHEL")).
			Return(kernel.Location{}, notFound)

		uow, factory := newUoW(cargoRepo, eventRepo, locationRepo)

		handler := commands.NewChangeDestinationCommandHandler(factory)
		cmd, err := commands.NewChangeDestinationCommand(trackingID, "FIHEL")
		require.NoError(t, err)

		assert.ErrorIs(t, handler.Handle(context.Background(), cmd), notFound)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
		cargoRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should reject zero value command", func(t *testing.T) {
		factory := &UoWFactoryMock{}
		handler := commands.NewChangeDestinationCommandHandler(factory)

		var cmd commands.ChangeDestinationCommand
		assert.ErrorIs(t, handler.Handle(context.Background(), cmd),
			commands.ErrChangeDestinationCommandIsNotConstructed)
	})
}
