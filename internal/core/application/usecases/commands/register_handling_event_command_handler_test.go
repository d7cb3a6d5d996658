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
)

func TestRegisterHandlingEventCommandHandler_Handle(t *testing.T) {
	trackingID := createTrackingID(t, "ABC123")
	stockholm := createLocation(t, "SESTO", "Stockholm")
	melbourne := createLocation(t, "AUMEL", "Melbourne")

	t.Run("should append the event and update the cargo snapshot", func(t *testing.T) {
		tracked := createCargo(t, trackingID, stockholm, melbourne)

		var storedEvent handling.HandlingEvent
		eventRepo := &HandlingEventRepoMock{}
		eventRepo.On("Add", mock.Anything, mock.MatchedBy(func(event handling.HandlingEvent) bool {
			storedEvent = event
			return event.TrackingID().IsEqual(trackingID) &&
				event.Type() == handling.Receive &&
				event.Location().IsEqual(stockholm)
		})).Return(nil)
		eventRepo.On("GetHistory", mock.Anything, trackingID).
			Return(handling.EmptyHistory(), nil)

		cargoRepo := &CargoRepoMock{}
		cargoRepo.On("Get", mock.Anything, trackingID).Return(tracked, nil)
		cargoRepo.On("Update", mock.Anything, tracked).Return(nil)

		locationRepo := &LocationRepoMock{}
		locationRepo.On("Get", mock.Anything, kernel.UNLocode("SESTO")).Return(stockholm, nil)

		uow := &UnitOfWorkMock{}
		uow.On("Begin", mock.Anything).Return(nil)
		uow.On("Rollback", mock.Anything).Return(nil)
		uow.On("Commit", mock.Anything).Return(nil)
		uow.On("CargoRepository").Return(cargoRepo)
		uow.On("HandlingEventRepository").Return(eventRepo)
		uow.On("LocationRepository").Return(locationRepo)

		factory := &UoWFactoryMock{}
		factory.On("Create").Return(uow)

		handler := commands.NewRegisterHandlingEventCommandHandler(factory)
		cmd, err := commands.NewRegisterHandlingEventCommand(
			trackingID, handling.Receive, "SESTO", "", onDay(1))
		require.NoError(t, err)

		require.NoError(t, handler.Handle(context.Background(), cmd))

		eventRepo.AssertExpectations(t)
		cargoRepo.AssertExpectations(t)
		assert.False(t, storedEvent.RegistrationTime().IsZero())
	})

	t.Run("should resolve the voyage for a load event", func(t *testing.T) {
		tracked := createCargo(t, trackingID, stockholm, melbourne)
		v := createVoyage(t, "V0100", stockholm, melbourne)

		eventRepo := &HandlingEventRepoMock{}
		eventRepo.On("Add", mock.Anything, mock.MatchedBy(func(event handling.HandlingEvent) bool {
			return event.Type() == handling.Load && event.Voyage() != nil && event.Voyage().IsEqual(v)
		})).Return(nil)
		eventRepo.On("GetHistory", mock.Anything, trackingID).Return(handling.EmptyHistory(), nil)

		cargoRepo := &CargoRepoMock{}
		cargoRepo.On("Get", mock.Anything, trackingID).Return(tracked, nil)
		cargoRepo.On("Update", mock.Anything, tracked).Return(nil)

		locationRepo := &LocationRepoMock{}
		locationRepo.On("Get", mock.Anything, kernel.UNLocode("SESTO")).Return(stockholm, nil)

		voyageRepo := &VoyageRepoMock{}
		voyageRepo.On("Get", mock.Anything, v.Number()).Return(v, nil)

		uow := &UnitOfWorkMock{}
		uow.On("Begin", mock.Anything).Return(nil)
		uow.On("Rollback", mock.Anything).Return(nil)
		uow.On("Commit", mock.Anything).Return(nil)
		uow.On("CargoRepository").Return(cargoRepo)
		uow.On("HandlingEventRepository").Return(eventRepo)
		uow.On("LocationRepository").Return(locationRepo)
		uow.On("VoyageRepository").Return(voyageRepo)

		factory := &UoWFactoryMock{}
		factory.On("Create").Return(uow)

		handler := commands.NewRegisterHandlingEventCommandHandler(factory)
		cmd, err := commands.NewRegisterHandlingEventCommand(
			trackingID, handling.Load, "SESTO", "V0100", onDay(2))
		require.NoError(t, err)

		require.NoError(t, handler.Handle(context.Background(), cmd))

		voyageRepo.AssertExpectations(t)
		eventRepo.AssertExpectations(t)
	})

	t.Run("should not commit when the cargo is unknown", func(t *testing.T) {
		cargoRepo := &CargoRepoMock{}
		cargoRepo.On("Get", mock.Anything, trackingID).Return(nil, cargo.ErrCargoIsNotConstructed)

		uow := &UnitOfWorkMock{}
		uow.On("Begin", mock.Anything).Return(nil)
		uow.On("Rollback", mock.Anything).Return(nil)
		uow.On("CargoRepository").Return(cargoRepo)

		factory := &UoWFactoryMock{}
		factory.On("Create").Return(uow)

		handler := commands.NewRegisterHandlingEventCommandHandler(factory)
		cmd, err := commands.NewRegisterHandlingEventCommand(
			trackingID, handling.Receive, "SESTO", "", onDay(1))
		require.NoError(t, err)

		require.Error(t, handler.Handle(context.Background(), cmd))
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}
