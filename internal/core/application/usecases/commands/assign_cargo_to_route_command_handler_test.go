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

func TestAssignCargoToRouteCommandHandler_Handle(t *testing.T) {
	trackingID := createTrackingID(t, "ABC123")
	stockholm := createLocation(t, "SESTO", "Stockholm")
	hamburg := createLocation(t, "DEHAM", "Hamburg")
	melbourne := createLocation(t, "AUMEL", "Melbourne")
	v1 := createVoyage(t, "V0100", stockholm, hamburg)
	v2 := createVoyage(t, "V0200", hamburg, melbourne)

	newUoW := func(cargoRepo *CargoRepoMock, eventRepo *HandlingEventRepoMock,
		voyageRepo *VoyageRepoMock, locationRepo *LocationRepoMock,
	) (*UnitOfWorkMock, *UoWFactoryMock) {
		uow := &UnitOfWorkMock{}
		uow.On("Begin", mock.Anything).Return(nil)
		uow.On("Rollback", mock.Anything).Return(nil)
		uow.On("Commit", mock.Anything).Return(nil)
		uow.On("CargoRepository").Return(cargoRepo)
		uow.On("HandlingEventRepository").Return(eventRepo)
		uow.On("VoyageRepository").Return(voyageRepo)
		uow.On("LocationRepository").Return(locationRepo)

		factory := &UoWFactoryMock{}
		factory.On("Create").Return(uow)
		return uow, factory
	}

	t.Run("should assign the resolved itinerary and route the cargo", func(t *testing.T) {
		tracked := createCargo(t, trackingID, stockholm, melbourne)

		cargoRepo := &CargoRepoMock{}
		cargoRepo.On("Get", mock.Anything, trackingID).Return(tracked, nil)
		cargoRepo.On("Update", mock.Anything, mock.MatchedBy(func(updated *cargo.Cargo) bool {
			return updated.Itinerary() != nil &&
				updated.Delivery().RoutingStatus() == cargo.Routed
		})).Return(nil)

		eventRepo := &HandlingEventRepoMock{}
		eventRepo.On("GetHistory", mock.Anything, trackingID).Return(handling.EmptyHistory(), nil)

		voyageRepo := &VoyageRepoMock{}
		voyageRepo.On("Get", mock.Anything, v1.Number()).Return(v1, nil)
		voyageRepo.On("Get", mock.Anything, v2.Number()).Return(v2, nil)

		locationRepo := &LocationRepoMock{}
		locationRepo.On("Get", mock.Anything, kernel.UNLocode("SESTO")).Return(stockholm, nil)
		locationRepo.On("Get", mock.Anything, kernel.UNLocode("DEHAM")).Return(hamburg, nil)
		locationRepo.On("Get", mock.Anything, kernel.UNLocode("AUMEL")).Return(melbourne, nil)

		uow, factory := newUoW(cargoRepo, eventRepo, voyageRepo, locationRepo)

		handler := commands.NewAssignCargoToRouteCommandHandler(factory)
		cmd, err := commands.NewAssignCargoToRouteCommand(trackingID, []commands.RouteLeg{
			createRouteLeg(t, "V0100", "SESTO", "DEHAM", 1, 3),
			createRouteLeg(t, "V0200", "DEHAM", "AUMEL", 5, 12),
		})
		require.NoError(t, err)

		require.NoError(t, handler.Handle(context.Background(), cmd))

		cargoRepo.AssertExpectations(t)
		uow.AssertCalled(t, "Commit", mock.Anything)
	})

	t.Run("should fail on non-contiguous legs without committing", func(t *testing.T) {
		tracked := createCargo(t, trackingID, stockholm, melbourne)

		cargoRepo := &CargoRepoMock{}
		cargoRepo.On("Get", mock.Anything, trackingID).Return(tracked, nil)

		eventRepo := &HandlingEventRepoMock{}
		eventRepo.On("GetHistory", mock.Anything, trackingID).Return(handling.EmptyHistory(), nil)

		voyageRepo := &VoyageRepoMock{}
		voyageRepo.On("Get", mock.Anything, v1.Number()).Return(v1, nil)
		voyageRepo.On("Get", mock.Anything, v2.Number()).Return(v2, nil)

		locationRepo := &LocationRepoMock{}
		locationRepo.On("Get", mock.Anything, kernel.UNLocode("SESTO")).Return(stockholm, nil)
		locationRepo.On("Get", mock.Anything, kernel.UNLocode("DEHAM")).Return(hamburg, nil)
		locationRepo.On("Get", mock.Anything, kernel.UNLocode("AUMEL")).Return(melbourne, nil)

		uow, factory := newUoW(cargoRepo, eventRepo, voyageRepo, locationRepo)

		handler := commands.NewAssignCargoToRouteCommandHandler(factory)
		cmd, err := commands.NewAssignCargoToRouteCommand(trackingID, []commands.RouteLeg{
			createRouteLeg(t, "V0100", "SESTO", "DEHAM", 1, 3),
			createRouteLeg(t, "V0200", "SESTO", "AUMEL", 5, 12),
		})
		require.NoError(t, err)

		err = handler.Handle(context.Background(), cmd)

		require.Error(t, err)
		assert.Nil(t, tracked.Itinerary())
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}
