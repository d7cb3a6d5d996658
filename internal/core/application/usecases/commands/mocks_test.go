package commands_test

import (
	"context"
	"testing"
	"time"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type CargoRepoMock struct{ mock.Mock }

func (m *CargoRepoMock) Add(ctx context.Context, aggregate *cargo.Cargo) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *CargoRepoMock) Update(ctx context.Context, aggregate *cargo.Cargo) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *CargoRepoMock) Get(ctx context.Context, trackingID kernel.TrackingID) (*cargo.Cargo, error) {
	args := m.Called(ctx, trackingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cargo.Cargo), args.Error(1)
}

func (m *CargoRepoMock) GetAllUnclaimed(ctx context.Context) ([]*cargo.Cargo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cargo.Cargo), args.Error(1)
}

type HandlingEventRepoMock struct{ mock.Mock }

func (m *HandlingEventRepoMock) Add(ctx context.Context, event handling.HandlingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *HandlingEventRepoMock) GetHistory(
	ctx context.Context,
	trackingID kernel.TrackingID,
) (handling.History, error) {
	args := m.Called(ctx, trackingID)
	return args.Get(0).(handling.History), args.Error(1)
}

type VoyageRepoMock struct{ mock.Mock }

func (m *VoyageRepoMock) Add(ctx context.Context, aggregate *voyage.Voyage) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *VoyageRepoMock) Get(ctx context.Context, number voyage.Number) (*voyage.Voyage, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*voyage.Voyage), args.Error(1)
}

func (m *VoyageRepoMock) GetAll(ctx context.Context) ([]*voyage.Voyage, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*voyage.Voyage), args.Error(1)
}

type LocationRepoMock struct{ mock.Mock }

func (m *LocationRepoMock) Add(ctx context.Context, location kernel.Location) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *LocationRepoMock) Get(ctx context.Context, code kernel.UNLocode) (kernel.Location, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(kernel.Location), args.Error(1)
}

func (m *LocationRepoMock) GetAll(ctx context.Context) ([]kernel.Location, error) {
	args := m.Called(ctx)
	return args.Get(0).([]kernel.Location), args.Error(1)
}

type UnitOfWorkMock struct{ mock.Mock }

func (m *UnitOfWorkMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *UnitOfWorkMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *UnitOfWorkMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *UnitOfWorkMock) CargoRepository() ports.CargoRepository {
	args := m.Called()
	return args.Get(0).(ports.CargoRepository)
}

func (m *UnitOfWorkMock) HandlingEventRepository() ports.HandlingEventRepository {
	args := m.Called()
	return args.Get(0).(ports.HandlingEventRepository)
}

func (m *UnitOfWorkMock) VoyageRepository() ports.VoyageRepository {
	args := m.Called()
	return args.Get(0).(ports.VoyageRepository)
}

func (m *UnitOfWorkMock) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}

type BookingUoWFactoryMock struct{ mock.Mock }

func (m *BookingUoWFactoryMock) Create() commands.BookingUoW {
	args := m.Called()
	return args.Get(0).(commands.BookingUoW)
}

type CargoHistoryUoWFactoryMock struct{ mock.Mock }

func (m *CargoHistoryUoWFactoryMock) Create() commands.CargoHistoryUoW {
	args := m.Called()
	return args.Get(0).(commands.CargoHistoryUoW)
}

type UoWFactoryMock struct{ mock.Mock }

func (m *UoWFactoryMock) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// Test helper functions.
func createLocation(t *testing.T, code kernel.UNLocode, name string) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(code, name)
	require.NoError(t, err)
	return loc
}

func createTrackingID(t *testing.T, id string) kernel.TrackingID {
	t.Helper()
	trackingID, err := kernel.NewTrackingID(id)
	require.NoError(t, err)
	return trackingID
}

func onDay(day int) time.Time {
	return time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC)
}

func createVoyage(t *testing.T, number string, stops ...kernel.Location) *voyage.Voyage {
	t.Helper()
	require.GreaterOrEqual(t, len(stops), 2)

	departure := onDay(1)
	movements := make([]voyage.CarrierMovement, 0, len(stops)-1)
	for i := 0; i < len(stops)-1; i++ {
		m, err := voyage.NewCarrierMovement(stops[i], stops[i+1], departure, departure.Add(24*time.Hour))
		require.NoError(t, err)
		movements = append(movements, m)
		departure = departure.Add(48 * time.Hour)
	}

	n, err := voyage.NewNumber(number)
	require.NoError(t, err)
	schedule, err := voyage.NewSchedule(movements)
	require.NoError(t, err)
	v, err := voyage.NewVoyage(n, schedule)
	require.NoError(t, err)
	return v
}

func createCargo(t *testing.T, trackingID kernel.TrackingID, origin, destination kernel.Location) *cargo.Cargo {
	t.Helper()
	spec, err := cargo.NewRouteSpecification(origin, destination, onDay(20))
	require.NoError(t, err)
	tracked, err := cargo.NewCargo(trackingID, spec)
	require.NoError(t, err)
	return tracked
}
