package routefinder_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cargotracker/internal/adapters/out/routefinder"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type LocationRepositoryMock struct {
	mock.Mock
}

func (m *LocationRepositoryMock) Add(ctx context.Context, location kernel.Location) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *LocationRepositoryMock) Get(ctx context.Context, code kernel.UNLocode) (kernel.Location, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(kernel.Location), args.Error(1)
}

func (m *LocationRepositoryMock) GetAll(ctx context.Context) ([]kernel.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.Location), args.Error(1)
}

type VoyageRepositoryMock struct {
	mock.Mock
}

func (m *VoyageRepositoryMock) Add(ctx context.Context, aggregate *voyage.Voyage) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *VoyageRepositoryMock) Get(ctx context.Context, number voyage.Number) (*voyage.Voyage, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*voyage.Voyage), args.Error(1)
}

func (m *VoyageRepositoryMock) GetAll(ctx context.Context) ([]*voyage.Voyage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*voyage.Voyage), args.Error(1)
}

func createLocation(t *testing.T, code, name string) kernel.Location {
	t.Helper()

	unLocode, err := kernel.NewUNLocode(code)
	require.NoError(t, err)

	location, err := kernel.NewLocation(unLocode, name)
	require.NoError(t, err)
	return location
}

func onDay(day int) time.Time {
	return time.Date(2024, 3, day, 12, 0, 0, 0, time.UTC)
}

func createVoyage(t *testing.T, number string, from, to kernel.Location) *voyage.Voyage {
	t.Helper()

	voyageNumber, err := voyage.NewNumber(number)
	require.NoError(t, err)

	movement, err := voyage.NewCarrierMovement(from, to, onDay(1), onDay(2))
	require.NoError(t, err)

	schedule, err := voyage.NewSchedule([]voyage.CarrierMovement{movement})
	require.NoError(t, err)

	v, err := voyage.NewVoyage(voyageNumber, schedule)
	require.NoError(t, err)
	return v
}

func createRouteSpecification(t *testing.T, origin, destination kernel.Location) cargo.RouteSpecification {
	t.Helper()

	routeSpecification, err := cargo.NewRouteSpecification(origin, destination, onDay(20))
	require.NoError(t, err)
	return routeSpecification
}

func TestNewRandomRouteFinder(t *testing.T) {
	t.Run("should create finder with repositories", func(t *testing.T) {
		finder, err := routefinder.NewRandomRouteFinder(
			new(LocationRepositoryMock), new(VoyageRepositoryMock))

		require.NoError(t, err)
		assert.NotNil(t, finder)
	})

	t.Run("should fail without location repository", func(t *testing.T) {
		_, err := routefinder.NewRandomRouteFinder(nil, new(VoyageRepositoryMock))

		assert.ErrorIs(t, err, routefinder.ErrLocationRepositoryIsRequired)
	})

	t.Run("should fail without voyage repository", func(t *testing.T) {
		_, err := routefinder.NewRandomRouteFinder(new(LocationRepositoryMock), nil)

		assert.ErrorIs(t, err, routefinder.ErrVoyageRepositoryIsRequired)
	})
}

func TestRandomRouteFinderFindRoutes(t *testing.T) {
	stockholm := createLocation(t, "SESTO", "Stockholm")
	hamburg := createLocation(t, "DEHAM", "Hamburg")
	rotterdam := createLocation(t, "NLRTM", "Rotterdam")
	hongkong := createLocation(t, "CNHKG", "Hongkong")

	t.Run("should generate candidates from origin to destination", func(t *testing.T) {
		locations := new(LocationRepositoryMock)
		locations.On("GetAll", mock.Anything).Return(
			[]kernel.Location{stockholm, hamburg, rotterdam, hongkong}, nil)

		voyages := new(VoyageRepositoryMock)
		voyages.On("GetAll", mock.Anything).Return(
			[]*voyage.Voyage{createVoyage(t, "V0100", stockholm, hamburg)}, nil)

		finder, err := routefinder.NewRandomRouteFinder(locations, voyages)
		require.NoError(t, err)

		routeSpecification := createRouteSpecification(t, stockholm, rotterdam)
		candidates, err := finder.FindRoutes(context.Background(), routeSpecification)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(candidates), 3)
		assert.LessOrEqual(t, len(candidates), 5)

		for _, candidate := range candidates {
			require.NoError(t, candidate.Validate())
			assert.True(t, candidate.InitialDepartureLocation().IsEqual(stockholm))
			assert.True(t, candidate.FinalArrivalLocation().IsEqual(rotterdam))
		}
	})

	t.Run("should generate direct legs without intermediate locations", func(t *testing.T) {
		locations := new(LocationRepositoryMock)
		locations.On("GetAll", mock.Anything).Return(
			[]kernel.Location{stockholm, rotterdam}, nil)

		voyages := new(VoyageRepositoryMock)
		voyages.On("GetAll", mock.Anything).Return(
			[]*voyage.Voyage{createVoyage(t, "V0100", stockholm, rotterdam)}, nil)

		finder, err := routefinder.NewRandomRouteFinder(locations, voyages)
		require.NoError(t, err)

		routeSpecification := createRouteSpecification(t, stockholm, rotterdam)
		candidates, err := finder.FindRoutes(context.Background(), routeSpecification)

		require.NoError(t, err)
		require.NotEmpty(t, candidates)
		for _, candidate := range candidates {
			assert.Len(t, candidate.Legs(), 1)
		}
	})

	t.Run("should return no candidates without known voyages", func(t *testing.T) {
		locations := new(LocationRepositoryMock)
		voyages := new(VoyageRepositoryMock)
		voyages.On("GetAll", mock.Anything).Return([]*voyage.Voyage{}, nil)

		finder, err := routefinder.NewRandomRouteFinder(locations, voyages)
		require.NoError(t, err)

		candidates, err := finder.FindRoutes(
			context.Background(), createRouteSpecification(t, stockholm, rotterdam))

		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("should propagate voyage repository errors", func(t *testing.T) {
		repoErr := errors.New("connection lost")

		locations := new(LocationRepositoryMock)
		voyages := new(VoyageRepositoryMock)
		voyages.On("GetAll", mock.Anything).Return(nil, repoErr)

		finder, err := routefinder.NewRandomRouteFinder(locations, voyages)
		require.NoError(t, err)

		_, err = finder.FindRoutes(
			context.Background(), createRouteSpecification(t, stockholm, rotterdam))

		assert.ErrorIs(t, err, repoErr)
	})

	t.Run("should reject unconstructed specification", func(t *testing.T) {
		finder, err := routefinder.NewRandomRouteFinder(
			new(LocationRepositoryMock), new(VoyageRepositoryMock))
		require.NoError(t, err)

		_, err = finder.FindRoutes(context.Background(), cargo.RouteSpecification{})

		assert.Error(t, err)
	})
}
