package cargo_test

import (
	"testing"
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLeg(t *testing.T) {
	stockholm := createLocation(t, "SESTO", "Stockholm")
	hamburg := createLocation(t, "DEHAM", "Hamburg")
	v := createVoyage(t, "V0100", stockholm, hamburg)

	t.Run("should create leg with all arguments", func(t *testing.T) {
		leg, err := cargo.NewLeg(v, stockholm, hamburg, onDay(1), onDay(3))

		require.NoError(t, err)
		require.NoError(t, leg.Validate())
		assert.True(t, leg.Voyage().IsEqual(v))
		assert.True(t, leg.LoadLocation().IsEqual(stockholm))
		assert.True(t, leg.UnloadLocation().IsEqual(hamburg))
	})

	t.Run("should reject missing voyage", func(t *testing.T) {
		_, err := cargo.NewLeg(nil, stockholm, hamburg, onDay(1), onDay(3))
		require.Error(t, err)
	})

	t.Run("should reject identical load and unload locations", func(t *testing.T) {
		_, err := cargo.NewLeg(v, stockholm, stockholm, onDay(1), onDay(3))
		require.Error(t, err)
	})

	t.Run("should reject zero times", func(t *testing.T) {
		_, err := cargo.NewLeg(v, stockholm, hamburg, onDay(1), time.Time{})
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var leg cargo.Leg
		require.Error(t, leg.Validate())
	})
}

func TestNewItinerary(t *testing.T) {
	stockholm := createLocation(t, "SESTO", "Stockholm")
	hamburg := createLocation(t, "DEHAM", "Hamburg")
	melbourne := createLocation(t, "AUMEL", "Melbourne")
	v1 := createVoyage(t, "V0100", stockholm, hamburg)
	v2 := createVoyage(t, "V0200", hamburg, melbourne)

	t.Run("should create itinerary from contiguous legs", func(t *testing.T) {
		itinerary, err := cargo.NewItinerary([]cargo.Leg{
			createLeg(t, v1, stockholm, hamburg, 1, 3),
			createLeg(t, v2, hamburg, melbourne, 5, 12),
		})

		require.NoError(t, err)
		require.NoError(t, itinerary.Validate())
		assert.True(t, itinerary.InitialDepartureLocation().IsEqual(stockholm))
		assert.True(t, itinerary.FinalArrivalLocation().IsEqual(melbourne))
		assert.True(t, itinerary.FinalArrivalTime().Equal(onDay(12)))
		assert.Len(t, itinerary.Legs(), 2)
	})

	t.Run("should reject empty leg list", func(t *testing.T) {
		_, err := cargo.NewItinerary(nil)
		require.Error(t, err)
	})

	t.Run("should reject non-contiguous legs", func(t *testing.T) {
		_, err := cargo.NewItinerary([]cargo.Leg{
			createLeg(t, v1, stockholm, hamburg, 1, 3),
			createLeg(t, v2, stockholm, melbourne, 5, 12),
		})

		require.Error(t, err)
	})

	t.Run("should reject unconstructed legs", func(t *testing.T) {
		var leg cargo.Leg

		_, err := cargo.NewItinerary([]cargo.Leg{leg})
		require.Error(t, err)
	})

	t.Run("nil itinerary fails validation", func(t *testing.T) {
		var itinerary *cargo.Itinerary
		require.Error(t, itinerary.Validate())
	})
}

func TestItinerary_IsExpected(t *testing.T) {
	trackingID := createTrackingID(t, "ABC123")
	shanghai := createLocation(t, "CNSHA", "Shanghai")
	rotterdam := createLocation(t, "NLRTM", "Rotterdam")
	gothenburg := createLocation(t, "SEGOT", "Gothenburg")
	hangzhou := createLocation(t, "CNHGH", "Hangzhou")
	v1 := createVoyage(t, "V0100", shanghai, rotterdam)
	v2 := createVoyage(t, "V0200", rotterdam, gothenburg)
	offPlanVoyage := createVoyage(t, "V0666", hangzhou, gothenburg)

	itinerary := createItinerary(t,
		createLeg(t, v1, shanghai, rotterdam, 1, 5),
		createLeg(t, v2, rotterdam, gothenburg, 7, 12),
	)

	t.Run("receive is expected only at the initial departure location", func(t *testing.T) {
		assert.True(t, itinerary.IsExpected(
			createEvent(t, trackingID, handling.Receive, shanghai, nil, onDay(1)), nil))
		assert.False(t, itinerary.IsExpected(
			createEvent(t, trackingID, handling.Receive, hangzhou, nil, onDay(1)), nil))
		assert.False(t, itinerary.IsExpected(
			createEvent(t, trackingID, handling.Receive, rotterdam, nil, onDay(1)), nil))
	})

	t.Run("load must match both a leg's load location and its voyage", func(t *testing.T) {
		assert.True(t, itinerary.IsExpected(
			createEvent(t, trackingID, handling.Load, shanghai, v1, onDay(1)), nil))
		assert.True(t, itinerary.IsExpected(
			createEvent(t, trackingID, handling.Load, rotterdam, v2, onDay(7)), nil))

		// Right location, wrong voyage.
		assert.False(t, itinerary.IsExpected(
			createEvent(t, trackingID, handling.Load, shanghai, v2, onDay(1)), nil))
		// Right voyage, wrong location.
		assert.False(t, itinerary.IsExpected(
			createEvent(t, trackingID, handling.Load, gothenburg, offPlanVoyage, onDay(1)), nil))
	})

	t.Run("unload must match both a leg's unload location and its voyage", func(t *testing.T) {
		assert.True(t, itinerary.IsExpected(
			createEvent(t, trackingID, handling.Unload, rotterdam, v1, onDay(5)), nil))
		assert.True(t, itinerary.IsExpected(
			createEvent(t, trackingID, handling.Unload, gothenburg, v2, onDay(12)), nil))

		assert.False(t, itinerary.IsExpected(
			createEvent(t, trackingID, handling.Unload, rotterdam, v2, onDay(5)), nil))
		assert.False(t, itinerary.IsExpected(
			createEvent(t, trackingID, handling.Unload, gothenburg, offPlanVoyage, onDay(12)), nil))
	})

	t.Run("claim is expected only at the final arrival location", func(t *testing.T) {
		assert.True(t, itinerary.IsExpected(
			createEvent(t, trackingID, handling.Claim, gothenburg, nil, onDay(13)), nil))
		assert.False(t, itinerary.IsExpected(
			createEvent(t, trackingID, handling.Claim, rotterdam, nil, onDay(13)), nil))
	})

	t.Run("customs is expected only at locations traversed by completed legs", func(t *testing.T) {
		firstLegDone := []handling.HandlingEvent{
			createEvent(t, trackingID, handling.Receive, shanghai, nil, onDay(1)),
			createEvent(t, trackingID, handling.Load, shanghai, v1, onDay(1)),
			createEvent(t, trackingID, handling.Unload, rotterdam, v1, onDay(5)),
		}

		// Nothing traversed yet: no location clears customs, not even on-plan ones.
		assert.False(t, itinerary.IsExpected(
			createEvent(t, trackingID, handling.Customs, shanghai, nil, onDay(1)), nil))
		assert.False(t, itinerary.IsExpected(
			createEvent(t, trackingID, handling.Customs, gothenburg, nil, onDay(1)), nil))

		// First leg completed: both its endpoints have been traversed.
		assert.True(t, itinerary.IsExpected(
			createEvent(t, trackingID, handling.Customs, shanghai, nil, onDay(6)), firstLegDone))
		assert.True(t, itinerary.IsExpected(
			createEvent(t, trackingID, handling.Customs, rotterdam, nil, onDay(6)), firstLegDone))

		// The second leg is still ahead, so its unload location is off limits.
		assert.False(t, itinerary.IsExpected(
			createEvent(t, trackingID, handling.Customs, gothenburg, nil, onDay(6)), firstLegDone))
		assert.False(t, itinerary.IsExpected(
			createEvent(t, trackingID, handling.Customs, hangzhou, nil, onDay(6)), firstLegDone))

		secondLegDone := append(firstLegDone,
			createEvent(t, trackingID, handling.Load, rotterdam, v2, onDay(7)),
			createEvent(t, trackingID, handling.Unload, gothenburg, v2, onDay(12)))
		assert.True(t, itinerary.IsExpected(
			createEvent(t, trackingID, handling.Customs, gothenburg, nil, onDay(13)), secondLegDone))
	})
}

func TestItinerary_IsEqual(t *testing.T) {
	stockholm := createLocation(t, "SESTO", "Stockholm")
	hamburg := createLocation(t, "DEHAM", "Hamburg")
	melbourne := createLocation(t, "AUMEL", "Melbourne")
	v1 := createVoyage(t, "V0100", stockholm, hamburg)
	v2 := createVoyage(t, "V0200", hamburg, melbourne)

	full := createItinerary(t,
		createLeg(t, v1, stockholm, hamburg, 1, 3),
		createLeg(t, v2, hamburg, melbourne, 5, 12),
	)
	sameLegs := createItinerary(t,
		createLeg(t, v1, stockholm, hamburg, 1, 3),
		createLeg(t, v2, hamburg, melbourne, 5, 12),
	)
	shorter := createItinerary(t, createLeg(t, v1, stockholm, hamburg, 1, 3))

	assert.True(t, full.IsEqual(sameLegs))
	assert.False(t, full.IsEqual(shorter))
	assert.False(t, full.IsEqual(nil))
}
