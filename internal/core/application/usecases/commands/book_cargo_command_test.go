package commands_test

import (
	"testing"
	"time"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookCargoCommand(t *testing.T) {
	trackingID := createTrackingID(t, "ABC123")

	t.Run("should create command with valid arguments", func(t *testing.T) {
		cmd, err := commands.NewBookCargoCommand(trackingID, "SESTO", "AUMEL", onDay(20))

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.TrackingID().IsEqual(trackingID))
		assert.Equal(t, kernel.UNLocode("SESTO"), cmd.Origin())
		assert.Equal(t, kernel.UNLocode("AUMEL"), cmd.Destination())
		assert.True(t, cmd.ArrivalDeadline().Equal(onDay(20)))
	})

	t.Run("should reject malformed location codes", func(t *testing.T) {
		_, err := commands.NewBookCargoCommand(trackingID, "X", "AUMEL", onDay(20))
		require.Error(t, err)

		_, err = commands.NewBookCargoCommand(trackingID, "SESTO", "", onDay(20))
		require.Error(t, err)
	})

	t.Run("should reject identical origin and destination", func(t *testing.T) {
		_, err := commands.NewBookCargoCommand(trackingID, "SESTO", "SESTO", onDay(20))
		require.ErrorIs(t, err, commands.ErrSameOriginAndDestination)
	})

	t.Run("should reject missing deadline", func(t *testing.T) {
		_, err := commands.NewBookCargoCommand(trackingID, "SESTO", "AUMEL", time.Time{})
		require.Error(t, err)
	})

	t.Run("should reject missing tracking id", func(t *testing.T) {
		var missing kernel.TrackingID

		_, err := commands.NewBookCargoCommand(missing, "SESTO", "AUMEL", onDay(20))
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.BookCargoCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrBookCargoCommandIsNotConstructed)
	})
}
