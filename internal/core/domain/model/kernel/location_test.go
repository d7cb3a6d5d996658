package kernel_test

import (
	"testing"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUNLocode(t *testing.T) {
	t.Run("should accept valid codes", func(t *testing.T) {
		for _, valid := range []string{"SESTO", "CNSHA", "NLRTM", "US234", "AB2CD"} {
			code, err := kernel.NewUNLocode(valid)

			require.NoError(t, err, valid)
			assert.Equal(t, valid, code.String())
		}
	})

	t.Run("should normalize lowercase input", func(t *testing.T) {
		code, err := kernel.NewUNLocode("sesto")

		require.NoError(t, err)
		assert.Equal(t, "SESTO", code.String())
	})

	t.Run("should reject invalid codes", func(t *testing.T) {
		testCases := []struct {
			name string
			code string
		}{
			{"empty", ""},
			{"too short", "SEST"},
			{"too long", "SESTOS"},
			{"digit in country part", "1ESTO"},
			{"forbidden digit", "SEST0"},
			{"whitespace", "SE TO"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewUNLocode(tc.code)
				require.Error(t, err)
			})
		}
	})

	t.Run("should return typed validation errors", func(t *testing.T) {
		_, err := kernel.NewUNLocode("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = kernel.NewUNLocode("bogus!")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewLocation(t *testing.T) {
	t.Run("should create location with valid parameters", func(t *testing.T) {
		loc, err := kernel.NewLocation("SESTO", "Stockholm")

		require.NoError(t, err)
		require.NoError(t, loc.Validate())
		assert.Equal(t, kernel.UNLocode("SESTO"), loc.UNLocode())
		assert.Equal(t, "Stockholm", loc.Name())
		assert.Equal(t, "Stockholm (SESTO)", loc.String())
	})

	t.Run("should return error for invalid code", func(t *testing.T) {
		_, err := kernel.NewLocation("NOPE", "Nowhere")
		require.Error(t, err)
	})

	t.Run("should return error for empty name", func(t *testing.T) {
		_, err := kernel.NewLocation("SESTO", "  ")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should aggregate errors for multiple invalid parameters", func(t *testing.T) {
		_, err := kernel.NewLocation("", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unLocode")
		assert.Contains(t, err.Error(), "name")
	})
}

func TestLocation_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var loc kernel.Location

		err := loc.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrLocationIsNotConstructed, err)
	})
}

func TestLocation_IsEqual(t *testing.T) {
	t.Run("same code is the same place regardless of name", func(t *testing.T) {
		a, err := kernel.NewLocation("SESTO", "Stockholm")
		require.NoError(t, err)
		b, err := kernel.NewLocation("SESTO", "Sthlm")
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
	})

	t.Run("different codes are different places", func(t *testing.T) {
		a, err := kernel.NewLocation("SESTO", "Stockholm")
		require.NoError(t, err)
		b, err := kernel.NewLocation("DEHAM", "Hamburg")
		require.NoError(t, err)

		assert.False(t, a.IsEqual(b))
	})
}
