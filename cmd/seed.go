package cmd

import (
	"context"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
)

// SeedSampleData loads the sample locations and voyages the booking and
// routing surfaces need to be usable out of the box. Seeding is idempotent:
// an already populated location table leaves the data untouched.
func SeedSampleData(ctx context.Context, app *CompositionRoot) error {
	uow := app.uowFactory.Create()

	existing, err := uow.LocationRepository().GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing locations: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	locations, err := seedLocations(ctx, uow.LocationRepository().Add)
	if err != nil {
		return err
	}

	if err = seedVoyages(ctx, locations, uow.VoyageRepository().Add); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func seedLocations(
	ctx context.Context,
	add func(ctx context.Context, location kernel.Location) error,
) (map[string]kernel.Location, error) {
	samples := map[string]string{
		"SESTO": "Stockholm",
		"DEHAM": "Hamburg",
		"NLRTM": "Rotterdam",
		"FIHEL": "Helsinki",
		"CNHKG": "Hongkong",
		"CNSHA": "Shanghai",
		"JNTKO": "Tokyo",
		"AUMEL": "Melbourne",
		"USCHI": "Chicago",
		"USNYC": "New York",
	}

	locations := make(map[string]kernel.Location, len(samples))
	for code, name := range samples {
		unLocode, err := kernel.NewUNLocode(code)
		if err != nil {
			return nil, err
		}

		location, err := kernel.NewLocation(unLocode, name)
		if err != nil {
			return nil, err
		}

		if err = add(ctx, location); err != nil {
			return nil, fmt.Errorf("failed to seed location %s: %w", code, err)
		}
		locations[code] = location
	}

	return locations, nil
}

func seedVoyages(
	ctx context.Context,
	locations map[string]kernel.Location,
	add func(ctx context.Context, aggregate *voyage.Voyage) error,
) error {
	departure := time.Now().UTC().Truncate(time.Hour).Add(24 * time.Hour)

	samples := []struct {
		number string
		stops  []string
	}{
		{"V0100", []string{"CNHKG", "JNTKO", "USNYC"}},
		{"V0200", []string{"USNYC", "USCHI", "SESTO"}},
		{"V0300", []string{"SESTO", "FIHEL", "DEHAM"}},
		{"V0400", []string{"DEHAM", "NLRTM", "CNSHA"}},
		{"V0500", []string{"CNSHA", "CNHKG", "AUMEL"}},
	}

	for _, sample := range samples {
		sampleVoyage, err := buildVoyage(sample.number, sample.stops, locations, departure)
		if err != nil {
			return err
		}

		if err = add(ctx, sampleVoyage); err != nil {
			return fmt.Errorf("failed to seed voyage %s: %w", sample.number, err)
		}

		departure = departure.Add(48 * time.Hour)
	}

	return nil
}

func buildVoyage(
	number string,
	stops []string,
	locations map[string]kernel.Location,
	departure time.Time,
) (*voyage.Voyage, error) {
	voyageNumber, err := voyage.NewNumber(number)
	if err != nil {
		return nil, err
	}

	movements := make([]voyage.CarrierMovement, 0, len(stops)-1)
	for i := 0; i < len(stops)-1; i++ {
		movement, movementErr := voyage.NewCarrierMovement(
			locations[stops[i]],
			locations[stops[i+1]],
			departure,
			departure.Add(24*time.Hour),
		)
		if movementErr != nil {
			return nil, movementErr
		}
		movements = append(movements, movement)
		departure = departure.Add(36 * time.Hour)
	}

	schedule, err := voyage.NewSchedule(movements)
	if err != nil {
		return nil, err
	}

	return voyage.NewVoyage(voyageNumber, schedule)
}
