package commands

import (
	"errors"

	"cargotracker/internal/pkg/guard"
)

var ErrInspectCargosCommandIsNotConstructed = errors.New(
	"InspectCargosCommand must be created via NewInspectCargosCommand constructor",
)

// InspectCargosCommand triggers a re-derivation of every unclaimed cargo's
// delivery snapshot from its stored handling history. Derivation is
// idempotent, so the sweep is safe to run at any frequency; it exists to
// catch late-registered events that arrived outside the normal registration
// flow.
//
// Example:
//
//	cmd := NewInspectCargosCommand()
//	handler := NewInspectCargosCommandHandler(uowFactory)
//
//	// Run periodically from a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Cargo inspection failed: %v", err)
//	}
type InspectCargosCommand struct {
	guard guard.ConstructorGuard
}

// NewInspectCargosCommand creates a command to trigger a cargo inspection
// sweep. This is a parameterless command that processes all unclaimed cargos.
func NewInspectCargosCommand() InspectCargosCommand {
	command := InspectCargosCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrInspectCargosCommandIsNotConstructed if validation fails.
func (c *InspectCargosCommand) Validate() error {
	return c.guard.Validate(ErrInspectCargosCommandIsNotConstructed)
}
