package commands

import (
	"errors"

	"traveldesk/internal/core/domain/model/actor"
	"traveldesk/internal/core/domain/model/kernel"
	"traveldesk/internal/pkg/guard"
)

var (
	ErrCancelTravelOrderCommandIsNotConstructed = errors.New(
		"CancelTravelOrderCommand must be created via NewCancelTravelOrderCommand constructor",
	)
)

// CancelTravelOrderCommand represents a requester's self-cancellation of
// their own travel order before any admin decision. This is deliberately a
// separate command from UpdateTravelOrderStatusCommand: the two paths enforce
// different guards and must not be merged.
type CancelTravelOrderCommand struct { //nolint:recvcheck //using for validation
	requester     actor.Actor
	travelOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelTravelOrderCommand creates a self-cancel command.
// Validates the actor and the order identifier.
func NewCancelTravelOrderCommand(
	requester actor.Actor,
	travelOrderID kernel.UUID,
) (CancelTravelOrderCommand, error) {
	cmd := CancelTravelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequester(requester),
		cmd.setTravelOrderID(travelOrderID),
	); err != nil {
		return CancelTravelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelTravelOrderCommandIsNotConstructed if validation fails.
func (c CancelTravelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelTravelOrderCommandIsNotConstructed)
}

// Requester returns the actor asking to cancel their order.
func (c CancelTravelOrderCommand) Requester() actor.Actor {
	return c.requester
}

// TravelOrderID returns the identifier of the order being cancelled.
func (c CancelTravelOrderCommand) TravelOrderID() kernel.UUID {
	return c.travelOrderID
}

func (c *CancelTravelOrderCommand) setRequester(requester actor.Actor) error {
	if err := requester.Validate(); err != nil {
		return err
	}

	c.requester = requester
	return nil
}

func (c *CancelTravelOrderCommand) setTravelOrderID(travelOrderID kernel.UUID) error {
	if err := travelOrderID.Validate(); err != nil {
		return err
	}

	c.travelOrderID = travelOrderID
	return nil
}
