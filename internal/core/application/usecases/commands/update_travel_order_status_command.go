package commands

import (
	"errors"
	"fmt"

	"traveldesk/internal/core/domain/model/actor"
	"traveldesk/internal/core/domain/model/kernel"
	"traveldesk/internal/core/domain/model/travelorder"
	"traveldesk/internal/pkg/errs"
	"traveldesk/internal/pkg/guard"
)

var (
	ErrUpdateTravelOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateTravelOrderStatusCommand must be created via NewUpdateTravelOrderStatusCommand constructor",
	)
)

// UpdateTravelOrderStatusCommand represents an admin decision on a travel
// order: approve it or cancel it. Approved and Cancelled are the only valid
// target statuses; anything else is rejected at construction.
type UpdateTravelOrderStatusCommand struct { //nolint:recvcheck //using for validation
	decidedBy     actor.Actor
	travelOrderID kernel.UUID
	targetStatus  travelorder.Status

	guard guard.ConstructorGuard
}

// NewUpdateTravelOrderStatusCommand creates a command carrying an admin
// decision. Validates the deciding actor, the order identifier, and that the
// target status is either Approved or Cancelled.
func NewUpdateTravelOrderStatusCommand(
	decidedBy actor.Actor,
	travelOrderID kernel.UUID,
	targetStatus travelorder.Status,
) (UpdateTravelOrderStatusCommand, error) {
	cmd := UpdateTravelOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDecidedBy(decidedBy),
		cmd.setTravelOrderID(travelOrderID),
		cmd.setTargetStatus(targetStatus),
	); err != nil {
		return UpdateTravelOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateTravelOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateTravelOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTravelOrderStatusCommandIsNotConstructed)
}

// DecidedBy returns the actor applying the decision.
func (c UpdateTravelOrderStatusCommand) DecidedBy() actor.Actor {
	return c.decidedBy
}

// TravelOrderID returns the identifier of the order being decided on.
func (c UpdateTravelOrderStatusCommand) TravelOrderID() kernel.UUID {
	return c.travelOrderID
}

// TargetStatus returns the decided status (Approved or Cancelled).
func (c UpdateTravelOrderStatusCommand) TargetStatus() travelorder.Status {
	return c.targetStatus
}

func (c *UpdateTravelOrderStatusCommand) setDecidedBy(decidedBy actor.Actor) error {
	if err := decidedBy.Validate(); err != nil {
		return err
	}

	c.decidedBy = decidedBy
	return nil
}

func (c *UpdateTravelOrderStatusCommand) setTravelOrderID(travelOrderID kernel.UUID) error {
	if err := travelOrderID.Validate(); err != nil {
		return err
	}

	c.travelOrderID = travelOrderID
	return nil
}

func (c *UpdateTravelOrderStatusCommand) setTargetStatus(targetStatus travelorder.Status) error {
	if targetStatus != travelorder.Approved && targetStatus != travelorder.Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("the status must be either approved or cancelled, got %s", targetStatus.String()),
		)
	}

	c.targetStatus = targetStatus
	return nil
}
