package commands

import (
	"errors"
	"time"

	"traveldesk/internal/core/domain/model/actor"
	"traveldesk/internal/pkg/errs"
	"traveldesk/internal/pkg/guard"
)

var (
	ErrCreateTravelOrderCommandIsNotConstructed = errors.New(
		"CreateTravelOrderCommand must be created via NewCreateTravelOrderCommand constructor",
	)
)

// CreateTravelOrderCommand represents a request to submit a new corporate
// trip: who is asking, where to, and the departure/return dates. Full trip
// validation (destination length, date ordering) is owned by the aggregate;
// the command only checks that the pieces are present.
type CreateTravelOrderCommand struct { //nolint:recvcheck //using for validation
	requester     actor.Actor
	destination   string
	departureDate time.Time
	returnDate    time.Time

	guard guard.ConstructorGuard
}

// NewCreateTravelOrderCommand creates a command to submit a new travel order
// on behalf of the requesting actor. Validates that the actor is properly
// constructed, the destination is not empty, and both dates are provided.
func NewCreateTravelOrderCommand(
	requester actor.Actor,
	destination string,
	departureDate time.Time,
	returnDate time.Time,
) (CreateTravelOrderCommand, error) {
	cmd := CreateTravelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequester(requester),
		cmd.setDestination(destination),
		cmd.setTravelDates(departureDate, returnDate),
	); err != nil {
		return CreateTravelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateTravelOrderCommandIsNotConstructed if validation fails.
func (c CreateTravelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateTravelOrderCommandIsNotConstructed)
}

// Requester returns the actor submitting the trip.
func (c CreateTravelOrderCommand) Requester() actor.Actor {
	return c.requester
}

// Destination returns the trip destination.
func (c CreateTravelOrderCommand) Destination() string {
	return c.destination
}

// DepartureDate returns the requested departure date.
func (c CreateTravelOrderCommand) DepartureDate() time.Time {
	return c.departureDate
}

// ReturnDate returns the requested return date.
func (c CreateTravelOrderCommand) ReturnDate() time.Time {
	return c.returnDate
}

func (c *CreateTravelOrderCommand) setRequester(requester actor.Actor) error {
	if err := requester.Validate(); err != nil {
		return err
	}

	c.requester = requester
	return nil
}

func (c *CreateTravelOrderCommand) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}

	c.destination = destination
	return nil
}

func (c *CreateTravelOrderCommand) setTravelDates(departureDate, returnDate time.Time) error {
	if departureDate.IsZero() {
		return errs.NewValueIsRequiredError("departure date")
	}
	if returnDate.IsZero() {
		return errs.NewValueIsRequiredError("return date")
	}

	c.departureDate = departureDate
	c.returnDate = returnDate
	return nil
}
