package queries

import (
	"errors"

	"traveldesk/internal/core/domain/model/actor"
	"traveldesk/internal/core/domain/model/kernel"
	"traveldesk/internal/pkg/guard"
)

var (
	ErrGetTravelOrderQueryIsNotConstructed = errors.New(
		"GetTravelOrderQuery must be created via NewGetTravelOrderQuery constructor",
	)
)

// GetTravelOrderQuery retrieves a single travel order on behalf of a viewer.
// Visibility follows the authorization policy: the requester sees their own
// orders, admins see everything. An existing but invisible order yields a
// permission error, never a not-found, so ownership is not leaked as 404.
type GetTravelOrderQuery struct {
	viewer        actor.Actor
	travelOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTravelOrderQuery creates a query to fetch one travel order.
// Validates the viewer and the order identifier.
func NewGetTravelOrderQuery(viewer actor.Actor, travelOrderID kernel.UUID) (GetTravelOrderQuery, error) {
	if err := errors.Join(
		viewer.Validate(),
		travelOrderID.Validate(),
	); err != nil {
		return GetTravelOrderQuery{}, err
	}

	return GetTravelOrderQuery{
		viewer:        viewer,
		travelOrderID: travelOrderID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetTravelOrderQueryIsNotConstructed if validation fails.
func (q GetTravelOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetTravelOrderQueryIsNotConstructed)
}

// Viewer returns the actor requesting the order.
func (q GetTravelOrderQuery) Viewer() actor.Actor {
	return q.viewer
}

// TravelOrderID returns the identifier of the requested order.
func (q GetTravelOrderQuery) TravelOrderID() kernel.UUID {
	return q.travelOrderID
}
