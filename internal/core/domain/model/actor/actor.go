// Package actor models the authenticated caller of every use case.
// An Actor is the verified identity established by the external identity
// provider (bearer token); it is threaded explicitly through policies and
// handlers instead of any ambient current-user lookup.
package actor

import (
	"errors"

	"traveldesk/internal/core/domain/model/kernel"
	"traveldesk/internal/pkg/errs"
	"traveldesk/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not created via the
// NewActor constructor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is a value object describing who is performing an operation:
// a stable user identifier, a display name, and the admin role flag.
// It is immutable; the identity provider owns the underlying user record.
type Actor struct {
	id      kernel.UUID
	name    string
	isAdmin bool

	guard guard.ConstructorGuard
}

// NewActor creates an Actor from verified identity claims.
// The identifier must be valid and the display name non-empty.
func NewActor(id kernel.UUID, name string, isAdmin bool) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if name == "" {
		return Actor{}, errs.NewValueIsRequiredError("actor name")
	}

	return Actor{
		id:      id,
		name:    name,
		isAdmin: isAdmin,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Actor was created through the constructor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's stable user identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Name returns the actor's display name.
func (a Actor) Name() string {
	return a.name
}

// IsAdmin reports whether the actor carries the admin role.
func (a Actor) IsAdmin() bool {
	return a.isAdmin
}
