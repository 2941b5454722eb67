// Package user holds the read model of users owned by the external identity
// provider. The travel order core never registers or authenticates users; it
// only reads this model to attach requester details to responses and to
// resolve notification recipients.
package user

import (
	"errors"

	"traveldesk/internal/core/domain/model/kernel"
	"traveldesk/internal/pkg/errs"
	"traveldesk/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when a User was not created via the
// NewUser constructor.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is the identity provider's user as seen by this service: a stable
// identifier, display name, notification address, and the admin role flag.
// Immutable for this core's purposes.
type User struct {
	id      kernel.UUID
	name    string
	email   string
	isAdmin bool

	guard guard.ConstructorGuard
}

// NewUser creates a User read-model entry.
// The identifier must be valid; name and email must be non-empty.
func NewUser(id kernel.UUID, name string, email string, isAdmin bool) (User, error) {
	u := User{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
	); err != nil {
		return User{}, err
	}

	u.isAdmin = isAdmin
	return u, nil
}

// Validate ensures the User was created through the constructor.
func (u User) Validate() error {
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the user's stable identifier.
func (u User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u User) Name() string {
	return u.name
}

// Email returns the user's notification address.
func (u User) Email() string {
	return u.email
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool {
	return u.isAdmin
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("user name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("user email")
	}
	u.email = email
	return nil
}
