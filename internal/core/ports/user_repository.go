package ports

import (
	"context"

	"traveldesk/internal/core/domain/model/kernel"
	"traveldesk/internal/core/domain/model/user"
)

// UserRepository reads the user model owned by the external identity
// provider. The travel order core only consumes it: to attach requester
// details to responses and to resolve notification recipients.
// Add exists for provisioning and tests; registration itself is outside this
// service.
type UserRepository interface {
	// Add stores a user read-model entry.
	Add(ctx context.Context, u user.User) error

	// Get retrieves a user by their stable identifier.
	Get(ctx context.Context, id kernel.UUID) (user.User, error)
}
