package ports

import (
	"context"

	"traveldesk/internal/core/domain/model/kernel"
	"traveldesk/internal/core/domain/model/travelorder"
)

// TravelOrderRepository defines the persistence contract for travel order
// aggregates.
type TravelOrderRepository interface {
	// Add persists a new travel order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *travelorder.TravelOrder) error

	// Update persists changes to an existing travel order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *travelorder.TravelOrder) error

	// Get retrieves a travel order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*travelorder.TravelOrder, error)

	// GetForUpdate retrieves a travel order by id while holding a row-level
	// write lock for the duration of the surrounding transaction. Status
	// transitions must read through this method so concurrent decisions on
	// the same order serialize and re-evaluate against the committed state.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*travelorder.TravelOrder, error)
}
