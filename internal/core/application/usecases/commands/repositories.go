// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence.
package commands

import (
	"context"

	"traveldesk/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// TravelOrderRepoFactory provides access to the travel order repository
	// within a transaction.
	TravelOrderRepoFactory interface {
		TravelOrderRepository() ports.TravelOrderRepository
	}

	// UserRepoFactory provides access to the user read model within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// NotificationRepoFactory provides access to the notification outbox
	// within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// TravelOrderUoW manages transactions for order-only operations.
	// Used by commands that touch nothing but the travel order aggregate
	// (creation and requester self-cancel).
	TravelOrderUoW interface {
		TxManager
		TravelOrderRepoFactory
	}

	// TravelOrderUoWFactory creates new order unit of work instances.
	TravelOrderUoWFactory interface {
		Create() TravelOrderUoW
	}

	// UoW manages transactions spanning the travel order, the user read
	// model, and the notification outbox. Used by the admin status
	// transition, which must commit the outbox row atomically with the
	// status change.
	UoW interface {
		TxManager
		TravelOrderRepoFactory
		UserRepoFactory
		NotificationRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-repository
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
