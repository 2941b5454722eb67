package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control over the repositories involved in a single
// travel order mutation. Client code must explicitly manage the transaction
// lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// TravelOrderRepository returns a TravelOrderRepository bound to the
	// current transaction. Repository will use the transaction started by Begin().
	TravelOrderRepository() TravelOrderRepository

	// UserRepository returns a UserRepository bound to the current transaction.
	UserRepository() UserRepository

	// NotificationRepository returns a NotificationRepository bound to the
	// current transaction, so outbox rows commit atomically with the status
	// change that produced them.
	NotificationRepository() NotificationRepository
}
