package ports

import (
	"context"

	"traveldesk/internal/core/domain/model/kernel"
	"traveldesk/internal/core/domain/model/notification"
)

// NotificationRepository is the outbox for status-change notifications.
// Rows are appended inside the same transaction as the status update and
// drained asynchronously by the dispatch job, giving at-least-once delivery
// decoupled from the caller's response.
type NotificationRepository interface {
	// Add appends a pending notification to the outbox.
	Add(ctx context.Context, n notification.StatusChanged) error

	// GetUnsent returns up to limit pending notifications, oldest first.
	GetUnsent(ctx context.Context, limit int) ([]notification.StatusChanged, error)

	// MarkSent records that a notification has been delivered.
	MarkSent(ctx context.Context, id kernel.UUID) error
}
