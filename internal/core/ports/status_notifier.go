package ports

import (
	"context"

	"traveldesk/internal/core/domain/model/notification"
)

// StatusNotifier delivers a status-change notification to its recipient.
// Implementations are a fire-and-forget sink (mail, chat, log); errors are
// reported so the dispatch job can retry, but they never reach the caller of
// the transition that produced the notification.
type StatusNotifier interface {
	Notify(ctx context.Context, n notification.StatusChanged) error
}
