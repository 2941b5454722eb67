package jobs

import (
	"context"
	"log/slog"

	"traveldesk/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// dispatchBatchSize bounds how many pending notifications a single tick
// drains from the outbox.
const dispatchBatchSize = 50

// NotificationDispatchJob drains the notification outbox. Runs every second,
// delivering pending status-change notifications and marking them sent.
// Delivery is at-least-once: a notification is only marked sent after the
// notifier accepted it, so a crash between the two replays it on restart.
type NotificationDispatchJob struct {
	notifications ports.NotificationRepository
	notifier      ports.StatusNotifier
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewNotificationDispatchJob creates the outbox dispatch job.
func NewNotificationDispatchJob(
	notifications ports.NotificationRepository,
	notifier ports.StatusNotifier,
	logger *slog.Logger,
) *NotificationDispatchJob {
	return &NotificationDispatchJob{
		notifications: notifications,
		notifier:      notifier,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "notification_dispatch_job"),
	}
}

// Start begins the dispatch job to run every second.
func (j *NotificationDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		j.dispatchPending(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification dispatch job started (running every second)")
	return nil
}

// Stop stops the dispatch job.
func (j *NotificationDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification dispatch job stopped")
}

// dispatchPending delivers one batch of pending notifications, oldest first.
// A delivery failure stops the batch so ordering is preserved on retry.
func (j *NotificationDispatchJob) dispatchPending(ctx context.Context) {
	pending, err := j.notifications.GetUnsent(ctx, dispatchBatchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to load pending notifications", "error", err)
		return
	}

	for _, n := range pending {
		if err := j.notifier.Notify(ctx, n); err != nil {
			j.logger.ErrorContext(ctx, "Failed to deliver notification",
				"notification_id", n.ID.String(), "error", err)
			return
		}

		if err := j.notifications.MarkSent(ctx, n.ID); err != nil {
			j.logger.ErrorContext(ctx, "Failed to mark notification as sent",
				"notification_id", n.ID.String(), "error", err)
			return
		}
	}
}
