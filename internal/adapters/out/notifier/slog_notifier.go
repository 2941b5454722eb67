// Package notifier delivers status-change notifications to requesters.
// The current implementation writes structured log records; swapping in a
// mail or chat sink only requires another ports.StatusNotifier.
package notifier

import (
	"context"
	"log/slog"
	"time"

	"traveldesk/internal/core/domain/model/notification"
)

// SlogStatusNotifier emits each notification as a structured log record.
type SlogStatusNotifier struct {
	logger *slog.Logger
}

// NewSlogStatusNotifier creates a notifier writing to the given logger.
func NewSlogStatusNotifier(logger *slog.Logger) *SlogStatusNotifier {
	return &SlogStatusNotifier{
		logger: logger.With("component", "status_notifier"),
	}
}

// Notify logs the status change addressed to the order's requester.
func (n *SlogStatusNotifier) Notify(ctx context.Context, msg notification.StatusChanged) error {
	n.logger.InfoContext(ctx, "Travel order status changed",
		"notification_id", msg.ID.String(),
		"travel_order_id", msg.TravelOrderID.String(),
		"recipient", msg.RecipientEmail,
		"destination", msg.Destination,
		"departure_date", msg.DepartureDate.Format(time.DateOnly),
		"return_date", msg.ReturnDate.Format(time.DateOnly),
		"status", msg.Status.String(),
	)
	return nil
}
