// Package notification models the status-change message sent to a travel
// order's requester after an admin decision. Notifications are plain records:
// they are produced inside the transition transaction, persisted to an outbox,
// and delivered out-of-band, so delivery failures never affect committed
// state.
package notification

import (
	"time"

	"traveldesk/internal/core/domain/model/kernel"
	"traveldesk/internal/core/domain/model/travelorder"
	"traveldesk/internal/core/domain/model/user"
)

// StatusChanged tells a requester that an admin decided on their travel
// order. It carries a snapshot of the order at decision time; the recipient
// is always the owning requester.
type StatusChanged struct {
	ID             kernel.UUID
	TravelOrderID  kernel.UUID
	RecipientID    kernel.UUID
	RecipientName  string
	RecipientEmail string
	Destination    string
	DepartureDate  time.Time
	ReturnDate     time.Time
	Status         travelorder.Status
	CreatedAt      time.Time
	SentAt         *time.Time
}

// NewStatusChanged builds the notification for an order's owner after a
// committed status change.
func NewStatusChanged(order *travelorder.TravelOrder, recipient user.User) StatusChanged {
	return StatusChanged{
		ID:             kernel.NewUUID(),
		TravelOrderID:  order.ID(),
		RecipientID:    recipient.ID(),
		RecipientName:  recipient.Name(),
		RecipientEmail: recipient.Email(),
		Destination:    order.Destination(),
		DepartureDate:  order.DepartureDate(),
		ReturnDate:     order.ReturnDate(),
		Status:         order.Status(),
		CreatedAt:      time.Now().UTC(),
	}
}
