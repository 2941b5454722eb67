// Package notificationrepo persists the outbox of status-change
// notifications. Rows are written inside the same transaction as the status
// update they describe and drained asynchronously by the dispatch job.
package notificationrepo

import (
	"time"

	"traveldesk/internal/core/domain/model/kernel"
	"traveldesk/internal/core/domain/model/notification"
	"traveldesk/internal/core/domain/model/travelorder"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure of an outbox row.
// SentAt is null while the notification is pending; the partial view of
// pending rows is what the dispatch job polls.
type NotificationDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	TravelOrderID  uuid.UUID `gorm:"type:uuid;index"`
	RecipientID    uuid.UUID `gorm:"type:uuid"`
	RecipientName  string
	RecipientEmail string
	Destination    string
	DepartureDate  time.Time `gorm:"type:date"`
	ReturnDate     time.Time `gorm:"type:date"`
	Status         int
	CreatedAt      time.Time
	SentAt         *time.Time `gorm:"index"`
}

// TableName specifies the database table name for outbox rows.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification to its database representation.
func fromDomain(n notification.StatusChanged) NotificationDTO {
	return NotificationDTO{
		ID:             n.ID.Bytes(),
		TravelOrderID:  n.TravelOrderID.Bytes(),
		RecipientID:    n.RecipientID.Bytes(),
		RecipientName:  n.RecipientName,
		RecipientEmail: n.RecipientEmail,
		Destination:    n.Destination,
		DepartureDate:  n.DepartureDate,
		ReturnDate:     n.ReturnDate,
		Status:         int(n.Status),
		CreatedAt:      n.CreatedAt,
		SentAt:         n.SentAt,
	}
}

// toDomain converts a database row back to a notification.
func toDomain(dto NotificationDTO) (notification.StatusChanged, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return notification.StatusChanged{}, err
	}

	travelOrderID, err := kernel.UUIDFromBytes(dto.TravelOrderID[:])
	if err != nil {
		return notification.StatusChanged{}, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return notification.StatusChanged{}, err
	}

	return notification.StatusChanged{
		ID:             id,
		TravelOrderID:  travelOrderID,
		RecipientID:    recipientID,
		RecipientName:  dto.RecipientName,
		RecipientEmail: dto.RecipientEmail,
		Destination:    dto.Destination,
		DepartureDate:  dto.DepartureDate.UTC(),
		ReturnDate:     dto.ReturnDate.UTC(),
		Status:         travelorder.Status(dto.Status),
		CreatedAt:      dto.CreatedAt,
		SentAt:         dto.SentAt,
	}, nil
}
