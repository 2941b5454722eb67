package notificationrepo

import (
	"context"
	"time"

	"traveldesk/internal/core/domain/model/kernel"
	"traveldesk/internal/core/domain/model/notification"

	"gorm.io/gorm"
)

// GormNotificationRepository implements NotificationRepository using GORM.
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GORM notification repository.
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Add appends a pending notification to the outbox.
func (r *GormNotificationRepository) Add(ctx context.Context, n notification.StatusChanged) error {
	dto := fromDomain(n)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetUnsent returns up to limit pending notifications, oldest first.
func (r *GormNotificationRepository) GetUnsent(
	ctx context.Context,
	limit int,
) ([]notification.StatusChanged, error) {
	var dtos []NotificationDTO
	err := r.db.WithContext(ctx).
		Where("sent_at IS NULL").
		Order("created_at ASC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	notifications := make([]notification.StatusChanged, 0, len(dtos))
	for _, dto := range dtos {
		n, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}

// MarkSent records that a notification has been delivered.
func (r *GormNotificationRepository) MarkSent(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("id = ?", id.Bytes()).
		Update("sent_at", &now)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
