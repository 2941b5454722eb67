package userrepo

import (
	"context"
	"errors"

	"traveldesk/internal/core/domain/model/kernel"
	"traveldesk/internal/core/domain/model/user"
	"traveldesk/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add stores a user read-model entry.
func (r *GormUserRepository) Add(ctx context.Context, u user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	dto := fromDomain(u)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a user by their stable identifier.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (user.User, error) {
	if err := id.Validate(); err != nil {
		return user.User{}, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, errs.NewObjectNotFoundError("user", id.String())
		}
		return user.User{}, err
	}

	return toDomain(dto)
}
