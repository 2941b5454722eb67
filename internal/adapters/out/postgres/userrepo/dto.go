// Package userrepo persists the user read model owned by the external
// identity provider. The service only reads this table to attach requester
// details and resolve notification recipients; Add exists for provisioning
// and tests.
package userrepo

import (
	"traveldesk/internal/core/domain/model/kernel"
	"traveldesk/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure of the user read model.
type UserDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string
	Email   string `gorm:"uniqueIndex"`
	IsAdmin bool
}

// TableName specifies the database table name for user entries.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user read-model entry to its database representation.
func fromDomain(u user.User) UserDTO {
	return UserDTO{
		ID:      u.ID().Bytes(),
		Name:    u.Name(),
		Email:   u.Email(),
		IsAdmin: u.IsAdmin(),
	}
}

// toDomain converts a database row back to a user read-model entry.
func toDomain(dto UserDTO) (user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return user.User{}, err
	}

	return user.NewUser(id, dto.Name, dto.Email, dto.IsAdmin)
}
