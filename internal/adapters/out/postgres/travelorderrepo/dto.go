// Package travelorderrepo provides data transfer objects and mapping functions
// for travel order persistence. This package implements the repository pattern
// for the travel order aggregate, handling the conversion between domain
// entities and database rows.
package travelorderrepo

import (
	"time"

	"traveldesk/internal/core/domain/model/kernel"
	"traveldesk/internal/core/domain/model/travelorder"

	"github.com/google/uuid"
)

// TravelOrderDTO represents the database structure for persisting travel order
// aggregates. The requester and status columns are indexed since every listing
// is scoped by requester and commonly filtered by status.
type TravelOrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequesterID   uuid.UUID `gorm:"type:uuid;index"`
	Destination   string
	DepartureDate time.Time `gorm:"type:date"`
	ReturnDate    time.Time `gorm:"type:date"`
	Status        int       `gorm:"index"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
}

// TableName specifies the database table name for travel order entities.
// Overrides GORM's default naming convention to use "travel_orders".
func (TravelOrderDTO) TableName() string {
	return "travel_orders"
}

// fromDomain converts a travel order aggregate to its database representation.
func fromDomain(order *travelorder.TravelOrder) TravelOrderDTO {
	return TravelOrderDTO{
		ID:            order.ID().Bytes(),
		RequesterID:   order.RequesterID().Bytes(),
		Destination:   order.Destination(),
		DepartureDate: order.DepartureDate(),
		ReturnDate:    order.ReturnDate(),
		Status:        int(order.Status()),
		CreatedAt:     order.CreatedAt(),
		UpdatedAt:     order.UpdatedAt(),
	}
}

// toDomain converts a database row back to a travel order aggregate using
// RestoreTravelOrder.
func toDomain(dto TravelOrderDTO) (*travelorder.TravelOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	requesterID, err := kernel.UUIDFromBytes(dto.RequesterID[:])
	if err != nil {
		return nil, err
	}

	return travelorder.RestoreTravelOrder(
		id,
		requesterID,
		dto.Destination,
		dto.DepartureDate.UTC(),
		dto.ReturnDate.UTC(),
		travelorder.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
