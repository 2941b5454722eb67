package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"traveldesk/internal/core/domain/model/kernel"
	"traveldesk/internal/core/domain/model/travelorder"
	"traveldesk/internal/core/domain/services"
	"traveldesk/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTravelOrderQueryHandler fetches one travel order with its requester
// attached. NotFound and visibility are kept distinct: a missing id is a
// not-found error, an existing order outside the viewer's visibility is a
// permission error.
type GetTravelOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetTravelOrderQueryHandler creates a handler for single order lookups.
// Requires a GORM database connection for query execution.
func NewGetTravelOrderQueryHandler(db *gorm.DB) GetTravelOrderQueryHandler {
	return GetTravelOrderQueryHandler{db: db}
}

// Handle executes the lookup and applies the view policy.
func (h GetTravelOrderQueryHandler) Handle(
	ctx context.Context,
	query GetTravelOrderQuery,
) (TravelOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TravelOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.requester_id,
			u.name,
			o.destination,
			o.departure_date,
			o.return_date,
			o.status,
			o.created_at,
			o.updated_at
		FROM travel_orders o
		JOIN users u ON u.id = o.requester_id
		WHERE o.id = ?
	`, query.TravelOrderID().Bytes()).Row()

	var (
		id            uuid.UUID
		requesterID   uuid.UUID
		requesterName string
		destination   string
		departureDate time.Time
		returnDate    time.Time
		status        int
		createdAt     time.Time
		updatedAt     time.Time
	)

	err := row.Scan(
		&id,
		&requesterID,
		&requesterName,
		&destination,
		&departureDate,
		&returnDate,
		&status,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return TravelOrderQueryResponse{}, errs.NewObjectNotFoundError("travelOrder", query.TravelOrderID().String())
	}
	if err != nil {
		return TravelOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return TravelOrderQueryResponse{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(requesterID[:])
	if err != nil {
		return TravelOrderQueryResponse{}, err
	}

	order, err := travelorder.RestoreTravelOrder(
		orderID, ownerID, destination, departureDate, returnDate,
		travelorder.Status(status), createdAt, updatedAt,
	)
	if err != nil {
		return TravelOrderQueryResponse{}, err
	}

	if !services.CanView(query.Viewer(), order) {
		return TravelOrderQueryResponse{}, errs.NewPermissionDeniedError("view travel order")
	}

	return TravelOrderQueryResponse{
		ID:            orderID,
		Requester:     RequesterResponse{ID: ownerID, Name: requesterName},
		Destination:   destination,
		DepartureDate: departureDate,
		ReturnDate:    returnDate,
		Status:        order.Status(),
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}, nil
}
