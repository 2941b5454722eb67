package queries

import (
	"context"
	"time"

	"traveldesk/internal/core/domain/model/actor"
	"traveldesk/internal/core/domain/model/kernel"
	"traveldesk/internal/core/domain/model/travelorder"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListTravelOrdersQueryHandler retrieves pages of travel orders from the
// database, restricted to the viewer's visibility and narrowed by the
// optional filter set. Filters combine as AND predicates; the destination
// filter is a case-sensitive substring match.
type ListTravelOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListTravelOrdersQueryHandler creates a handler for travel order listing.
// Requires a GORM database connection for query execution.
func NewListTravelOrdersQueryHandler(db *gorm.DB) ListTravelOrdersQueryHandler {
	return ListTravelOrdersQueryHandler{db: db}
}

// Handle executes the listing query.
// Returns the requested page ordered by creation time descending, along with
// the total number of matching orders.
func (h ListTravelOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListTravelOrdersQuery,
) (ListTravelOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListTravelOrdersQueryResponse{}, err
	}

	build := func() *gorm.DB {
		tx := h.db.WithContext(ctx).
			Table("travel_orders o").
			Joins("JOIN users u ON u.id = o.requester_id")
		tx = applyVisibility(tx, query.Viewer())
		return applyFilters(tx, query.Filters())
	}

	var total int64
	if err := build().Count(&total).Error; err != nil {
		return ListTravelOrdersQueryResponse{}, err
	}

	rows, err := build().
		Select(`o.id, o.requester_id, u.name, o.destination, o.departure_date,
			o.return_date, o.status, o.created_at, o.updated_at`).
		Order("o.created_at DESC").
		Offset((query.Page() - 1) * PageSize).
		Limit(PageSize).
		Rows()
	if err != nil {
		return ListTravelOrdersQueryResponse{}, err
	}
	defer rows.Close()

	items := make([]TravelOrderQueryResponse, 0)

	for rows.Next() {
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

		if err = rows.Scan(
			&id,
			&requesterID,
			&requesterName,
			&destination,
			&departureDate,
			&returnDate,
			&status,
			&createdAt,
			&updatedAt,
		); err != nil {
			return ListTravelOrdersQueryResponse{}, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListTravelOrdersQueryResponse{}, idErr
		}
		ownerID, idErr := kernel.UUIDFromBytes(requesterID[:])
		if idErr != nil {
			return ListTravelOrdersQueryResponse{}, idErr
		}

		items = append(items, TravelOrderQueryResponse{
			ID:            orderID,
			Requester:     RequesterResponse{ID: ownerID, Name: requesterName},
			Destination:   destination,
			DepartureDate: departureDate,
			ReturnDate:    returnDate,
			Status:        travelorder.Status(status),
			CreatedAt:     createdAt,
			UpdatedAt:     updatedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return ListTravelOrdersQueryResponse{}, err
	}

	return ListTravelOrdersQueryResponse{
		Items:   items,
		Page:    query.Page(),
		PerPage: PageSize,
		Total:   total,
	}, nil
}

// applyVisibility restricts the base set to the viewer's orders unless the
// viewer is an admin.
func applyVisibility(tx *gorm.DB, viewer actor.Actor) *gorm.DB {
	if viewer.IsAdmin() {
		return tx
	}
	return tx.Where("o.requester_id = ?", viewer.ID().Bytes())
}

// applyFilters adds the optional filter predicates. Absent filters impose no
// constraint. All range bounds are inclusive; CreatedTo is widened to the end
// of its day.
func applyFilters(tx *gorm.DB, f TravelOrderFilters) *gorm.DB {
	if f.Status != nil {
		tx = tx.Where("o.status = ?", int(*f.Status))
	}
	if f.Destination != nil {
		tx = tx.Where("o.destination LIKE ?", "%"+*f.Destination+"%")
	}
	if f.DepartureFrom != nil {
		tx = tx.Where("o.departure_date >= ?", *f.DepartureFrom)
	}
	if f.DepartureTo != nil {
		tx = tx.Where("o.departure_date <= ?", *f.DepartureTo)
	}
	if f.ReturnFrom != nil {
		tx = tx.Where("o.return_date >= ?", *f.ReturnFrom)
	}
	if f.ReturnTo != nil {
		tx = tx.Where("o.return_date <= ?", *f.ReturnTo)
	}
	if f.CreatedFrom != nil {
		tx = tx.Where("o.created_at >= ?", *f.CreatedFrom)
	}
	if f.CreatedTo != nil {
		tx = tx.Where("o.created_at < ?", startOfNextDay(*f.CreatedTo))
	}
	return tx
}

// startOfNextDay returns UTC midnight of the day after t.
func startOfNextDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day+1, 0, 0, 0, 0, time.UTC)
}
