package queries

import (
	"errors"
	"time"

	"traveldesk/internal/core/domain/model/actor"
	"traveldesk/internal/core/domain/model/travelorder"
	"traveldesk/internal/pkg/errs"
	"traveldesk/internal/pkg/guard"
)

// PageSize is the fixed number of travel orders returned per page.
const PageSize = 15

var (
	ErrListTravelOrdersQueryIsNotConstructed = errors.New(
		"ListTravelOrdersQuery must be created via NewListTravelOrdersQuery constructor",
	)
)

// TravelOrderFilters is the optional filter set for listing travel orders.
// All filters are independent and combine conjunctively; a nil field imposes
// no constraint. Range bounds are inclusive; CreatedTo covers the entire
// named day.
type TravelOrderFilters struct {
	Status        *travelorder.Status
	Destination   *string
	DepartureFrom *time.Time
	DepartureTo   *time.Time
	ReturnFrom    *time.Time
	ReturnTo      *time.Time
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
}

// ListTravelOrdersQuery retrieves a page of travel orders visible to the
// viewer: admins see all orders, everyone else only their own. Results are
// ordered by creation time, newest first.
type ListTravelOrdersQuery struct {
	viewer  actor.Actor
	filters TravelOrderFilters
	page    int

	guard guard.ConstructorGuard
}

// NewListTravelOrdersQuery creates a listing query.
// Validates the viewer, the page number (1-based), and the status filter
// when present.
func NewListTravelOrdersQuery(
	viewer actor.Actor,
	filters TravelOrderFilters,
	page int,
) (ListTravelOrdersQuery, error) {
	if err := viewer.Validate(); err != nil {
		return ListTravelOrdersQuery{}, err
	}
	if page < 1 {
		return ListTravelOrdersQuery{}, errs.NewValueIsInvalidError("page")
	}
	if filters.Status != nil {
		if err := filters.Status.Validate(); err != nil {
			return ListTravelOrdersQuery{}, err
		}
	}

	return ListTravelOrdersQuery{
		viewer:  viewer,
		filters: filters,
		page:    page,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListTravelOrdersQueryIsNotConstructed if validation fails.
func (q ListTravelOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListTravelOrdersQueryIsNotConstructed)
}

// Viewer returns the actor listing the orders.
func (q ListTravelOrdersQuery) Viewer() actor.Actor {
	return q.viewer
}

// Filters returns the optional filter set.
func (q ListTravelOrdersQuery) Filters() TravelOrderFilters {
	return q.filters
}

// Page returns the 1-based page number.
func (q ListTravelOrdersQuery) Page() int {
	return q.page
}

// ListTravelOrdersQueryResponse is one page of visible travel orders along
// with paging metadata.
type ListTravelOrdersQueryResponse struct {
	Items   []TravelOrderQueryResponse
	Page    int
	PerPage int
	Total   int64
}
