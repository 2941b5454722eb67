package http

import (
	"time"

	"traveldesk/internal/core/application/usecases/queries"
	"traveldesk/internal/core/domain/model/travelorder"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Request and response contracts of the travel order API. Calendar dates
// travel as "YYYY-MM-DD", timestamps as RFC 3339, statuses as their lowercase
// wire names.

// ErrorResponse is the envelope for every non-2xx response.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateTravelOrderRequest is the body of POST /api/v1/travel-orders.
// The requester is always the authenticated caller; it cannot be supplied.
type CreateTravelOrderRequest struct {
	Destination   string             `json:"destination"`
	DepartureDate openapi_types.Date `json:"departure_date"`
	ReturnDate    openapi_types.Date `json:"return_date"`
}

// UpdateStatusRequest is the body of PATCH /api/v1/travel-orders/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// RequesterResponse identifies the owner of a travel order.
type RequesterResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TravelOrderResponse is the wire representation of a travel order.
type TravelOrderResponse struct {
	ID            string             `json:"id"`
	Requester     RequesterResponse  `json:"requester"`
	Destination   string             `json:"destination"`
	DepartureDate openapi_types.Date `json:"departure_date"`
	ReturnDate    openapi_types.Date `json:"return_date"`
	Status        string             `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// ListMeta carries paging metadata for list responses.
type ListMeta struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
}

// ListTravelOrdersResponse is the envelope of GET /api/v1/travel-orders.
type ListTravelOrdersResponse struct {
	Data []TravelOrderResponse `json:"data"`
	Meta ListMeta              `json:"meta"`
}

// toTravelOrderResponse converts a query read model to its wire form.
func toTravelOrderResponse(r queries.TravelOrderQueryResponse) TravelOrderResponse {
	return TravelOrderResponse{
		ID: r.ID.String(),
		Requester: RequesterResponse{
			ID:   r.Requester.ID.String(),
			Name: r.Requester.Name,
		},
		Destination:   r.Destination,
		DepartureDate: openapi_types.Date{Time: r.DepartureDate},
		ReturnDate:    openapi_types.Date{Time: r.ReturnDate},
		Status:        r.Status.String(),
		CreatedAt:     r.CreatedAt.UTC(),
		UpdatedAt:     r.UpdatedAt.UTC(),
	}
}

// fromAggregate converts a travel order aggregate to its wire form, using the
// given requester name. Command endpoints respond from the aggregate they
// just mutated; the requester name comes from the authenticated caller or the
// read model.
func fromAggregate(order *travelorder.TravelOrder, requesterName string) TravelOrderResponse {
	return TravelOrderResponse{
		ID: order.ID().String(),
		Requester: RequesterResponse{
			ID:   order.RequesterID().String(),
			Name: requesterName,
		},
		Destination:   order.Destination(),
		DepartureDate: openapi_types.Date{Time: order.DepartureDate()},
		ReturnDate:    openapi_types.Date{Time: order.ReturnDate()},
		Status:        order.Status().String(),
		CreatedAt:     order.CreatedAt().UTC(),
		UpdatedAt:     order.UpdatedAt().UTC(),
	}
}
