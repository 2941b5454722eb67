// Package queries contains read-only operations over the travel order store.
// Query handlers read the database directly (CQRS read side) and return
// response records, joining the user read model so every order carries its
// requester's identity and display name.
package queries

import (
	"time"

	"traveldesk/internal/core/domain/model/kernel"
	"traveldesk/internal/core/domain/model/travelorder"
)

// RequesterResponse identifies the user who owns a travel order.
type RequesterResponse struct {
	ID   kernel.UUID
	Name string
}

// TravelOrderQueryResponse is the read model of a single travel order as
// exposed by the query handlers.
type TravelOrderQueryResponse struct {
	ID            kernel.UUID
	Requester     RequesterResponse
	Destination   string
	DepartureDate time.Time
	ReturnDate    time.Time
	Status        travelorder.Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
