package travelorder

import (
	"errors"
	"fmt"
	"time"

	"traveldesk/internal/core/domain/model/kernel"
	"traveldesk/internal/pkg/errs"
)

// MaxDestinationLength is the maximum number of characters accepted for a
// travel order destination.
const MaxDestinationLength = 255

var (
	// ErrTravelOrderIsNotConstructed is returned when a TravelOrder instance was not created
	// through the NewTravelOrder factory method. This ensures all orders are properly validated.
	ErrTravelOrderIsNotConstructed = errors.New("TravelOrder must be created via NewTravelOrder constructor")
)

// TravelOrder represents a corporate travel request in the system. It is the
// aggregate root that manages the order lifecycle from the initial request
// through the admin decision.
//
// TravelOrder follows these invariants:
//   - Must have a valid unique identifier and a valid requester identifier
//   - The requester never changes for the lifetime of the order
//   - Destination is non-empty and at most MaxDestinationLength characters
//   - Return date is never before the departure date
//   - Status transitions follow the rules defined by Status
//   - Can only be created through NewTravelOrder (or rehydrated through
//     RestoreTravelOrder)
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. Every status mutation refreshes the
// updatedAt timestamp.
type TravelOrder struct {
	// id is the unique identifier for the travel order
	id kernel.UUID

	// requesterID references the user who requested the trip; immutable
	requesterID kernel.UUID

	// destination is the trip destination
	destination string

	// departureDate and returnDate are calendar dates (UTC midnight)
	departureDate time.Time
	returnDate    time.Time

	// status represents the current state in the order lifecycle
	status Status

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via NewTravelOrder
	isConstructed bool
}

// NewTravelOrder creates a new TravelOrder with validation. This is the only
// way to create a valid order, ensuring all business invariants hold.
//
// The order is created in Requested status on behalf of the requester, with
// createdAt/updatedAt set to the current UTC time. Dates are normalized to
// UTC midnight, since departure and return are calendar dates.
func NewTravelOrder(
	id kernel.UUID,
	requesterID kernel.UUID,
	destination string,
	departureDate time.Time,
	returnDate time.Time,
) (*TravelOrder, error) {
	now := time.Now().UTC()

	order := &TravelOrder{
		status:        Requested,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setRequesterID(requesterID),
		order.setDestination(destination),
		order.setTravelDates(departureDate, returnDate),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreTravelOrder rehydrates a TravelOrder from persistence.
// Identifiers and status are validated; destination and dates are trusted as
// they were validated at creation time and no operation modifies them.
func RestoreTravelOrder(
	id kernel.UUID,
	requesterID kernel.UUID,
	destination string,
	departureDate time.Time,
	returnDate time.Time,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*TravelOrder, error) {
	if err := errors.Join(
		id.Validate(),
		requesterID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &TravelOrder{
		id:            id,
		requesterID:   requesterID,
		destination:   destination,
		departureDate: departureDate,
		returnDate:    returnDate,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the TravelOrder instance was properly constructed through
// NewTravelOrder or RestoreTravelOrder. This prevents bypassing validation by
// directly instantiating the struct.
func (o *TravelOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrTravelOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two travel orders by their unique identifiers.
func (o *TravelOrder) IsEqual(other *TravelOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the travel order's unique identifier.
func (o *TravelOrder) ID() kernel.UUID {
	return o.id
}

// RequesterID returns the identifier of the user who requested the trip.
func (o *TravelOrder) RequesterID() kernel.UUID {
	return o.requesterID
}

// Destination returns the trip destination.
func (o *TravelOrder) Destination() string {
	return o.destination
}

// DepartureDate returns the departure calendar date.
func (o *TravelOrder) DepartureDate() time.Time {
	return o.departureDate
}

// ReturnDate returns the return calendar date.
func (o *TravelOrder) ReturnDate() time.Time {
	return o.returnDate
}

// Status returns the current status of the travel order.
func (o *TravelOrder) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *TravelOrder) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *TravelOrder) UpdatedAt() time.Time {
	return o.updatedAt
}

// TransitionTo applies an admin decision, moving the order towards the target
// status. Only Approved and Cancelled are valid targets. The cancel-after-
// approve rule surfaces as ErrAlreadyApproved from the status machine.
//
// Authorization is not this method's concern: callers must have consulted the
// policy before invoking it.
func (o *TravelOrder) TransitionTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

// Cancel cancels the travel order on the requester self-cancel path.
// It funnels through the same status machine as the admin path, so the
// Approved orders stay uncancellable here as well.
func (o *TravelOrder) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

// setID validates and sets the travel order's unique identifier.
// This is a private method used only during construction.
func (o *TravelOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setRequesterID validates and sets the requester reference.
// This is a private method used only during construction.
func (o *TravelOrder) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return fmt.Errorf("requester: %w", err)
	}
	o.requesterID = requesterID
	return nil
}

// setDestination validates and sets the trip destination.
// This is a private method used only during construction.
func (o *TravelOrder) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	if len([]rune(destination)) > MaxDestinationLength {
		return errs.NewValueIsOutOfRangeError("destination length", len([]rune(destination)), 1, MaxDestinationLength)
	}
	o.destination = destination
	return nil
}

// setTravelDates validates and sets the departure and return dates.
// Dates are normalized to UTC midnight. The return date must not precede the
// departure date. This is a private method used only during construction.
func (o *TravelOrder) setTravelDates(departureDate, returnDate time.Time) error {
	if departureDate.IsZero() {
		return errs.NewValueIsRequiredError("departure date")
	}
	if returnDate.IsZero() {
		return errs.NewValueIsRequiredError("return date")
	}

	departure := toCalendarDate(departureDate)
	ret := toCalendarDate(returnDate)

	if ret.Before(departure) {
		return errs.NewValueIsInvalidErrorWithCause(
			"return date",
			fmt.Errorf("return date %s is before departure date %s",
				ret.Format(time.DateOnly), departure.Format(time.DateOnly)),
		)
	}

	o.departureDate = departure
	o.returnDate = ret
	return nil
}

// toCalendarDate truncates a timestamp to its calendar date at UTC midnight.
func toCalendarDate(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
