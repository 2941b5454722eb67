package travelorder

import (
	"errors"
	"fmt"

	"traveldesk/internal/pkg/errs"
)

// ErrAlreadyApproved is the business-rule violation raised when someone tries
// to cancel a travel order that an administrator has already approved. The
// message is the fixed client-facing text and must not change.
var ErrAlreadyApproved = errors.New("Cannot cancel a travel order that has already been approved.")

// Status represents the lifecycle state of a travel order.
// It implements a state machine with defined transitions so that orders
// follow the approval workflow.
//
// State transitions:
//
//	Requested ──┬──> Approved ──> Approved (idempotent re-approve)
//	            │
//	            └──> Cancelled
//
// Approved can never become Cancelled, and Cancelled is terminal.
// Status is a value object that validates state transitions and provides
// string representations for persistence and the API surface.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Requested is the initial status when a travel order is first created.
	// Orders in this status are waiting for an admin decision and may still
	// be cancelled by their requester.
	Requested

	// Approved indicates an admin approved the travel order.
	// An approved order can never be cancelled.
	Approved

	// Cancelled indicates the travel order was cancelled, either by an admin
	// decision or by the requester before any decision. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Requested: "requested",
		Approved:  "approved",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Requested: "requested",
		Approved:  "approved",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses the wire representation of a status
// ("requested", "approved", "cancelled") into a Status value.
// Returns an error for any other input.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Requested, Approved, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("requested", "approved",
// "cancelled"), or "unknown" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Approve transitions the status to Approved.
//
// Valid transitions:
//   - Requested -> Approved (admin decision)
//   - Approved -> Approved (idempotent re-approve)
//
// Invalid transitions:
//   - Cancelled -> Approved (terminal state)
//   - Unknown -> Approved (invalid initial state)
//
// Returns (Approved, nil) on a valid transition, or (0, error) otherwise.
func (s Status) Approve() (Status, error) {
	if s != Requested && s != Approved {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to approve", s.String()),
		)
	}

	return Approved, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Requested -> Cancelled (admin decision or requester self-cancel)
//
// Invalid transitions:
//   - Approved -> Cancelled (ErrAlreadyApproved — the one hard business rule)
//   - Cancelled -> Cancelled (terminal state)
//   - Unknown -> Cancelled (invalid initial state)
//
// This method is the single place where the cancel-after-approve rule is
// enforced; both the admin transition path and the requester self-cancel
// path go through it.
func (s Status) Cancel() (Status, error) {
	switch s {
	case Requested:
		return Cancelled, nil
	case Approved:
		return 0, ErrAlreadyApproved
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
}

// TransitionTo applies an admin decision towards the target status.
// Only Approved and Cancelled are valid targets; the concrete transition
// rules live in Approve and Cancel.
func (s Status) TransitionTo(target Status) (Status, error) {
	switch target {
	case Approved:
		return s.Approve()
	case Cancelled:
		return s.Cancel()
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid target status", target.String()),
		)
	}
}
