// Package travelorder provides domain entities and business logic for
// corporate travel request management. It implements the TravelOrder
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - TravelOrder: The aggregate root that manages order identity, trip details, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid identifier, requester, non-empty destination,
//     and a return date no earlier than the departure date
//   - Order status follows a defined workflow: Requested -> Approved | Cancelled
//   - An order that has been approved can never be cancelled (ErrAlreadyApproved)
//   - Cancelled is a terminal state
//   - The requester reference never changes for the lifetime of the order
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package travelorder
