package services

import (
	"traveldesk/internal/core/domain/model/actor"
	"traveldesk/internal/core/domain/model/travelorder"
)

// Authorization policy for travel orders: stateless, side-effect-free
// predicates over (actor, order). These predicates are the sole gate
// consulted before any mutation; a negative result must surface to the
// caller as a permission-denied error, never as a silent no-op.
//
// The admin transition path (CanTransitionByAdmin) and the requester
// self-cancel path (CanCancelByRequester) look similar but enforce different
// guards and are deliberately kept as distinct predicates.

// CanView reports whether the actor may see the travel order.
// Only the requester who owns the order or an admin can view it.
func CanView(a actor.Actor, order *travelorder.TravelOrder) bool {
	return a.ID().IsEqual(order.RequesterID()) || a.IsAdmin()
}

// CanCreate reports whether the actor may create travel orders.
// Any authenticated actor can.
func CanCreate(_ actor.Actor) bool {
	return true
}

// CanTransitionByAdmin reports whether the actor may apply an admin decision
// (approve or cancel) to the travel order. Only admins qualify, and an admin
// may never decide on their own order — the conflict-of-interest rule.
func CanTransitionByAdmin(a actor.Actor, order *travelorder.TravelOrder) bool {
	return a.IsAdmin() && !a.ID().IsEqual(order.RequesterID())
}

// CanCancelByRequester reports whether the actor may self-cancel the travel
// order. Only the owning requester can, and only while the order is still
// awaiting a decision; once approved or already cancelled, self-service
// cancellation is forbidden.
func CanCancelByRequester(a actor.Actor, order *travelorder.TravelOrder) bool {
	return a.ID().IsEqual(order.RequesterID()) && order.Status() == travelorder.Requested
}
