package commands

import (
	"context"

	"traveldesk/internal/core/domain/model/notification"
	"traveldesk/internal/core/domain/model/travelorder"
	"traveldesk/internal/core/domain/services"
	"traveldesk/internal/pkg/errs"
)

// UpdateTravelOrderStatusCommandHandler applies an admin decision to a
// travel order.
//
// The read-modify-write runs inside a single transaction with a row-level
// lock on the order, so two concurrent decisions on the same order serialize
// and the loser re-evaluates the business rule against the committed status.
// On success a status-change notification for the order's owner is appended
// to the outbox within the same transaction; delivery happens out-of-band.
type UpdateTravelOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateTravelOrderStatusCommandHandler creates a handler for admin
// status decisions. Requires a UoWFactory spanning orders, users, and the
// notification outbox.
func NewUpdateTravelOrderStatusCommandHandler(uowFactory UoWFactory) UpdateTravelOrderStatusCommandHandler {
	return UpdateTravelOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the decision: authorization first, then the state
// machine, then persistence and the outbox append. Returns the updated
// order.
//
// Error contract:
//   - errs.ErrObjectNotFound when the order does not exist
//   - errs.ErrPermissionDenied when the actor is not an admin or is deciding
//     on their own order
//   - travelorder.ErrAlreadyApproved when cancelling an approved order —
//     reachable only by an authorized admin, and distinct from denial
func (h *UpdateTravelOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateTravelOrderStatusCommand,
) (*travelorder.TravelOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	order, err := uow.TravelOrderRepository().GetForUpdate(ctx, cmd.TravelOrderID())
	if err != nil {
		return nil, err
	}

	if !services.CanTransitionByAdmin(cmd.DecidedBy(), order) {
		return nil, errs.NewPermissionDeniedError("update travel order status")
	}

	if err = order.TransitionTo(cmd.TargetStatus()); err != nil {
		return nil, err
	}

	if err = uow.TravelOrderRepository().Update(ctx, order); err != nil {
		return nil, err
	}

	owner, err := uow.UserRepository().Get(ctx, order.RequesterID())
	if err != nil {
		return nil, err
	}

	if err = uow.NotificationRepository().Add(ctx, notification.NewStatusChanged(order, owner)); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}
