package commands

import (
	"context"

	"traveldesk/internal/core/domain/model/travelorder"
	"traveldesk/internal/core/domain/services"
	"traveldesk/internal/pkg/errs"
)

// CancelTravelOrderCommandHandler handles requester self-cancellation.
// The policy only admits the owning requester while the order is still in
// Requested status; any other combination is a permission failure, never a
// silent no-op. Unlike the admin decision path, self-cancel produces no
// notification.
type CancelTravelOrderCommandHandler struct {
	uowFactory TravelOrderUoWFactory
}

// NewCancelTravelOrderCommandHandler creates a handler for requester
// self-cancellation. Requires a TravelOrderUoWFactory for transactional
// persistence.
func NewCancelTravelOrderCommandHandler(uowFactory TravelOrderUoWFactory) CancelTravelOrderCommandHandler {
	return CancelTravelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the self-cancellation within a transaction holding a row
// lock on the order, so a racing admin decision is observed before the
// policy is evaluated. Returns the cancelled order.
func (h *CancelTravelOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CancelTravelOrderCommand,
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

	if !services.CanCancelByRequester(cmd.Requester(), order) {
		return nil, errs.NewPermissionDeniedError("cancel travel order")
	}

	if err = order.Cancel(); err != nil {
		return nil, err
	}

	if err = uow.TravelOrderRepository().Update(ctx, order); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}
