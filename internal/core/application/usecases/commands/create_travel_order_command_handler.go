package commands

import (
	"context"

	"traveldesk/internal/core/domain/model/kernel"
	"traveldesk/internal/core/domain/model/travelorder"
	"traveldesk/internal/core/domain/services"
	"traveldesk/internal/pkg/errs"
)

// CreateTravelOrderCommandHandler handles the business logic for submitting
// travel orders. New orders always start in Requested status, owned by the
// requesting actor.
type CreateTravelOrderCommandHandler struct {
	uowFactory TravelOrderUoWFactory
}

// NewCreateTravelOrderCommandHandler creates a handler for travel order
// submission. Requires a TravelOrderUoWFactory for transactional persistence.
func NewCreateTravelOrderCommandHandler(uowFactory TravelOrderUoWFactory) CreateTravelOrderCommandHandler {
	return CreateTravelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the travel order submission.
// Consults the authorization policy, constructs the aggregate with a fresh
// identifier, and persists it within a transaction. Returns the created
// order.
func (h *CreateTravelOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateTravelOrderCommand,
) (*travelorder.TravelOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !services.CanCreate(cmd.Requester()) {
		return nil, errs.NewPermissionDeniedError("create travel order")
	}

	order, err := travelorder.NewTravelOrder(
		kernel.NewUUID(),
		cmd.Requester().ID(),
		cmd.Destination(),
		cmd.DepartureDate(),
		cmd.ReturnDate(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TravelOrderRepository().Add(ctx, order); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}
