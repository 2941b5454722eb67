// Package http exposes the travel order API over Echo. All business
// endpoints sit behind bearer authentication; handlers translate between the
// wire contracts and the application's commands and queries, and map domain
// errors onto the HTTP error taxonomy.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"traveldesk/internal/core/application/usecases/commands"
	"traveldesk/internal/core/application/usecases/queries"
	"traveldesk/internal/core/domain/model/actor"
	"traveldesk/internal/core/domain/model/kernel"
	"traveldesk/internal/core/domain/model/travelorder"
	"traveldesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP surface of the travel order service.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createHandler commands.CreateTravelOrderCommandHandler
	updateHandler commands.UpdateTravelOrderStatusCommandHandler
	cancelHandler commands.CancelTravelOrderCommandHandler

	// Query handlers
	getHandler  queries.GetTravelOrderQueryHandler
	listHandler queries.ListTravelOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createHandler commands.CreateTravelOrderCommandHandler,
	updateHandler commands.UpdateTravelOrderStatusCommandHandler,
	cancelHandler commands.CancelTravelOrderCommandHandler,
	getHandler queries.GetTravelOrderQueryHandler,
	listHandler queries.ListTravelOrdersQueryHandler,
) *Server {
	return &Server{
		createHandler: createHandler,
		updateHandler: updateHandler,
		cancelHandler: cancelHandler,
		getHandler:    getHandler,
		listHandler:   listHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1 with bearer authentication,
// plus the unauthenticated health endpoint.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret []byte) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", BearerAuth(jwtSecret))
	api.POST("/travel-orders", s.CreateTravelOrder)
	api.GET("/travel-orders", s.ListTravelOrders)
	api.GET("/travel-orders/:id", s.GetTravelOrder)
	api.PATCH("/travel-orders/:id/status", s.UpdateTravelOrderStatus)
	api.PATCH("/travel-orders/:id/cancel", s.CancelTravelOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateTravelOrder handles POST /api/v1/travel-orders - submits a new travel
// order owned by the authenticated caller.
func (s *Server) CreateTravelOrder(ctx echo.Context) error {
	requester, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "missing bearer token")
	}

	var req CreateTravelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	// Past trips cannot be requested. This is a submission rule, not an
	// aggregate invariant: orders legitimately age past their departure date.
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if !req.DepartureDate.Time.IsZero() && req.DepartureDate.Time.Before(today) {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause(
			"departure_date", errors.New("departure date must not be in the past")))
	}

	cmd, err := commands.NewCreateTravelOrderCommand(
		requester,
		req.Destination,
		req.DepartureDate.Time,
		req.ReturnDate.Time,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	order, err := s.createHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, fromAggregate(order, requester.Name()))
}

// GetTravelOrder handles GET /api/v1/travel-orders/:id.
func (s *Server) GetTravelOrder(ctx echo.Context) error {
	viewer, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "missing bearer token")
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid travel order id")
	}

	query, err := queries.NewGetTravelOrderQuery(viewer, id)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTravelOrderResponse(result))
}

// ListTravelOrders handles GET /api/v1/travel-orders - lists the orders
// visible to the caller, filtered and paginated.
func (s *Server) ListTravelOrders(ctx echo.Context) error {
	viewer, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "missing bearer token")
	}

	filters, err := filtersFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	page := 1
	if raw := ctx.QueryParam("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "invalid page number")
		}
	}

	query, err := queries.NewListTravelOrdersQuery(viewer, filters, page)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.listHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	data := make([]TravelOrderResponse, len(result.Items))
	for i, item := range result.Items {
		data[i] = toTravelOrderResponse(item)
	}

	return ctx.JSON(http.StatusOK, ListTravelOrdersResponse{
		Data: data,
		Meta: ListMeta{
			Page:    result.Page,
			PerPage: result.PerPage,
			Total:   result.Total,
		},
	})
}

// UpdateTravelOrderStatus handles PATCH /api/v1/travel-orders/:id/status -
// applies an admin decision (approve or cancel).
func (s *Server) UpdateTravelOrderStatus(ctx echo.Context) error {
	decidedBy, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "missing bearer token")
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid travel order id")
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := travelorder.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateTravelOrderStatusCommand(decidedBy, id, target)
	if err != nil {
		return writeError(ctx, err)
	}

	order, err := s.updateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, decidedBy, order)
}

// CancelTravelOrder handles PATCH /api/v1/travel-orders/:id/cancel - the
// requester's self-service cancellation.
func (s *Server) CancelTravelOrder(ctx echo.Context) error {
	requester, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "missing bearer token")
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid travel order id")
	}

	cmd, err := commands.NewCancelTravelOrderCommand(requester, id)
	if err != nil {
		return writeError(ctx, err)
	}

	order, err := s.cancelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(order, requester.Name()))
}

// respondWithOrder re-reads the order through the query side so the response
// carries the requester's display name.
func (s *Server) respondWithOrder(
	ctx echo.Context,
	viewer actor.Actor,
	order *travelorder.TravelOrder,
) error {
	query, err := queries.NewGetTravelOrderQuery(viewer, order.ID())
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTravelOrderResponse(result))
}

// filtersFromRequest parses the optional list filters from query parameters.
// Dates use the YYYY-MM-DD calendar format.
func filtersFromRequest(ctx echo.Context) (queries.TravelOrderFilters, error) {
	var filters queries.TravelOrderFilters

	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := travelorder.StatusFromString(raw)
		if err != nil {
			return queries.TravelOrderFilters{}, err
		}
		filters.Status = &status
	}

	if raw := ctx.QueryParam("destination"); raw != "" {
		destination := raw
		filters.Destination = &destination
	}

	dateParams := []struct {
		name   string
		target **time.Time
	}{
		{"departure_from", &filters.DepartureFrom},
		{"departure_to", &filters.DepartureTo},
		{"return_from", &filters.ReturnFrom},
		{"return_to", &filters.ReturnTo},
		{"created_from", &filters.CreatedFrom},
		{"created_to", &filters.CreatedTo},
	}

	for _, p := range dateParams {
		raw := ctx.QueryParam(p.name)
		if raw == "" {
			continue
		}

		parsed, err := time.ParseInLocation(time.DateOnly, raw, time.UTC)
		if err != nil {
			return queries.TravelOrderFilters{}, errs.NewValueIsInvalidErrorWithCause(p.name, err)
		}
		*p.target = &parsed
	}

	return filters, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps domain errors onto the HTTP error taxonomy:
// validation failures are 422, permission failures 403, missing objects 404,
// and everything unexpected 500. The approved-order cancellation conflict is
// a 422 with its fixed business message.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, travelorder.ErrAlreadyApproved):
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: travelorder.ErrAlreadyApproved.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrPermissionDenied):
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "This action is unauthorized.",
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Travel order not found.",
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error.",
		})
	}
}
