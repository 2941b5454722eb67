package http

import (
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"traveldesk/internal/core/domain/model/travelorder"
	"traveldesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(nethttp.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"required value", errs.NewValueIsRequiredError("destination"), nethttp.StatusUnprocessableEntity},
		{"invalid value", errs.NewValueIsInvalidError("status"), nethttp.StatusUnprocessableEntity},
		{"out of range", errs.NewValueIsOutOfRangeError("destination", "x", 1, 255), nethttp.StatusUnprocessableEntity},
		{"permission denied", errs.NewPermissionDeniedError("view travel order"), nethttp.StatusForbidden},
		{"object not found", errs.NewObjectNotFoundError("travelOrder", "42"), nethttp.StatusNotFound},
		{"unexpected", errors.New("connection reset"), nethttp.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, rec := newTestContext(t, "/")

			require.NoError(t, writeError(ctx, tt.err))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantStatus, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestWriteError_AlreadyApprovedKeepsBusinessMessage(t *testing.T) {
	ctx, rec := newTestContext(t, "/")

	require.NoError(t, writeError(ctx, travelorder.ErrAlreadyApproved))

	assert.Equal(t, nethttp.StatusUnprocessableEntity, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Cannot cancel a travel order that has already been approved.", body.Message)
}

func TestWriteError_DoesNotLeakInternalDetails(t *testing.T) {
	ctx, rec := newTestContext(t, "/")

	require.NoError(t, writeError(ctx, errors.New("pq: password authentication failed")))

	body := decodeError(t, rec)
	assert.Equal(t, "Internal server error.", body.Message)
}

func TestFiltersFromRequest_Empty(t *testing.T) {
	ctx, _ := newTestContext(t, "/api/v1/travel-orders")

	filters, err := filtersFromRequest(ctx)

	require.NoError(t, err)
	assert.Nil(t, filters.Status)
	assert.Nil(t, filters.Destination)
	assert.Nil(t, filters.DepartureFrom)
	assert.Nil(t, filters.CreatedTo)
}

func TestFiltersFromRequest_AllParams(t *testing.T) {
	ctx, _ := newTestContext(t,
		"/api/v1/travel-orders?status=approved&destination=Lisbon"+
			"&departure_from=2026-03-01&departure_to=2026-03-31"+
			"&return_from=2026-04-01&return_to=2026-04-30"+
			"&created_from=2026-01-01&created_to=2026-02-01")

	filters, err := filtersFromRequest(ctx)

	require.NoError(t, err)
	require.NotNil(t, filters.Status)
	assert.Equal(t, travelorder.Approved, *filters.Status)
	require.NotNil(t, filters.Destination)
	assert.Equal(t, "Lisbon", *filters.Destination)
	require.NotNil(t, filters.DepartureFrom)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *filters.DepartureFrom)
	require.NotNil(t, filters.CreatedTo)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), *filters.CreatedTo)
}

func TestFiltersFromRequest_InvalidStatus(t *testing.T) {
	ctx, _ := newTestContext(t, "/api/v1/travel-orders?status=pending")

	_, err := filtersFromRequest(ctx)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestFiltersFromRequest_InvalidDate(t *testing.T) {
	ctx, _ := newTestContext(t, "/api/v1/travel-orders?departure_from=03%2F01%2F2026")

	_, err := filtersFromRequest(ctx)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "departure_from")
}
