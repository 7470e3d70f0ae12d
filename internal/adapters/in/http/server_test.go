package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"opsboard/internal/core/application/usecases/commands"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/services"
	"opsboard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, headers map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestServer_OrganizationID_MissingHeader(t *testing.T) {
	server := NewServer(Handlers{})
	ctx, _ := newTestContext(t, nil)

	_, err := server.organizationID(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestServer_OrganizationID_MalformedHeader(t *testing.T) {
	server := NewServer(Handlers{})
	ctx, _ := newTestContext(t, map[string]string{HeaderOrganizationID: "not-a-uuid"})

	_, err := server.organizationID(ctx)

	require.Error(t, err)
}

func TestServer_OrganizationID_ValidHeader(t *testing.T) {
	server := NewServer(Handlers{})
	organizationID := kernel.NewUUID()
	ctx, _ := newTestContext(t, map[string]string{HeaderOrganizationID: organizationID.String()})

	got, err := server.organizationID(ctx)

	require.NoError(t, err)
	assert.Equal(t, organizationID, got)
}

func TestServer_RespondError_StatusMapping(t *testing.T) {
	server := NewServer(Handlers{})

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"missing value", errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		{"invalid value", errs.NewValueIsInvalidError("priority"), http.StatusBadRequest},
		{"ineligible return order", fmt.Errorf("%w: order is pending", commands.ErrOrderNotReturnEligible), http.StatusBadRequest},
		{"not found", errs.NewObjectNotFoundError("orderId", kernel.NewUUID()), http.StatusNotFound},
		{"quota exceeded", errs.NewQuotaExceededError("create order", "order limit reached (50)"), http.StatusForbidden},
		{"bad transition", errs.NewInvalidStatusTransitionError("status", "pending", "archived"), http.StatusConflict},
		{"stale version", errs.NewVersionConflictError("pickupId", kernel.NewUUID()), http.StatusConflict},
		{"order already claimed", services.ErrOrderAlreadyClaimed, http.StatusConflict},
		{"order still referenced", commands.ErrOrderStillReferenced, http.StatusConflict},
		{"unclassified", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, rec := newTestContext(t, nil)

			err := server.respondError(ctx, tt.err)

			require.NoError(t, err)
			assert.Equal(t, tt.want, rec.Code)
			assert.Contains(t, rec.Body.String(), `"message"`)
		})
	}
}

func TestServer_DeleteOrder_MissingHeaderIsRejected(t *testing.T) {
	server := NewServer(Handlers{})
	ctx, rec := newTestContext(t, nil)

	err := server.DeleteOrder(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_DeleteOrder_MalformedPathID(t *testing.T) {
	server := NewServer(Handlers{})
	organizationID := kernel.NewUUID()
	ctx, rec := newTestContext(t, map[string]string{HeaderOrganizationID: organizationID.String()})
	ctx.SetParamNames("orderId")
	ctx.SetParamValues("definitely-not-a-uuid")

	err := server.DeleteOrder(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
