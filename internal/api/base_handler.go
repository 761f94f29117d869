package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rentdesk/property-management-api/internal/api/dto"
	"github.com/rentdesk/property-management-api/internal/authz"
	"github.com/rentdesk/property-management-api/internal/service"
	"github.com/rentdesk/property-management-api/internal/utils"
)

type BaseHandler struct{}

func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		// Convert string keys to proper context key types to avoid collisions
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}

// badRequestErrors are rejected writes and payload validation failures that
// map to a 400 response.
var badRequestErrors = []error{
	service.ErrCompanyNameTaken,
	service.ErrEmailTaken,
	service.ErrUnitExists,
	service.ErrTenantHasLeases,
	service.ErrUnitOccupied,
	service.ErrLeaseOverlap,
	service.ErrPaymentExceedsDue,
	service.ErrInvalidTransition,
	service.ErrInvalidCredentials,
	service.ErrManagerMismatch,
	service.ErrInvalidDateRange,
	service.ErrInvalidRole,
	service.ErrCompanyRequired,
	service.ErrCompanyMismatch,
	service.ErrInvalidPriority,
	service.ErrInvalidStatus,
}

// RespondError maps service and authorization errors onto HTTP statuses.
// Unknown errors become an opaque 500 so internals never leak to clients.
func (h *BaseHandler) RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, authz.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "unauthorized"})
	case errors.Is(err, authz.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.Error{Error: "forbidden"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Error{Error: err.Error()})
	default:
		for _, known := range badRequestErrors {
			if errors.Is(err, known) {
				c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
				return
			}
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: "internal server error"})
	}
}
