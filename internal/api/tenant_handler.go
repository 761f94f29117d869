package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rentdesk/property-management-api/internal/api/dto"
)

//go:generate mockery --name TenantService --output ../mocks
type TenantService interface {
	Create(ctx context.Context, req dto.CreateTenantRequest) (*dto.TenantResponse, error)
	GetByID(ctx context.Context, id string) (*dto.TenantResponse, error)
	List(ctx context.Context, params dto.ListQueryParams) (*dto.TenantListResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateTenantRequest) (*dto.TenantResponse, error)
	Delete(ctx context.Context, id string) error
}

type TenantHandler struct {
	*BaseHandler
	service TenantService
}

func NewTenantHandler(service TenantService) *TenantHandler {
	return &TenantHandler{service: service}
}

// CreateTenant godoc
// @Summary Create a tenant
// @Description Create a tenant's user account and occupancy record in one step
// @Tags    tenants
// @Accept  json
// @Produce json
// @Param   body body dto.CreateTenantRequest true "Tenant object"
// @Success 201 {object} dto.TenantResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Router  /tenants [post]
// @Security BearerAuth
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	tenant, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tenant)
}

// GetTenant godoc
// @Summary Get a tenant by ID
// @Tags    tenants
// @Produce json
// @Param   id path string true "Tenant ID"
// @Success 200 {object} dto.TenantResponse
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router  /tenants/{id} [get]
// @Security BearerAuth
func (h *TenantHandler) GetTenant(c *gin.Context) {
	tenant, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// ListTenants godoc
// @Summary List tenants
// @Tags    tenants
// @Produce json
// @Param   page query int false "Page number"
// @Param   limit query int false "Page size"
// @Param   search query string false "Phone search"
// @Param   sortBy query string false "Sort column"
// @Param   order query string false "asc or desc"
// @Success 200 {object} dto.TenantListResponse
// @Failure 401 {object} dto.Error
// @Router  /tenants [get]
// @Security BearerAuth
func (h *TenantHandler) ListTenants(c *gin.Context) {
	var params dto.ListQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	tenants, err := h.service.List(h.RequestCtx(c), params)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tenants)
}

// UpdateTenant godoc
// @Summary Update a tenant
// @Tags    tenants
// @Accept  json
// @Produce json
// @Param   id path string true "Tenant ID"
// @Param   body body dto.UpdateTenantRequest true "Tenant fields"
// @Success 200 {object} dto.TenantResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router  /tenants/{id} [put]
// @Security BearerAuth
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	var req dto.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	tenant, err := h.service.Update(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// DeleteTenant godoc
// @Summary Delete a tenant
// @Description Delete a tenant. Fails while any lease references it.
// @Tags    tenants
// @Produce json
// @Param   id path string true "Tenant ID"
// @Success 204
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router  /tenants/{id} [delete]
// @Security BearerAuth
func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
