package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rentdesk/property-management-api/internal/api/dto"
)

//go:generate mockery --name MaintenanceService --output ../mocks
type MaintenanceService interface {
	Create(ctx context.Context, req dto.CreateMaintenanceRequest) (*dto.MaintenanceResponse, error)
	GetByID(ctx context.Context, id string) (*dto.MaintenanceResponse, error)
	List(ctx context.Context, params dto.ListQueryParams) (*dto.MaintenanceListResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateMaintenanceRequest) (*dto.MaintenanceResponse, error)
	Delete(ctx context.Context, id string) error
}

type MaintenanceHandler struct {
	*BaseHandler
	service MaintenanceService
}

func NewMaintenanceHandler(service MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{service: service}
}

// CreateMaintenanceRequest godoc
// @Summary File a maintenance request
// @Tags    maintenance
// @Accept  json
// @Produce json
// @Param   body body dto.CreateMaintenanceRequest true "Maintenance request object"
// @Success 201 {object} dto.MaintenanceResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Router  /maintenance [post]
// @Security BearerAuth
func (h *MaintenanceHandler) CreateMaintenanceRequest(c *gin.Context) {
	var req dto.CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	request, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// GetMaintenanceRequest godoc
// @Summary Get a maintenance request by ID
// @Tags    maintenance
// @Produce json
// @Param   id path string true "Maintenance request ID"
// @Success 200 {object} dto.MaintenanceResponse
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router  /maintenance/{id} [get]
// @Security BearerAuth
func (h *MaintenanceHandler) GetMaintenanceRequest(c *gin.Context) {
	request, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// ListMaintenanceRequests godoc
// @Summary List maintenance requests
// @Tags    maintenance
// @Produce json
// @Param   page query int false "Page number"
// @Param   limit query int false "Page size"
// @Param   search query string false "Title or description search"
// @Param   sortBy query string false "Sort column"
// @Param   order query string false "asc or desc"
// @Success 200 {object} dto.MaintenanceListResponse
// @Failure 401 {object} dto.Error
// @Router  /maintenance [get]
// @Security BearerAuth
func (h *MaintenanceHandler) ListMaintenanceRequests(c *gin.Context) {
	var params dto.ListQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	requests, err := h.service.List(h.RequestCtx(c), params)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

// UpdateMaintenanceRequest godoc
// @Summary Update a maintenance request
// @Description Update a maintenance request. Status changes must follow PENDING to IN_PROGRESS to COMPLETED, with REJECTED reachable from non-terminal states.
// @Tags    maintenance
// @Accept  json
// @Produce json
// @Param   id path string true "Maintenance request ID"
// @Param   body body dto.UpdateMaintenanceRequest true "Maintenance request fields"
// @Success 200 {object} dto.MaintenanceResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router  /maintenance/{id} [put]
// @Security BearerAuth
func (h *MaintenanceHandler) UpdateMaintenanceRequest(c *gin.Context) {
	var req dto.UpdateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	request, err := h.service.Update(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// DeleteMaintenanceRequest godoc
// @Summary Delete a maintenance request
// @Tags    maintenance
// @Produce json
// @Param   id path string true "Maintenance request ID"
// @Success 204
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router  /maintenance/{id} [delete]
// @Security BearerAuth
func (h *MaintenanceHandler) DeleteMaintenanceRequest(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
