package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rentdesk/property-management-api/internal/api/dto"
)

//go:generate mockery --name LeaseService --output ../mocks
type LeaseService interface {
	Create(ctx context.Context, req dto.CreateLeaseRequest) (*dto.LeaseResponse, error)
	GetByID(ctx context.Context, id string) (*dto.LeaseResponse, error)
	List(ctx context.Context, params dto.ListQueryParams) (*dto.LeaseListResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateLeaseRequest) (*dto.LeaseResponse, error)
	Delete(ctx context.Context, id string) error
}

type LeaseHandler struct {
	*BaseHandler
	service LeaseService
}

func NewLeaseHandler(service LeaseService) *LeaseHandler {
	return &LeaseHandler{service: service}
}

// CreateLease godoc
// @Summary Create a lease
// @Description Create a lease. Fails if the unit already has a lease overlapping the date range.
// @Tags    leases
// @Accept  json
// @Produce json
// @Param   body body dto.CreateLeaseRequest true "Lease object"
// @Success 201 {object} dto.LeaseResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Router  /leases [post]
// @Security BearerAuth
func (h *LeaseHandler) CreateLease(c *gin.Context) {
	var req dto.CreateLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	lease, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, lease)
}

// GetLease godoc
// @Summary Get a lease by ID
// @Tags    leases
// @Produce json
// @Param   id path string true "Lease ID"
// @Success 200 {object} dto.LeaseResponse
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router  /leases/{id} [get]
// @Security BearerAuth
func (h *LeaseHandler) GetLease(c *gin.Context) {
	lease, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lease)
}

// ListLeases godoc
// @Summary List leases
// @Tags    leases
// @Produce json
// @Param   page query int false "Page number"
// @Param   limit query int false "Page size"
// @Param   sortBy query string false "Sort column"
// @Param   order query string false "asc or desc"
// @Success 200 {object} dto.LeaseListResponse
// @Failure 401 {object} dto.Error
// @Router  /leases [get]
// @Security BearerAuth
func (h *LeaseHandler) ListLeases(c *gin.Context) {
	var params dto.ListQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	leases, err := h.service.List(h.RequestCtx(c), params)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, leases)
}

// UpdateLease godoc
// @Summary Update a lease
// @Description Update a lease. Date changes are re-checked for overlap against the unit's other leases.
// @Tags    leases
// @Accept  json
// @Produce json
// @Param   id path string true "Lease ID"
// @Param   body body dto.UpdateLeaseRequest true "Lease fields"
// @Success 200 {object} dto.LeaseResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router  /leases/{id} [put]
// @Security BearerAuth
func (h *LeaseHandler) UpdateLease(c *gin.Context) {
	var req dto.UpdateLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	lease, err := h.service.Update(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lease)
}

// DeleteLease godoc
// @Summary Delete a lease
// @Tags    leases
// @Produce json
// @Param   id path string true "Lease ID"
// @Success 204
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router  /leases/{id} [delete]
// @Security BearerAuth
func (h *LeaseHandler) DeleteLease(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
