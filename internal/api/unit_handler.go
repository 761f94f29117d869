package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rentdesk/property-management-api/internal/api/dto"
)

//go:generate mockery --name UnitService --output ../mocks
type UnitService interface {
	Create(ctx context.Context, req dto.CreateUnitRequest) (*dto.UnitResponse, error)
	GetByID(ctx context.Context, id string) (*dto.UnitResponse, error)
	List(ctx context.Context, params dto.ListQueryParams) (*dto.UnitListResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateUnitRequest) (*dto.UnitResponse, error)
	Delete(ctx context.Context, id string) error
}

type UnitHandler struct {
	*BaseHandler
	service UnitService
}

func NewUnitHandler(service UnitService) *UnitHandler {
	return &UnitHandler{service: service}
}

// CreateUnit godoc
// @Summary Create a unit
// @Description Create a unit inside a property. Name and floor must be unique per property.
// @Tags    units
// @Accept  json
// @Produce json
// @Param   body body dto.CreateUnitRequest true "Unit object"
// @Success 201 {object} dto.UnitResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Router  /units [post]
// @Security BearerAuth
func (h *UnitHandler) CreateUnit(c *gin.Context) {
	var req dto.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	unit, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, unit)
}

// GetUnit godoc
// @Summary Get a unit by ID
// @Tags    units
// @Produce json
// @Param   id path string true "Unit ID"
// @Success 200 {object} dto.UnitResponse
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router  /units/{id} [get]
// @Security BearerAuth
func (h *UnitHandler) GetUnit(c *gin.Context) {
	unit, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, unit)
}

// ListUnits godoc
// @Summary List units
// @Tags    units
// @Produce json
// @Param   page query int false "Page number"
// @Param   limit query int false "Page size"
// @Param   search query string false "Name search"
// @Param   sortBy query string false "Sort column"
// @Param   order query string false "asc or desc"
// @Success 200 {object} dto.UnitListResponse
// @Failure 401 {object} dto.Error
// @Router  /units [get]
// @Security BearerAuth
func (h *UnitHandler) ListUnits(c *gin.Context) {
	var params dto.ListQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	units, err := h.service.List(h.RequestCtx(c), params)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, units)
}

// UpdateUnit godoc
// @Summary Update a unit
// @Tags    units
// @Accept  json
// @Produce json
// @Param   id path string true "Unit ID"
// @Param   body body dto.UpdateUnitRequest true "Unit fields"
// @Success 200 {object} dto.UnitResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router  /units/{id} [put]
// @Security BearerAuth
func (h *UnitHandler) UpdateUnit(c *gin.Context) {
	var req dto.UpdateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	unit, err := h.service.Update(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, unit)
}

// DeleteUnit godoc
// @Summary Delete a unit
// @Description Delete a unit. Fails if a tenant is currently assigned to it.
// @Tags    units
// @Produce json
// @Param   id path string true "Unit ID"
// @Success 204
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router  /units/{id} [delete]
// @Security BearerAuth
func (h *UnitHandler) DeleteUnit(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
