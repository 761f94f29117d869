package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rentdesk/property-management-api/internal/api/dto"
)

//go:generate mockery --name PropertyService --output ../mocks
type PropertyService interface {
	Create(ctx context.Context, req dto.CreatePropertyRequest) (*dto.PropertyResponse, error)
	GetByID(ctx context.Context, id string) (*dto.PropertyResponse, error)
	List(ctx context.Context, params dto.ListQueryParams) (*dto.PropertyListResponse, error)
	Update(ctx context.Context, id string, req dto.UpdatePropertyRequest) (*dto.PropertyResponse, error)
	Delete(ctx context.Context, id string) error
}

type PropertyHandler struct {
	*BaseHandler
	service PropertyService
}

func NewPropertyHandler(service PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// CreateProperty godoc
// @Summary Create a property
// @Tags    properties
// @Accept  json
// @Produce json
// @Param   body body dto.CreatePropertyRequest true "Property object"
// @Success 201 {object} dto.PropertyResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Router  /properties [post]
// @Security BearerAuth
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	property, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, property)
}

// GetProperty godoc
// @Summary Get a property by ID
// @Tags    properties
// @Produce json
// @Param   id path string true "Property ID"
// @Success 200 {object} dto.PropertyResponse
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router  /properties/{id} [get]
// @Security BearerAuth
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	property, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, property)
}

// ListProperties godoc
// @Summary List properties
// @Tags    properties
// @Produce json
// @Param   page query int false "Page number"
// @Param   limit query int false "Page size"
// @Param   search query string false "Name or address search"
// @Param   sortBy query string false "Sort column"
// @Param   order query string false "asc or desc"
// @Success 200 {object} dto.PropertyListResponse
// @Failure 401 {object} dto.Error
// @Router  /properties [get]
// @Security BearerAuth
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	var params dto.ListQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	properties, err := h.service.List(h.RequestCtx(c), params)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, properties)
}

// UpdateProperty godoc
// @Summary Update a property
// @Tags    properties
// @Accept  json
// @Produce json
// @Param   id path string true "Property ID"
// @Param   body body dto.UpdatePropertyRequest true "Property fields"
// @Success 200 {object} dto.PropertyResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router  /properties/{id} [put]
// @Security BearerAuth
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	var req dto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	property, err := h.service.Update(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, property)
}

// DeleteProperty godoc
// @Summary Delete a property
// @Tags    properties
// @Produce json
// @Param   id path string true "Property ID"
// @Success 204
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router  /properties/{id} [delete]
// @Security BearerAuth
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
