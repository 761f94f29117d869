package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rentdesk/property-management-api/internal/api/dto"
)

//go:generate mockery --name ActivityService --output ../mocks
type ActivityService interface {
	List(ctx context.Context, params dto.ListQueryParams) (*dto.ActivityLogListResponse, error)
	ListByEntity(ctx context.Context, entity, entityID string) ([]dto.ActivityLogResponse, error)
	ListByUser(ctx context.Context, userID string) ([]dto.ActivityLogResponse, error)
}

type ActivityHandler struct {
	*BaseHandler
	service ActivityService
}

func NewActivityHandler(service ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// ListActivity godoc
// @Summary List activity entries
// @Description List the activity log, newest first, scoped to the caller's company
// @Tags    activity
// @Produce json
// @Param   page query int false "Page number"
// @Param   limit query int false "Page size"
// @Param   search query string false "Action or entity search"
// @Param   sortBy query string false "Sort column"
// @Param   order query string false "asc or desc"
// @Success 200 {object} dto.ActivityLogListResponse
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Router  /activity [get]
// @Security BearerAuth
func (h *ActivityHandler) ListActivity(c *gin.Context) {
	var params dto.ListQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	entries, err := h.service.List(h.RequestCtx(c), params)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// ListActivityByEntity godoc
// @Summary List activity for one entity
// @Tags    activity
// @Produce json
// @Param   entity path string true "Entity kind"
// @Param   id path string true "Entity ID"
// @Success 200 {array} dto.ActivityLogResponse
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Router  /activity/entity/{entity}/{id} [get]
// @Security BearerAuth
func (h *ActivityHandler) ListActivityByEntity(c *gin.Context) {
	entries, err := h.service.ListByEntity(h.RequestCtx(c), c.Param("entity"), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// ListActivityByUser godoc
// @Summary List activity for one user
// @Tags    activity
// @Produce json
// @Param   userId path string true "User ID"
// @Success 200 {array} dto.ActivityLogResponse
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Router  /activity/user/{userId} [get]
// @Security BearerAuth
func (h *ActivityHandler) ListActivityByUser(c *gin.Context) {
	entries, err := h.service.ListByUser(h.RequestCtx(c), c.Param("userId"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
