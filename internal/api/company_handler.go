package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rentdesk/property-management-api/internal/api/dto"
)

//go:generate mockery --name CompanyService --output ../mocks
type CompanyService interface {
	Create(ctx context.Context, req dto.CreateCompanyRequest) (*dto.CompanyResponse, error)
	GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error)
	List(ctx context.Context, params dto.ListQueryParams) (*dto.CompanyListResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateCompanyRequest) (*dto.CompanyResponse, error)
	Delete(ctx context.Context, id string) error
}

type CompanyHandler struct {
	*BaseHandler
	service CompanyService
}

func NewCompanyHandler(service CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// CreateCompany godoc
// @Summary Create a company
// @Tags    companies
// @Accept  json
// @Produce json
// @Param   body body dto.CreateCompanyRequest true "Company object"
// @Success 201 {object} dto.CompanyResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Router  /companies [post]
// @Security BearerAuth
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	company, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, company)
}

// GetCompany godoc
// @Summary Get a company by ID
// @Tags    companies
// @Produce json
// @Param   id path string true "Company ID"
// @Success 200 {object} dto.CompanyResponse
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router  /companies/{id} [get]
// @Security BearerAuth
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	company, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

// ListCompanies godoc
// @Summary List companies
// @Tags    companies
// @Produce json
// @Param   page query int false "Page number"
// @Param   limit query int false "Page size"
// @Param   search query string false "Name search"
// @Param   sortBy query string false "Sort column"
// @Param   order query string false "asc or desc"
// @Success 200 {object} dto.CompanyListResponse
// @Failure 401 {object} dto.Error
// @Router  /companies [get]
// @Security BearerAuth
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	var params dto.ListQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	companies, err := h.service.List(h.RequestCtx(c), params)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, companies)
}

// UpdateCompany godoc
// @Summary Update a company
// @Tags    companies
// @Accept  json
// @Produce json
// @Param   id path string true "Company ID"
// @Param   body body dto.UpdateCompanyRequest true "Company fields"
// @Success 200 {object} dto.CompanyResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router  /companies/{id} [put]
// @Security BearerAuth
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	company, err := h.service.Update(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

// DeleteCompany godoc
// @Summary Delete a company
// @Tags    companies
// @Produce json
// @Param   id path string true "Company ID"
// @Success 204
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router  /companies/{id} [delete]
// @Security BearerAuth
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
