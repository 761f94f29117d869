package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rentdesk/property-management-api/internal/api/dto"
)

//go:generate mockery --name InvoiceService --output ../mocks
type InvoiceService interface {
	Create(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error)
	List(ctx context.Context, params dto.ListQueryParams) (*dto.InvoiceListResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error)
	Delete(ctx context.Context, id string) error
}

type InvoiceHandler struct {
	*BaseHandler
	service InvoiceService
}

func NewInvoiceHandler(service InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// CreateInvoice godoc
// @Summary Create an invoice
// @Description Create an invoice against a lease. Tenant and property are derived from the lease.
// @Tags    invoices
// @Accept  json
// @Produce json
// @Param   body body dto.CreateInvoiceRequest true "Invoice object"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Router  /invoices [post]
// @Security BearerAuth
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	invoice, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

// GetInvoice godoc
// @Summary Get an invoice by ID
// @Tags    invoices
// @Produce json
// @Param   id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router  /invoices/{id} [get]
// @Security BearerAuth
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// ListInvoices godoc
// @Summary List invoices
// @Tags    invoices
// @Produce json
// @Param   page query int false "Page number"
// @Param   limit query int false "Page size"
// @Param   sortBy query string false "Sort column"
// @Param   order query string false "asc or desc"
// @Success 200 {object} dto.InvoiceListResponse
// @Failure 401 {object} dto.Error
// @Router  /invoices [get]
// @Security BearerAuth
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	var params dto.ListQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	invoices, err := h.service.List(h.RequestCtx(c), params)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// UpdateInvoice godoc
// @Summary Update an invoice
// @Tags    invoices
// @Accept  json
// @Produce json
// @Param   id path string true "Invoice ID"
// @Param   body body dto.UpdateInvoiceRequest true "Invoice fields"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router  /invoices/{id} [put]
// @Security BearerAuth
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	invoice, err := h.service.Update(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// DeleteInvoice godoc
// @Summary Delete an invoice
// @Tags    invoices
// @Produce json
// @Param   id path string true "Invoice ID"
// @Success 204
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router  /invoices/{id} [delete]
// @Security BearerAuth
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
