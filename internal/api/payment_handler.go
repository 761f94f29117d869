package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rentdesk/property-management-api/internal/api/dto"
)

//go:generate mockery --name PaymentService --output ../mocks
type PaymentService interface {
	Create(ctx context.Context, req dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	GetByID(ctx context.Context, id string) (*dto.PaymentResponse, error)
	List(ctx context.Context, params dto.ListQueryParams) (*dto.PaymentListResponse, error)
	Delete(ctx context.Context, id string) error
}

type PaymentHandler struct {
	*BaseHandler
	service PaymentService
}

func NewPaymentHandler(service PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// CreatePayment godoc
// @Summary Record a payment
// @Description Record a payment against an invoice. Fails if it would push the invoice's paid total past its amount.
// @Tags    payments
// @Accept  json
// @Produce json
// @Param   body body dto.CreatePaymentRequest true "Payment object"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Router  /payments [post]
// @Security BearerAuth
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	payment, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// GetPayment godoc
// @Summary Get a payment by ID
// @Tags    payments
// @Produce json
// @Param   id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router  /payments/{id} [get]
// @Security BearerAuth
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

// ListPayments godoc
// @Summary List payments
// @Tags    payments
// @Produce json
// @Param   page query int false "Page number"
// @Param   limit query int false "Page size"
// @Param   sortBy query string false "Sort column"
// @Param   order query string false "asc or desc"
// @Success 200 {object} dto.PaymentListResponse
// @Failure 401 {object} dto.Error
// @Router  /payments [get]
// @Security BearerAuth
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	var params dto.ListQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	payments, err := h.service.List(h.RequestCtx(c), params)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}

// DeletePayment godoc
// @Summary Delete a payment
// @Tags    payments
// @Produce json
// @Param   id path string true "Payment ID"
// @Success 204
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router  /payments/{id} [delete]
// @Security BearerAuth
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
