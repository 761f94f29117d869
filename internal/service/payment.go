package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rentdesk/property-management-api/internal/api/dto"
	"github.com/rentdesk/property-management-api/internal/authz"
	"github.com/rentdesk/property-management-api/internal/domain"
	"github.com/rentdesk/property-management-api/internal/repository"
	"github.com/rentdesk/property-management-api/internal/utils"
	"github.com/rentdesk/property-management-api/pkg/logger"
)

type PaymentService struct {
	repo     repository.Repository
	activity *ActivityService
	notifier Notifier
	logger   *logger.Logger
}

func NewPaymentService(repo repository.Repository, activity *ActivityService, notifier Notifier, logger *logger.Logger) *PaymentService {
	return &PaymentService{
		repo:     repo,
		activity: activity,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *PaymentService) Create(ctx context.Context, req dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	invoice, err := s.repo.Invoice().GetByID(ctx, req.InvoiceID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	property, err := s.repo.Property().GetByID(ctx, invoice.PropertyID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	ref := authz.ResourceRef{
		Kind:       domain.KindPayment,
		CompanyID:  property.CompanyID,
		PropertyID: property.ID,
		ManagerID:  strOrEmpty(property.ManagerID),
		TenantID:   invoice.TenantID,
	}
	if err := authz.Authorize(actor, authz.ActionCreate, ref); err != nil {
		return nil, err
	}

	payment := &domain.Payment{
		InvoiceID:  invoice.ID,
		TenantID:   invoice.TenantID,
		PropertyID: invoice.PropertyID,
		Amount:     req.Amount,
		Method:     req.Method,
		PaidAt:     time.Now(),
	}

	if err := s.repo.Payment().CreateChecked(ctx, payment, invoice.Amount); err != nil {
		if errors.Is(err, repository.ErrPaymentCeiling) {
			return nil, ErrPaymentExceedsDue
		}
		return nil, err
	}

	s.activity.Record(ctx, actor, ActivityEntry{
		Action:     "PAYMENT_RECEIVED",
		Entity:     domain.KindPayment,
		EntityID:   payment.ID,
		CompanyID:  property.CompanyID,
		PropertyID: property.ID,
		TenantID:   invoice.TenantID,
		PaymentID:  payment.ID,
	})

	s.sendReceipt(ctx, invoice.TenantID, payment)

	return dto.FromPayment(payment), nil
}

func (s *PaymentService) GetByID(ctx context.Context, id string) (*dto.PaymentResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	payment, ref, err := s.getWithRef(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.Authorize(actor, authz.ActionRead, ref); err != nil {
		return nil, err
	}

	return dto.FromPayment(payment), nil
}

func (s *PaymentService) List(ctx context.Context, params dto.ListQueryParams) (*dto.PaymentListResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	scope, err := authz.ScopeFor(actor, domain.KindPayment, authz.ActionList)
	if err != nil {
		return nil, err
	}

	q := params.ToListQuery()
	payments, total, err := s.repo.Payment().List(ctx, scope, q)
	if err != nil {
		return nil, err
	}

	return &dto.PaymentListResponse{
		Data:       dto.FromPayments(payments),
		Pagination: dto.NewPagination(total, q.Page, q.Limit),
	}, nil
}

func (s *PaymentService) Delete(ctx context.Context, id string) error {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return authz.ErrUnauthorized
	}

	payment, ref, err := s.getWithRef(ctx, id)
	if err != nil {
		return err
	}

	if err := authz.Authorize(actor, authz.ActionDelete, ref); err != nil {
		return err
	}

	if err := s.repo.Payment().Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(ctx, actor, ActivityEntry{
		Action:     "PAYMENT_DELETED",
		Entity:     domain.KindPayment,
		EntityID:   payment.ID,
		CompanyID:  ref.CompanyID,
		PropertyID: payment.PropertyID,
		TenantID:   payment.TenantID,
		PaymentID:  payment.ID,
	})

	return nil
}

func (s *PaymentService) getWithRef(ctx context.Context, id string) (*domain.Payment, authz.ResourceRef, error) {
	payment, err := s.repo.Payment().GetByID(ctx, id)
	if err != nil {
		return nil, authz.ResourceRef{}, mapNotFound(err)
	}

	property, err := s.repo.Property().GetByID(ctx, payment.PropertyID)
	if err != nil {
		return nil, authz.ResourceRef{}, mapNotFound(err)
	}

	ref := authz.ResourceRef{
		Kind:       domain.KindPayment,
		CompanyID:  property.CompanyID,
		PropertyID: property.ID,
		ManagerID:  strOrEmpty(property.ManagerID),
		TenantID:   payment.TenantID,
	}
	return payment, ref, nil
}

// sendReceipt enqueues a payment receipt email. Failures are logged, never
// propagated.
func (s *PaymentService) sendReceipt(ctx context.Context, tenantID string, payment *domain.Payment) {
	if s.notifier == nil {
		return
	}

	tenant, err := s.repo.Tenant().GetByID(ctx, tenantID)
	if err != nil {
		s.logger.Error("failed to resolve tenant for receipt", err)
		return
	}

	user, err := s.repo.User().GetByID(ctx, tenant.UserID)
	if err != nil {
		s.logger.Error("failed to resolve tenant user for receipt", err)
		return
	}

	body := fmt.Sprintf("We received your payment of %.2f via %s on %s.",
		payment.Amount, payment.Method, payment.PaidAt.Format("2006-01-02"))
	if err := s.notifier.SendEmailMessage(ctx, user.Email, "Payment received", body); err != nil {
		s.logger.Error("failed to enqueue payment receipt", err)
	}
}
