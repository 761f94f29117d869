package service

import (
	"context"

	"github.com/rentdesk/property-management-api/internal/api/dto"
	"github.com/rentdesk/property-management-api/internal/authz"
	"github.com/rentdesk/property-management-api/internal/domain"
	"github.com/rentdesk/property-management-api/internal/repository"
	"github.com/rentdesk/property-management-api/internal/utils"
	pkgutils "github.com/rentdesk/property-management-api/pkg/utils"
)

type InvoiceService struct {
	repo     repository.Repository
	activity *ActivityService
}

func NewInvoiceService(repo repository.Repository, activity *ActivityService) *InvoiceService {
	return &InvoiceService{
		repo:     repo,
		activity: activity,
	}
}

func (s *InvoiceService) Create(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	dueDate, err := pkgutils.ParseDate(req.DueDate)
	if err != nil {
		return nil, ErrInvalidDateRange
	}

	lease, err := s.repo.Lease().GetByID(ctx, req.LeaseID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	unit, err := s.repo.Unit().GetByID(ctx, lease.UnitID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	property, err := s.repo.Property().GetByID(ctx, unit.PropertyID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	ref := authz.ResourceRef{
		Kind:       domain.KindInvoice,
		CompanyID:  property.CompanyID,
		PropertyID: property.ID,
		ManagerID:  strOrEmpty(property.ManagerID),
		TenantID:   lease.TenantID,
	}
	if err := authz.Authorize(actor, authz.ActionCreate, ref); err != nil {
		return nil, err
	}

	// Tenant and property are denormalized from the lease so scoped list
	// queries need no join through leases.
	invoice, err := s.repo.Invoice().Create(ctx, &domain.Invoice{
		LeaseID:    lease.ID,
		TenantID:   lease.TenantID,
		PropertyID: property.ID,
		Amount:     req.Amount,
		DueDate:    dueDate,
	})
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor, ActivityEntry{
		Action:     "INVOICE_CREATED",
		Entity:     domain.KindInvoice,
		EntityID:   invoice.ID,
		CompanyID:  property.CompanyID,
		PropertyID: property.ID,
		TenantID:   lease.TenantID,
		LeaseID:    lease.ID,
	})

	return dto.FromInvoice(invoice), nil
}

func (s *InvoiceService) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	invoice, ref, err := s.getWithRef(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.Authorize(actor, authz.ActionRead, ref); err != nil {
		return nil, err
	}

	return dto.FromInvoice(invoice), nil
}

func (s *InvoiceService) List(ctx context.Context, params dto.ListQueryParams) (*dto.InvoiceListResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	scope, err := authz.ScopeFor(actor, domain.KindInvoice, authz.ActionList)
	if err != nil {
		return nil, err
	}

	q := params.ToListQuery()
	invoices, total, err := s.repo.Invoice().List(ctx, scope, q)
	if err != nil {
		return nil, err
	}

	return &dto.InvoiceListResponse{
		Data:       dto.FromInvoices(invoices),
		Pagination: dto.NewPagination(total, q.Page, q.Limit),
	}, nil
}

func (s *InvoiceService) Update(ctx context.Context, id string, req dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	invoice, ref, err := s.getWithRef(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.Authorize(actor, authz.ActionUpdate, ref); err != nil {
		return nil, err
	}

	if req.Amount != nil {
		invoice.Amount = *req.Amount
	}
	if req.DueDate != nil {
		dueDate, err := pkgutils.ParseDate(*req.DueDate)
		if err != nil {
			return nil, ErrInvalidDateRange
		}
		invoice.DueDate = dueDate
	}

	if err := s.repo.Invoice().Update(ctx, invoice); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor, ActivityEntry{
		Action:     "INVOICE_UPDATED",
		Entity:     domain.KindInvoice,
		EntityID:   invoice.ID,
		CompanyID:  ref.CompanyID,
		PropertyID: invoice.PropertyID,
		TenantID:   invoice.TenantID,
	})

	return dto.FromInvoice(invoice), nil
}

func (s *InvoiceService) Delete(ctx context.Context, id string) error {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return authz.ErrUnauthorized
	}

	invoice, ref, err := s.getWithRef(ctx, id)
	if err != nil {
		return err
	}

	if err := authz.Authorize(actor, authz.ActionDelete, ref); err != nil {
		return err
	}

	if err := s.repo.Invoice().Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(ctx, actor, ActivityEntry{
		Action:     "INVOICE_DELETED",
		Entity:     domain.KindInvoice,
		EntityID:   invoice.ID,
		CompanyID:  ref.CompanyID,
		PropertyID: invoice.PropertyID,
		TenantID:   invoice.TenantID,
	})

	return nil
}

func (s *InvoiceService) getWithRef(ctx context.Context, id string) (*domain.Invoice, authz.ResourceRef, error) {
	invoice, err := s.repo.Invoice().GetByID(ctx, id)
	if err != nil {
		return nil, authz.ResourceRef{}, mapNotFound(err)
	}

	property, err := s.repo.Property().GetByID(ctx, invoice.PropertyID)
	if err != nil {
		return nil, authz.ResourceRef{}, mapNotFound(err)
	}

	ref := authz.ResourceRef{
		Kind:       domain.KindInvoice,
		CompanyID:  property.CompanyID,
		PropertyID: property.ID,
		ManagerID:  strOrEmpty(property.ManagerID),
		TenantID:   invoice.TenantID,
	}
	return invoice, ref, nil
}
