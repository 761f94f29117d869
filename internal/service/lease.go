package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rentdesk/property-management-api/internal/api/dto"
	"github.com/rentdesk/property-management-api/internal/authz"
	"github.com/rentdesk/property-management-api/internal/domain"
	"github.com/rentdesk/property-management-api/internal/repository"
	"github.com/rentdesk/property-management-api/internal/utils"
	"github.com/rentdesk/property-management-api/pkg/logger"
	pkgutils "github.com/rentdesk/property-management-api/pkg/utils"
)

// Notifier enqueues outbound notifications for asynchronous delivery.
type Notifier interface {
	SendEmailMessage(ctx context.Context, recipient, subject, body string) error
}

type LeaseService struct {
	repo     repository.Repository
	activity *ActivityService
	notifier Notifier
	logger   *logger.Logger
}

func NewLeaseService(repo repository.Repository, activity *ActivityService, notifier Notifier, logger *logger.Logger) *LeaseService {
	return &LeaseService{
		repo:     repo,
		activity: activity,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *LeaseService) Create(ctx context.Context, req dto.CreateLeaseRequest) (*dto.LeaseResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	startDate, err := pkgutils.ParseDate(req.StartDate)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	endDate, err := pkgutils.ParseDate(req.EndDate)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	if startDate.After(endDate) {
		return nil, ErrInvalidDateRange
	}

	tenant, err := s.repo.Tenant().GetByID(ctx, req.TenantID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	unit, err := s.repo.Unit().GetByID(ctx, req.UnitID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	property, err := s.repo.Property().GetByID(ctx, unit.PropertyID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	if tenant.CompanyID != property.CompanyID {
		return nil, ErrCompanyMismatch
	}

	ref := authz.ResourceRef{
		Kind:       domain.KindLease,
		CompanyID:  property.CompanyID,
		PropertyID: property.ID,
		ManagerID:  strOrEmpty(property.ManagerID),
		TenantID:   tenant.ID,
	}
	if err := authz.Authorize(actor, authz.ActionCreate, ref); err != nil {
		return nil, err
	}

	lease := &domain.Lease{
		TenantID:   req.TenantID,
		UnitID:     req.UnitID,
		StartDate:  startDate,
		EndDate:    endDate,
		RentAmount: req.RentAmount,
		Deposit:    req.Deposit,
	}

	if err := s.repo.Lease().CreateChecked(ctx, lease); err != nil {
		if errors.Is(err, repository.ErrLeaseOverlap) {
			return nil, ErrLeaseOverlap
		}
		return nil, err
	}

	s.activity.Record(ctx, actor, ActivityEntry{
		Action:     "LEASE_CREATED",
		Entity:     domain.KindLease,
		EntityID:   lease.ID,
		CompanyID:  property.CompanyID,
		PropertyID: property.ID,
		TenantID:   tenant.ID,
		LeaseID:    lease.ID,
	})

	s.notifyTenant(ctx, tenant, "Your lease is ready",
		fmt.Sprintf("A lease for unit %s has been created, running from %s to %s.",
			unit.Name, startDate.Format("2006-01-02"), endDate.Format("2006-01-02")))

	return dto.FromLease(lease), nil
}

func (s *LeaseService) GetByID(ctx context.Context, id string) (*dto.LeaseResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	lease, ref, err := s.getWithRef(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.Authorize(actor, authz.ActionRead, ref); err != nil {
		return nil, err
	}

	return dto.FromLease(lease), nil
}

func (s *LeaseService) List(ctx context.Context, params dto.ListQueryParams) (*dto.LeaseListResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	scope, err := authz.ScopeFor(actor, domain.KindLease, authz.ActionList)
	if err != nil {
		return nil, err
	}

	q := params.ToListQuery()
	leases, total, err := s.repo.Lease().List(ctx, scope, q)
	if err != nil {
		return nil, err
	}

	return &dto.LeaseListResponse{
		Data:       dto.FromLeases(leases),
		Pagination: dto.NewPagination(total, q.Page, q.Limit),
	}, nil
}

func (s *LeaseService) Update(ctx context.Context, id string, req dto.UpdateLeaseRequest) (*dto.LeaseResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	lease, ref, err := s.getWithRef(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.Authorize(actor, authz.ActionUpdate, ref); err != nil {
		return nil, err
	}

	datesChanged := false
	if req.StartDate != nil {
		startDate, err := pkgutils.ParseDate(*req.StartDate)
		if err != nil {
			return nil, ErrInvalidDateRange
		}
		lease.StartDate = startDate
		datesChanged = true
	}
	if req.EndDate != nil {
		endDate, err := pkgutils.ParseDate(*req.EndDate)
		if err != nil {
			return nil, ErrInvalidDateRange
		}
		lease.EndDate = endDate
		datesChanged = true
	}
	if lease.StartDate.After(lease.EndDate) {
		return nil, ErrInvalidDateRange
	}
	if req.RentAmount != nil {
		lease.RentAmount = *req.RentAmount
	}
	if req.Deposit != nil {
		lease.Deposit = *req.Deposit
	}

	if err := s.repo.Lease().UpdateChecked(ctx, lease, datesChanged); err != nil {
		if errors.Is(err, repository.ErrLeaseOverlap) {
			return nil, ErrLeaseOverlap
		}
		return nil, err
	}

	s.activity.Record(ctx, actor, ActivityEntry{
		Action:     "LEASE_UPDATED",
		Entity:     domain.KindLease,
		EntityID:   lease.ID,
		CompanyID:  ref.CompanyID,
		PropertyID: ref.PropertyID,
		TenantID:   lease.TenantID,
		LeaseID:    lease.ID,
	})

	return dto.FromLease(lease), nil
}

func (s *LeaseService) Delete(ctx context.Context, id string) error {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return authz.ErrUnauthorized
	}

	lease, ref, err := s.getWithRef(ctx, id)
	if err != nil {
		return err
	}

	if err := authz.Authorize(actor, authz.ActionDelete, ref); err != nil {
		return err
	}

	if err := s.repo.Lease().Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(ctx, actor, ActivityEntry{
		Action:     "LEASE_DELETED",
		Entity:     domain.KindLease,
		EntityID:   lease.ID,
		CompanyID:  ref.CompanyID,
		PropertyID: ref.PropertyID,
		TenantID:   lease.TenantID,
		LeaseID:    lease.ID,
	})

	return nil
}

// getWithRef loads a lease and resolves its owner attributes through unit and
// property.
func (s *LeaseService) getWithRef(ctx context.Context, id string) (*domain.Lease, authz.ResourceRef, error) {
	lease, err := s.repo.Lease().GetByID(ctx, id)
	if err != nil {
		return nil, authz.ResourceRef{}, mapNotFound(err)
	}

	unit, err := s.repo.Unit().GetByID(ctx, lease.UnitID)
	if err != nil {
		return nil, authz.ResourceRef{}, mapNotFound(err)
	}

	property, err := s.repo.Property().GetByID(ctx, unit.PropertyID)
	if err != nil {
		return nil, authz.ResourceRef{}, mapNotFound(err)
	}

	ref := authz.ResourceRef{
		Kind:       domain.KindLease,
		CompanyID:  property.CompanyID,
		PropertyID: property.ID,
		ManagerID:  strOrEmpty(property.ManagerID),
		TenantID:   lease.TenantID,
	}
	return lease, ref, nil
}

// notifyTenant enqueues an email to the tenant's user. Failures are logged,
// never propagated.
func (s *LeaseService) notifyTenant(ctx context.Context, tenant *domain.Tenant, subject, body string) {
	if s.notifier == nil {
		return
	}

	user, err := s.repo.User().GetByID(ctx, tenant.UserID)
	if err != nil {
		s.logger.Error("failed to resolve tenant user for notification", err)
		return
	}

	if err := s.notifier.SendEmailMessage(ctx, user.Email, subject, body); err != nil {
		s.logger.Error("failed to enqueue lease notification", err)
	}
}
