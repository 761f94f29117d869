package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rentdesk/property-management-api/internal/api/dto"
	"github.com/rentdesk/property-management-api/internal/authz"
	"github.com/rentdesk/property-management-api/internal/domain"
	"github.com/rentdesk/property-management-api/internal/repository"
	"github.com/rentdesk/property-management-api/internal/utils"
)

type TenantService struct {
	repo     repository.Repository
	activity *ActivityService
}

func NewTenantService(repo repository.Repository, activity *ActivityService) *TenantService {
	return &TenantService{
		repo:     repo,
		activity: activity,
	}
}

func (s *TenantService) Create(ctx context.Context, req dto.CreateTenantRequest) (*dto.TenantResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	ref := authz.ResourceRef{Kind: domain.KindTenant, CompanyID: req.CompanyID}
	if req.UnitID != nil && *req.UnitID != "" {
		_, property, err := s.resolveUnit(ctx, *req.UnitID, req.CompanyID)
		if err != nil {
			return nil, err
		}
		ref.PropertyID = property.ID
		ref.ManagerID = strOrEmpty(property.ManagerID)
	}
	if err := authz.Authorize(actor, authz.ActionCreate, ref); err != nil {
		return nil, err
	}

	if _, err := s.repo.Company().GetByID(ctx, req.CompanyID); err != nil {
		return nil, mapNotFound(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	companyID := req.CompanyID
	user, err := s.repo.User().Create(ctx, &domain.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hash),
		Role:      domain.RoleTenant,
		CompanyID: &companyID,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	tenant, err := s.repo.Tenant().Create(ctx, &domain.Tenant{
		UserID:    user.ID,
		CompanyID: req.CompanyID,
		UnitID:    req.UnitID,
		Phone:     req.Phone,
	})
	if err != nil {
		return nil, err
	}
	tenant.User = user

	s.activity.Record(ctx, actor, ActivityEntry{
		Action:     "TENANT_CREATED",
		Entity:     domain.KindTenant,
		EntityID:   tenant.ID,
		CompanyID:  tenant.CompanyID,
		PropertyID: ref.PropertyID,
		TenantID:   tenant.ID,
	})

	return dto.FromTenant(tenant), nil
}

func (s *TenantService) GetByID(ctx context.Context, id string) (*dto.TenantResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	tenant, err := s.repo.Tenant().GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	ref, err := s.tenantRef(ctx, tenant)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(actor, authz.ActionRead, ref); err != nil {
		return nil, err
	}

	return dto.FromTenant(tenant), nil
}

func (s *TenantService) List(ctx context.Context, params dto.ListQueryParams) (*dto.TenantListResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	scope, err := authz.ScopeFor(actor, domain.KindTenant, authz.ActionList)
	if err != nil {
		return nil, err
	}

	q := params.ToListQuery()
	tenants, total, err := s.repo.Tenant().List(ctx, scope, q)
	if err != nil {
		return nil, err
	}

	return &dto.TenantListResponse{
		Data:       dto.FromTenants(tenants),
		Pagination: dto.NewPagination(total, q.Page, q.Limit),
	}, nil
}

func (s *TenantService) Update(ctx context.Context, id string, req dto.UpdateTenantRequest) (*dto.TenantResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	tenant, err := s.repo.Tenant().GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	ref, err := s.tenantRef(ctx, tenant)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(actor, authz.ActionUpdate, ref); err != nil {
		return nil, err
	}

	if req.Phone != nil {
		tenant.Phone = *req.Phone
	}
	if req.UnitID != nil {
		if *req.UnitID == "" {
			tenant.UnitID = nil
		} else {
			if _, _, err := s.resolveUnit(ctx, *req.UnitID, tenant.CompanyID); err != nil {
				return nil, err
			}
			tenant.UnitID = req.UnitID
		}
	}

	if err := s.repo.Tenant().Update(ctx, tenant); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor, ActivityEntry{
		Action:    "TENANT_UPDATED",
		Entity:    domain.KindTenant,
		EntityID:  tenant.ID,
		CompanyID: tenant.CompanyID,
		TenantID:  tenant.ID,
	})

	return dto.FromTenant(tenant), nil
}

func (s *TenantService) Delete(ctx context.Context, id string) error {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return authz.ErrUnauthorized
	}

	tenant, err := s.repo.Tenant().GetByID(ctx, id)
	if err != nil {
		return mapNotFound(err)
	}

	ref, err := s.tenantRef(ctx, tenant)
	if err != nil {
		return err
	}
	if err := authz.Authorize(actor, authz.ActionDelete, ref); err != nil {
		return err
	}

	leases, err := s.repo.Lease().CountByTenant(ctx, id)
	if err != nil {
		return err
	}
	if leases > 0 {
		return ErrTenantHasLeases
	}

	if err := s.repo.Tenant().Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(ctx, actor, ActivityEntry{
		Action:    "TENANT_DELETED",
		Entity:    domain.KindTenant,
		EntityID:  tenant.ID,
		CompanyID: tenant.CompanyID,
		TenantID:  tenant.ID,
	})

	return nil
}

// tenantRef resolves the tenant's owner attributes; the property is reached
// through the assigned unit when one exists.
func (s *TenantService) tenantRef(ctx context.Context, tenant *domain.Tenant) (authz.ResourceRef, error) {
	ref := authz.ResourceRef{
		Kind:      domain.KindTenant,
		CompanyID: tenant.CompanyID,
		TenantID:  tenant.ID,
	}

	if tenant.UnitID != nil && *tenant.UnitID != "" {
		unit, err := s.repo.Unit().GetByID(ctx, *tenant.UnitID)
		if err != nil {
			return authz.ResourceRef{}, mapNotFound(err)
		}
		property, err := s.repo.Property().GetByID(ctx, unit.PropertyID)
		if err != nil {
			return authz.ResourceRef{}, mapNotFound(err)
		}
		ref.PropertyID = property.ID
		ref.ManagerID = strOrEmpty(property.ManagerID)
	}

	return ref, nil
}

// resolveUnit loads a unit and its property, checking the unit belongs to the
// expected company.
func (s *TenantService) resolveUnit(ctx context.Context, unitID, companyID string) (*domain.Unit, *domain.Property, error) {
	unit, err := s.repo.Unit().GetByID(ctx, unitID)
	if err != nil {
		return nil, nil, mapNotFound(err)
	}

	property, err := s.repo.Property().GetByID(ctx, unit.PropertyID)
	if err != nil {
		return nil, nil, mapNotFound(err)
	}

	if property.CompanyID != companyID {
		return nil, nil, ErrCompanyMismatch
	}

	return unit, property, nil
}
