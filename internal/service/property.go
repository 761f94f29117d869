package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rentdesk/property-management-api/internal/api/dto"
	"github.com/rentdesk/property-management-api/internal/authz"
	"github.com/rentdesk/property-management-api/internal/domain"
	"github.com/rentdesk/property-management-api/internal/repository"
	"github.com/rentdesk/property-management-api/internal/utils"
)

type PropertyService struct {
	repo     repository.Repository
	activity *ActivityService
}

func NewPropertyService(repo repository.Repository, activity *ActivityService) *PropertyService {
	return &PropertyService{
		repo:     repo,
		activity: activity,
	}
}

func propertyRef(property *domain.Property) authz.ResourceRef {
	return authz.ResourceRef{
		Kind:       domain.KindProperty,
		CompanyID:  property.CompanyID,
		PropertyID: property.ID,
		ManagerID:  strOrEmpty(property.ManagerID),
	}
}

func (s *PropertyService) Create(ctx context.Context, req dto.CreatePropertyRequest) (*dto.PropertyResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	ref := authz.ResourceRef{Kind: domain.KindProperty, CompanyID: req.CompanyID}
	if err := authz.Authorize(actor, authz.ActionCreate, ref); err != nil {
		return nil, err
	}

	if _, err := s.repo.Company().GetByID(ctx, req.CompanyID); err != nil {
		return nil, mapNotFound(err)
	}

	if err := s.validateManager(ctx, req.ManagerID, req.CompanyID); err != nil {
		return nil, err
	}

	property, err := s.repo.Property().Create(ctx, &domain.Property{
		Name:      req.Name,
		Address:   req.Address,
		CompanyID: req.CompanyID,
		ManagerID: req.ManagerID,
	})
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor, ActivityEntry{
		Action:     "PROPERTY_CREATED",
		Entity:     domain.KindProperty,
		EntityID:   property.ID,
		CompanyID:  property.CompanyID,
		PropertyID: property.ID,
	})

	return dto.FromProperty(property), nil
}

func (s *PropertyService) GetByID(ctx context.Context, id string) (*dto.PropertyResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	property, err := s.repo.Property().GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	if err := authz.Authorize(actor, authz.ActionRead, propertyRef(property)); err != nil {
		return nil, err
	}

	return dto.FromProperty(property), nil
}

func (s *PropertyService) List(ctx context.Context, params dto.ListQueryParams) (*dto.PropertyListResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	scope, err := authz.ScopeFor(actor, domain.KindProperty, authz.ActionList)
	if err != nil {
		return nil, err
	}

	q := params.ToListQuery()
	properties, total, err := s.repo.Property().List(ctx, scope, q)
	if err != nil {
		return nil, err
	}

	return &dto.PropertyListResponse{
		Data:       dto.FromProperties(properties),
		Pagination: dto.NewPagination(total, q.Page, q.Limit),
	}, nil
}

func (s *PropertyService) Update(ctx context.Context, id string, req dto.UpdatePropertyRequest) (*dto.PropertyResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	property, err := s.repo.Property().GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	if err := authz.Authorize(actor, authz.ActionUpdate, propertyRef(property)); err != nil {
		return nil, err
	}

	if req.Name != nil {
		property.Name = *req.Name
	}
	if req.Address != nil {
		property.Address = *req.Address
	}
	if req.ManagerID != nil {
		if err := s.validateManager(ctx, req.ManagerID, property.CompanyID); err != nil {
			return nil, err
		}
		property.ManagerID = req.ManagerID
	}

	if err := s.repo.Property().Update(ctx, property); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor, ActivityEntry{
		Action:     "PROPERTY_UPDATED",
		Entity:     domain.KindProperty,
		EntityID:   property.ID,
		CompanyID:  property.CompanyID,
		PropertyID: property.ID,
	})

	return dto.FromProperty(property), nil
}

func (s *PropertyService) Delete(ctx context.Context, id string) error {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return authz.ErrUnauthorized
	}

	property, err := s.repo.Property().GetByID(ctx, id)
	if err != nil {
		return mapNotFound(err)
	}

	if err := authz.Authorize(actor, authz.ActionDelete, propertyRef(property)); err != nil {
		return err
	}

	if err := s.repo.Property().Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(ctx, actor, ActivityEntry{
		Action:     "PROPERTY_DELETED",
		Entity:     domain.KindProperty,
		EntityID:   property.ID,
		CompanyID:  property.CompanyID,
		PropertyID: property.ID,
	})

	return nil
}

// validateManager checks that the assigned manager exists, holds the
// PROPERTY_MANAGER role, and belongs to the property's company.
func (s *PropertyService) validateManager(ctx context.Context, managerID *string, companyID string) error {
	if managerID == nil || *managerID == "" {
		return nil
	}

	manager, err := s.repo.User().GetByID(ctx, *managerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if manager.Role != domain.RolePropertyManager {
		return ErrManagerMismatch
	}
	if manager.CompanyID == nil || *manager.CompanyID != companyID {
		return ErrManagerMismatch
	}

	return nil
}
