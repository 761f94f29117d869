package service

import (
	"context"

	"github.com/rentdesk/property-management-api/internal/api/dto"
	"github.com/rentdesk/property-management-api/internal/authz"
	"github.com/rentdesk/property-management-api/internal/domain"
	"github.com/rentdesk/property-management-api/internal/repository"
	"github.com/rentdesk/property-management-api/internal/utils"
)

type MaintenanceService struct {
	repo     repository.Repository
	activity *ActivityService
}

func NewMaintenanceService(repo repository.Repository, activity *ActivityService) *MaintenanceService {
	return &MaintenanceService{
		repo:     repo,
		activity: activity,
	}
}

func (s *MaintenanceService) Create(ctx context.Context, req dto.CreateMaintenanceRequest) (*dto.MaintenanceResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	priority := domain.PriorityMedium
	if req.Priority != "" {
		if !domain.IsValidMaintenancePriority(req.Priority) {
			return nil, ErrInvalidPriority
		}
		priority = domain.MaintenancePriority(req.Priority)
	}

	unit, err := s.repo.Unit().GetByID(ctx, req.UnitID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	property, err := s.repo.Property().GetByID(ctx, unit.PropertyID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	// A tenant files requests in their own name; staff-created requests carry
	// no tenant link unless added later.
	var tenantID *string
	if actor.Role == domain.RoleTenant && actor.TenantID != "" {
		id := actor.TenantID
		tenantID = &id
	}

	ref := authz.ResourceRef{
		Kind:       domain.KindMaintenance,
		CompanyID:  property.CompanyID,
		PropertyID: property.ID,
		ManagerID:  strOrEmpty(property.ManagerID),
		TenantID:   strOrEmpty(tenantID),
	}
	if err := authz.Authorize(actor, authz.ActionCreate, ref); err != nil {
		return nil, err
	}

	request, err := s.repo.Maintenance().Create(ctx, &domain.MaintenanceRequest{
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		Status:      domain.MaintenancePending,
		TenantID:    tenantID,
		PropertyID:  property.ID,
		UnitID:      unit.ID,
		CreatedByID: actor.UserID,
	})
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor, ActivityEntry{
		Action:     "MAINTENANCE_CREATED",
		Entity:     domain.KindMaintenance,
		EntityID:   request.ID,
		CompanyID:  property.CompanyID,
		PropertyID: property.ID,
		TenantID:   strOrEmpty(tenantID),
	})

	return dto.FromMaintenance(request), nil
}

func (s *MaintenanceService) GetByID(ctx context.Context, id string) (*dto.MaintenanceResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	request, ref, err := s.getWithRef(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.Authorize(actor, authz.ActionRead, ref); err != nil {
		return nil, err
	}

	return dto.FromMaintenance(request), nil
}

func (s *MaintenanceService) List(ctx context.Context, params dto.ListQueryParams) (*dto.MaintenanceListResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	scope, err := authz.ScopeFor(actor, domain.KindMaintenance, authz.ActionList)
	if err != nil {
		return nil, err
	}

	q := params.ToListQuery()
	requests, total, err := s.repo.Maintenance().List(ctx, scope, q)
	if err != nil {
		return nil, err
	}

	return &dto.MaintenanceListResponse{
		Data:       dto.FromMaintenances(requests),
		Pagination: dto.NewPagination(total, q.Page, q.Limit),
	}, nil
}

func (s *MaintenanceService) Update(ctx context.Context, id string, req dto.UpdateMaintenanceRequest) (*dto.MaintenanceResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	request, ref, err := s.getWithRef(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.Authorize(actor, authz.ActionUpdate, ref); err != nil {
		return nil, err
	}

	if req.Title != nil {
		request.Title = *req.Title
	}
	if req.Description != nil {
		request.Description = *req.Description
	}
	if req.Priority != nil {
		if !domain.IsValidMaintenancePriority(*req.Priority) {
			return nil, ErrInvalidPriority
		}
		request.Priority = domain.MaintenancePriority(*req.Priority)
	}
	if req.Status != nil {
		if !domain.IsValidMaintenanceStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		next := domain.MaintenanceStatus(*req.Status)
		if !domain.CanTransition(request.Status, next) {
			return nil, ErrInvalidTransition
		}
		request.Status = next
	}
	if req.AssignedToID != nil {
		if *req.AssignedToID == "" {
			request.AssignedToID = nil
		} else {
			if _, err := s.repo.User().GetByID(ctx, *req.AssignedToID); err != nil {
				return nil, mapNotFound(err)
			}
			request.AssignedToID = req.AssignedToID
		}
	}

	if err := s.repo.Maintenance().Update(ctx, request); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor, ActivityEntry{
		Action:     "MAINTENANCE_UPDATED",
		Entity:     domain.KindMaintenance,
		EntityID:   request.ID,
		CompanyID:  ref.CompanyID,
		PropertyID: request.PropertyID,
		TenantID:   strOrEmpty(request.TenantID),
	})

	return dto.FromMaintenance(request), nil
}

func (s *MaintenanceService) Delete(ctx context.Context, id string) error {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return authz.ErrUnauthorized
	}

	request, ref, err := s.getWithRef(ctx, id)
	if err != nil {
		return err
	}

	if err := authz.Authorize(actor, authz.ActionDelete, ref); err != nil {
		return err
	}

	if err := s.repo.Maintenance().Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(ctx, actor, ActivityEntry{
		Action:     "MAINTENANCE_DELETED",
		Entity:     domain.KindMaintenance,
		EntityID:   request.ID,
		CompanyID:  ref.CompanyID,
		PropertyID: request.PropertyID,
		TenantID:   strOrEmpty(request.TenantID),
	})

	return nil
}

func (s *MaintenanceService) getWithRef(ctx context.Context, id string) (*domain.MaintenanceRequest, authz.ResourceRef, error) {
	request, err := s.repo.Maintenance().GetByID(ctx, id)
	if err != nil {
		return nil, authz.ResourceRef{}, mapNotFound(err)
	}

	property, err := s.repo.Property().GetByID(ctx, request.PropertyID)
	if err != nil {
		return nil, authz.ResourceRef{}, mapNotFound(err)
	}

	ref := authz.ResourceRef{
		Kind:       domain.KindMaintenance,
		CompanyID:  property.CompanyID,
		PropertyID: property.ID,
		ManagerID:  strOrEmpty(property.ManagerID),
		TenantID:   strOrEmpty(request.TenantID),
	}
	return request, ref, nil
}
