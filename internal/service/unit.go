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

type UnitService struct {
	repo     repository.Repository
	activity *ActivityService
}

func NewUnitService(repo repository.Repository, activity *ActivityService) *UnitService {
	return &UnitService{
		repo:     repo,
		activity: activity,
	}
}

// unitRef resolves the unit's owner attributes through its property.
func unitRef(unit *domain.Unit, property *domain.Property) authz.ResourceRef {
	return authz.ResourceRef{
		Kind:       domain.KindUnit,
		CompanyID:  property.CompanyID,
		PropertyID: property.ID,
		ManagerID:  strOrEmpty(property.ManagerID),
	}
}

func (s *UnitService) Create(ctx context.Context, req dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	property, err := s.repo.Property().GetByID(ctx, req.PropertyID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	ref := authz.ResourceRef{
		Kind:       domain.KindUnit,
		CompanyID:  property.CompanyID,
		PropertyID: property.ID,
		ManagerID:  strOrEmpty(property.ManagerID),
	}
	if err := authz.Authorize(actor, authz.ActionCreate, ref); err != nil {
		return nil, err
	}

	exists, err := s.repo.Unit().HasDuplicate(ctx, req.Name, req.Floor, req.PropertyID, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUnitExists
	}

	unit, err := s.repo.Unit().Create(ctx, &domain.Unit{
		Name:       req.Name,
		Floor:      req.Floor,
		PropertyID: req.PropertyID,
	})
	if err != nil {
		// Backstop for a concurrent insert racing the duplicate pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUnitExists
		}
		return nil, err
	}

	s.activity.Record(ctx, actor, ActivityEntry{
		Action:     "UNIT_CREATED",
		Entity:     domain.KindUnit,
		EntityID:   unit.ID,
		CompanyID:  property.CompanyID,
		PropertyID: property.ID,
	})

	return dto.FromUnit(unit), nil
}

func (s *UnitService) GetByID(ctx context.Context, id string) (*dto.UnitResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	unit, property, err := s.getWithProperty(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.Authorize(actor, authz.ActionRead, unitRef(unit, property)); err != nil {
		return nil, err
	}

	return dto.FromUnit(unit), nil
}

func (s *UnitService) List(ctx context.Context, params dto.ListQueryParams) (*dto.UnitListResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	scope, err := authz.ScopeFor(actor, domain.KindUnit, authz.ActionList)
	if err != nil {
		return nil, err
	}

	q := params.ToListQuery()
	units, total, err := s.repo.Unit().List(ctx, scope, q)
	if err != nil {
		return nil, err
	}

	return &dto.UnitListResponse{
		Data:       dto.FromUnits(units),
		Pagination: dto.NewPagination(total, q.Page, q.Limit),
	}, nil
}

func (s *UnitService) Update(ctx context.Context, id string, req dto.UpdateUnitRequest) (*dto.UnitResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	unit, property, err := s.getWithProperty(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.Authorize(actor, authz.ActionUpdate, unitRef(unit, property)); err != nil {
		return nil, err
	}

	if req.Name != nil {
		unit.Name = *req.Name
	}
	if req.Floor != nil {
		unit.Floor = *req.Floor
	}

	exists, err := s.repo.Unit().HasDuplicate(ctx, unit.Name, unit.Floor, unit.PropertyID, unit.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUnitExists
	}

	if err := s.repo.Unit().Update(ctx, unit); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUnitExists
		}
		return nil, err
	}

	s.activity.Record(ctx, actor, ActivityEntry{
		Action:     "UNIT_UPDATED",
		Entity:     domain.KindUnit,
		EntityID:   unit.ID,
		CompanyID:  property.CompanyID,
		PropertyID: property.ID,
	})

	return dto.FromUnit(unit), nil
}

func (s *UnitService) Delete(ctx context.Context, id string) error {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return authz.ErrUnauthorized
	}

	unit, property, err := s.getWithProperty(ctx, id)
	if err != nil {
		return err
	}

	if err := authz.Authorize(actor, authz.ActionDelete, unitRef(unit, property)); err != nil {
		return err
	}

	occupied, err := s.repo.Unit().HasOccupant(ctx, id)
	if err != nil {
		return err
	}
	if occupied {
		return ErrUnitOccupied
	}

	if err := s.repo.Unit().Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(ctx, actor, ActivityEntry{
		Action:     "UNIT_DELETED",
		Entity:     domain.KindUnit,
		EntityID:   unit.ID,
		CompanyID:  property.CompanyID,
		PropertyID: property.ID,
	})

	return nil
}

func (s *UnitService) getWithProperty(ctx context.Context, id string) (*domain.Unit, *domain.Property, error) {
	unit, err := s.repo.Unit().GetByID(ctx, id)
	if err != nil {
		return nil, nil, mapNotFound(err)
	}

	property, err := s.repo.Property().GetByID(ctx, unit.PropertyID)
	if err != nil {
		return nil, nil, mapNotFound(err)
	}

	return unit, property, nil
}
