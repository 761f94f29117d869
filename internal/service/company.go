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

type CompanyService struct {
	repo     repository.Repository
	activity *ActivityService
}

func NewCompanyService(repo repository.Repository, activity *ActivityService) *CompanyService {
	return &CompanyService{
		repo:     repo,
		activity: activity,
	}
}

func companyRef(company *domain.Company) authz.ResourceRef {
	return authz.ResourceRef{
		Kind:      domain.KindCompany,
		CompanyID: company.ID,
	}
}

func (s *CompanyService) Create(ctx context.Context, req dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}
	if err := authz.Authorize(actor, authz.ActionCreate, authz.ResourceRef{Kind: domain.KindCompany}); err != nil {
		return nil, err
	}

	if _, err := s.repo.Company().GetByName(ctx, req.Name); err == nil {
		return nil, ErrCompanyNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	company, err := s.repo.Company().Create(ctx, &domain.Company{Name: req.Name})
	if err != nil {
		// Backstop for a concurrent insert racing the name pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCompanyNameTaken
		}
		return nil, err
	}

	s.activity.Record(ctx, actor, ActivityEntry{
		Action:    "COMPANY_CREATED",
		Entity:    domain.KindCompany,
		EntityID:  company.ID,
		CompanyID: company.ID,
	})

	return dto.FromCompany(company), nil
}

func (s *CompanyService) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	company, err := s.repo.Company().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := authz.Authorize(actor, authz.ActionRead, companyRef(company)); err != nil {
		return nil, err
	}

	return dto.FromCompany(company), nil
}

func (s *CompanyService) List(ctx context.Context, params dto.ListQueryParams) (*dto.CompanyListResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	scope, err := authz.ScopeFor(actor, domain.KindCompany, authz.ActionList)
	if err != nil {
		return nil, err
	}

	q := params.ToListQuery()
	companies, total, err := s.repo.Company().List(ctx, scope, q)
	if err != nil {
		return nil, err
	}

	return &dto.CompanyListResponse{
		Data:       dto.FromCompanies(companies),
		Pagination: dto.NewPagination(total, q.Page, q.Limit),
	}, nil
}

func (s *CompanyService) Update(ctx context.Context, id string, req dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	company, err := s.repo.Company().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := authz.Authorize(actor, authz.ActionUpdate, companyRef(company)); err != nil {
		return nil, err
	}

	company.Name = req.Name
	if err := s.repo.Company().Update(ctx, company); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCompanyNameTaken
		}
		return nil, err
	}

	s.activity.Record(ctx, actor, ActivityEntry{
		Action:    "COMPANY_UPDATED",
		Entity:    domain.KindCompany,
		EntityID:  company.ID,
		CompanyID: company.ID,
	})

	return dto.FromCompany(company), nil
}

func (s *CompanyService) Delete(ctx context.Context, id string) error {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return authz.ErrUnauthorized
	}

	company, err := s.repo.Company().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := authz.Authorize(actor, authz.ActionDelete, companyRef(company)); err != nil {
		return err
	}

	if err := s.repo.Company().Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(ctx, actor, ActivityEntry{
		Action:    "COMPANY_DELETED",
		Entity:    domain.KindCompany,
		EntityID:  company.ID,
		CompanyID: company.ID,
	})

	return nil
}
