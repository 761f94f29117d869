package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/rentdesk/property-management-api/internal/api/dto"
	"github.com/rentdesk/property-management-api/internal/authz"
	"github.com/rentdesk/property-management-api/internal/domain"
	"github.com/rentdesk/property-management-api/internal/mocks"
	"github.com/rentdesk/property-management-api/pkg/logger"
)

type CompanyServiceTestSuite struct {
	suite.Suite
	mockRepo     *mocks.Repository
	mockCompany  *mocks.CompanyRepository
	mockActivity *mocks.ActivityLogRepository
	service      *CompanyService
}

func (s *CompanyServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockCompany = new(mocks.CompanyRepository)
	s.mockActivity = new(mocks.ActivityLogRepository)

	s.mockRepo.On("Company").Return(s.mockCompany)
	s.mockRepo.On("ActivityLog").Return(s.mockActivity)

	activity := NewActivityService(s.mockRepo, nil, logger.NewLogger("test"))
	s.service = NewCompanyService(s.mockRepo, activity)
}

func TestCompanyService(t *testing.T) {
	suite.Run(t, new(CompanyServiceTestSuite))
}

func (s *CompanyServiceTestSuite) TestCreate_Success() {
	ctx := ctxWithActor(&domain.Actor{UserID: "sa1", Role: domain.RoleSuperAdmin})

	s.mockCompany.On("GetByName", mock.Anything, "Acme").Return(nil, gorm.ErrRecordNotFound)
	s.mockCompany.On("Create", mock.Anything, mock.AnythingOfType("*domain.Company")).
		Return(&domain.Company{ID: "c1", Name: "Acme"}, nil)
	s.mockActivity.On("Create", mock.Anything, mock.AnythingOfType("*domain.ActivityLog")).Return(&domain.ActivityLog{}, nil)

	resp, err := s.service.Create(ctx, dto.CreateCompanyRequest{Name: "Acme"})

	s.NoError(err)
	s.Equal("c1", resp.ID)
	s.Equal("Acme", resp.Name)
	s.mockCompany.AssertExpectations(s.T())
}

func (s *CompanyServiceTestSuite) TestCreate_NameTaken() {
	ctx := ctxWithActor(&domain.Actor{UserID: "sa1", Role: domain.RoleSuperAdmin})

	s.mockCompany.On("GetByName", mock.Anything, "Acme").Return(&domain.Company{ID: "c1", Name: "Acme"}, nil)

	_, err := s.service.Create(ctx, dto.CreateCompanyRequest{Name: "Acme"})

	s.ErrorIs(err, ErrCompanyNameTaken)
	s.mockCompany.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *CompanyServiceTestSuite) TestCreate_OnlySuperAdmin() {
	ctx := ctxWithActor(&domain.Actor{UserID: "ca1", Role: domain.RoleCompanyAdmin, CompanyID: "c1"})

	_, err := s.service.Create(ctx, dto.CreateCompanyRequest{Name: "Acme"})

	s.ErrorIs(err, authz.ErrForbidden)
}

func (s *CompanyServiceTestSuite) TestGetByID_ScopedToOwnCompany() {
	ctx := ctxWithActor(&domain.Actor{UserID: "ca1", Role: domain.RoleCompanyAdmin, CompanyID: "c1"})

	s.mockCompany.On("GetByID", mock.Anything, "c2").Return(&domain.Company{ID: "c2", Name: "Rival"}, nil)

	_, err := s.service.GetByID(ctx, "c2")

	s.ErrorIs(err, authz.ErrForbidden)
}

func (s *CompanyServiceTestSuite) TestGetByID_NotFound() {
	ctx := ctxWithActor(&domain.Actor{UserID: "sa1", Role: domain.RoleSuperAdmin})

	s.mockCompany.On("GetByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := s.service.GetByID(ctx, "ghost")

	s.ErrorIs(err, ErrNotFound)
}

func (s *CompanyServiceTestSuite) TestList_CompanyAdminScope() {
	ctx := ctxWithActor(&domain.Actor{UserID: "ca1", Role: domain.RoleCompanyAdmin, CompanyID: "c1"})

	s.mockCompany.On("List", mock.Anything, authz.Scope{CompanyID: "c1"}, mock.AnythingOfType("domain.ListQuery")).
		Return([]domain.Company{{ID: "c1", Name: "Acme"}}, int64(1), nil)

	resp, err := s.service.List(ctx, dto.ListQueryParams{})

	s.NoError(err)
	s.Len(resp.Data, 1)
	s.Equal(int64(1), resp.Pagination.Total)
	s.mockCompany.AssertExpectations(s.T())
}

func (s *CompanyServiceTestSuite) TestList_NoActor() {
	_, err := s.service.List(context.Background(), dto.ListQueryParams{})
	s.ErrorIs(err, authz.ErrUnauthorized)
}
