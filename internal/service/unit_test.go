package service

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/rentdesk/property-management-api/internal/api/dto"
	"github.com/rentdesk/property-management-api/internal/domain"
	"github.com/rentdesk/property-management-api/internal/mocks"
	"github.com/rentdesk/property-management-api/pkg/logger"
)

type UnitServiceTestSuite struct {
	suite.Suite
	mockRepo     *mocks.Repository
	mockUnit     *mocks.UnitRepository
	mockProperty *mocks.PropertyRepository
	mockActivity *mocks.ActivityLogRepository
	service      *UnitService
}

func (s *UnitServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockUnit = new(mocks.UnitRepository)
	s.mockProperty = new(mocks.PropertyRepository)
	s.mockActivity = new(mocks.ActivityLogRepository)

	s.mockRepo.On("Unit").Return(s.mockUnit)
	s.mockRepo.On("Property").Return(s.mockProperty)
	s.mockRepo.On("ActivityLog").Return(s.mockActivity)

	activity := NewActivityService(s.mockRepo, nil, logger.NewLogger("test"))
	s.service = NewUnitService(s.mockRepo, activity)
}

func TestUnitService(t *testing.T) {
	suite.Run(t, new(UnitServiceTestSuite))
}

func (s *UnitServiceTestSuite) TestCreate_Success() {
	ctx := ctxWithActor(&domain.Actor{UserID: "ca1", Role: domain.RoleCompanyAdmin, CompanyID: "c1"})

	s.mockProperty.On("GetByID", mock.Anything, "p1").Return(&domain.Property{ID: "p1", CompanyID: "c1"}, nil)
	s.mockUnit.On("HasDuplicate", mock.Anything, "3B", 3, "p1", "").Return(false, nil)
	s.mockUnit.On("Create", mock.Anything, mock.AnythingOfType("*domain.Unit")).
		Return(&domain.Unit{ID: "un1", Name: "3B", Floor: 3, PropertyID: "p1"}, nil)
	s.mockActivity.On("Create", mock.Anything, mock.AnythingOfType("*domain.ActivityLog")).Return(&domain.ActivityLog{}, nil)

	resp, err := s.service.Create(ctx, dto.CreateUnitRequest{Name: "3B", Floor: 3, PropertyID: "p1"})

	s.NoError(err)
	s.Equal("un1", resp.ID)
	s.mockUnit.AssertExpectations(s.T())
}

func (s *UnitServiceTestSuite) TestCreate_DuplicateInProperty() {
	ctx := ctxWithActor(&domain.Actor{UserID: "ca1", Role: domain.RoleCompanyAdmin, CompanyID: "c1"})

	s.mockProperty.On("GetByID", mock.Anything, "p1").Return(&domain.Property{ID: "p1", CompanyID: "c1"}, nil)
	s.mockUnit.On("HasDuplicate", mock.Anything, "3B", 3, "p1", "").Return(true, nil)

	_, err := s.service.Create(ctx, dto.CreateUnitRequest{Name: "3B", Floor: 3, PropertyID: "p1"})

	s.ErrorIs(err, ErrUnitExists)
	s.mockUnit.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *UnitServiceTestSuite) TestCreate_ManagerOfProperty() {
	ctx := ctxWithActor(&domain.Actor{UserID: "pm1", Role: domain.RolePropertyManager, CompanyID: "c1"})
	managerID := "pm1"

	s.mockProperty.On("GetByID", mock.Anything, "p1").Return(&domain.Property{ID: "p1", CompanyID: "c1", ManagerID: &managerID}, nil)
	s.mockUnit.On("HasDuplicate", mock.Anything, "3B", 3, "p1", "").Return(false, nil)
	s.mockUnit.On("Create", mock.Anything, mock.AnythingOfType("*domain.Unit")).
		Return(&domain.Unit{ID: "un1", Name: "3B", Floor: 3, PropertyID: "p1"}, nil)
	s.mockActivity.On("Create", mock.Anything, mock.AnythingOfType("*domain.ActivityLog")).Return(&domain.ActivityLog{}, nil)

	_, err := s.service.Create(ctx, dto.CreateUnitRequest{Name: "3B", Floor: 3, PropertyID: "p1"})

	s.NoError(err)
}

func (s *UnitServiceTestSuite) TestDelete_Occupied() {
	ctx := ctxWithActor(&domain.Actor{UserID: "ca1", Role: domain.RoleCompanyAdmin, CompanyID: "c1"})

	s.mockUnit.On("GetByID", mock.Anything, "un1").Return(&domain.Unit{ID: "un1", PropertyID: "p1"}, nil)
	s.mockProperty.On("GetByID", mock.Anything, "p1").Return(&domain.Property{ID: "p1", CompanyID: "c1"}, nil)
	s.mockUnit.On("HasOccupant", mock.Anything, "un1").Return(true, nil)

	err := s.service.Delete(ctx, "un1")

	s.ErrorIs(err, ErrUnitOccupied)
	s.mockUnit.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
}
