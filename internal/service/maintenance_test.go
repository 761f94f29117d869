package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/rentdesk/property-management-api/internal/api/dto"
	"github.com/rentdesk/property-management-api/internal/domain"
	"github.com/rentdesk/property-management-api/internal/mocks"
	"github.com/rentdesk/property-management-api/pkg/logger"
)

type MaintenanceServiceTestSuite struct {
	suite.Suite
	mockRepo        *mocks.Repository
	mockMaintenance *mocks.MaintenanceRepository
	mockUnit        *mocks.UnitRepository
	mockProperty    *mocks.PropertyRepository
	mockUser        *mocks.UserRepository
	mockActivity    *mocks.ActivityLogRepository
	service         *MaintenanceService
}

func (s *MaintenanceServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockMaintenance = new(mocks.MaintenanceRepository)
	s.mockUnit = new(mocks.UnitRepository)
	s.mockProperty = new(mocks.PropertyRepository)
	s.mockUser = new(mocks.UserRepository)
	s.mockActivity = new(mocks.ActivityLogRepository)

	s.mockRepo.On("Maintenance").Return(s.mockMaintenance)
	s.mockRepo.On("Unit").Return(s.mockUnit)
	s.mockRepo.On("Property").Return(s.mockProperty)
	s.mockRepo.On("User").Return(s.mockUser)
	s.mockRepo.On("ActivityLog").Return(s.mockActivity)

	activity := NewActivityService(s.mockRepo, nil, logger.NewLogger("test"))
	s.service = NewMaintenanceService(s.mockRepo, activity)
}

func TestMaintenanceService(t *testing.T) {
	suite.Run(t, new(MaintenanceServiceTestSuite))
}

func (s *MaintenanceServiceTestSuite) adminCtx() context.Context {
	return ctxWithActor(&domain.Actor{UserID: "ca1", Role: domain.RoleCompanyAdmin, CompanyID: "c1"})
}

func (s *MaintenanceServiceTestSuite) requestFixtures(status domain.MaintenanceStatus) *domain.MaintenanceRequest {
	request := &domain.MaintenanceRequest{
		ID:         "m1",
		Title:      "Leaking faucet",
		Priority:   domain.PriorityMedium,
		Status:     status,
		PropertyID: "p1",
		UnitID:     "un1",
	}
	s.mockMaintenance.On("GetByID", mock.Anything, "m1").Return(request, nil)
	s.mockProperty.On("GetByID", mock.Anything, "p1").Return(&domain.Property{ID: "p1", CompanyID: "c1"}, nil)
	return request
}

func (s *MaintenanceServiceTestSuite) TestUpdate_ValidTransition() {
	s.requestFixtures(domain.MaintenancePending)
	s.mockMaintenance.On("Update", mock.Anything, mock.AnythingOfType("*domain.MaintenanceRequest")).Return(nil)
	s.mockActivity.On("Create", mock.Anything, mock.AnythingOfType("*domain.ActivityLog")).Return(&domain.ActivityLog{}, nil)

	status := "IN_PROGRESS"
	resp, err := s.service.Update(s.adminCtx(), "m1", dto.UpdateMaintenanceRequest{Status: &status})

	s.NoError(err)
	s.Equal("IN_PROGRESS", resp.Status)
	s.mockMaintenance.AssertExpectations(s.T())
}

func (s *MaintenanceServiceTestSuite) TestUpdate_SkipTransition() {
	s.requestFixtures(domain.MaintenancePending)

	status := "COMPLETED"
	_, err := s.service.Update(s.adminCtx(), "m1", dto.UpdateMaintenanceRequest{Status: &status})

	s.ErrorIs(err, ErrInvalidTransition)
	s.mockMaintenance.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *MaintenanceServiceTestSuite) TestUpdate_TerminalStatus() {
	s.requestFixtures(domain.MaintenanceCompleted)

	status := "IN_PROGRESS"
	_, err := s.service.Update(s.adminCtx(), "m1", dto.UpdateMaintenanceRequest{Status: &status})

	s.ErrorIs(err, ErrInvalidTransition)
}

func (s *MaintenanceServiceTestSuite) TestUpdate_UnknownStatus() {
	s.requestFixtures(domain.MaintenancePending)

	status := "DONE"
	_, err := s.service.Update(s.adminCtx(), "m1", dto.UpdateMaintenanceRequest{Status: &status})

	s.ErrorIs(err, ErrInvalidStatus)
}

func (s *MaintenanceServiceTestSuite) TestUpdate_UnknownAssignee() {
	s.requestFixtures(domain.MaintenancePending)
	s.mockUser.On("GetByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	assignee := "ghost"
	_, err := s.service.Update(s.adminCtx(), "m1", dto.UpdateMaintenanceRequest{AssignedToID: &assignee})

	s.ErrorIs(err, ErrNotFound)
}

func (s *MaintenanceServiceTestSuite) TestCreate_TenantFilesOwnRequest() {
	ctx := ctxWithActor(&domain.Actor{UserID: "u1", Role: domain.RoleTenant, CompanyID: "c1", TenantID: "t1"})

	s.mockUnit.On("GetByID", mock.Anything, "un1").Return(&domain.Unit{ID: "un1", PropertyID: "p1"}, nil)
	s.mockProperty.On("GetByID", mock.Anything, "p1").Return(&domain.Property{ID: "p1", CompanyID: "c1"}, nil)
	s.mockMaintenance.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.MaintenanceRequest) bool {
		return r.TenantID != nil && *r.TenantID == "t1" && r.Status == domain.MaintenancePending
	})).Return(&domain.MaintenanceRequest{ID: "m1", Status: domain.MaintenancePending, Priority: domain.PriorityMedium, PropertyID: "p1", UnitID: "un1"}, nil)
	s.mockActivity.On("Create", mock.Anything, mock.AnythingOfType("*domain.ActivityLog")).Return(&domain.ActivityLog{}, nil)

	resp, err := s.service.Create(ctx, dto.CreateMaintenanceRequest{Title: "Leaking faucet", UnitID: "un1"})

	s.NoError(err)
	s.Equal("PENDING", resp.Status)
	s.mockMaintenance.AssertExpectations(s.T())
}

func (s *MaintenanceServiceTestSuite) TestCreate_InvalidPriority() {
	_, err := s.service.Create(s.adminCtx(), dto.CreateMaintenanceRequest{Title: "Broken lock", UnitID: "un1", Priority: "CRITICAL"})

	s.ErrorIs(err, ErrInvalidPriority)
}
