package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/rentdesk/property-management-api/internal/api/dto"
	"github.com/rentdesk/property-management-api/internal/authz"
	"github.com/rentdesk/property-management-api/internal/domain"
	"github.com/rentdesk/property-management-api/internal/mocks"
	"github.com/rentdesk/property-management-api/internal/repository"
	"github.com/rentdesk/property-management-api/pkg/logger"
)

type LeaseServiceTestSuite struct {
	suite.Suite
	mockRepo     *mocks.Repository
	mockLease    *mocks.LeaseRepository
	mockTenant   *mocks.TenantRepository
	mockUnit     *mocks.UnitRepository
	mockProperty *mocks.PropertyRepository
	mockUser     *mocks.UserRepository
	mockActivity *mocks.ActivityLogRepository
	notifier     *MockNotifier
	service      *LeaseService
}

func (s *LeaseServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockLease = new(mocks.LeaseRepository)
	s.mockTenant = new(mocks.TenantRepository)
	s.mockUnit = new(mocks.UnitRepository)
	s.mockProperty = new(mocks.PropertyRepository)
	s.mockUser = new(mocks.UserRepository)
	s.mockActivity = new(mocks.ActivityLogRepository)
	s.notifier = new(MockNotifier)

	s.mockRepo.On("Lease").Return(s.mockLease)
	s.mockRepo.On("Tenant").Return(s.mockTenant)
	s.mockRepo.On("Unit").Return(s.mockUnit)
	s.mockRepo.On("Property").Return(s.mockProperty)
	s.mockRepo.On("User").Return(s.mockUser)
	s.mockRepo.On("ActivityLog").Return(s.mockActivity)

	log := logger.NewLogger("test")
	activity := NewActivityService(s.mockRepo, nil, log)
	s.service = NewLeaseService(s.mockRepo, activity, s.notifier, log)
}

func TestLeaseService(t *testing.T) {
	suite.Run(t, new(LeaseServiceTestSuite))
}

func (s *LeaseServiceTestSuite) adminCtx() context.Context {
	return ctxWithActor(&domain.Actor{UserID: "ca1", Role: domain.RoleCompanyAdmin, CompanyID: "c1"})
}

func (s *LeaseServiceTestSuite) fixtures() {
	s.mockTenant.On("GetByID", mock.Anything, "t1").Return(&domain.Tenant{ID: "t1", UserID: "u1", CompanyID: "c1"}, nil)
	s.mockUnit.On("GetByID", mock.Anything, "un1").Return(&domain.Unit{ID: "un1", Name: "3B", PropertyID: "p1"}, nil)
	s.mockProperty.On("GetByID", mock.Anything, "p1").Return(&domain.Property{ID: "p1", CompanyID: "c1"}, nil)
}

func (s *LeaseServiceTestSuite) TestCreate_Success() {
	s.fixtures()
	s.mockLease.On("CreateChecked", mock.Anything, mock.AnythingOfType("*domain.Lease")).Return(nil)
	s.mockActivity.On("Create", mock.Anything, mock.AnythingOfType("*domain.ActivityLog")).Return(&domain.ActivityLog{}, nil)
	s.mockUser.On("GetByID", mock.Anything, "u1").Return(&domain.User{ID: "u1", Email: "john@example.com"}, nil)
	s.notifier.On("SendEmailMessage", mock.Anything, "john@example.com", "Your lease is ready", mock.AnythingOfType("string")).Return(nil)

	resp, err := s.service.Create(s.adminCtx(), dto.CreateLeaseRequest{
		TenantID:   "t1",
		UnitID:     "un1",
		StartDate:  "2025-01-01",
		EndDate:    "2025-12-31",
		RentAmount: 1200,
		Deposit:    2400,
	})

	s.NoError(err)
	s.Equal("t1", resp.TenantID)
	s.Equal(day("2025-01-01"), resp.StartDate)
	s.Equal(day("2025-12-31"), resp.EndDate)
	s.mockLease.AssertExpectations(s.T())
	s.notifier.AssertExpectations(s.T())
}

func (s *LeaseServiceTestSuite) TestCreate_Overlap() {
	s.fixtures()
	s.mockLease.On("CreateChecked", mock.Anything, mock.AnythingOfType("*domain.Lease")).
		Return(repository.ErrLeaseOverlap)

	_, err := s.service.Create(s.adminCtx(), dto.CreateLeaseRequest{
		TenantID:   "t1",
		UnitID:     "un1",
		StartDate:  "2025-01-01",
		EndDate:    "2025-12-31",
		RentAmount: 1200,
	})

	s.ErrorIs(err, ErrLeaseOverlap)
	s.notifier.AssertNotCalled(s.T(), "SendEmailMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *LeaseServiceTestSuite) TestCreate_EndBeforeStart() {
	_, err := s.service.Create(s.adminCtx(), dto.CreateLeaseRequest{
		TenantID:   "t1",
		UnitID:     "un1",
		StartDate:  "2025-12-31",
		EndDate:    "2025-01-01",
		RentAmount: 1200,
	})

	s.ErrorIs(err, ErrInvalidDateRange)
}

func (s *LeaseServiceTestSuite) TestCreate_BadDateFormat() {
	_, err := s.service.Create(s.adminCtx(), dto.CreateLeaseRequest{
		TenantID:   "t1",
		UnitID:     "un1",
		StartDate:  "01/01/2025",
		EndDate:    "2025-12-31",
		RentAmount: 1200,
	})

	s.ErrorIs(err, ErrInvalidDateRange)
}

func (s *LeaseServiceTestSuite) TestCreate_TenantFromOtherCompany() {
	s.mockTenant.On("GetByID", mock.Anything, "t1").Return(&domain.Tenant{ID: "t1", UserID: "u1", CompanyID: "c2"}, nil)
	s.mockUnit.On("GetByID", mock.Anything, "un1").Return(&domain.Unit{ID: "un1", PropertyID: "p1"}, nil)
	s.mockProperty.On("GetByID", mock.Anything, "p1").Return(&domain.Property{ID: "p1", CompanyID: "c1"}, nil)

	_, err := s.service.Create(s.adminCtx(), dto.CreateLeaseRequest{
		TenantID:   "t1",
		UnitID:     "un1",
		StartDate:  "2025-01-01",
		EndDate:    "2025-12-31",
		RentAmount: 1200,
	})

	s.ErrorIs(err, ErrCompanyMismatch)
}

func (s *LeaseServiceTestSuite) TestCreate_ManagerOutsideScope() {
	s.fixtures()
	ctx := ctxWithActor(&domain.Actor{UserID: "pm1", Role: domain.RolePropertyManager, CompanyID: "c1", PropertyIDs: []string{"p9"}})

	_, err := s.service.Create(ctx, dto.CreateLeaseRequest{
		TenantID:   "t1",
		UnitID:     "un1",
		StartDate:  "2025-01-01",
		EndDate:    "2025-12-31",
		RentAmount: 1200,
	})

	s.ErrorIs(err, authz.ErrForbidden)
	s.mockLease.AssertNotCalled(s.T(), "CreateChecked", mock.Anything, mock.Anything)
}

func (s *LeaseServiceTestSuite) leaseWithRefFixtures() *domain.Lease {
	lease := &domain.Lease{
		ID:         "l1",
		TenantID:   "t1",
		UnitID:     "un1",
		StartDate:  day("2025-01-01"),
		EndDate:    day("2025-12-31"),
		RentAmount: 1200,
	}
	s.mockLease.On("GetByID", mock.Anything, "l1").Return(lease, nil)
	s.mockUnit.On("GetByID", mock.Anything, "un1").Return(&domain.Unit{ID: "un1", PropertyID: "p1"}, nil)
	s.mockProperty.On("GetByID", mock.Anything, "p1").Return(&domain.Property{ID: "p1", CompanyID: "c1"}, nil)
	return lease
}

func (s *LeaseServiceTestSuite) TestUpdate_DateChangeRechecksOverlap() {
	s.leaseWithRefFixtures()
	s.mockLease.On("UpdateChecked", mock.Anything, mock.AnythingOfType("*domain.Lease"), true).Return(nil)
	s.mockActivity.On("Create", mock.Anything, mock.AnythingOfType("*domain.ActivityLog")).Return(&domain.ActivityLog{}, nil)

	end := "2026-06-30"
	_, err := s.service.Update(s.adminCtx(), "l1", dto.UpdateLeaseRequest{EndDate: &end})

	s.NoError(err)
	s.mockLease.AssertExpectations(s.T())
}

func (s *LeaseServiceTestSuite) TestUpdate_AmountOnlySkipsOverlapCheck() {
	s.leaseWithRefFixtures()
	s.mockLease.On("UpdateChecked", mock.Anything, mock.AnythingOfType("*domain.Lease"), false).Return(nil)
	s.mockActivity.On("Create", mock.Anything, mock.AnythingOfType("*domain.ActivityLog")).Return(&domain.ActivityLog{}, nil)

	rent := 1300.0
	resp, err := s.service.Update(s.adminCtx(), "l1", dto.UpdateLeaseRequest{RentAmount: &rent})

	s.NoError(err)
	s.Equal(1300.0, resp.RentAmount)
	s.mockLease.AssertExpectations(s.T())
}
