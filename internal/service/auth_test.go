package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rentdesk/property-management-api/internal/api/dto"
	"github.com/rentdesk/property-management-api/internal/domain"
	"github.com/rentdesk/property-management-api/internal/mocks"
	"github.com/rentdesk/property-management-api/pkg/logger"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockRepo     *mocks.Repository
	mockUser     *mocks.UserRepository
	mockCompany  *mocks.CompanyRepository
	mockProperty *mocks.PropertyRepository
	mockTenant   *mocks.TenantRepository
	mockActivity *mocks.ActivityLogRepository
	tokens       *MockTokenGenerator
	service      *AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockUser = new(mocks.UserRepository)
	s.mockCompany = new(mocks.CompanyRepository)
	s.mockProperty = new(mocks.PropertyRepository)
	s.mockTenant = new(mocks.TenantRepository)
	s.mockActivity = new(mocks.ActivityLogRepository)
	s.tokens = new(MockTokenGenerator)

	s.mockRepo.On("User").Return(s.mockUser)
	s.mockRepo.On("Company").Return(s.mockCompany)
	s.mockRepo.On("Property").Return(s.mockProperty)
	s.mockRepo.On("Tenant").Return(s.mockTenant)
	s.mockRepo.On("ActivityLog").Return(s.mockActivity)

	activity := NewActivityService(s.mockRepo, nil, logger.NewLogger("test"))
	s.service = NewAuthService(s.mockRepo, s.tokens, activity)
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	companyID := "c1"

	s.mockCompany.On("GetByID", mock.Anything, "c1").Return(&domain.Company{ID: "c1", Name: "Acme"}, nil)
	s.mockUser.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
		Return(&domain.User{ID: "u1", Name: "Jane", Email: "jane@example.com", Role: domain.RoleCompanyAdmin, CompanyID: &companyID}, nil)
	s.tokens.On("GenerateToken", mock.AnythingOfType("*domain.Actor")).Return("signed-token", nil)
	s.mockActivity.On("Create", mock.Anything, mock.AnythingOfType("*domain.ActivityLog")).Return(&domain.ActivityLog{}, nil)

	resp, err := s.service.Register(ctx, dto.RegisterRequest{
		Name:      "Jane",
		Email:     "jane@example.com",
		Password:  "s3cret-pass",
		Role:      "COMPANY_ADMIN",
		CompanyID: &companyID,
	})

	s.NoError(err)
	s.Equal("signed-token", resp.Token)
	s.Equal("jane@example.com", resp.User.Email)
	s.mockUser.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestRegister_InvalidRole() {
	_, err := s.service.Register(context.Background(), dto.RegisterRequest{
		Name: "Jane", Email: "jane@example.com", Password: "s3cret-pass", Role: "ADMIN",
	})
	s.ErrorIs(err, ErrInvalidRole)
}

func (s *AuthServiceTestSuite) TestRegister_CompanyRequired() {
	_, err := s.service.Register(context.Background(), dto.RegisterRequest{
		Name: "Jane", Email: "jane@example.com", Password: "s3cret-pass", Role: "COMPANY_ADMIN",
	})
	s.ErrorIs(err, ErrCompanyRequired)
}

func (s *AuthServiceTestSuite) TestRegister_SuperAdminWithoutCompany() {
	s.mockUser.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
		Return(&domain.User{ID: "u1", Name: "Root", Email: "root@example.com", Role: domain.RoleSuperAdmin}, nil)
	s.tokens.On("GenerateToken", mock.AnythingOfType("*domain.Actor")).Return("signed-token", nil)
	s.mockActivity.On("Create", mock.Anything, mock.AnythingOfType("*domain.ActivityLog")).Return(&domain.ActivityLog{}, nil)

	resp, err := s.service.Register(context.Background(), dto.RegisterRequest{
		Name: "Root", Email: "root@example.com", Password: "s3cret-pass", Role: "SUPER_ADMIN",
	})

	s.NoError(err)
	s.Equal("signed-token", resp.Token)
}

func (s *AuthServiceTestSuite) TestRegister_EmailTaken() {
	companyID := "c1"
	s.mockCompany.On("GetByID", mock.Anything, "c1").Return(&domain.Company{ID: "c1"}, nil)
	s.mockUser.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
		Return(nil, gorm.ErrDuplicatedKey)

	_, err := s.service.Register(context.Background(), dto.RegisterRequest{
		Name: "Jane", Email: "jane@example.com", Password: "s3cret-pass", Role: "COMPANY_ADMIN", CompanyID: &companyID,
	})

	s.ErrorIs(err, ErrEmailTaken)
}

func (s *AuthServiceTestSuite) TestRegister_UnknownCompany() {
	companyID := "c9"
	s.mockCompany.On("GetByID", mock.Anything, "c9").Return(nil, gorm.ErrRecordNotFound)

	_, err := s.service.Register(context.Background(), dto.RegisterRequest{
		Name: "Jane", Email: "jane@example.com", Password: "s3cret-pass", Role: "COMPANY_ADMIN", CompanyID: &companyID,
	})

	s.ErrorIs(err, ErrNotFound)
}

func (s *AuthServiceTestSuite) TestLogin_Success() {
	companyID := "c1"
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.DefaultCost)
	s.Require().NoError(err)

	s.mockUser.On("GetByEmail", mock.Anything, "jane@example.com").
		Return(&domain.User{ID: "u1", Email: "jane@example.com", Password: string(hash), Role: domain.RoleCompanyAdmin, CompanyID: &companyID}, nil)
	s.tokens.On("GenerateToken", mock.MatchedBy(func(actor *domain.Actor) bool {
		return actor.UserID == "u1" && actor.CompanyID == "c1"
	})).Return("signed-token", nil)

	resp, err := s.service.Login(context.Background(), dto.LoginRequest{Email: "jane@example.com", Password: "s3cret-pass"})

	s.NoError(err)
	s.Equal("signed-token", resp.Token)
	s.tokens.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestLogin_WrongPassword() {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.DefaultCost)
	s.Require().NoError(err)

	s.mockUser.On("GetByEmail", mock.Anything, "jane@example.com").
		Return(&domain.User{ID: "u1", Email: "jane@example.com", Password: string(hash)}, nil)

	_, err = s.service.Login(context.Background(), dto.LoginRequest{Email: "jane@example.com", Password: "wrong"})

	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	s.mockUser.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := s.service.Login(context.Background(), dto.LoginRequest{Email: "ghost@example.com", Password: "whatever"})

	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestLogin_TenantScopeEmbedded() {
	companyID := "c1"
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.DefaultCost)
	s.Require().NoError(err)

	s.mockUser.On("GetByEmail", mock.Anything, "john@example.com").
		Return(&domain.User{ID: "u1", Email: "john@example.com", Password: string(hash), Role: domain.RoleTenant, CompanyID: &companyID}, nil)
	s.mockTenant.On("GetByUserID", mock.Anything, "u1").Return(&domain.Tenant{ID: "t1", UserID: "u1", CompanyID: "c1"}, nil)
	s.tokens.On("GenerateToken", mock.MatchedBy(func(actor *domain.Actor) bool {
		return actor.TenantID == "t1"
	})).Return("signed-token", nil)

	_, err = s.service.Login(context.Background(), dto.LoginRequest{Email: "john@example.com", Password: "s3cret-pass"})

	s.NoError(err)
	s.tokens.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestLogin_ManagerScopeEmbedded() {
	companyID := "c1"
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.DefaultCost)
	s.Require().NoError(err)

	s.mockUser.On("GetByEmail", mock.Anything, "pm@example.com").
		Return(&domain.User{ID: "u2", Email: "pm@example.com", Password: string(hash), Role: domain.RolePropertyManager, CompanyID: &companyID}, nil)
	s.mockProperty.On("ListIDsByManager", mock.Anything, "u2").Return([]string{"p1", "p2"}, nil)
	s.tokens.On("GenerateToken", mock.MatchedBy(func(actor *domain.Actor) bool {
		return len(actor.PropertyIDs) == 2
	})).Return("signed-token", nil)

	_, err = s.service.Login(context.Background(), dto.LoginRequest{Email: "pm@example.com", Password: "s3cret-pass"})

	s.NoError(err)
	s.tokens.AssertExpectations(s.T())
}
