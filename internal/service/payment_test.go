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

type PaymentServiceTestSuite struct {
	suite.Suite
	mockRepo     *mocks.Repository
	mockInvoice  *mocks.InvoiceRepository
	mockProperty *mocks.PropertyRepository
	mockPayment  *mocks.PaymentRepository
	mockTenant   *mocks.TenantRepository
	mockUser     *mocks.UserRepository
	mockActivity *mocks.ActivityLogRepository
	notifier     *MockNotifier
	service      *PaymentService
}

func (s *PaymentServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockInvoice = new(mocks.InvoiceRepository)
	s.mockProperty = new(mocks.PropertyRepository)
	s.mockPayment = new(mocks.PaymentRepository)
	s.mockTenant = new(mocks.TenantRepository)
	s.mockUser = new(mocks.UserRepository)
	s.mockActivity = new(mocks.ActivityLogRepository)
	s.notifier = new(MockNotifier)

	s.mockRepo.On("Invoice").Return(s.mockInvoice)
	s.mockRepo.On("Property").Return(s.mockProperty)
	s.mockRepo.On("Payment").Return(s.mockPayment)
	s.mockRepo.On("Tenant").Return(s.mockTenant)
	s.mockRepo.On("User").Return(s.mockUser)
	s.mockRepo.On("ActivityLog").Return(s.mockActivity)

	log := logger.NewLogger("test")
	activity := NewActivityService(s.mockRepo, nil, log)
	s.service = NewPaymentService(s.mockRepo, activity, s.notifier, log)
}

func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

func (s *PaymentServiceTestSuite) invoiceFixture() (*domain.Invoice, *domain.Property) {
	invoice := &domain.Invoice{
		ID:         "inv1",
		LeaseID:    "l1",
		TenantID:   "t1",
		PropertyID: "p1",
		Amount:     500,
	}
	property := &domain.Property{ID: "p1", CompanyID: "c1"}
	return invoice, property
}

func (s *PaymentServiceTestSuite) TestCreate_Success() {
	ctx := ctxWithActor(&domain.Actor{UserID: "ca1", Role: domain.RoleCompanyAdmin, CompanyID: "c1"})
	invoice, property := s.invoiceFixture()

	s.mockInvoice.On("GetByID", mock.Anything, "inv1").Return(invoice, nil)
	s.mockProperty.On("GetByID", mock.Anything, "p1").Return(property, nil)
	s.mockPayment.On("CreateChecked", mock.Anything, mock.AnythingOfType("*domain.Payment"), 500.0).Return(nil)
	s.mockActivity.On("Create", mock.Anything, mock.AnythingOfType("*domain.ActivityLog")).Return(&domain.ActivityLog{}, nil)
	s.mockTenant.On("GetByID", mock.Anything, "t1").Return(&domain.Tenant{ID: "t1", UserID: "u1", CompanyID: "c1"}, nil)
	s.mockUser.On("GetByID", mock.Anything, "u1").Return(&domain.User{ID: "u1", Email: "john@example.com"}, nil)
	s.notifier.On("SendEmailMessage", mock.Anything, "john@example.com", "Payment received", mock.AnythingOfType("string")).Return(nil)

	resp, err := s.service.Create(ctx, dto.CreatePaymentRequest{InvoiceID: "inv1", Amount: 200, Method: "BANK_TRANSFER"})

	s.NoError(err)
	s.Equal(200.0, resp.Amount)
	s.Equal("inv1", resp.InvoiceID)
	s.mockPayment.AssertExpectations(s.T())
	s.notifier.AssertExpectations(s.T())
}

func (s *PaymentServiceTestSuite) TestCreate_ExceedsInvoiceAmount() {
	ctx := ctxWithActor(&domain.Actor{UserID: "ca1", Role: domain.RoleCompanyAdmin, CompanyID: "c1"})
	invoice, property := s.invoiceFixture()

	s.mockInvoice.On("GetByID", mock.Anything, "inv1").Return(invoice, nil)
	s.mockProperty.On("GetByID", mock.Anything, "p1").Return(property, nil)
	s.mockPayment.On("CreateChecked", mock.Anything, mock.AnythingOfType("*domain.Payment"), 500.0).
		Return(repository.ErrPaymentCeiling)

	_, err := s.service.Create(ctx, dto.CreatePaymentRequest{InvoiceID: "inv1", Amount: 301, Method: "CASH"})

	s.ErrorIs(err, ErrPaymentExceedsDue)
	s.mockActivity.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	s.notifier.AssertNotCalled(s.T(), "SendEmailMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestCreate_TenantPaysOwnInvoice() {
	ctx := ctxWithActor(&domain.Actor{UserID: "u1", Role: domain.RoleTenant, CompanyID: "c1", TenantID: "t1"})
	invoice, property := s.invoiceFixture()

	s.mockInvoice.On("GetByID", mock.Anything, "inv1").Return(invoice, nil)
	s.mockProperty.On("GetByID", mock.Anything, "p1").Return(property, nil)
	s.mockPayment.On("CreateChecked", mock.Anything, mock.AnythingOfType("*domain.Payment"), 500.0).Return(nil)
	s.mockActivity.On("Create", mock.Anything, mock.AnythingOfType("*domain.ActivityLog")).Return(&domain.ActivityLog{}, nil)
	s.mockTenant.On("GetByID", mock.Anything, "t1").Return(&domain.Tenant{ID: "t1", UserID: "u1", CompanyID: "c1"}, nil)
	s.mockUser.On("GetByID", mock.Anything, "u1").Return(&domain.User{ID: "u1", Email: "john@example.com"}, nil)
	s.notifier.On("SendEmailMessage", mock.Anything, "john@example.com", "Payment received", mock.AnythingOfType("string")).Return(nil)

	_, err := s.service.Create(ctx, dto.CreatePaymentRequest{InvoiceID: "inv1", Amount: 100, Method: "CARD"})

	s.NoError(err)
}

func (s *PaymentServiceTestSuite) TestCreate_TenantCannotPayOthersInvoice() {
	ctx := ctxWithActor(&domain.Actor{UserID: "u2", Role: domain.RoleTenant, CompanyID: "c1", TenantID: "t2"})
	invoice, property := s.invoiceFixture()

	s.mockInvoice.On("GetByID", mock.Anything, "inv1").Return(invoice, nil)
	s.mockProperty.On("GetByID", mock.Anything, "p1").Return(property, nil)

	_, err := s.service.Create(ctx, dto.CreatePaymentRequest{InvoiceID: "inv1", Amount: 100, Method: "CARD"})

	s.ErrorIs(err, authz.ErrForbidden)
	s.mockPayment.AssertNotCalled(s.T(), "CreateChecked", mock.Anything, mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestCreate_NoActor() {
	_, err := s.service.Create(context.Background(), dto.CreatePaymentRequest{InvoiceID: "inv1", Amount: 100, Method: "CARD"})
	s.ErrorIs(err, authz.ErrUnauthorized)
}
