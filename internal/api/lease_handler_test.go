package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/rentdesk/property-management-api/internal/api/dto"
	"github.com/rentdesk/property-management-api/internal/domain"
	"github.com/rentdesk/property-management-api/internal/service"
	"github.com/rentdesk/property-management-api/internal/utils"
)

type LeaseHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockLeaseService
	handler     *LeaseHandler
}

type MockLeaseService struct {
	mock.Mock
}

func (m *MockLeaseService) Create(ctx context.Context, req dto.CreateLeaseRequest) (*dto.LeaseResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LeaseResponse), args.Error(1)
}

func (m *MockLeaseService) GetByID(ctx context.Context, id string) (*dto.LeaseResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LeaseResponse), args.Error(1)
}

func (m *MockLeaseService) List(ctx context.Context, params dto.ListQueryParams) (*dto.LeaseListResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LeaseListResponse), args.Error(1)
}

func (m *MockLeaseService) Update(ctx context.Context, id string, req dto.UpdateLeaseRequest) (*dto.LeaseResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LeaseResponse), args.Error(1)
}

func (m *MockLeaseService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (s *LeaseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockLeaseService)
	s.handler = NewLeaseHandler(s.mockService)

	s.router = gin.New()
	s.router.Use(func(c *gin.Context) {
		c.Set(string(utils.ActorKey), &domain.Actor{UserID: "ca1", Role: domain.RoleCompanyAdmin, CompanyID: "c1"})
		c.Next()
	})
	s.router.POST("/leases", s.handler.CreateLease)
	s.router.GET("/leases/:id", s.handler.GetLease)
	s.router.PUT("/leases/:id", s.handler.UpdateLease)
}

func TestLeaseHandler(t *testing.T) {
	suite.Run(t, new(LeaseHandlerTestSuite))
}

func (s *LeaseHandlerTestSuite) TestCreateLease_Success() {
	req := dto.CreateLeaseRequest{
		TenantID:   "t1",
		UnitID:     "un1",
		StartDate:  "2025-01-01",
		EndDate:    "2025-12-31",
		RentAmount: 1200,
	}
	s.mockService.On("Create", mock.Anything, req).
		Return(&dto.LeaseResponse{ID: "l1", TenantID: "t1", UnitID: "un1", RentAmount: 1200}, nil)

	body, _ := json.Marshal(req)
	httpReq := httptest.NewRequest(http.MethodPost, "/leases", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httpReq)

	s.Equal(http.StatusCreated, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *LeaseHandlerTestSuite) TestCreateLease_Overlap() {
	s.mockService.On("Create", mock.Anything, mock.AnythingOfType("dto.CreateLeaseRequest")).
		Return(nil, service.ErrLeaseOverlap)

	body, _ := json.Marshal(dto.CreateLeaseRequest{
		TenantID: "t1", UnitID: "un1", StartDate: "2025-01-01", EndDate: "2025-12-31", RentAmount: 1200,
	})
	httpReq := httptest.NewRequest(http.MethodPost, "/leases", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httpReq)

	s.Equal(http.StatusBadRequest, w.Code)

	var resp dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Contains(resp.Error, "overlap")
}

func (s *LeaseHandlerTestSuite) TestCreateLease_MissingFields() {
	httpReq := httptest.NewRequest(http.MethodPost, "/leases", bytes.NewReader([]byte(`{"tenant_id":"t1"}`)))
	httpReq.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httpReq)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *LeaseHandlerTestSuite) TestUpdateLease_InvalidDateRange() {
	s.mockService.On("Update", mock.Anything, "l1", mock.AnythingOfType("dto.UpdateLeaseRequest")).
		Return(nil, service.ErrInvalidDateRange)

	body, _ := json.Marshal(map[string]string{"end_date": "2024-01-01"})
	httpReq := httptest.NewRequest(http.MethodPut, "/leases/l1", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httpReq)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *LeaseHandlerTestSuite) TestGetLease_NotFound() {
	s.mockService.On("GetByID", mock.Anything, "ghost").Return(nil, service.ErrNotFound)

	httpReq := httptest.NewRequest(http.MethodGet, "/leases/ghost", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httpReq)

	s.Equal(http.StatusNotFound, w.Code)
}
