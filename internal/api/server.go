package api

import (
	"github.com/gin-gonic/gin"

	"github.com/rentdesk/property-management-api/internal/middleware"
	"github.com/rentdesk/property-management-api/internal/service"
	"github.com/rentdesk/property-management-api/internal/service/pubsub"
	"github.com/rentdesk/property-management-api/pkg/logger"
)

type Server struct {
	auth        *AuthHandler
	company     *CompanyHandler
	property    *PropertyHandler
	unit        *UnitHandler
	tenant      *TenantHandler
	lease       *LeaseHandler
	invoice     *InvoiceHandler
	payment     *PaymentHandler
	maintenance *MaintenanceHandler
	activity    *ActivityHandler
	websocket   *WebSocketHandler
	authMw      *middleware.AuthMiddleware
	rateLimit   *middleware.RateLimitMiddleware
	validation  *middleware.ValidationMiddleware
}

func NewServer(
	authService *service.AuthService,
	companyService *service.CompanyService,
	propertyService *service.PropertyService,
	unitService *service.UnitService,
	tenantService *service.TenantService,
	leaseService *service.LeaseService,
	invoiceService *service.InvoiceService,
	paymentService *service.PaymentService,
	maintenanceService *service.MaintenanceService,
	activityService *service.ActivityService,
	authMw *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	logger *logger.Logger,
	pubsub *pubsub.RedisPubSub,
) *Server {
	return &Server{
		auth:        NewAuthHandler(authService),
		company:     NewCompanyHandler(companyService),
		property:    NewPropertyHandler(propertyService),
		unit:        NewUnitHandler(unitService),
		tenant:      NewTenantHandler(tenantService),
		lease:       NewLeaseHandler(leaseService),
		invoice:     NewInvoiceHandler(invoiceService),
		payment:     NewPaymentHandler(paymentService),
		maintenance: NewMaintenanceHandler(maintenanceService),
		activity:    NewActivityHandler(activityService),
		websocket:   NewWebSocketHandler(logger, pubsub),
		authMw:      authMw,
		rateLimit:   rateLimit,
		validation:  validation,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	// Apply security middleware first
	api.Use(s.validation.BlockSuspiciousPatterns())
	api.Use(s.validation.SanitizeInput())
	api.Use(s.validation.ValidateRequestSize(10 * 1024 * 1024)) // 10MB max
	api.Use(s.validation.ValidateContentType("application/json"))

	// Apply global rate limiting
	api.Use(s.rateLimit.GlobalRateLimit(10000)) // 10k requests per minute per IP

	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", s.auth.Register)
			auth.POST("/login", s.auth.Login)
		}

		companies := api.Group("/companies", s.authMw.JWTAuth(), s.rateLimit.CompanyRateLimit())
		{
			companies.POST("", s.company.CreateCompany)
			companies.GET("", s.company.ListCompanies)
			companies.GET("/:id", s.company.GetCompany)
			companies.PUT("/:id", s.company.UpdateCompany)
			companies.DELETE("/:id", s.company.DeleteCompany)
		}

		properties := api.Group("/properties", s.authMw.JWTAuth(), s.rateLimit.CompanyRateLimit())
		{
			properties.POST("", s.property.CreateProperty)
			properties.GET("", s.property.ListProperties)
			properties.GET("/:id", s.property.GetProperty)
			properties.PUT("/:id", s.property.UpdateProperty)
			properties.DELETE("/:id", s.property.DeleteProperty)
		}

		units := api.Group("/units", s.authMw.JWTAuth(), s.rateLimit.CompanyRateLimit())
		{
			units.POST("", s.unit.CreateUnit)
			units.GET("", s.unit.ListUnits)
			units.GET("/:id", s.unit.GetUnit)
			units.PUT("/:id", s.unit.UpdateUnit)
			units.DELETE("/:id", s.unit.DeleteUnit)
		}

		tenants := api.Group("/tenants", s.authMw.JWTAuth(), s.rateLimit.CompanyRateLimit())
		{
			tenants.POST("", s.tenant.CreateTenant)
			tenants.GET("", s.tenant.ListTenants)
			tenants.GET("/:id", s.tenant.GetTenant)
			tenants.PUT("/:id", s.tenant.UpdateTenant)
			tenants.DELETE("/:id", s.tenant.DeleteTenant)
		}

		leases := api.Group("/leases", s.authMw.JWTAuth(), s.rateLimit.CompanyRateLimit())
		{
			leases.POST("", s.lease.CreateLease)
			leases.GET("", s.lease.ListLeases)
			leases.GET("/:id", s.lease.GetLease)
			leases.PUT("/:id", s.lease.UpdateLease)
			leases.DELETE("/:id", s.lease.DeleteLease)
		}

		invoices := api.Group("/invoices", s.authMw.JWTAuth(), s.rateLimit.CompanyRateLimit())
		{
			invoices.POST("", s.invoice.CreateInvoice)
			invoices.GET("", s.invoice.ListInvoices)
			invoices.GET("/:id", s.invoice.GetInvoice)
			invoices.PUT("/:id", s.invoice.UpdateInvoice)
			invoices.DELETE("/:id", s.invoice.DeleteInvoice)
		}

		payments := api.Group("/payments", s.authMw.JWTAuth(), s.rateLimit.CompanyRateLimit())
		{
			payments.POST("", s.payment.CreatePayment)
			payments.GET("", s.payment.ListPayments)
			payments.GET("/:id", s.payment.GetPayment)
			payments.DELETE("/:id", s.payment.DeletePayment)
		}

		maintenance := api.Group("/maintenance", s.authMw.JWTAuth(), s.rateLimit.CompanyRateLimit())
		{
			maintenance.POST("", s.maintenance.CreateMaintenanceRequest)
			maintenance.GET("", s.maintenance.ListMaintenanceRequests)
			maintenance.GET("/:id", s.maintenance.GetMaintenanceRequest)
			maintenance.PUT("/:id", s.maintenance.UpdateMaintenanceRequest)
			maintenance.DELETE("/:id", s.maintenance.DeleteMaintenanceRequest)
		}

		activity := api.Group("/activity", s.authMw.JWTAuth(), s.rateLimit.CompanyRateLimit())
		{
			activity.GET("", s.activity.ListActivity)
			activity.GET("/stream", s.websocket.HandleWebSocket)
			activity.GET("/entity/:entity/:id", s.activity.ListActivityByEntity)
			activity.GET("/user/:userId", s.activity.ListActivityByUser)
		}
	}
}

// StartWebSocketHub starts the WebSocket hub for broadcasting activity entries
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

// GetWebSocketHandler returns the WebSocket handler for shutdown wiring
func (s *Server) GetWebSocketHandler() *WebSocketHandler {
	return s.websocket
}
