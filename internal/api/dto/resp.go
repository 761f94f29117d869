package dto

import (
	"time"
)

// Pagination describes the page window of a list response.
type Pagination struct {
	Total      int64 `json:"total" example:"42"`
	Page       int   `json:"page" example:"1"`
	Limit      int   `json:"limit" example:"10"`
	TotalPages int   `json:"totalPages" example:"5"`
}

type UserResponse struct {
	ID        string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string    `json:"name" example:"Jane Doe"`
	Email     string    `json:"email" example:"jane@example.com"`
	Role      string    `json:"role" example:"COMPANY_ADMIN"`
	CompanyID *string   `json:"company_id,omitempty"`
	CreatedAt time.Time `json:"created_at" example:"2025-01-01T00:00:00Z"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type CompanyResponse struct {
	ID        string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string    `json:"name" example:"Acme Property Group"`
	CreatedAt time.Time `json:"created_at" example:"2025-01-01T00:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2025-01-01T00:00:00Z"`
}

type CompanyListResponse struct {
	Data       []CompanyResponse `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

type PropertyResponse struct {
	ID        string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string    `json:"name" example:"Riverside Towers"`
	Address   string    `json:"address" example:"12 River St"`
	CompanyID string    `json:"company_id"`
	ManagerID *string   `json:"manager_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PropertyListResponse struct {
	Data       []PropertyResponse `json:"data"`
	Pagination Pagination         `json:"pagination"`
}

type UnitResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name" example:"3B"`
	Floor      int       `json:"floor" example:"3"`
	PropertyID string    `json:"property_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type UnitListResponse struct {
	Data       []UnitResponse `json:"data"`
	Pagination Pagination     `json:"pagination"`
}

type TenantResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CompanyID string    `json:"company_id"`
	UnitID    *string   `json:"unit_id,omitempty"`
	Phone     string    `json:"phone" example:"+15550100"`
	Name      string    `json:"name,omitempty" example:"John Renter"`
	Email     string    `json:"email,omitempty" example:"john@example.com"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TenantListResponse struct {
	Data       []TenantResponse `json:"data"`
	Pagination Pagination       `json:"pagination"`
}

type LeaseResponse struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenant_id"`
	UnitID     string    `json:"unit_id"`
	StartDate  time.Time `json:"start_date" example:"2025-01-01T00:00:00Z"`
	EndDate    time.Time `json:"end_date" example:"2025-12-31T00:00:00Z"`
	RentAmount float64   `json:"rent_amount" example:"1200"`
	Deposit    float64   `json:"deposit" example:"2400"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type LeaseListResponse struct {
	Data       []LeaseResponse `json:"data"`
	Pagination Pagination      `json:"pagination"`
}

type InvoiceResponse struct {
	ID         string    `json:"id"`
	LeaseID    string    `json:"lease_id"`
	TenantID   string    `json:"tenant_id"`
	PropertyID string    `json:"property_id"`
	Amount     float64   `json:"amount" example:"1200"`
	DueDate    time.Time `json:"due_date" example:"2025-02-01T00:00:00Z"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type InvoiceListResponse struct {
	Data       []InvoiceResponse `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

type PaymentResponse struct {
	ID         string    `json:"id"`
	InvoiceID  string    `json:"invoice_id"`
	TenantID   string    `json:"tenant_id"`
	PropertyID string    `json:"property_id"`
	Amount     float64   `json:"amount" example:"600"`
	Method     string    `json:"method" example:"BANK_TRANSFER"`
	PaidAt     time.Time `json:"paid_at"`
	CreatedAt  time.Time `json:"created_at"`
}

type PaymentListResponse struct {
	Data       []PaymentResponse `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

type MaintenanceResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title" example:"Leaking faucet"`
	Description  string    `json:"description"`
	Priority     string    `json:"priority" example:"MEDIUM"`
	Status       string    `json:"status" example:"PENDING"`
	TenantID     *string   `json:"tenant_id,omitempty"`
	PropertyID   string    `json:"property_id"`
	UnitID       string    `json:"unit_id"`
	CreatedByID  string    `json:"created_by_id"`
	AssignedToID *string   `json:"assigned_to_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type MaintenanceListResponse struct {
	Data       []MaintenanceResponse `json:"data"`
	Pagination Pagination            `json:"pagination"`
}

type ActivityLogResponse struct {
	ID         string    `json:"id"`
	UserID     *string   `json:"user_id,omitempty"`
	TenantID   *string   `json:"tenant_id,omitempty"`
	PropertyID *string   `json:"property_id,omitempty"`
	LeaseID    *string   `json:"lease_id,omitempty"`
	PaymentID  *string   `json:"payment_id,omitempty"`
	CompanyID  *string   `json:"company_id,omitempty"`
	Action     string    `json:"action" example:"LEASE_CREATED"`
	Entity     string    `json:"entity" example:"Lease"`
	EntityID   string    `json:"entity_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type ActivityLogListResponse struct {
	Data       []ActivityLogResponse `json:"data"`
	Pagination Pagination            `json:"pagination"`
}

// NewPagination derives the page envelope from a total row count and the
// normalized query that produced it.
func NewPagination(total int64, page, limit int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
