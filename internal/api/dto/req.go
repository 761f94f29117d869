package dto

type RegisterRequest struct {
	Name      string  `json:"name" binding:"required" example:"Jane Doe"`
	Email     string  `json:"email" binding:"required,email" example:"jane@example.com"`
	Password  string  `json:"password" binding:"required,min=8" example:"s3cret-pass"`
	Role      string  `json:"role" binding:"required" example:"COMPANY_ADMIN"`
	CompanyID *string `json:"company_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
}

type CreateCompanyRequest struct {
	Name string `json:"name" binding:"required" example:"Acme Property Group"`
}

type UpdateCompanyRequest struct {
	Name string `json:"name" binding:"required" example:"Acme Property Group"`
}

type CreatePropertyRequest struct {
	Name      string  `json:"name" binding:"required" example:"Riverside Towers"`
	Address   string  `json:"address" example:"12 River St"`
	CompanyID string  `json:"company_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	ManagerID *string `json:"manager_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}

type UpdatePropertyRequest struct {
	Name      *string `json:"name,omitempty"`
	Address   *string `json:"address,omitempty"`
	ManagerID *string `json:"manager_id,omitempty"`
}

type CreateUnitRequest struct {
	Name       string `json:"name" binding:"required" example:"3B"`
	Floor      int    `json:"floor" example:"3"`
	PropertyID string `json:"property_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
}

type UpdateUnitRequest struct {
	Name  *string `json:"name,omitempty"`
	Floor *int    `json:"floor,omitempty"`
}

// CreateTenantRequest creates the tenant's user account and occupancy record
// in one step.
type CreateTenantRequest struct {
	Name      string  `json:"name" binding:"required" example:"John Renter"`
	Email     string  `json:"email" binding:"required,email" example:"john@example.com"`
	Password  string  `json:"password" binding:"required,min=8" example:"s3cret-pass"`
	Phone     string  `json:"phone" example:"+15550100"`
	CompanyID string  `json:"company_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	UnitID    *string `json:"unit_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}

type UpdateTenantRequest struct {
	Phone  *string `json:"phone,omitempty"`
	UnitID *string `json:"unit_id,omitempty"`
}

type CreateLeaseRequest struct {
	TenantID   string  `json:"tenant_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	UnitID     string  `json:"unit_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	StartDate  string  `json:"start_date" binding:"required" example:"2025-01-01"`
	EndDate    string  `json:"end_date" binding:"required" example:"2025-12-31"`
	RentAmount float64 `json:"rent_amount" binding:"required,gt=0" example:"1200"`
	Deposit    float64 `json:"deposit" example:"2400"`
}

type UpdateLeaseRequest struct {
	StartDate  *string  `json:"start_date,omitempty" example:"2025-01-01"`
	EndDate    *string  `json:"end_date,omitempty" example:"2025-12-31"`
	RentAmount *float64 `json:"rent_amount,omitempty"`
	Deposit    *float64 `json:"deposit,omitempty"`
}

type CreateInvoiceRequest struct {
	LeaseID string  `json:"lease_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Amount  float64 `json:"amount" binding:"required,gt=0" example:"1200"`
	DueDate string  `json:"due_date" binding:"required" example:"2025-02-01"`
}

type UpdateInvoiceRequest struct {
	Amount  *float64 `json:"amount,omitempty"`
	DueDate *string  `json:"due_date,omitempty" example:"2025-02-01"`
}

type CreatePaymentRequest struct {
	InvoiceID string  `json:"invoice_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Amount    float64 `json:"amount" binding:"required,gt=0" example:"600"`
	Method    string  `json:"method" binding:"required" example:"BANK_TRANSFER"`
}

type CreateMaintenanceRequest struct {
	Title       string `json:"title" binding:"required" example:"Leaking faucet"`
	Description string `json:"description" example:"Kitchen faucet drips constantly"`
	Priority    string `json:"priority" example:"MEDIUM"`
	UnitID      string `json:"unit_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
}

type UpdateMaintenanceRequest struct {
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	Priority     *string `json:"priority,omitempty"`
	Status       *string `json:"status,omitempty" example:"IN_PROGRESS"`
	AssignedToID *string `json:"assigned_to_id,omitempty"`
}

// ListQueryParams are the shared query parameters of every list endpoint.
type ListQueryParams struct {
	Page   int    `form:"page" example:"1"`
	Limit  int    `form:"limit" example:"10"`
	Search string `form:"search" example:"riverside"`
	SortBy string `form:"sortBy" example:"created_at"`
	Order  string `form:"order" example:"desc"`
}
