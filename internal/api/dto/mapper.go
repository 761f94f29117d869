package dto

import (
	"github.com/rentdesk/property-management-api/internal/domain"
)

// ToListQuery converts query parameters to the domain list query with
// defaults applied.
func (p *ListQueryParams) ToListQuery() domain.ListQuery {
	q := domain.ListQuery{
		Page:   p.Page,
		Limit:  p.Limit,
		Search: p.Search,
		SortBy: p.SortBy,
		Order:  p.Order,
	}
	q.Normalize()
	return q
}

func FromUser(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CompanyID: user.CompanyID,
		CreatedAt: user.CreatedAt,
	}
}

func FromCompany(company *domain.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:        company.ID,
		Name:      company.Name,
		CreatedAt: company.CreatedAt,
		UpdatedAt: company.UpdatedAt,
	}
}

func FromCompanies(companies []domain.Company) []CompanyResponse {
	responses := make([]CompanyResponse, len(companies))
	for i := range companies {
		responses[i] = *FromCompany(&companies[i])
	}
	return responses
}

func FromProperty(property *domain.Property) *PropertyResponse {
	return &PropertyResponse{
		ID:        property.ID,
		Name:      property.Name,
		Address:   property.Address,
		CompanyID: property.CompanyID,
		ManagerID: property.ManagerID,
		CreatedAt: property.CreatedAt,
		UpdatedAt: property.UpdatedAt,
	}
}

func FromProperties(properties []domain.Property) []PropertyResponse {
	responses := make([]PropertyResponse, len(properties))
	for i := range properties {
		responses[i] = *FromProperty(&properties[i])
	}
	return responses
}

func FromUnit(unit *domain.Unit) *UnitResponse {
	return &UnitResponse{
		ID:         unit.ID,
		Name:       unit.Name,
		Floor:      unit.Floor,
		PropertyID: unit.PropertyID,
		CreatedAt:  unit.CreatedAt,
		UpdatedAt:  unit.UpdatedAt,
	}
}

func FromUnits(units []domain.Unit) []UnitResponse {
	responses := make([]UnitResponse, len(units))
	for i := range units {
		responses[i] = *FromUnit(&units[i])
	}
	return responses
}

// FromTenant flattens the linked user's name and email into the response when
// the association is loaded.
func FromTenant(tenant *domain.Tenant) *TenantResponse {
	resp := &TenantResponse{
		ID:        tenant.ID,
		UserID:    tenant.UserID,
		CompanyID: tenant.CompanyID,
		UnitID:    tenant.UnitID,
		Phone:     tenant.Phone,
		CreatedAt: tenant.CreatedAt,
		UpdatedAt: tenant.UpdatedAt,
	}
	if tenant.User != nil {
		resp.Name = tenant.User.Name
		resp.Email = tenant.User.Email
	}
	return resp
}

func FromTenants(tenants []domain.Tenant) []TenantResponse {
	responses := make([]TenantResponse, len(tenants))
	for i := range tenants {
		responses[i] = *FromTenant(&tenants[i])
	}
	return responses
}

func FromLease(lease *domain.Lease) *LeaseResponse {
	return &LeaseResponse{
		ID:         lease.ID,
		TenantID:   lease.TenantID,
		UnitID:     lease.UnitID,
		StartDate:  lease.StartDate,
		EndDate:    lease.EndDate,
		RentAmount: lease.RentAmount,
		Deposit:    lease.Deposit,
		CreatedAt:  lease.CreatedAt,
		UpdatedAt:  lease.UpdatedAt,
	}
}

func FromLeases(leases []domain.Lease) []LeaseResponse {
	responses := make([]LeaseResponse, len(leases))
	for i := range leases {
		responses[i] = *FromLease(&leases[i])
	}
	return responses
}

func FromInvoice(invoice *domain.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		ID:         invoice.ID,
		LeaseID:    invoice.LeaseID,
		TenantID:   invoice.TenantID,
		PropertyID: invoice.PropertyID,
		Amount:     invoice.Amount,
		DueDate:    invoice.DueDate,
		CreatedAt:  invoice.CreatedAt,
		UpdatedAt:  invoice.UpdatedAt,
	}
}

func FromInvoices(invoices []domain.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = *FromInvoice(&invoices[i])
	}
	return responses
}

func FromPayment(payment *domain.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:         payment.ID,
		InvoiceID:  payment.InvoiceID,
		TenantID:   payment.TenantID,
		PropertyID: payment.PropertyID,
		Amount:     payment.Amount,
		Method:     payment.Method,
		PaidAt:     payment.PaidAt,
		CreatedAt:  payment.CreatedAt,
	}
}

func FromPayments(payments []domain.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = *FromPayment(&payments[i])
	}
	return responses
}

func FromMaintenance(req *domain.MaintenanceRequest) *MaintenanceResponse {
	return &MaintenanceResponse{
		ID:           req.ID,
		Title:        req.Title,
		Description:  req.Description,
		Priority:     string(req.Priority),
		Status:       string(req.Status),
		TenantID:     req.TenantID,
		PropertyID:   req.PropertyID,
		UnitID:       req.UnitID,
		CreatedByID:  req.CreatedByID,
		AssignedToID: req.AssignedToID,
		CreatedAt:    req.CreatedAt,
		UpdatedAt:    req.UpdatedAt,
	}
}

func FromMaintenances(reqs []domain.MaintenanceRequest) []MaintenanceResponse {
	responses := make([]MaintenanceResponse, len(reqs))
	for i := range reqs {
		responses[i] = *FromMaintenance(&reqs[i])
	}
	return responses
}

func FromActivityLog(entry *domain.ActivityLog) *ActivityLogResponse {
	return &ActivityLogResponse{
		ID:         entry.ID,
		UserID:     entry.UserID,
		TenantID:   entry.TenantID,
		PropertyID: entry.PropertyID,
		LeaseID:    entry.LeaseID,
		PaymentID:  entry.PaymentID,
		CompanyID:  entry.CompanyID,
		Action:     entry.Action,
		Entity:     entry.Entity,
		EntityID:   entry.EntityID,
		CreatedAt:  entry.CreatedAt,
	}
}

func FromActivityLogs(entries []domain.ActivityLog) []ActivityLogResponse {
	responses := make([]ActivityLogResponse, len(entries))
	for i := range entries {
		responses[i] = *FromActivityLog(&entries[i])
	}
	return responses
}
