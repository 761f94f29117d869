package domain

// EntityKind identifies a resource type for authorization and activity logging.
type EntityKind string

const (
	KindCompany     EntityKind = "Company"
	KindProperty    EntityKind = "Property"
	KindUnit        EntityKind = "Unit"
	KindTenant      EntityKind = "Tenant"
	KindLease       EntityKind = "Lease"
	KindInvoice     EntityKind = "Invoice"
	KindPayment     EntityKind = "Payment"
	KindMaintenance EntityKind = "MaintenanceRequest"
	KindActivityLog EntityKind = "ActivityLog"
)

// ListQuery carries the common pagination, search and sort parameters of
// every list endpoint.
type ListQuery struct {
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
	Search string `json:"search"`
	SortBy string `json:"sort_by"`
	Order  string `json:"order"`
}

// Normalize applies the defaults used by all list endpoints.
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	if q.SortBy == "" {
		q.SortBy = "created_at"
	}
	if q.Order != "asc" {
		q.Order = "desc"
	}
}

// Offset returns the row offset for the current page.
func (q *ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
