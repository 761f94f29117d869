package postgres

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/rentdesk/property-management-api/internal/authz"
	"github.com/rentdesk/property-management-api/internal/domain"
)

// denyAll produces a predicate matching no rows. Used when a scope carries no
// usable restriction; the query builder must never widen on bad input.
func denyAll(db *gorm.DB) *gorm.DB {
	return db.Where("1 = 0")
}

// orderClause builds a safe ORDER BY from user-supplied sort parameters.
// allowed maps the accepted sortBy values to real (possibly table-qualified)
// columns; anything else falls back to the created_at mapping.
func orderClause(q domain.ListQuery, allowed map[string]string) string {
	column, ok := allowed[q.SortBy]
	if !ok {
		column = allowed["created_at"]
	}
	direction := "DESC"
	if q.Order == "asc" {
		direction = "ASC"
	}
	return fmt.Sprintf("%s %s", column, direction)
}

// paginate applies limit/offset from a normalized list query.
func paginate(db *gorm.DB, q domain.ListQuery) *gorm.DB {
	return db.Limit(q.Limit).Offset(q.Offset())
}

// applyPropertyTenantScope restricts tables that denormalize property_id and
// tenant_id columns (invoices, payments, maintenance_requests).
func applyPropertyTenantScope(db *gorm.DB, scope authz.Scope, table string) *gorm.DB {
	switch {
	case scope.All:
		return db
	case scope.CompanyID != "":
		return db.Joins(fmt.Sprintf("JOIN properties ON properties.id = %s.property_id", table)).
			Where("properties.company_id = ?", scope.CompanyID)
	case scope.PropertyIDs != nil:
		return db.Where(table+".property_id IN ?", scope.PropertyIDs)
	case scope.ManagerID != "":
		return db.Joins(fmt.Sprintf("JOIN properties ON properties.id = %s.property_id", table)).
			Where("properties.manager_id = ?", scope.ManagerID)
	case scope.TenantID != "":
		return db.Where(table+".tenant_id = ?", scope.TenantID)
	}
	return denyAll(db)
}
