package domain

import "slices"

// Role represents a user role in the system
type Role string

const (
	// RoleSuperAdmin has unrestricted access to every company and resource
	RoleSuperAdmin Role = "SUPER_ADMIN"

	// RoleCompanyAdmin manages everything inside their own company
	RoleCompanyAdmin Role = "COMPANY_ADMIN"

	// RolePropertyManager manages the properties assigned to them
	RolePropertyManager Role = "PROPERTY_MANAGER"

	// RoleTenant can only act on resources linked to their own tenant record
	RoleTenant Role = "TENANT"
)

// ValidRoles contains all valid roles in the system, most to least privileged
var ValidRoles = []Role{RoleSuperAdmin, RoleCompanyAdmin, RolePropertyManager, RoleTenant}

// IsValidRole checks if a given role is valid
func IsValidRole(role string) bool {
	return slices.Contains(ValidRoles, Role(role))
}

// Actor is the authenticated caller of a request, derived from a verified
// token and immutable for the request's lifetime.
type Actor struct {
	UserID      string   `json:"user_id"`
	Role        Role     `json:"role"`
	CompanyID   string   `json:"company_id,omitempty"`
	PropertyIDs []string `json:"property_ids,omitempty"`
	// TenantID is the tenant record linked to this user, resolved at login
	// and carried in the token. Empty for non-tenant roles.
	TenantID string `json:"tenant_id,omitempty"`
}

// ManagesProperty reports whether the actor's managed-property set contains id.
func (a *Actor) ManagesProperty(id string) bool {
	return slices.Contains(a.PropertyIDs, id)
}
