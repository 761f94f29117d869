// Package authz is the single authorization surface for the API. Every
// endpoint consults the same declarative policy table, either through
// Authorize (detail paths) or ScopeFor (list paths). Authorize is defined in
// terms of the scope produced by ScopeFor, so a resource excluded from an
// actor's list can never be readable through a direct lookup.
package authz

import (
	"errors"

	"github.com/rentdesk/property-management-api/internal/domain"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"
)

var (
	// ErrUnauthorized signals a missing actor (no or invalid token).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden signals an authenticated actor outside the permitted scope.
	ErrForbidden = errors.New("forbidden")
)

// ResourceRef carries the owner attributes of a resource, resolved
// transitively by the caller before evaluation: a Unit's CompanyID is its
// Property's, a Lease's PropertyID is its Unit's, and so on.
type ResourceRef struct {
	Kind       domain.EntityKind
	CompanyID  string
	PropertyID string
	ManagerID  string
	TenantID   string
}

// condition is the ownership requirement attached to a (kind, action, role)
// policy entry.
type condition int

const (
	condAny condition = iota + 1
	condSameCompany
	condManagedProperty
	condManagerSelf
	condOwnTenant
)

// Scope is the restriction an actor operates under for one entity kind and
// action. Exactly one field group is populated; an empty Scope with All false
// matches nothing.
type Scope struct {
	All         bool
	CompanyID   string
	PropertyIDs []string
	ManagerID   string
	TenantID    string
}

// Matches reports whether a resource falls inside the scope. This is the
// detail-path twin of the repository-level list predicate built from the same
// Scope value.
func (s Scope) Matches(ref ResourceRef) bool {
	switch {
	case s.All:
		return true
	case s.CompanyID != "":
		return ref.CompanyID == s.CompanyID
	case s.ManagerID != "":
		return ref.ManagerID == s.ManagerID
	case s.PropertyIDs != nil:
		for _, id := range s.PropertyIDs {
			if id == ref.PropertyID {
				return true
			}
		}
		return false
	case s.TenantID != "":
		return ref.TenantID == s.TenantID
	}
	return false
}

type policyKey struct {
	kind   domain.EntityKind
	action Action
}

// policy maps (entity kind, action) to the roles allowed to perform it and
// the ownership condition each role must satisfy. Absence of an entry is a
// deny; evaluation always fails closed.
var policy = map[policyKey]map[domain.Role]condition{
	{domain.KindCompany, ActionCreate}: {domain.RoleSuperAdmin: condAny},
	{domain.KindCompany, ActionList}:   {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany},
	{domain.KindCompany, ActionRead}:   {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany},
	{domain.KindCompany, ActionUpdate}: {domain.RoleSuperAdmin: condAny},
	{domain.KindCompany, ActionDelete}: {domain.RoleSuperAdmin: condAny},

	{domain.KindProperty, ActionCreate}: {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany},
	{domain.KindProperty, ActionList}:   {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany, domain.RolePropertyManager: condManagedProperty},
	{domain.KindProperty, ActionRead}:   {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany, domain.RolePropertyManager: condManagedProperty},
	{domain.KindProperty, ActionUpdate}: {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany},
	{domain.KindProperty, ActionDelete}: {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany},

	{domain.KindUnit, ActionCreate}: {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany, domain.RolePropertyManager: condManagerSelf},
	{domain.KindUnit, ActionList}:   {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany, domain.RolePropertyManager: condManagedProperty},
	{domain.KindUnit, ActionRead}:   {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany, domain.RolePropertyManager: condManagedProperty},
	{domain.KindUnit, ActionUpdate}: {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany, domain.RolePropertyManager: condManagedProperty},
	{domain.KindUnit, ActionDelete}: {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany, domain.RolePropertyManager: condManagedProperty},

	{domain.KindTenant, ActionCreate}: {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany, domain.RolePropertyManager: condManagedProperty},
	{domain.KindTenant, ActionList}:   {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany, domain.RolePropertyManager: condManagedProperty, domain.RoleTenant: condOwnTenant},
	{domain.KindTenant, ActionRead}:   {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany, domain.RolePropertyManager: condManagedProperty, domain.RoleTenant: condOwnTenant},
	{domain.KindTenant, ActionUpdate}: {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany, domain.RolePropertyManager: condManagedProperty},
	{domain.KindTenant, ActionDelete}: {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany, domain.RolePropertyManager: condManagedProperty},

	{domain.KindLease, ActionCreate}: {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany, domain.RolePropertyManager: condManagedProperty, domain.RoleTenant: condOwnTenant},
	{domain.KindLease, ActionList}:   {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany, domain.RolePropertyManager: condManagedProperty, domain.RoleTenant: condOwnTenant},
	{domain.KindLease, ActionRead}:   {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany, domain.RolePropertyManager: condManagedProperty, domain.RoleTenant: condOwnTenant},
	{domain.KindLease, ActionUpdate}: {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany, domain.RolePropertyManager: condManagedProperty},
	{domain.KindLease, ActionDelete}: {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany, domain.RolePropertyManager: condManagedProperty},

	{domain.KindInvoice, ActionCreate}: {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany, domain.RolePropertyManager: condManagedProperty},
	{domain.KindInvoice, ActionList}:   {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany, domain.RolePropertyManager: condManagedProperty, domain.RoleTenant: condOwnTenant},
	{domain.KindInvoice, ActionRead}:   {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany, domain.RolePropertyManager: condManagedProperty, domain.RoleTenant: condOwnTenant},
	{domain.KindInvoice, ActionUpdate}: {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany, domain.RolePropertyManager: condManagedProperty},
	{domain.KindInvoice, ActionDelete}: {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany, domain.RolePropertyManager: condManagedProperty},

	{domain.KindPayment, ActionCreate}: {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany, domain.RolePropertyManager: condManagedProperty, domain.RoleTenant: condOwnTenant},
	{domain.KindPayment, ActionList}:   {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany, domain.RolePropertyManager: condManagedProperty, domain.RoleTenant: condOwnTenant},
	{domain.KindPayment, ActionRead}:   {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany, domain.RolePropertyManager: condManagedProperty, domain.RoleTenant: condOwnTenant},
	{domain.KindPayment, ActionDelete}: {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany},

	{domain.KindMaintenance, ActionCreate}: {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany, domain.RolePropertyManager: condManagedProperty, domain.RoleTenant: condOwnTenant},
	{domain.KindMaintenance, ActionList}:   {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany, domain.RolePropertyManager: condManagedProperty, domain.RoleTenant: condOwnTenant},
	{domain.KindMaintenance, ActionRead}:   {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany, domain.RolePropertyManager: condManagedProperty, domain.RoleTenant: condOwnTenant},
	{domain.KindMaintenance, ActionUpdate}: {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany, domain.RolePropertyManager: condManagedProperty},
	{domain.KindMaintenance, ActionDelete}: {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany, domain.RolePropertyManager: condManagedProperty},

	{domain.KindActivityLog, ActionList}: {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany},
	{domain.KindActivityLog, ActionRead}: {domain.RoleSuperAdmin: condAny, domain.RoleCompanyAdmin: condSameCompany},
}

// ScopeFor resolves the restriction the actor operates under for the given
// entity kind and action. Returns ErrUnauthorized when actor is nil and
// ErrForbidden when no policy entry allows the role.
func ScopeFor(actor *domain.Actor, kind domain.EntityKind, action Action) (Scope, error) {
	if actor == nil {
		return Scope{}, ErrUnauthorized
	}

	cond, ok := policy[policyKey{kind, action}][actor.Role]
	if !ok {
		return Scope{}, ErrForbidden
	}

	switch cond {
	case condAny:
		return Scope{All: true}, nil
	case condSameCompany:
		if actor.CompanyID == "" {
			return Scope{}, ErrForbidden
		}
		return Scope{CompanyID: actor.CompanyID}, nil
	case condManagedProperty:
		if len(actor.PropertyIDs) == 0 {
			return Scope{}, ErrForbidden
		}
		return Scope{PropertyIDs: actor.PropertyIDs}, nil
	case condManagerSelf:
		return Scope{ManagerID: actor.UserID}, nil
	case condOwnTenant:
		if actor.TenantID == "" {
			return Scope{}, ErrForbidden
		}
		return Scope{TenantID: actor.TenantID}, nil
	}
	return Scope{}, ErrForbidden
}

// Authorize decides whether the actor may perform action on the resource.
// Pure: no side effects, identical inputs always yield identical results.
func Authorize(actor *domain.Actor, action Action, ref ResourceRef) error {
	scope, err := ScopeFor(actor, ref.Kind, action)
	if err != nil {
		return err
	}
	if !scope.Matches(ref) {
		return ErrForbidden
	}
	return nil
}
