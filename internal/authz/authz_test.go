package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rentdesk/property-management-api/internal/domain"
)

func superAdmin() *domain.Actor {
	return &domain.Actor{UserID: "sa1", Role: domain.RoleSuperAdmin}
}

func companyAdmin(companyID string) *domain.Actor {
	return &domain.Actor{UserID: "ca1", Role: domain.RoleCompanyAdmin, CompanyID: companyID}
}

func propertyManager(companyID string, propertyIDs ...string) *domain.Actor {
	return &domain.Actor{UserID: "pm1", Role: domain.RolePropertyManager, CompanyID: companyID, PropertyIDs: propertyIDs}
}

func tenant(companyID, tenantID string) *domain.Actor {
	return &domain.Actor{UserID: "u1", Role: domain.RoleTenant, CompanyID: companyID, TenantID: tenantID}
}

func TestScopeFor_NilActor(t *testing.T) {
	_, err := ScopeFor(nil, domain.KindCompany, ActionList)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestScopeFor_SuperAdmin(t *testing.T) {
	scope, err := ScopeFor(superAdmin(), domain.KindCompany, ActionCreate)
	assert.NoError(t, err)
	assert.True(t, scope.All)
}

func TestScopeFor_CompanyAdmin(t *testing.T) {
	scope, err := ScopeFor(companyAdmin("c1"), domain.KindProperty, ActionList)
	assert.NoError(t, err)
	assert.Equal(t, "c1", scope.CompanyID)

	// Company creation is reserved for super admins
	_, err = ScopeFor(companyAdmin("c1"), domain.KindCompany, ActionCreate)
	assert.ErrorIs(t, err, ErrForbidden)

	// A company admin without a company matches nothing
	_, err = ScopeFor(&domain.Actor{UserID: "ca2", Role: domain.RoleCompanyAdmin}, domain.KindProperty, ActionList)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestScopeFor_PropertyManager(t *testing.T) {
	scope, err := ScopeFor(propertyManager("c1", "p1", "p2"), domain.KindUnit, ActionList)
	assert.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, scope.PropertyIDs)

	// A manager with no assigned properties sees nothing
	_, err = ScopeFor(propertyManager("c1"), domain.KindUnit, ActionList)
	assert.ErrorIs(t, err, ErrForbidden)

	// Managers cannot touch properties themselves beyond reading
	_, err = ScopeFor(propertyManager("c1", "p1"), domain.KindProperty, ActionUpdate)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestScopeFor_PropertyManagerUnitCreate(t *testing.T) {
	// Unit creation checks the target property's manager, not the token's
	// property list, so a freshly assigned manager is not locked out.
	scope, err := ScopeFor(propertyManager("c1"), domain.KindUnit, ActionCreate)
	assert.NoError(t, err)
	assert.Equal(t, "pm1", scope.ManagerID)
}

func TestScopeFor_Tenant(t *testing.T) {
	scope, err := ScopeFor(tenant("c1", "t1"), domain.KindLease, ActionList)
	assert.NoError(t, err)
	assert.Equal(t, "t1", scope.TenantID)

	_, err = ScopeFor(tenant("c1", "t1"), domain.KindLease, ActionUpdate)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = ScopeFor(tenant("c1", "t1"), domain.KindActivityLog, ActionList)
	assert.ErrorIs(t, err, ErrForbidden)

	// Tenant role with no linked tenant record sees nothing
	_, err = ScopeFor(&domain.Actor{UserID: "u2", Role: domain.RoleTenant}, domain.KindLease, ActionList)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestScopeMatches(t *testing.T) {
	ref := ResourceRef{Kind: domain.KindUnit, CompanyID: "c1", PropertyID: "p1"}

	assert.True(t, Scope{All: true}.Matches(ref))
	assert.True(t, Scope{CompanyID: "c1"}.Matches(ref))
	assert.False(t, Scope{CompanyID: "c2"}.Matches(ref))
	assert.True(t, Scope{PropertyIDs: []string{"p0", "p1"}}.Matches(ref))
	assert.False(t, Scope{PropertyIDs: []string{"p2"}}.Matches(ref))

	// The zero scope matches nothing
	assert.False(t, Scope{}.Matches(ref))
}

func TestAuthorize(t *testing.T) {
	ref := ResourceRef{Kind: domain.KindProperty, CompanyID: "c1", PropertyID: "p1"}

	assert.NoError(t, Authorize(superAdmin(), ActionDelete, ref))
	assert.NoError(t, Authorize(companyAdmin("c1"), ActionUpdate, ref))
	assert.ErrorIs(t, Authorize(companyAdmin("c2"), ActionUpdate, ref), ErrForbidden)

	assert.NoError(t, Authorize(propertyManager("c1", "p1"), ActionRead, ref))
	assert.ErrorIs(t, Authorize(propertyManager("c1", "p2"), ActionRead, ref), ErrForbidden)
}

func TestAuthorize_TenantOwnResources(t *testing.T) {
	ref := ResourceRef{Kind: domain.KindInvoice, CompanyID: "c1", PropertyID: "p1", TenantID: "t1"}

	assert.NoError(t, Authorize(tenant("c1", "t1"), ActionRead, ref))
	assert.ErrorIs(t, Authorize(tenant("c1", "t2"), ActionRead, ref), ErrForbidden)

	// A tenant in the same company still cannot read another tenant's invoice
	other := ResourceRef{Kind: domain.KindInvoice, CompanyID: "c1", PropertyID: "p1", TenantID: "t9"}
	assert.ErrorIs(t, Authorize(tenant("c1", "t1"), ActionRead, other), ErrForbidden)
}
