package service

import "errors"

var (
	// ErrNotFound covers any resource id that does not resolve
	ErrNotFound = errors.New("resource not found")

	// Conflict errors: rejected writes that map to a 400 response
	ErrCompanyNameTaken   = errors.New("company name already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrUnitExists         = errors.New("unit with this name, floor, and property already exists")
	ErrTenantHasLeases    = errors.New("cannot delete tenant with active leases")
	ErrUnitOccupied       = errors.New("cannot delete unit with active tenant")
	ErrLeaseOverlap       = errors.New("lease dates overlap an existing lease for this unit")
	ErrPaymentExceedsDue  = errors.New("payment exceeds invoice amount")
	ErrInvalidTransition  = errors.New("invalid maintenance status transition")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrManagerMismatch    = errors.New("property manager must belong to the same company as the property")
	ErrInvalidDateRange   = errors.New("start date must not be after end date")

	// Validation errors on request payloads
	ErrInvalidRole     = errors.New("invalid role")
	ErrCompanyRequired = errors.New("company is required for this role")
	ErrCompanyMismatch = errors.New("resource does not belong to the expected company")
	ErrInvalidPriority = errors.New("invalid maintenance priority")
	ErrInvalidStatus   = errors.New("invalid maintenance status")
)
