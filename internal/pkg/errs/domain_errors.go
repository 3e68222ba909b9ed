package errs

import "errors"

// Sentinel errors shared by the usecase layers. Handlers map these onto the
// four caller-facing categories: validation, availability, state conflict and
// not found.
var (
	// Catalog / availability errors
	ErrRoomTypeNotFound = errors.New("room type not found")
	ErrRoomTypeInactive = errors.New("room type is not active")
	ErrPartyTooLarge    = errors.New("party exceeds room occupancy limits")
	ErrNoAdultsInParty  = errors.New("at least one adult is required")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrStateConflict       = errors.New("state transition conflict")
	ErrStayNotStarted      = errors.New("stay window has not started")
	ErrNoUnitAssigned      = errors.New("no room unit assigned")
	ErrInvalidStayPeriod   = errors.New("invalid stay period")

	// Inventory errors
	ErrRoomUnitNotFound    = errors.New("room unit not found")
	ErrDuplicateUnitNumber = errors.New("unit number already exists for room type")
	ErrUnitNotAvailable    = errors.New("room unit is not available")
	ErrUnitHasActiveStay   = errors.New("room unit has an active reservation")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("insufficient permissions")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
