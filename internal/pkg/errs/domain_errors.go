package errs

// Scheduling error taxonomy. Domain and usecase errors are marked with one of
// these so that callers can branch with errs.Is regardless of wrapping.
var (
	ErrInvalidWindow      = New("invalid time window")
	ErrOverlap            = New("time window overlaps an existing booking")
	ErrMachineUnavailable = New("machine unavailable")
	ErrInvalidTransition  = New("invalid state transition")
	ErrNotFound           = New("not found")
	ErrConfiguration      = New("configuration error")
	ErrValidation         = New("validation failed")

	// Admission gates
	ErrSubscriptionInactive = New("subscription inactive")
	ErrOfferNotActive       = New("offer not active")

	ErrDatabaseOperationFailed = New("database operation failed")
)
