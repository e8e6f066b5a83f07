package domain

import "errors"

// Validation errors
var (
	ErrConflictingAppLists       = errors.New("app is both allowed and blocked")
	ErrEmptyName                 = errors.New("session name is empty")
	ErrInvalidBreakConfiguration = errors.New("invalid break configuration")
	ErrInvalidDuration           = errors.New("duration must be greater than zero")
	ErrInvalidExtension          = errors.New("extension must be greater than zero")
	ErrInvalidTimeRestriction    = errors.New("invalid time restriction")
	ErrInvalidViolation          = errors.New("invalid violation")
	ErrInvalidWebsitePattern     = errors.New("invalid website pattern")
	ErrUnknownActionType         = errors.New("unknown action type")
	ErrUnknownKioskMode          = errors.New("unknown kiosk mode")
	ErrUnknownMode               = errors.New("unknown session mode")
	ErrUnknownRestrictionLevel   = errors.New("unknown restriction level")
	ErrUnknownSeverity           = errors.New("unknown severity")
	ErrUnknownViolationType      = errors.New("unknown violation type")
	ErrMissingParameter          = errors.New("missing action parameter")
	ErrInvalidCertificate        = errors.New("invalid certificate")
	ErrInvalidComplianceDocument = errors.New("invalid compliance requirements")
	ErrInvalidReportPeriod       = errors.New("invalid report period")
)

// State errors
var (
	ErrAlreadyActive         = errors.New("already active")
	ErrDeviceNotSupervised   = errors.New("device is not supervised")
	ErrNoActiveSession       = errors.New("no active session")
	ErrNotActive             = errors.New("not active")
	ErrNotPaused             = errors.New("not paused")
	ErrOperationNotSupported = errors.New("operation not supported by kiosk mode")
	ErrSessionFrozen         = errors.New("session violations are frozen")
	ErrSessionNotFound       = errors.New("session not found")
	ErrSessionNotPaused      = errors.New("session is not paused")
	ErrUnknownSession        = errors.New("unknown session")
)

// Authorization errors
var (
	ErrUnauthenticated   = errors.New("message signature is invalid")
	ErrUnauthorized      = errors.New("action is not authorized")
	ErrWipeNotConfirmed  = errors.New("wipe confirmation missing")
	ErrInvalidAdminToken = errors.New("admin token is invalid")
)

// Infrastructure errors
var (
	ErrTransport   = errors.New("transport failure")
	ErrEnforcement = errors.New("enforcement failure")
	ErrProcessLock = errors.New("another mapplock process holds the device lock")
)

var validationErrors = []error{
	ErrConflictingAppLists, ErrEmptyName, ErrInvalidBreakConfiguration, ErrInvalidDuration,
	ErrInvalidExtension, ErrInvalidTimeRestriction, ErrInvalidViolation, ErrInvalidWebsitePattern,
	ErrUnknownActionType, ErrUnknownKioskMode, ErrUnknownMode, ErrUnknownRestrictionLevel,
	ErrUnknownSeverity, ErrUnknownViolationType, ErrMissingParameter, ErrInvalidCertificate,
	ErrInvalidComplianceDocument, ErrInvalidReportPeriod,
}

var stateErrors = []error{
	ErrAlreadyActive, ErrDeviceNotSupervised, ErrNoActiveSession, ErrNotActive, ErrNotPaused,
	ErrOperationNotSupported, ErrSessionFrozen, ErrSessionNotFound, ErrSessionNotPaused,
	ErrUnknownSession,
}

var authorizationErrors = []error{
	ErrUnauthenticated, ErrUnauthorized, ErrWipeNotConfirmed, ErrInvalidAdminToken,
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsValidationError reports whether err was caused by bad input
func IsValidationError(err error) bool { return isAny(err, validationErrors) }

// IsStateError reports whether err was caused by an operation invalid in the current state
func IsStateError(err error) bool { return isAny(err, stateErrors) }

// IsAuthorizationError reports whether err is a rejected enterprise action
func IsAuthorizationError(err error) bool { return isAny(err, authorizationErrors) }

// IsTransportError reports whether err came from a remote fetch or report
func IsTransportError(err error) bool { return errors.Is(err, ErrTransport) }

// IsEnforcementError reports whether err came from an enforcement strategy
func IsEnforcementError(err error) bool { return errors.Is(err, ErrEnforcement) }
