package apperrors

import (
	"net/http"
)

// =========================================================================
// Application lifecycle
// =========================================================================

var (
	ErrApplicationNotFound = New(CodeNotFound, "application", "Application not found", http.StatusNotFound)
	ErrJobNotFound         = New(CodeNotFound, "job", "Job not found", http.StatusNotFound)

	ErrDuplicateApplication = New(CodeDuplicateApplication, "application", "You have already applied to this job", http.StatusConflict)
	ErrJobNotOpen           = New(CodeJobNotOpen, "job", "Job is not accepting applications", http.StatusConflict)
	ErrSelfApplication      = New(CodeForbidden, "application", "You cannot apply to your own job", http.StatusForbidden)

	ErrRoleViolation = New(CodeRoleViolation, "auth", "Your role cannot perform this operation", http.StatusForbidden)
	ErrForbidden     = New(CodeForbidden, "application", "You are not a party to this application", http.StatusForbidden)

	ErrInvalidTransition = New(CodeInvalidTransition, "application", "Status change is not allowed", http.StatusConflict)
	ErrFeedbackRequired  = New(CodeFeedbackRequired, "application", "Feedback is required for this decision", http.StatusUnprocessableEntity)
	ErrStaleState        = New(CodeStaleState, "application", "Application was modified concurrently, reload and retry", http.StatusConflict)
)

// =========================================================================
// Auth
// =========================================================================

var (
	ErrMissingToken = New(CodeUnauthorized, "auth", "Authorization header is required", http.StatusUnauthorized)
	ErrInvalidToken = New(CodeInvalidToken, "auth", "Invalid token", http.StatusUnauthorized)
	ErrTokenExpired = New(CodeTokenExpired, "auth", "Session has expired", http.StatusUnauthorized)
	ErrRateLimited  = New(CodeLimitExceeded, "request", "Too many requests", http.StatusTooManyRequests)
)

// IsBusiness reports whether err is a recoverable, caller facing outcome.
func IsBusiness(err error) bool {
	_, ok := AsAppError(err)
	return ok && !IsInfrastructure(err)
}
