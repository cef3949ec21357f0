package apperrors

// ErrorCode is the stable, machine readable part of an AppError.
type ErrorCode string

const (
	// System
	CodeInternalError    ErrorCode = "INTERNAL_ERROR"
	CodeStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"

	// Generic
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeLimitExceeded    ErrorCode = "LIMIT_EXCEEDED"

	// Auth
	CodeUnauthorized  ErrorCode = "UNAUTHORIZED"
	CodeForbidden     ErrorCode = "FORBIDDEN"
	CodeRoleViolation ErrorCode = "ROLE_VIOLATION"
	CodeInvalidToken  ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired  ErrorCode = "TOKEN_EXPIRED"

	// Application lifecycle
	CodeDuplicateApplication ErrorCode = "DUPLICATE_APPLICATION"
	CodeJobNotOpen           ErrorCode = "JOB_NOT_OPEN"
	CodeInvalidTransition    ErrorCode = "INVALID_TRANSITION"
	CodeFeedbackRequired     ErrorCode = "FEEDBACK_REQUIRED"
	CodeStaleState           ErrorCode = "STALE_STATE"
)
