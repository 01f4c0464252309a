package appErrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"
	CodeInvalidToken ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Resources
	CodeUserNotFound ErrorCode = "USER_NOT_FOUND"
	CodeJobNotFound  ErrorCode = "JOB_NOT_FOUND"

	// Business logic
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeJobClosed          ErrorCode = "JOB_CLOSED"
	CodeNotJobOwner        ErrorCode = "NOT_JOB_OWNER"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
