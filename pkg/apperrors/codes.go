package apperrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Resources
	CodeStaffNotFound ErrorCode = "STAFF_NOT_FOUND"
	CodeNewsNotFound  ErrorCode = "NEWS_NOT_FOUND"
	CodeJobNotFound   ErrorCode = "JOB_NOT_FOUND"
	CodeNotFound      ErrorCode = "NOT_FOUND"

	// Business logic
	CodeUsernameAlreadyExists ErrorCode = "USERNAME_ALREADY_EXISTS"

	// System errors
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeStorageError  ErrorCode = "STORAGE_ERROR"
)
