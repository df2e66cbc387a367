package errors

// ErrorCode identifies an error category across the API surface
type ErrorCode string

const (
	// General
	ErrorCode_OK                ErrorCode = "OK"
	ErrorCode_INTERNAL          ErrorCode = "INTERNAL"
	ErrorCode_INVALID_ARGUMENT  ErrorCode = "INVALID_ARGUMENT"
	ErrorCode_NOT_FOUND         ErrorCode = "NOT_FOUND"
	ErrorCode_ALREADY_EXISTS    ErrorCode = "ALREADY_EXISTS"
	ErrorCode_PERMISSION_DENIED ErrorCode = "PERMISSION_DENIED"
	ErrorCode_UNAUTHENTICATED   ErrorCode = "UNAUTHENTICATED"

	// Authentication
	ErrorCode_AUTH_INVALID_TOKEN       ErrorCode = "AUTH_INVALID_TOKEN"
	ErrorCode_AUTH_TOKEN_EXPIRED       ErrorCode = "AUTH_TOKEN_EXPIRED"
	ErrorCode_AUTH_INVALID_CREDENTIALS ErrorCode = "AUTH_INVALID_CREDENTIALS"
	ErrorCode_AUTH_USER_ALREADY_EXISTS ErrorCode = "AUTH_USER_ALREADY_EXISTS"

	// Event admission
	ErrorCode_INVALID_TIME_FORMAT         ErrorCode = "INVALID_TIME_FORMAT"
	ErrorCode_START_NOT_IN_FUTURE         ErrorCode = "START_NOT_IN_FUTURE"
	ErrorCode_END_BEFORE_START            ErrorCode = "END_BEFORE_START"
	ErrorCode_ACTIVE_EVENT_LIMIT_EXCEEDED ErrorCode = "ACTIVE_EVENT_LIMIT_EXCEEDED"
	ErrorCode_CAPACITY_EXCEEDED           ErrorCode = "CAPACITY_EXCEEDED"

	// Invitations
	ErrorCode_INVITATION_PROCESSED ErrorCode = "INVITATION_PROCESSED"

	// Configuration
	ErrorCode_CONFIGURATION_MISSING ErrorCode = "CONFIGURATION_MISSING"

	// Infrastructure
	ErrorCode_DB_QUERY_FAILED            ErrorCode = "DB_QUERY_FAILED"
	ErrorCode_INTEGRATION_CACHE_FAILED   ErrorCode = "INTEGRATION_CACHE_FAILED"
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = "INTEGRATION_STORAGE_FAILED"
)

// String returns the code as a plain string
func (c ErrorCode) String() string {
	return string(c)
}
