package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials     ErrorCode = "AUTH_001"
	AuthMissingToken           ErrorCode = "AUTH_002"
	AuthExpiredToken           ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_004"
	AuthInsufficientPermission ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Dataset error codes (DATASET_*)
const (
	DatasetOrderNotFound ErrorCode = "DATASET_001"
)

// Analytics error codes (ANALYTICS_*)
const (
	AnalyticsInvalidDateRange   ErrorCode = "ANALYTICS_001"
	AnalyticsInvalidGranularity ErrorCode = "ANALYTICS_002"
	AnalyticsInvalidLimit       ErrorCode = "ANALYTICS_003"
	AnalyticsInvalidSegment     ErrorCode = "ANALYTICS_004"
)

// Import error codes (IMPORT_*)
const (
	ImportEmptyFile     ErrorCode = "IMPORT_001"
	ImportInvalidHeader ErrorCode = "IMPORT_002"
	ImportNoValidRows   ErrorCode = "IMPORT_003"
	ImportFileTooLarge  ErrorCode = "IMPORT_004"
	ImportMalformedCSV  ErrorCode = "IMPORT_005"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials:     "Invalid client credentials",
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Dataset errors
	DatasetOrderNotFound: "Order not found",

	// Analytics errors
	AnalyticsInvalidDateRange:   "Start date must not be after end date",
	AnalyticsInvalidGranularity: "Granularity must be one of: daily, weekly, monthly",
	AnalyticsInvalidLimit:       "Ranking limit is out of allowed range",
	AnalyticsInvalidSegment:     "Unknown customer segment",

	// Import errors
	ImportEmptyFile:     "Uploaded file contains no data rows",
	ImportInvalidHeader: "CSV header is missing required columns",
	ImportNoValidRows:   "No rows survived cleaning; nothing was imported",
	ImportFileTooLarge:  "Uploaded file exceeds the size limit",
	ImportMalformedCSV:  "File could not be parsed as CSV",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
