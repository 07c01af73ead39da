package errors

// ErrorCode represents a standardized error code used throughout the module
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidMonth  ErrorCode = "VALIDATION_003"
	ValidationInvalidYear   ErrorCode = "VALIDATION_004"
	ValidationInvalidWindow ErrorCode = "VALIDATION_005"
)

// Pattern error codes (PATTERN_*)
const (
	PatternNotFound        ErrorCode = "PATTERN_001"
	PatternAlreadyResolved ErrorCode = "PATTERN_002"
	PatternMalformed       ErrorCode = "PATTERN_003"
)

// Detection error codes (DETECTION_*)
const (
	DetectionThrottled ErrorCode = "DETECTION_001"
	DetectionFailed    ErrorCode = "DETECTION_002"
)

// Budget error codes (BUDGET_*)
const (
	BudgetApprovalRequired ErrorCode = "BUDGET_001"
	BudgetSynthesisFailed  ErrorCode = "BUDGET_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError ErrorCode = "SYSTEM_001"
	SystemDatabaseError ErrorCode = "SYSTEM_002"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	ValidationGeneral:       "Request validation failed",
	ValidationRequiredField: "A required field is missing",
	ValidationInvalidMonth:  "Month must be between 1 and 12",
	ValidationInvalidYear:   "Year is outside the supported range",
	ValidationInvalidWindow: "Analysis window is outside the supported range",

	PatternNotFound:        "Pattern not found",
	PatternAlreadyResolved: "Pattern approval status is already resolved",
	PatternMalformed:       "Pattern is missing required scheduling data",

	DetectionThrottled: "A detection run for this user was started too recently",
	DetectionFailed:    "Pattern detection failed",

	BudgetApprovalRequired: "Pending patterns must be approved or rejected before calculating a budget",
	BudgetSynthesisFailed:  "Budget synthesis failed",

	SystemInternalError: "An internal error occurred",
	SystemDatabaseError: "A storage error occurred",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}
