package errors

import (
	"fmt"

	"budgetcast/internal/models"
)

// ErrorResponse is the standardized error payload returned to the embedding
// service layer. The module owns no wire protocol; callers decide how to
// surface it.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the detailed error information
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails adds detail messages to the error response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse creates a standardized error response for the given code
func NewErrorResponse(code ErrorCode, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			Details: []string{},
		},
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// NewValidationError creates a validation error response with field-specific
// error details
func NewValidationError(fieldErrors map[string]string) *ErrorResponse {
	details := make([]string, 0, len(fieldErrors))
	for field, message := range fieldErrors {
		details = append(details, fmt.Sprintf("%s: %s", field, message))
	}

	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(ValidationGeneral),
			Message: GetErrorMessage(ValidationGeneral),
			Details: details,
		},
	}
}

// ApprovalRequiredError signals that budget synthesis cannot proceed while
// unresolved patterns exist. It is a user-actionable condition, not a system
// fault, and carries the pending patterns so the caller can drive approval.
type ApprovalRequiredError struct {
	Pending []models.Pattern
}

// Error implements the error interface
func (e *ApprovalRequiredError) Error() string {
	return fmt.Sprintf("%d pattern(s) require approval before budget synthesis", len(e.Pending))
}

// Code returns the stable error code for the condition.
func (e *ApprovalRequiredError) Code() ErrorCode {
	return BudgetApprovalRequired
}
