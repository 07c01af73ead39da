package errors

import (
	"testing"

	"budgetcast/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_Defaults() {
	response := NewErrorResponse(PatternNotFound)

	s.Equal("PATTERN_001", response.Error.Code)
	s.Equal("Pattern not found", response.Error.Message)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithOptions() {
	response := NewErrorResponse(BudgetSynthesisFailed,
		WithMessage("could not synthesize budget for 2025-07"),
		WithDetails("analysis window empty"))

	s.Equal("BUDGET_002", response.Error.Code)
	s.Equal("could not synthesize budget for 2025-07", response.Error.Message)
	s.Equal([]string{"analysis window empty"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError() {
	response := NewValidationError(map[string]string{
		"month": "must be between 1 and 12",
	})

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Require().Len(response.Error.Details, 1)
	s.Equal("month: must be between 1 and 12", response.Error.Details[0])
}

func (s *ResponseTestSuite) TestApprovalRequiredError() {
	err := &ApprovalRequiredError{
		Pending: []models.Pattern{
			{ID: uuid.New()},
			{ID: uuid.New()},
		},
	}

	s.Equal("2 pattern(s) require approval before budget synthesis", err.Error())
	s.Equal(BudgetApprovalRequired, err.Code())
}
