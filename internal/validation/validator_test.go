package validation

import (
	"testing"

	"budgetcast/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
	validator *Validator
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) SetupTest() {
	s.validator = GetValidator()
}

func (s *ValidatorTestSuite) TestGetValidator_Singleton() {
	s.Same(GetValidator(), GetValidator())
}

func (s *ValidatorTestSuite) TestValidateStruct_ValidRequest() {
	req := &dto.BudgetRequest{
		UserID:         uuid.New(),
		Year:           2025,
		Month:          7,
		AnalysisMonths: 6,
	}

	s.Nil(s.validator.ValidateStruct(req))
}

func (s *ValidatorTestSuite) TestValidateStruct_FieldErrorsUseJSONNames() {
	req := &dto.BudgetRequest{
		UserID:         uuid.New(),
		Year:           1969,
		Month:          13,
		AnalysisMonths: 48,
	}

	fieldErrors := s.validator.ValidateStruct(req)

	s.Require().NotNil(fieldErrors)
	s.Equal("must be a year between 1970 and 2100", fieldErrors["year"])
	s.Equal("must be a calendar month between 1 and 12", fieldErrors["month"])
	s.Equal("must be between 1 and 36 months", fieldErrors["analysis_months"])
}

func (s *ValidatorTestSuite) TestValidateStruct_RequiredFields() {
	fieldErrors := s.validator.ValidateStruct(&dto.DetectionRequest{})

	s.Require().NotNil(fieldErrors)
	s.Equal("is required", fieldErrors["user_id"])
	s.Equal("is required", fieldErrors["analysis_months"])
}

func (s *ValidatorTestSuite) TestValidateStruct_BoundaryValues() {
	testCases := []struct {
		name  string
		req   *dto.BudgetRequest
		valid bool
	}{
		{"january", &dto.BudgetRequest{UserID: uuid.New(), Year: 2025, Month: 1, AnalysisMonths: 1}, true},
		{"december", &dto.BudgetRequest{UserID: uuid.New(), Year: 2025, Month: 12, AnalysisMonths: 36}, true},
		{"month zero", &dto.BudgetRequest{UserID: uuid.New(), Year: 2025, Month: 0, AnalysisMonths: 6}, false},
		{"window too long", &dto.BudgetRequest{UserID: uuid.New(), Year: 2025, Month: 6, AnalysisMonths: 37}, false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			fieldErrors := s.validator.ValidateStruct(tc.req)
			if tc.valid {
				s.Nil(fieldErrors)
			} else {
				s.NotNil(fieldErrors)
			}
		})
	}
}
