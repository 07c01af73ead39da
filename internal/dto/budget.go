package dto

import (
	"github.com/google/uuid"
)

// DetectionRequest asks for one recurring-pattern detection run over the
// user's recent expense history.
type DetectionRequest struct {
	UserID         uuid.UUID `json:"user_id" validate:"required"`
	AnalysisMonths int       `json:"analysis_months" validate:"required,analysis_months"`
}

// BudgetRequest asks for a synthesized budget for one target month.
type BudgetRequest struct {
	UserID         uuid.UUID `json:"user_id" validate:"required"`
	Year           int       `json:"year" validate:"required,calendar_year"`
	Month          int       `json:"month" validate:"required,budget_month"`
	AnalysisMonths int       `json:"analysis_months" validate:"required,analysis_months"`
}
