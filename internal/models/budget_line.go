package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget line provenance. Source is a closed enum rather than an ad hoc
// dynamic attribute so downstream consumers can switch on it.
const (
	BudgetSourceNonRecurringAverage = "non_recurring_average"
	BudgetSourceRecurringPattern    = "recurring_pattern"
	BudgetSourceCombined            = "combined_average_and_pattern"
)

// PatternContribution records which pattern contributed to a budget line and
// how much, for auditability of the synthesized budget.
type PatternContribution struct {
	PatternID      uuid.UUID       `json:"pattern_id"`
	RecurrenceType string          `json:"recurrence_type"`
	Amount         decimal.Decimal `json:"amount"`
}

// CategoryBudgetLine is one synthesized budget entry for a
// (category, sub-category) in a target month. Lines are constructed fresh on
// every synthesis run; they are a computation result, not a store of truth.
type CategoryBudgetLine struct {
	CategoryID     string               `json:"category_id"`
	SubCategoryID  *string              `json:"sub_category_id,omitempty"`
	BudgetedAmount decimal.Decimal      `json:"budgeted_amount"`
	Source         string               `json:"source"`
	PatternInfo    *PatternContribution `json:"pattern_info,omitempty"`
	Reasoning      string               `json:"reasoning,omitempty"`
}

// Key returns a map key identifying the line's category and sub-category.
func (l *CategoryBudgetLine) Key() string {
	return CategoryKey(l.CategoryID, l.SubCategoryID)
}

// CategoryKey builds the composite category/sub-category key used to index
// budget lines and spend aggregates.
func CategoryKey(categoryID string, subCategoryID *string) string {
	if subCategoryID == nil {
		return categoryID
	}
	return categoryID + "/" + *subCategoryID
}

// BudgetResult is the output of one budget synthesis run.
type BudgetResult struct {
	UserID                uuid.UUID            `json:"user_id"`
	Year                  int                  `json:"year"`
	Month                 int                  `json:"month"`
	AnalysisMonths        int                  `json:"analysis_months"`
	Lines                 []CategoryBudgetLine `json:"lines"`
	TotalBudgetedExpenses decimal.Decimal      `json:"total_budgeted_expenses"`
	GeneratedAt           time.Time            `json:"generated_at"`
}

// DetectionResult is the output of one recurring-pattern detection run.
type DetectionResult struct {
	UserID              uuid.UUID `json:"user_id"`
	TransactionsScanned int       `json:"transactions_scanned"`
	GroupsFormed        int       `json:"groups_formed"`
	Patterns            []Pattern `json:"patterns"`
	GroupErrors         []string  `json:"group_errors,omitempty"`
	CompletedAt         time.Time `json:"completed_at"`
}
