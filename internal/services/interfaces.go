package services

import (
	"context"
	"time"

	"budgetcast/internal/dto"
	"budgetcast/internal/models"

	"github.com/google/uuid"
)

// SimilarityGrouperInterface clusters raw expense records into candidate
// recurring-transaction groups
type SimilarityGrouperInterface interface {
	// GroupTransactions processes transactions in date order and returns only
	// groups with at least models.MinGroupSize members.
	GroupTransactions(transactions []models.Transaction) []*models.TransactionGroup
}

// RecurrenceClassifierInterface assigns a recurrence cadence to a candidate
// group
type RecurrenceClassifierInterface interface {
	// Classify inspects the group's date distribution and returns a pending
	// Pattern, or nil when the group matches no cadence with sufficient
	// confidence. A nil result is a normal outcome, not an error.
	Classify(group *models.TransactionGroup, analysisMonths int) *models.Pattern
}

// MonthProjectorInterface decides whether an approved pattern is expected to
// recur in an arbitrary target month
type MonthProjectorInterface interface {
	ShouldFireInMonth(pattern *models.Pattern, targetMonth int) bool
}

// DenominatorResult carries the divisor chosen by an averaging strategy and a
// human-readable explanation retained on the budget line for debugging.
type DenominatorResult struct {
	Denominator int
	Reasoning   string
}

// AveragingStrategyInterface is the pluggable policy that picks the divisor
// used when averaging non-recurring spend. The budget service never
// re-implements the heuristic itself.
type AveragingStrategyInterface interface {
	GetDenominator(monthsCategoryPresent, monthsAnyDataPresent []int, monthsRequested int) DenominatorResult
}

// DetectionServiceInterface runs the detection pipeline: fetch history, group
// by similarity, classify cadence, persist candidates as pending
type DetectionServiceInterface interface {
	DetectPatterns(ctx context.Context, req *dto.DetectionRequest) (*models.DetectionResult, error)
}

// PatternServiceInterface exposes the approval workflow over detected
// patterns
type PatternServiceInterface interface {
	ListPending(userID uuid.UUID) ([]models.Pattern, error)
	Approve(patternID uuid.UUID) (*models.Pattern, error)
	Reject(patternID uuid.UUID) (*models.Pattern, error)
}

// BudgetServiceInterface synthesizes forward-looking monthly budgets from
// historical averages and approved recurring patterns
type BudgetServiceInterface interface {
	// CalculateBudget fails with *errors.ApprovalRequiredError while any
	// pattern for the user is still pending.
	CalculateBudget(ctx context.Context, req *dto.BudgetRequest) (*models.BudgetResult, error)

	// CalculateYearBudget runs the synthesizer for every month of the year
	// using a single snapshot of the approved pattern set.
	CalculateYearBudget(ctx context.Context, userID uuid.UUID, year, analysisMonths int) ([]models.BudgetResult, error)

	// SpreadAcrossPeriods allocates an integer total across equal periods,
	// distributing the remainder over the leading entries so the shares sum
	// exactly to the total.
	SpreadAcrossPeriods(total int64, periods int) ([]int64, error)
}

// MetricsRecorderInterface abstracts the metrics backend
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
