package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"budgetcast/internal/dto"
	apperrors "budgetcast/internal/errors"
	"budgetcast/internal/models"
	"budgetcast/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tolerance band applied around a pattern's observed amount range when
// matching historical transactions against it.
const patternAmountTolerance = 0.10

var (
	ErrInvalidBudgetRequest = errors.New("invalid budget request")
	ErrInvalidSpread        = errors.New("spread requires a positive total and a positive period count")
)

// categorySpend aggregates the non-recurring spend of one
// (category, sub-category) over the analysis window.
type categorySpend struct {
	categoryID    string
	subCategoryID *string
	total         decimal.Decimal
	months        map[int]bool
}

// budgetService implements BudgetServiceInterface. It is also the workflow
// orchestrator: synthesis hard-fails while unresolved patterns exist, and the
// pattern set read at the start of a run is used unchanged to the end
// (read-then-use snapshot semantics).
type budgetService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	patternRepo     repositories.PatternRepositoryInterface
	projector       MonthProjectorInterface
	averaging       AveragingStrategyInterface
	detectionLog    *DetectionLogger
	metrics         MetricsRecorderInterface
}

// NewBudgetService creates a new budget synthesis service
func NewBudgetService(
	transactionRepo repositories.TransactionRepositoryInterface,
	patternRepo repositories.PatternRepositoryInterface,
	projector MonthProjectorInterface,
	averaging AveragingStrategyInterface,
	detectionLog *DetectionLogger,
	metrics MetricsRecorderInterface,
) BudgetServiceInterface {
	return &budgetService{
		transactionRepo: transactionRepo,
		patternRepo:     patternRepo,
		projector:       projector,
		averaging:       averaging,
		detectionLog:    detectionLog,
		metrics:         metrics,
	}
}

// CalculateBudget synthesizes the budget for one target month.
func (s *budgetService) CalculateBudget(ctx context.Context, req *dto.BudgetRequest) (*models.BudgetResult, error) {
	if err := validateRequest(req, ErrInvalidBudgetRequest); err != nil {
		return nil, err
	}

	started := time.Now()

	approved, err := s.loadApprovedPatterns(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	// The analysis window ends where the target month begins.
	windowEnd := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	windowStart := windowEnd.AddDate(0, -req.AnalysisMonths, 0)

	transactions, err := s.transactionRepo.FindExpenses(req.UserID, windowStart, windowEnd)
	if err != nil {
		s.metrics.IncrementCounter("budget.synthesis", map[string]string{"status": "failed"})
		return nil, fmt.Errorf("failed to fetch analysis window: %w", err)
	}

	result := s.synthesize(req.UserID, req.Year, req.Month, req.AnalysisMonths, approved, transactions)

	s.metrics.IncrementCounter("budget.synthesis", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("budget.synthesis", time.Since(started))
	s.detectionLog.LogBudgetCalculated(ctx, req.UserID, req.Year, req.Month,
		len(result.Lines), result.TotalBudgetedExpenses.String(), nowMillis(started))

	return result, nil
}

// CalculateYearBudget synthesizes all twelve months of a year from a single
// approval gate, pattern snapshot and history fetch anchored at the start of
// the year.
func (s *budgetService) CalculateYearBudget(ctx context.Context, userID uuid.UUID, year, analysisMonths int) ([]models.BudgetResult, error) {
	req := &dto.BudgetRequest{UserID: userID, Year: year, Month: 1, AnalysisMonths: analysisMonths}
	if err := validateRequest(req, ErrInvalidBudgetRequest); err != nil {
		return nil, err
	}

	approved, err := s.loadApprovedPatterns(ctx, userID)
	if err != nil {
		return nil, err
	}

	windowEnd := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	windowStart := windowEnd.AddDate(0, -analysisMonths, 0)

	transactions, err := s.transactionRepo.FindExpenses(userID, windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch analysis window: %w", err)
	}

	results := make([]models.BudgetResult, 0, 12)
	for month := 1; month <= 12; month++ {
		result := s.synthesize(userID, year, month, analysisMonths, approved, transactions)
		results = append(results, *result)
	}

	return results, nil
}

// loadApprovedPatterns enforces the approval gate and returns the snapshot of
// approved patterns used for the rest of the run. A concurrent detection run
// inserting a pending pattern after this point does not affect the current
// run; the next synthesis call will see it and refuse.
func (s *budgetService) loadApprovedPatterns(ctx context.Context, userID uuid.UUID) ([]models.Pattern, error) {
	pending, err := s.patternRepo.FindPending(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending patterns: %w", err)
	}
	if len(pending) > 0 {
		s.detectionLog.LogSynthesisBlocked(ctx, userID, len(pending))
		s.metrics.IncrementCounter("budget.synthesis", map[string]string{"status": "approval_required"})
		return nil, &apperrors.ApprovalRequiredError{Pending: pending}
	}

	approved, err := s.patternRepo.FindApproved(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch approved patterns: %w", err)
	}
	return approved, nil
}

// synthesize merges non-recurring category averages with recurring pattern
// contributions into the final budget lines for one target month.
func (s *budgetService) synthesize(userID uuid.UUID, year, month, analysisMonths int, approved []models.Pattern, transactions []models.Transaction) *models.BudgetResult {
	spends, monthsAnyData := s.aggregateNonRecurring(transactions, approved)

	lines := make(map[string]*models.CategoryBudgetLine, len(spends))
	for key, spend := range spends {
		denominator := s.averaging.GetDenominator(
			sortedMonthSet(spend.months), monthsAnyData, analysisMonths)

		average := spend.total.
			Div(decimal.NewFromInt(int64(denominator.Denominator))).
			Round(0)

		lines[key] = &models.CategoryBudgetLine{
			CategoryID:     spend.categoryID,
			SubCategoryID:  spend.subCategoryID,
			BudgetedAmount: average,
			Source:         models.BudgetSourceNonRecurringAverage,
			Reasoning:      denominator.Reasoning,
		}
	}

	for i := range approved {
		pattern := &approved[i]
		if !s.projector.ShouldFireInMonth(pattern, month) {
			continue
		}

		// Rounding to whole currency units happens here and only here.
		amount := pattern.AverageAmount.Round(0)
		contribution := &models.PatternContribution{
			PatternID:      pattern.ID,
			RecurrenceType: pattern.RecurrenceType,
			Amount:         amount,
		}

		key := models.CategoryKey(pattern.CategoryID, pattern.SubCategoryID)
		if line, exists := lines[key]; exists {
			// The recurring amount is added on top of the average, never
			// replacing it.
			line.BudgetedAmount = line.BudgetedAmount.Add(amount)
			line.Source = models.BudgetSourceCombined
			line.PatternInfo = contribution
			continue
		}

		lines[key] = &models.CategoryBudgetLine{
			CategoryID:     pattern.CategoryID,
			SubCategoryID:  pattern.SubCategoryID,
			BudgetedAmount: amount,
			Source:         models.BudgetSourceRecurringPattern,
			PatternInfo:    contribution,
		}
	}

	keys := make([]string, 0, len(lines))
	for key := range lines {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := &models.BudgetResult{
		UserID:         userID,
		Year:           year,
		Month:          month,
		AnalysisMonths: analysisMonths,
		Lines:          make([]models.CategoryBudgetLine, 0, len(keys)),
		GeneratedAt:    time.Now(),
	}

	total := decimal.Zero
	for _, key := range keys {
		result.Lines = append(result.Lines, *lines[key])
		total = total.Add(lines[key].BudgetedAmount)
	}
	result.TotalBudgetedExpenses = total

	return result
}

// aggregateNonRecurring partitions the history into pattern-matched and
// variable spend, returning per-category aggregates of the variable part plus
// the global set of months carrying any transaction data.
func (s *budgetService) aggregateNonRecurring(transactions []models.Transaction, approved []models.Pattern) (map[string]*categorySpend, []int) {
	spends := make(map[string]*categorySpend)
	anyData := make(map[int]bool)
	tolerance := decimal.NewFromFloat(patternAmountTolerance)

	for i := range transactions {
		tx := &transactions[i]
		anyData[tx.Month()] = true

		if matchesAnyPattern(tx, approved, tolerance) {
			continue
		}

		key := models.CategoryKey(tx.CategoryID, tx.SubCategoryID)
		spend, exists := spends[key]
		if !exists {
			spend = &categorySpend{
				categoryID:    tx.CategoryID,
				subCategoryID: tx.SubCategoryID,
				total:         decimal.Zero,
				months:        make(map[int]bool),
			}
			spends[key] = spend
		}

		spend.total = spend.total.Add(tx.AbsAmount())
		spend.months[tx.Month()] = true
	}

	return spends, sortedMonthSet(anyData)
}

// matchesAnyPattern tests the transaction against each approved pattern;
// the first match wins. Patterns are expected to be disjoint by category and
// sub-category, so order is immaterial.
func matchesAnyPattern(tx *models.Transaction, approved []models.Pattern, tolerance decimal.Decimal) bool {
	for i := range approved {
		if approved[i].MatchesTransaction(tx, DescriptionsSimilar, tolerance) {
			return true
		}
	}
	return false
}

// SpreadAcrossPeriods allocates total across periods so the shares sum back
// to exactly the input: each share is the even split, with the remainder
// distributed one unit at a time over the leading entries.
func (s *budgetService) SpreadAcrossPeriods(total int64, periods int) ([]int64, error) {
	if total <= 0 || periods <= 0 {
		return nil, ErrInvalidSpread
	}

	base := total / int64(periods)
	remainder := total % int64(periods)

	shares := make([]int64, periods)
	for i := range shares {
		shares[i] = base
		if int64(i) < remainder {
			shares[i]++
		}
	}

	return shares, nil
}

func sortedMonthSet(months map[int]bool) []int {
	sorted := make([]int, 0, len(months))
	for month := range months {
		sorted = append(sorted, month)
	}
	sort.Ints(sorted)
	return sorted
}
