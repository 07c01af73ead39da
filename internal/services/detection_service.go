package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"budgetcast/internal/dto"
	"budgetcast/internal/models"
	"budgetcast/internal/repositories"
	"budgetcast/internal/validation"
)

// Fewer expense transactions than this is treated as insufficient data: the
// run succeeds with an empty result instead of failing.
const minDetectionTransactions = 3

var (
	ErrDetectionThrottled      = errors.New("detection run throttled for user")
	ErrInvalidDetectionRequest = errors.New("invalid detection request")
)

// detectionService implements DetectionServiceInterface
type detectionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	patternRepo     repositories.PatternRepositoryInterface
	grouper         SimilarityGrouperInterface
	classifier      RecurrenceClassifierInterface
	limiter         *DetectionLimiter
	detectionLog    *DetectionLogger
	metrics         MetricsRecorderInterface
}

// NewDetectionService creates a new detection service. The limiter may be nil
// to disable throttling.
func NewDetectionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	patternRepo repositories.PatternRepositoryInterface,
	grouper SimilarityGrouperInterface,
	classifier RecurrenceClassifierInterface,
	limiter *DetectionLimiter,
	detectionLog *DetectionLogger,
	metrics MetricsRecorderInterface,
) DetectionServiceInterface {
	return &detectionService{
		transactionRepo: transactionRepo,
		patternRepo:     patternRepo,
		grouper:         grouper,
		classifier:      classifier,
		limiter:         limiter,
		detectionLog:    detectionLog,
		metrics:         metrics,
	}
}

// DetectPatterns runs one detection pass for a user: fetch the expense
// history for the analysis window, cluster it into candidate groups, classify
// each group's cadence, and upsert accepted patterns as pending. A group that
// fails to persist is recorded in the result and never aborts the run.
func (s *detectionService) DetectPatterns(ctx context.Context, req *dto.DetectionRequest) (*models.DetectionResult, error) {
	if err := validateRequest(req, ErrInvalidDetectionRequest); err != nil {
		return nil, err
	}

	if s.limiter != nil && !s.limiter.Allow(req.UserID) {
		s.detectionLog.LogDetectionThrottled(ctx, req.UserID)
		s.metrics.IncrementCounter("detection.run", map[string]string{"status": "throttled"})
		return nil, ErrDetectionThrottled
	}

	started := time.Now()
	s.detectionLog.LogDetectionStarted(ctx, req.UserID, req.AnalysisMonths)

	endDate := time.Now()
	startDate := endDate.AddDate(0, -req.AnalysisMonths, 0)

	transactions, err := s.transactionRepo.FindExpenses(req.UserID, startDate, endDate)
	if err != nil {
		s.metrics.IncrementCounter("detection.run", map[string]string{"status": "failed"})
		return nil, fmt.Errorf("failed to fetch expense history: %w", err)
	}

	result := &models.DetectionResult{
		UserID:              req.UserID,
		TransactionsScanned: len(transactions),
	}

	if len(transactions) < minDetectionTransactions {
		s.detectionLog.LogInsufficientData(ctx, req.UserID, len(transactions))
		s.metrics.IncrementCounter("detection.run", map[string]string{"status": "insufficient_data"})
		result.CompletedAt = time.Now()
		return result, nil
	}

	groups := s.grouper.GroupTransactions(transactions)
	result.GroupsFormed = len(groups)

	for _, group := range groups {
		pattern := s.classifier.Classify(group, req.AnalysisMonths)
		if pattern == nil {
			// Not recurring; a normal outcome for most groups.
			continue
		}

		saved, upsertErr := s.patternRepo.UpsertByIdentifier(pattern)
		if upsertErr != nil {
			s.detectionLog.LogGroupUpsertFailed(ctx, req.UserID, group.CommonDescription, upsertErr.Error())
			result.GroupErrors = append(result.GroupErrors,
				fmt.Sprintf("%s: %v", group.CommonDescription, upsertErr))
			continue
		}

		s.detectionLog.LogPatternDetected(ctx, req.UserID, saved.ID, saved.RecurrenceType, saved.Confidence)
		s.metrics.IncrementCounter("detection.pattern", map[string]string{"recurrence_type": saved.RecurrenceType})
		result.Patterns = append(result.Patterns, *saved)
	}

	result.CompletedAt = time.Now()

	s.metrics.IncrementCounter("detection.run", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("detection.run", time.Since(started))
	s.detectionLog.LogDetectionCompleted(ctx, req.UserID,
		result.TransactionsScanned, result.GroupsFormed, len(result.Patterns), nowMillis(started))

	return result, nil
}

// validateRequest runs dto validation and wraps field errors under the given
// sentinel so callers can match with errors.Is.
func validateRequest(req interface{}, sentinel error) error {
	fieldErrors := validation.GetValidator().ValidateStruct(req)
	if fieldErrors == nil {
		return nil
	}

	details := make([]string, 0, len(fieldErrors))
	for field, message := range fieldErrors {
		details = append(details, fmt.Sprintf("%s %s", field, message))
	}
	sort.Strings(details)

	return fmt.Errorf("%w: %s", sentinel, strings.Join(details, "; "))
}
