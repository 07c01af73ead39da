package services

import (
	"fmt"
	"log/slog"

	"budgetcast/internal/models"
	"budgetcast/internal/repositories"

	"github.com/google/uuid"
)

// patternService implements PatternServiceInterface. Approval transitions are
// only ever made through this service, driven by an explicit user decision;
// detection updates pattern statistics but never the approval state.
type patternService struct {
	patternRepo repositories.PatternRepositoryInterface
	metrics     MetricsRecorderInterface
}

// NewPatternService creates a new pattern approval service
func NewPatternService(
	patternRepo repositories.PatternRepositoryInterface,
	metrics MetricsRecorderInterface,
) PatternServiceInterface {
	return &patternService{
		patternRepo: patternRepo,
		metrics:     metrics,
	}
}

// ListPending returns the user's patterns awaiting a decision
func (s *patternService) ListPending(userID uuid.UUID) ([]models.Pattern, error) {
	patterns, err := s.patternRepo.FindPending(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending patterns: %w", err)
	}

	s.metrics.RecordGauge("patterns.pending", float64(len(patterns)), nil)
	return patterns, nil
}

// Approve transitions a pending pattern to approved
func (s *patternService) Approve(patternID uuid.UUID) (*models.Pattern, error) {
	return s.resolve(patternID, (*models.Pattern).Approve, "approved")
}

// Reject transitions a pending pattern to rejected
func (s *patternService) Reject(patternID uuid.UUID) (*models.Pattern, error) {
	return s.resolve(patternID, (*models.Pattern).Reject, "rejected")
}

func (s *patternService) resolve(patternID uuid.UUID, transition func(*models.Pattern) error, action string) (*models.Pattern, error) {
	pattern, err := s.patternRepo.GetByID(patternID)
	if err != nil {
		return nil, fmt.Errorf("failed to load pattern for %s: %w", action, err)
	}

	if err := transition(pattern); err != nil {
		return nil, err
	}

	if err := s.patternRepo.UpdateApprovalStatus(pattern); err != nil {
		return nil, err
	}

	slog.Info("pattern resolved",
		"pattern_id", pattern.ID,
		"user_id", pattern.UserID,
		"approval_status", pattern.ApprovalStatus)
	s.metrics.IncrementCounter("pattern.resolved", map[string]string{"status": pattern.ApprovalStatus})

	return pattern, nil
}
