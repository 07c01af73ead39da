package repositories

import (
	"errors"
	"fmt"

	"budgetcast/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPatternNotFound = errors.New("pattern not found")
)

// patternRepository implements PatternRepositoryInterface
type patternRepository struct {
	db *gorm.DB
}

// NewPatternRepository creates a new pattern repository
func NewPatternRepository(db *gorm.DB) PatternRepositoryInterface {
	return &patternRepository{
		db: db,
	}
}

// GetByID retrieves a pattern by ID
func (r *patternRepository) GetByID(id uuid.UUID) (*models.Pattern, error) {
	var pattern models.Pattern
	if err := r.db.Where("id = ?", id).First(&pattern).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatternNotFound
		}
		return nil, fmt.Errorf("failed to get pattern: %w", err)
	}
	return &pattern, nil
}

// FindPending retrieves all patterns awaiting a user decision
func (r *patternRepository) FindPending(userID uuid.UUID) ([]models.Pattern, error) {
	return r.findByStatus(userID, models.ApprovalStatusPending)
}

// FindApproved retrieves all patterns eligible for budget synthesis
func (r *patternRepository) FindApproved(userID uuid.UUID) ([]models.Pattern, error) {
	return r.findByStatus(userID, models.ApprovalStatusApproved)
}

func (r *patternRepository) findByStatus(userID uuid.UUID, status string) ([]models.Pattern, error) {
	var patterns []models.Pattern
	if err := r.db.
		Where("user_id = ? AND approval_status = ?", userID, status).
		Order("created_at ASC").
		Find(&patterns).Error; err != nil {
		return nil, fmt.Errorf("failed to find %s patterns: %w", status, err)
	}
	return patterns, nil
}

// UpsertByIdentifier finds-or-creates a pattern by its identifier inside a
// database transaction. The unique index on the identifier columns makes the
// operation safe against two overlapping detection runs racing to create the
// same logical pattern: the loser of the race fails its insert and retries as
// an update.
func (r *patternRepository) UpsertByIdentifier(pattern *models.Pattern) (*models.Pattern, error) {
	var result *models.Pattern

	err := r.db.Transaction(func(tx *gorm.DB) error {
		existing, err := r.findByIdentifier(tx, pattern)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up pattern by identifier: %w", err)
		}

		if existing == nil {
			if createErr := tx.Create(pattern).Error; createErr != nil {
				// Concurrent detection run created it first; fall through to
				// the update path.
				existing, err = r.findByIdentifier(tx, pattern)
				if err != nil {
					return fmt.Errorf("failed to create pattern: %w", createErr)
				}
			} else {
				result = pattern
				return nil
			}
		}

		r.applyDetectionStats(existing, pattern)
		if err := tx.Save(existing).Error; err != nil {
			return fmt.Errorf("failed to update pattern statistics: %w", err)
		}

		result = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *patternRepository) findByIdentifier(tx *gorm.DB, pattern *models.Pattern) (*models.Pattern, error) {
	var existing models.Pattern

	query := tx.Where(
		"user_id = ? AND normalized_description = ? AND category_id = ?",
		pattern.UserID, pattern.NormalizedDescription, pattern.CategoryID,
	)
	if pattern.SubCategoryID == nil {
		query = query.Where("sub_category_id IS NULL")
	} else {
		query = query.Where("sub_category_id = ?", *pattern.SubCategoryID)
	}

	if err := query.First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &existing, nil
}

// applyDetectionStats copies the re-detected statistics onto the stored
// record while leaving identity and approval status untouched.
func (r *patternRepository) applyDetectionStats(existing, detected *models.Pattern) {
	existing.MinAmount = detected.MinAmount
	existing.MaxAmount = detected.MaxAmount
	existing.RecurrenceType = detected.RecurrenceType
	existing.ScheduledMonths = detected.ScheduledMonths
	existing.AverageAmount = detected.AverageAmount
	existing.Confidence = detected.Confidence
	existing.Occurrences = detected.Occurrences
}

// UpdateApprovalStatus persists an approval transition already applied to the
// entity by the state machine in models.Pattern.
func (r *patternRepository) UpdateApprovalStatus(pattern *models.Pattern) error {
	result := r.db.Model(pattern).
		Where("id = ?", pattern.ID).
		Update("approval_status", pattern.ApprovalStatus)
	if result.Error != nil {
		return fmt.Errorf("failed to update approval status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPatternNotFound
	}
	return nil
}
