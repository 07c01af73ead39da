package repositories

import (
	"time"

	"budgetcast/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the read-only contract against the
// transaction store. Records are already categorized and currency-normalized
// by the time they reach this module.
type TransactionRepositoryInterface interface {
	// FindExpenses returns the user's expense transactions (negative amounts)
	// within [startDate, endDate), ordered by date ascending.
	FindExpenses(userID uuid.UUID, startDate, endDate time.Time) ([]models.Transaction, error)
}

// PatternRepositoryInterface defines the contract for the pattern lifecycle
// store
type PatternRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Pattern, error)

	// FindPending returns all patterns awaiting a user decision.
	FindPending(userID uuid.UUID) ([]models.Pattern, error)

	// FindApproved returns all patterns eligible for budget synthesis.
	FindApproved(userID uuid.UUID) ([]models.Pattern, error)

	// UpsertByIdentifier atomically finds-or-creates a pattern by its
	// identifier (user, normalized description, category, sub-category).
	// When the pattern already exists only its detection statistics are
	// updated; the approval status is never touched.
	UpsertByIdentifier(pattern *models.Pattern) (*models.Pattern, error)

	// UpdateApprovalStatus persists a state machine transition made on the
	// entity. The transition itself is validated by models.Pattern.
	UpdateApprovalStatus(pattern *models.Pattern) error
}
