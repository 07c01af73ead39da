package repositories

import (
	"fmt"
	"time"

	"budgetcast/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// FindExpenses retrieves the user's expense transactions within the window,
// oldest first. Expenses carry negative amounts; income rows are excluded at
// the query level.
func (r *transactionRepository) FindExpenses(userID uuid.UUID, startDate, endDate time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.
		Where("user_id = ?", userID).
		Where("amount < 0").
		Where("date >= ? AND date < ?", startDate, endDate).
		Order("date ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to find expenses: %w", err)
	}
	return transactions, nil
}
