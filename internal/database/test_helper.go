package database

import (
	"testing"
	"time"

	"budgetcast/internal/config"
	"budgetcast/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

// CreateTestExpense inserts an expense transaction. The amount is stored
// negated; callers pass the positive magnitude.
func CreateTestExpense(t *testing.T, db *DB, userID uuid.UUID, date time.Time, amount float64, categoryID string, subCategoryID *string, description string) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:        userID,
		Date:          date,
		Amount:        decimal.NewFromFloat(amount).Neg(),
		CategoryID:    categoryID,
		SubCategoryID: subCategoryID,
		Description:   description,
	}

	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}

	return tx
}

// CreateTestPattern inserts a pattern with sensible defaults for fields the
// caller does not care about.
func CreateTestPattern(t *testing.T, db *DB, userID uuid.UUID, description, categoryID string, subCategoryID *string, approvalStatus string) *models.Pattern {
	t.Helper()

	pattern := &models.Pattern{
		UserID:                userID,
		NormalizedDescription: description,
		CategoryID:            categoryID,
		SubCategoryID:         subCategoryID,
		MinAmount:             decimal.NewFromInt(90),
		MaxAmount:             decimal.NewFromInt(110),
		RecurrenceType:        models.RecurrenceQuarterly,
		ScheduledMonths:       models.MonthList{1, 4, 7, 10},
		AverageAmount:         decimal.NewFromInt(100),
		Confidence:            0.9,
		ApprovalStatus:        approvalStatus,
		Occurrences:           4,
	}

	if err := db.Create(pattern).Error; err != nil {
		t.Fatalf("failed to create test pattern: %v", err)
	}

	return pattern
}
