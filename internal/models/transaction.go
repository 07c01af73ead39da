package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrMissingUserID      = errors.New("transaction user ID is required")
	ErrMissingCategory    = errors.New("transaction category ID is required")
	ErrMissingDescription = errors.New("transaction description is required")
	ErrZeroAmount         = errors.New("transaction amount must be non-zero")
)

// Transaction is a categorized expense record. Amounts are signed: negative
// values are expenses, positive values are income or refunds. Records are
// owned by the external transaction store and treated as read-only facts by
// the detection and synthesis services.
type Transaction struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Date          time.Time       `gorm:"not null;index" json:"date"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	CategoryID    string          `gorm:"type:varchar(64);not null;index" json:"category_id"`
	SubCategoryID *string         `gorm:"type:varchar(64)" json:"sub_category_id,omitempty"`
	Description   string          `gorm:"type:text;not null" json:"description"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return ErrMissingUserID
	}
	if t.CategoryID == "" {
		return ErrMissingCategory
	}
	if t.Description == "" {
		return ErrMissingDescription
	}
	if t.Amount.IsZero() {
		return ErrZeroAmount
	}
	return nil
}

// IsExpense reports whether the transaction is an outgoing amount.
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// AbsAmount returns the unsigned magnitude of the transaction amount.
func (t *Transaction) AbsAmount() decimal.Decimal {
	return t.Amount.Abs()
}

// Month returns the calendar month of the transaction date (1-12).
func (t *Transaction) Month() int {
	return int(t.Date.Month())
}

// Year returns the calendar year of the transaction date.
func (t *Transaction) Year() int {
	return t.Date.Year()
}

// SameSubCategory compares a transaction's nullable sub-category against
// another nullable sub-category value.
func (t *Transaction) SameSubCategory(subCategoryID *string) bool {
	if t.SubCategoryID == nil && subCategoryID == nil {
		return true
	}
	if t.SubCategoryID == nil || subCategoryID == nil {
		return false
	}
	return *t.SubCategoryID == *subCategoryID
}
