package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RecurrenceBiMonthly = "bi_monthly"
	RecurrenceQuarterly = "quarterly"
	RecurrenceYearly    = "yearly"

	ApprovalStatusPending  = "pending"
	ApprovalStatusApproved = "approved"
	ApprovalStatusRejected = "rejected"
)

var (
	ErrInvalidRecurrenceType = errors.New("invalid recurrence type")
	ErrInvalidApprovalStatus = errors.New("invalid approval status")
	ErrPatternResolved       = errors.New("pattern approval status is already resolved")
)

// Pattern is a detected recurring-transaction signature. It is uniquely
// identified by (user, normalized description, category, sub-category);
// re-detection updates the statistics of the existing record in place and
// never creates a duplicate or reopens a resolved approval status.
type Pattern struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID                uuid.UUID       `gorm:"type:uuid;not null;index:idx_patterns_identifier,unique" json:"user_id"`
	NormalizedDescription string          `gorm:"type:varchar(255);not null;index:idx_patterns_identifier,unique" json:"normalized_description"`
	CategoryID            string          `gorm:"type:varchar(64);not null;index:idx_patterns_identifier,unique" json:"category_id"`
	SubCategoryID         *string         `gorm:"type:varchar(64);index:idx_patterns_identifier,unique" json:"sub_category_id,omitempty"`
	MinAmount             decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"min_amount"`
	MaxAmount             decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"max_amount"`
	RecurrenceType        string          `gorm:"type:varchar(20);not null" json:"recurrence_type"`
	ScheduledMonths       MonthList       `gorm:"type:text;not null" json:"scheduled_months"`
	AverageAmount         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"average_amount"`
	Confidence            float64         `gorm:"not null" json:"confidence"`
	ApprovalStatus        string          `gorm:"type:varchar(20);not null;default:'pending'" json:"approval_status"`
	Occurrences           int             `gorm:"not null;default:0" json:"occurrences"`
	CreatedAt             time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt             time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Pattern
func (p *Pattern) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.ApprovalStatus == "" {
		p.ApprovalStatus = ApprovalStatusPending
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	return p.Validate()
}

// BeforeUpdate hook for Pattern
func (p *Pattern) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return p.Validate()
}

// Validate validates the pattern fields
func (p *Pattern) Validate() error {
	if p.UserID == uuid.Nil {
		return errors.New("pattern user ID is required")
	}
	if p.NormalizedDescription == "" {
		return errors.New("pattern normalized description is required")
	}
	if p.CategoryID == "" {
		return errors.New("pattern category ID is required")
	}
	if !IsValidRecurrenceType(p.RecurrenceType) {
		return ErrInvalidRecurrenceType
	}
	if !IsValidApprovalStatus(p.ApprovalStatus) {
		return ErrInvalidApprovalStatus
	}
	if p.Confidence < 0 || p.Confidence > 1 {
		return fmt.Errorf("pattern confidence %v out of range [0,1]", p.Confidence)
	}
	return nil
}

// IsValidRecurrenceType checks if a recurrence type string is valid
func IsValidRecurrenceType(recurrenceType string) bool {
	switch recurrenceType {
	case RecurrenceBiMonthly, RecurrenceQuarterly, RecurrenceYearly:
		return true
	}
	return false
}

// IsValidApprovalStatus checks if an approval status string is valid
func IsValidApprovalStatus(status string) bool {
	switch status {
	case ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusRejected:
		return true
	}
	return false
}

// IsPending reports whether the pattern still awaits a user decision.
func (p *Pattern) IsPending() bool {
	return p.ApprovalStatus == ApprovalStatusPending
}

// IsApproved reports whether the pattern may contribute to budget synthesis.
func (p *Pattern) IsApproved() bool {
	return p.ApprovalStatus == ApprovalStatusApproved
}

// Approve transitions the pattern from pending to approved. Approval is a
// terminal state; resolved patterns cannot transition again.
func (p *Pattern) Approve() error {
	if p.ApprovalStatus != ApprovalStatusPending {
		return ErrPatternResolved
	}
	p.ApprovalStatus = ApprovalStatusApproved
	return nil
}

// Reject transitions the pattern from pending to rejected.
func (p *Pattern) Reject() error {
	if p.ApprovalStatus != ApprovalStatusPending {
		return ErrPatternResolved
	}
	p.ApprovalStatus = ApprovalStatusRejected
	return nil
}

// MatchesTransaction reports whether a transaction falls under this pattern's
// identifier: same category and sub-category, description similar to the
// pattern's normalized description, and absolute amount inside the observed
// amount range (with a small tolerance band so re-priced subscriptions still
// match).
func (p *Pattern) MatchesTransaction(tx *Transaction, descriptionSimilar func(a, b string) bool, tolerance decimal.Decimal) bool {
	if tx.CategoryID != p.CategoryID || !tx.SameSubCategory(p.SubCategoryID) {
		return false
	}
	if !descriptionSimilar(tx.Description, p.NormalizedDescription) {
		return false
	}

	amount := tx.AbsAmount()
	low := p.MinAmount.Sub(p.MinAmount.Mul(tolerance))
	high := p.MaxAmount.Add(p.MaxAmount.Mul(tolerance))
	return amount.GreaterThanOrEqual(low) && amount.LessThanOrEqual(high)
}

// MonthList is a set of calendar months (1-12) stored as a JSON array.
type MonthList []int

// Value implements the driver.Valuer interface
func (m MonthList) Value() (driver.Value, error) {
	if m == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]int(m))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface
func (m *MonthList) Scan(value interface{}) error {
	if value == nil {
		*m = MonthList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into MonthList", value)
	}

	var months []int
	if err := json.Unmarshal(data, &months); err != nil {
		return err
	}
	*m = MonthList(months)
	return nil
}

// Contains reports whether the month is literally in the list.
func (m MonthList) Contains(month int) bool {
	for _, candidate := range m {
		if candidate == month {
			return true
		}
	}
	return false
}
