package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionGroupTestSuite struct {
	suite.Suite
	userID uuid.UUID
}

func TestTransactionGroupSuite(t *testing.T) {
	suite.Run(t, new(TransactionGroupTestSuite))
}

func (s *TransactionGroupTestSuite) SetupTest() {
	s.userID = uuid.New()
}

func (s *TransactionGroupTestSuite) expense(date time.Time, amount float64) Transaction {
	return Transaction{
		ID:          uuid.New(),
		UserID:      s.userID,
		Date:        date,
		Amount:      decimal.NewFromFloat(-amount),
		CategoryID:  "utilities",
		Description: "city power company",
	}
}

func (s *TransactionGroupTestSuite) TestNewTransactionGroup() {
	anchor := s.expense(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), 80)

	group := NewTransactionGroup("city power company", anchor)

	s.Equal(1, group.Size())
	s.Equal("utilities", group.CategoryID)
	s.True(group.RunningAverage.Equal(decimal.NewFromInt(80)))
	s.True(group.MinAmount.Equal(decimal.NewFromInt(80)))
	s.True(group.MaxAmount.Equal(decimal.NewFromInt(80)))
}

func (s *TransactionGroupTestSuite) TestAdd_UpdatesRunningStats() {
	group := NewTransactionGroup("city power company",
		s.expense(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), 80))

	group.Add(s.expense(time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC), 100))
	group.Add(s.expense(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), 90))

	s.Equal(3, group.Size())
	s.True(group.RunningTotal.Equal(decimal.NewFromInt(270)))
	s.True(group.RunningAverage.Equal(decimal.NewFromInt(90)))
	s.True(group.MinAmount.Equal(decimal.NewFromInt(80)))
	s.True(group.MaxAmount.Equal(decimal.NewFromInt(100)))
}

func (s *TransactionGroupTestSuite) TestDistinctMonths_SortedAndDeduplicated() {
	group := NewTransactionGroup("city power company",
		s.expense(time.Date(2024, 10, 3, 0, 0, 0, 0, time.UTC), 80))
	group.Add(s.expense(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), 82))
	group.Add(s.expense(time.Date(2025, 1, 25, 0, 0, 0, 0, time.UTC), 81))
	group.Add(s.expense(time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC), 79))

	s.Equal([]int{1, 4, 10}, group.DistinctMonths())
}

func (s *TransactionGroupTestSuite) TestDistinctYears() {
	group := NewTransactionGroup("city power company",
		s.expense(time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), 80))
	group.Add(s.expense(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), 80))
	group.Add(s.expense(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 80))

	s.Equal(3, group.DistinctYears())
}
