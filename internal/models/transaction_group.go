package models

import (
	"github.com/shopspring/decimal"
)

// MinGroupSize is the smallest membership a TransactionGroup may have to be
// considered a recurrence candidate.
const MinGroupSize = 2

// TransactionGroup is an ephemeral cluster of similar expense transactions
// built during a single detection run. It is never persisted and never shared
// between users or runs; it exists only to carry a candidate group from the
// grouper to the classifier.
//
// Invariant: every member was, at insertion time, within the amount tolerance
// of the then-current running average and similar in description to the
// group's anchor. Because members shift the running average, membership is
// order-sensitive; this is an accepted approximation of a single-pass
// grouping, not a full re-clustering.
type TransactionGroup struct {
	CommonDescription string
	CategoryID        string
	SubCategoryID     *string
	Transactions      []Transaction
	RunningTotal      decimal.Decimal
	RunningAverage    decimal.Decimal
	MinAmount         decimal.Decimal
	MaxAmount         decimal.Decimal
}

// NewTransactionGroup anchors a new group on a single transaction. The anchor
// description is expected to be pre-normalized by the caller.
func NewTransactionGroup(anchorDescription string, tx Transaction) *TransactionGroup {
	amount := tx.AbsAmount()
	return &TransactionGroup{
		CommonDescription: anchorDescription,
		CategoryID:        tx.CategoryID,
		SubCategoryID:     tx.SubCategoryID,
		Transactions:      []Transaction{tx},
		RunningTotal:      amount,
		RunningAverage:    amount,
		MinAmount:         amount,
		MaxAmount:         amount,
	}
}

// Add appends a transaction and updates the running statistics incrementally.
func (g *TransactionGroup) Add(tx Transaction) {
	amount := tx.AbsAmount()

	g.Transactions = append(g.Transactions, tx)
	g.RunningTotal = g.RunningTotal.Add(amount)
	g.RunningAverage = g.RunningTotal.Div(decimal.NewFromInt(int64(len(g.Transactions))))

	if amount.LessThan(g.MinAmount) {
		g.MinAmount = amount
	}
	if amount.GreaterThan(g.MaxAmount) {
		g.MaxAmount = amount
	}
}

// Size returns the number of member transactions.
func (g *TransactionGroup) Size() int {
	return len(g.Transactions)
}

// DistinctMonths returns the sorted distinct calendar months (1-12) in which
// the group's members occur.
func (g *TransactionGroup) DistinctMonths() []int {
	seen := make(map[int]bool)
	for _, tx := range g.Transactions {
		seen[tx.Month()] = true
	}

	months := make([]int, 0, len(seen))
	for m := 1; m <= 12; m++ {
		if seen[m] {
			months = append(months, m)
		}
	}
	return months
}

// DistinctYears returns the number of distinct calendar years covered by the
// group's members.
func (g *TransactionGroup) DistinctYears() int {
	seen := make(map[int]bool)
	for _, tx := range g.Transactions {
		seen[tx.Year()] = true
	}
	return len(seen)
}
