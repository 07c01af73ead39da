package services

import (
	"sort"
	"strings"

	"budgetcast/internal/models"

	"github.com/shopspring/decimal"
)

const (
	// Members must stay within this relative tolerance of the group's
	// running average.
	groupAmountTolerance = 0.10

	// Share of overlapping significant words required for two descriptions
	// to count as similar.
	wordOverlapThreshold = 0.5

	// Words at or below this length are ignored during overlap scoring.
	minSignificantWordLength = 2
)

// similarityGrouper implements SimilarityGrouperInterface
type similarityGrouper struct{}

// NewSimilarityGrouper creates a new similarity grouper
func NewSimilarityGrouper() SimilarityGrouperInterface {
	return &similarityGrouper{}
}

// GroupTransactions clusters expenses into candidate recurring groups with a
// single pass over the records in date order. Each transaction joins the
// first existing group whose category, amount tolerance and description
// similarity all match, otherwise it anchors a new group. Groups that end up
// with fewer than models.MinGroupSize members are discarded.
//
// Because amounts are compared against the group's running average at
// insertion time, membership is order-sensitive. Date order keeps the result
// deterministic; the single pass is an accepted approximation and no
// re-clustering is attempted.
func (s *similarityGrouper) GroupTransactions(transactions []models.Transaction) []*models.TransactionGroup {
	sorted := make([]models.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	var groups []*models.TransactionGroup

	for _, tx := range sorted {
		if !tx.IsExpense() {
			continue
		}

		normalized := NormalizeDescription(tx.Description)

		matched := false
		for _, group := range groups {
			if s.belongsToGroup(group, &tx, normalized) {
				group.Add(tx)
				matched = true
				break
			}
		}

		if !matched {
			groups = append(groups, models.NewTransactionGroup(normalized, tx))
		}
	}

	kept := make([]*models.TransactionGroup, 0, len(groups))
	for _, group := range groups {
		if group.Size() >= models.MinGroupSize {
			kept = append(kept, group)
		}
	}

	return kept
}

func (s *similarityGrouper) belongsToGroup(group *models.TransactionGroup, tx *models.Transaction, normalizedDescription string) bool {
	if tx.CategoryID != group.CategoryID || !tx.SameSubCategory(group.SubCategoryID) {
		return false
	}
	if !AmountWithinTolerance(group.RunningAverage, tx.AbsAmount()) {
		return false
	}
	return DescriptionsSimilar(group.CommonDescription, normalizedDescription)
}

// AmountWithinTolerance reports whether amount lies within the relative group
// tolerance of the reference value.
func AmountWithinTolerance(reference, amount decimal.Decimal) bool {
	if reference.IsZero() {
		return amount.IsZero()
	}
	diff := reference.Sub(amount).Abs()
	limit := reference.Abs().Mul(decimal.NewFromFloat(groupAmountTolerance))
	return diff.LessThanOrEqual(limit)
}

// NormalizeDescription lowercases, trims and collapses internal whitespace.
func NormalizeDescription(description string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(description)))
	return strings.Join(fields, " ")
}

// DescriptionsSimilar reports whether two free-text descriptions identify the
// same merchant or charge. Both inputs are normalized before comparison. Two
// descriptions are similar when they are equal, one contains the other, or at
// least half of the significant words of the smaller description appear in
// the larger one.
func DescriptionsSimilar(a, b string) bool {
	a = NormalizeDescription(a)
	b = NormalizeDescription(b)

	if a == "" || b == "" {
		return a == b
	}
	if a == b {
		return true
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}

	wordsA := significantWords(a)
	wordsB := significantWords(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return false
	}

	smaller, larger := wordsA, wordsB
	if len(wordsB) < len(wordsA) {
		smaller, larger = wordsB, wordsA
	}

	matches := 0
	for word := range smaller {
		if larger[word] {
			matches++
		}
	}

	return float64(matches)/float64(len(smaller)) >= wordOverlapThreshold
}

func significantWords(description string) map[string]bool {
	words := make(map[string]bool)
	for _, word := range strings.Fields(description) {
		if len(word) > minSignificantWordLength {
			words[word] = true
		}
	}
	return words
}
