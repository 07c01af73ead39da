package services

import (
	"math"

	"budgetcast/internal/models"
)

const (
	// Minimum confidence for a classification to be accepted.
	minPatternConfidence = 0.70

	// Ceiling applied to every confidence formula.
	maxPatternConfidence = 0.95

	// Floor of the cadence-fit confidence term.
	cadenceConfidenceFloor = 0.5

	biMonthlyMinOccurrences = 2
	quarterlyMinOccurrences = 3
	yearlyMinTransactions   = 3

	// Share of a group's transactions that must fall in the primary month
	// for a yearly classification.
	yearlyPrimaryMonthShare = 0.70
)

// recurrenceClassifier implements RecurrenceClassifierInterface
type recurrenceClassifier struct{}

// NewRecurrenceClassifier creates a new recurrence classifier
func NewRecurrenceClassifier() RecurrenceClassifierInterface {
	return &recurrenceClassifier{}
}

// Classify tries each cadence in priority order (bi-monthly, quarterly,
// yearly) and returns the first that fits with confidence of at least 0.70.
// A nil result means the group is not recurring; callers treat that as a
// normal outcome.
func (c *recurrenceClassifier) Classify(group *models.TransactionGroup, analysisMonths int) *models.Pattern {
	if group == nil || group.Size() < models.MinGroupSize || analysisMonths <= 0 {
		return nil
	}

	if pattern := c.classifyBiMonthly(group, analysisMonths); pattern != nil {
		return pattern
	}
	if pattern := c.classifyQuarterly(group, analysisMonths); pattern != nil {
		return pattern
	}
	return c.classifyYearly(group)
}

// classifyBiMonthly matches a roughly every-second-month cadence. Consecutive
// gaps between the sorted distinct months must be 2, or 10/11 where the
// sequence wraps the year end.
func (c *recurrenceClassifier) classifyBiMonthly(group *models.TransactionGroup, analysisMonths int) *models.Pattern {
	actual := group.Size()
	if actual < biMonthlyMinOccurrences {
		return nil
	}

	expected := analysisMonths / 2
	if expected == 0 || absInt(actual-expected) > 1 {
		return nil
	}

	months := group.DistinctMonths()
	if len(months) < 2 {
		return nil
	}
	for i := 1; i < len(months); i++ {
		if !isBiMonthlyGap(months[i] - months[i-1]) {
			return nil
		}
	}

	confidence := cadenceConfidence(actual, expected)
	if confidence < minPatternConfidence {
		return nil
	}

	return buildPattern(group, models.RecurrenceBiMonthly, months, confidence)
}

// classifyQuarterly matches an exact every-third-month cadence. Unlike the
// bi-monthly rule there is no partial tolerance on the gaps.
func (c *recurrenceClassifier) classifyQuarterly(group *models.TransactionGroup, analysisMonths int) *models.Pattern {
	actual := group.Size()
	if actual < quarterlyMinOccurrences {
		return nil
	}

	expected := analysisMonths / 3
	if expected == 0 || absInt(actual-expected) > 1 {
		return nil
	}

	months := group.DistinctMonths()
	if len(months) < 2 {
		return nil
	}
	for i := 1; i < len(months); i++ {
		if (months[i]-months[i-1]+12)%12 != 3 {
			return nil
		}
	}

	confidence := math.Min(cadenceConfidence(actual, expected)+0.1, maxPatternConfidence)
	if confidence < minPatternConfidence {
		return nil
	}

	// Project the schedule as the full arithmetic progression from the
	// earliest observed month, even past months not yet observed.
	scheduled := make([]int, 0, 4)
	for month := months[0]; month <= 12; month += 3 {
		scheduled = append(scheduled, month)
	}

	return buildPattern(group, models.RecurrenceQuarterly, scheduled, confidence)
}

// classifyYearly matches charges that concentrate in a single month of the
// year. The primary month must hold at least 70% of the group's transactions,
// and the evidence must span two years or three occurrences.
func (c *recurrenceClassifier) classifyYearly(group *models.TransactionGroup) *models.Pattern {
	if group.Size() < yearlyMinTransactions {
		return nil
	}

	byMonth := make(map[int]int)
	for _, tx := range group.Transactions {
		byMonth[tx.Month()]++
	}

	primaryMonth, primaryCount := 0, 0
	for month := 1; month <= 12; month++ {
		if byMonth[month] > primaryCount {
			primaryMonth, primaryCount = month, byMonth[month]
		}
	}

	share := float64(primaryCount) / float64(group.Size())
	if share < yearlyPrimaryMonthShare {
		return nil
	}

	primaryYears := make(map[int]bool)
	for _, tx := range group.Transactions {
		if tx.Month() == primaryMonth {
			primaryYears[tx.Year()] = true
		}
	}
	if len(primaryYears) < 2 && primaryCount < 3 {
		return nil
	}

	confidence := 0.7
	if len(primaryYears) >= 2 {
		confidence += 0.15 * float64(len(primaryYears))
	}
	if primaryCount >= 3 {
		confidence += 0.15
	}
	confidence += 0.1 * share
	confidence = math.Min(confidence, maxPatternConfidence)

	// Yearly patterns never project beyond their single observed month.
	return buildPattern(group, models.RecurrenceYearly, []int{primaryMonth}, confidence)
}

// cadenceConfidence scores how well the observed occurrence count tracks the
// count the analysis window would imply, with a small bonus per observation.
func cadenceConfidence(actual, expected int) float64 {
	fit := 1 - float64(absInt(actual-expected))/float64(expected)
	bonus := math.Min(0.2, float64(actual)*0.05)
	return clamp(cadenceConfidenceFloor, maxPatternConfidence, fit+bonus)
}

// buildPattern materializes a pending pattern from a classified group. The
// average amount is carried at full precision; rounding to whole currency
// units happens only at the budget synthesis boundary.
func buildPattern(group *models.TransactionGroup, recurrenceType string, scheduledMonths []int, confidence float64) *models.Pattern {
	userID := group.Transactions[0].UserID

	return &models.Pattern{
		UserID:                userID,
		NormalizedDescription: group.CommonDescription,
		CategoryID:            group.CategoryID,
		SubCategoryID:         group.SubCategoryID,
		MinAmount:             group.MinAmount,
		MaxAmount:             group.MaxAmount,
		RecurrenceType:        recurrenceType,
		ScheduledMonths:       models.MonthList(scheduledMonths),
		AverageAmount:         group.RunningAverage,
		Confidence:            confidence,
		ApprovalStatus:        models.ApprovalStatusPending,
		Occurrences:           group.Size(),
	}
}

func isBiMonthlyGap(gap int) bool {
	gap = ((gap % 12) + 12) % 12
	return gap == 2 || gap == 10 || gap == 11
}

func clamp(low, high, value float64) float64 {
	return math.Max(low, math.Min(high, value))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
