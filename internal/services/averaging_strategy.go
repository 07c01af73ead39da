package services

import (
	"fmt"
)

// activeMonthsStrategy is the default AveragingStrategyInterface
// implementation: it averages a category's spend over every month that has
// any transaction data at all, so a category with no activity in a data month
// is treated as a zero-spend month rather than being ignored.
//
// The strategy is deliberately pluggable; the budget service only ever talks
// to the interface, so the averaging policy can change without touching the
// synthesis code.
type activeMonthsStrategy struct{}

// NewActiveMonthsStrategy creates the default averaging strategy
func NewActiveMonthsStrategy() AveragingStrategyInterface {
	return &activeMonthsStrategy{}
}

// GetDenominator returns the number of months carrying any transaction data,
// capped at the requested analysis window and never below 1.
func (s *activeMonthsStrategy) GetDenominator(monthsCategoryPresent, monthsAnyDataPresent []int, monthsRequested int) DenominatorResult {
	denominator := len(monthsAnyDataPresent)
	reasoning := fmt.Sprintf("averaged over %d months with transaction data (category active in %d)",
		denominator, len(monthsCategoryPresent))

	if monthsRequested > 0 && denominator > monthsRequested {
		denominator = monthsRequested
		reasoning = fmt.Sprintf("averaged over requested window of %d months (data in %d, category active in %d)",
			monthsRequested, len(monthsAnyDataPresent), len(monthsCategoryPresent))
	}

	if denominator < 1 {
		denominator = 1
		reasoning = "no months with transaction data; defaulting denominator to 1"
	}

	return DenominatorResult{
		Denominator: denominator,
		Reasoning:   reasoning,
	}
}
