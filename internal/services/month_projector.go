package services

import (
	"log/slog"

	"budgetcast/internal/models"
)

// monthProjector implements MonthProjectorInterface
type monthProjector struct{}

// NewMonthProjector creates a new month projector
func NewMonthProjector() MonthProjectorInterface {
	return &monthProjector{}
}

// ShouldFireInMonth decides whether a pattern is expected to recur in the
// target month. Literal scheduled months always fire. Beyond that, bi-monthly
// and quarterly cadences project forward by modular offset from any scheduled
// base month, so a pattern observed only in months [4,7] still fires in 10
// and 1. Yearly patterns never fire outside their single scheduled month.
//
// The modular projection can make a pattern fire in more months than it was
// ever observed in. That is the intended forward-budgeting behavior.
func (p *monthProjector) ShouldFireInMonth(pattern *models.Pattern, targetMonth int) bool {
	if pattern == nil || targetMonth < 1 || targetMonth > 12 {
		return false
	}

	if len(pattern.ScheduledMonths) == 0 {
		slog.Warn("skipping pattern with no scheduled months",
			"pattern_id", pattern.ID,
			"recurrence_type", pattern.RecurrenceType)
		return false
	}

	if pattern.ScheduledMonths.Contains(targetMonth) {
		return true
	}

	switch pattern.RecurrenceType {
	case models.RecurrenceBiMonthly:
		return anyOffsetDivisibleBy(pattern.ScheduledMonths, targetMonth, 2)
	case models.RecurrenceQuarterly:
		return anyOffsetDivisibleBy(pattern.ScheduledMonths, targetMonth, 3)
	case models.RecurrenceYearly:
		return false
	}

	return false
}

func anyOffsetDivisibleBy(baseMonths models.MonthList, targetMonth, step int) bool {
	for _, base := range baseMonths {
		offset := (targetMonth - base + 12) % 12
		if offset%step == 0 {
			return true
		}
	}
	return false
}
