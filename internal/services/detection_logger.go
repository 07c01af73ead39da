package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// DetectionLogger emits structured events for the detection and synthesis
// pipelines.
type DetectionLogger struct {
	logger *slog.Logger
}

// NewDetectionLogger creates a new detection logger
func NewDetectionLogger(logger *slog.Logger) *DetectionLogger {
	return &DetectionLogger{
		logger: logger,
	}
}

func (dl *DetectionLogger) LogDetectionStarted(ctx context.Context, userID uuid.UUID, analysisMonths int) {
	dl.logger.InfoContext(ctx, "pattern detection started",
		slog.String("event_type", "detection_started"),
		slog.String("user_id", userID.String()),
		slog.Int("analysis_months", analysisMonths),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (dl *DetectionLogger) LogDetectionCompleted(ctx context.Context, userID uuid.UUID, scanned, groups, patterns int, durationMs int64) {
	dl.logger.InfoContext(ctx, "pattern detection completed",
		slog.String("event_type", "detection_completed"),
		slog.String("user_id", userID.String()),
		slog.Int("transactions_scanned", scanned),
		slog.Int("groups_formed", groups),
		slog.Int("patterns_detected", patterns),
		slog.Int64("duration_ms", durationMs),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (dl *DetectionLogger) LogDetectionThrottled(ctx context.Context, userID uuid.UUID) {
	dl.logger.WarnContext(ctx, "pattern detection throttled",
		slog.String("event_type", "detection_throttled"),
		slog.String("user_id", userID.String()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (dl *DetectionLogger) LogInsufficientData(ctx context.Context, userID uuid.UUID, transactionCount int) {
	dl.logger.InfoContext(ctx, "not enough expense history for detection",
		slog.String("event_type", "detection_insufficient_data"),
		slog.String("user_id", userID.String()),
		slog.Int("transaction_count", transactionCount),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (dl *DetectionLogger) LogPatternDetected(ctx context.Context, userID, patternID uuid.UUID, recurrenceType string, confidence float64) {
	dl.logger.InfoContext(ctx, "recurring pattern detected",
		slog.String("event_type", "pattern_detected"),
		slog.String("user_id", userID.String()),
		slog.String("pattern_id", patternID.String()),
		slog.String("recurrence_type", recurrenceType),
		slog.Float64("confidence", confidence),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (dl *DetectionLogger) LogGroupUpsertFailed(ctx context.Context, userID uuid.UUID, description string, errorMsg string) {
	dl.logger.WarnContext(ctx, "failed to persist detected pattern",
		slog.String("event_type", "pattern_upsert_failed"),
		slog.String("user_id", userID.String()),
		slog.String("description", description),
		slog.String("error", errorMsg),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (dl *DetectionLogger) LogSynthesisBlocked(ctx context.Context, userID uuid.UUID, pendingCount int) {
	dl.logger.WarnContext(ctx, "budget synthesis blocked by pending patterns",
		slog.String("event_type", "synthesis_blocked"),
		slog.String("user_id", userID.String()),
		slog.Int("pending_patterns", pendingCount),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (dl *DetectionLogger) LogBudgetCalculated(ctx context.Context, userID uuid.UUID, year, month, lineCount int, total string, durationMs int64) {
	dl.logger.InfoContext(ctx, "budget calculated",
		slog.String("event_type", "budget_calculated"),
		slog.String("user_id", userID.String()),
		slog.Int("year", year),
		slog.Int("month", month),
		slog.Int("line_count", lineCount),
		slog.String("total_budgeted_expenses", total),
		slog.Int64("duration_ms", durationMs),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value("correlation_id").(string); ok {
		return correlationID
	}

	if requestID, ok := ctx.Value("request_id").(string); ok {
		return requestID
	}

	return ""
}

// nowMillis measures elapsed duration in whole milliseconds for log fields.
func nowMillis(since time.Time) int64 {
	return time.Since(since).Milliseconds()
}
