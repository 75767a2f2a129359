package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studypath/reminder-service/internal/domain"
	"github.com/studypath/reminder-service/internal/observability/metrics"
	"github.com/studypath/reminder-service/internal/observability/tracing"
	"github.com/studypath/reminder-service/internal/service/dispatch"
)

// CronHandler exposes the dispatch cycle to the external cron caller. The
// caller is expected to hit it at least once per notify window.
type CronHandler struct {
	dispatchService *dispatch.Service
	reminderMetrics *metrics.ReminderMetrics
	resultRecorder  domain.DispatchRecorder
}

func NewCronHandler(
	dispatchService *dispatch.Service,
	reminderMetrics *metrics.ReminderMetrics,
	resultRecorder domain.DispatchRecorder,
) *CronHandler {
	return &CronHandler{
		dispatchService: dispatchService,
		reminderMetrics: reminderMetrics,
		resultRecorder:  resultRecorder,
	}
}

func (h *CronHandler) HandleReminderCycle(c *gin.Context) {
	ctx := c.Request.Context()

	var now time.Time
	if fromStr := c.Query("from"); fromStr != "" {
		parsed, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", "invalid from time format, expected RFC3339")
			return
		}
		now = parsed
		slog.InfoContext(ctx, "using virtual time",
			slog.Time("virtual_now", now),
		)
	} else {
		now = time.Now()
	}

	runID := c.GetHeader("X-Run-ID")

	cycleCtx, cycleSpan := tracing.StartCycleSpan(ctx, now)
	cycleStart := time.Now()

	result, err := h.dispatchService.RunCycle(cycleCtx, now)

	if h.reminderMetrics != nil {
		h.reminderMetrics.RecordCycleDuration(cycleCtx, time.Since(cycleStart))
	}

	if err != nil {
		tracing.RecordCycleResult(cycleSpan, 0, 0, 0, 0, 0, err)
		cycleSpan.End()
		slog.ErrorContext(ctx, "dispatch cycle failed",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "processing_error", err.Error())
		return
	}

	tracing.RecordCycleResult(cycleSpan,
		result.SchedulesRead, result.TotalCandidates,
		result.SuccessCount, result.FailedCount, result.SkippedCount, nil)
	cycleSpan.End()

	slog.InfoContext(ctx, "dispatch cycle completed",
		slog.Int("schedules_read", result.SchedulesRead),
		slog.Int("candidates", result.TotalCandidates),
		slog.Int("sent", result.SuccessCount),
		slog.Int("failed", result.FailedCount),
		slog.Int("skipped", result.SkippedCount),
	)

	h.recordCycle(c, runID, now, result)

	c.JSON(http.StatusOK, result)
}

func (h *CronHandler) recordCycle(c *gin.Context, runID string, now time.Time, result *dispatch.Response) {
	if h.resultRecorder == nil {
		return
	}

	ctx := c.Request.Context()

	records := make([]domain.DispatchRecord, 0, len(result.Results))
	for _, item := range result.Results {
		outcome := domain.OutcomeSent
		switch {
		case item.Skipped:
			outcome = domain.OutcomeSkipped
		case !item.Success:
			outcome = domain.OutcomeFailed
		}
		records = append(records, domain.DispatchRecord{
			RunID:         runID,
			CycleTime:     now,
			ScheduleID:    item.ScheduleID,
			ScheduleTitle: item.ScheduleTitle,
			Email:         item.Email,
			SubtopicTitle: item.Subtopic,
			Outcome:       outcome.String(),
			Error:         item.Error,
		})
	}

	if len(records) > 0 {
		if err := h.resultRecorder.RecordDispatches(ctx, records); err != nil {
			slog.WarnContext(ctx, "failed to record dispatch results",
				slog.String("error", err.Error()),
			)
		}
	}

	summary := domain.CycleSummaryRecord{
		RunID:           runID,
		CycleTime:       now,
		SchedulesRead:   result.SchedulesRead,
		TotalCandidates: result.TotalCandidates,
		SentCount:       result.SuccessCount,
		FailedCount:     result.FailedCount,
		SkippedCount:    result.SkippedCount,
	}
	if err := h.resultRecorder.RecordCycleSummary(ctx, summary); err != nil {
		slog.WarnContext(ctx, "failed to record cycle summary",
			slog.String("error", err.Error()),
		)
	}
}
