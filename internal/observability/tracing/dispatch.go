package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const dispatchTracerName = "github.com/studypath/reminder-service/internal/service/dispatch"

func DispatchTracer() trace.Tracer {
	return otel.Tracer(dispatchTracerName)
}

func StartCycleSpan(ctx context.Context, now time.Time) (context.Context, trace.Span) {
	return DispatchTracer().Start(ctx, "reminder.dispatch_cycle",
		trace.WithAttributes(
			attribute.String("cycle.now", now.Format(time.RFC3339)),
		),
	)
}

func StartDeliverySpan(ctx context.Context, scheduleID, subtopicID string) (context.Context, trace.Span) {
	return DispatchTracer().Start(ctx, "reminder.delivery",
		trace.WithAttributes(
			attribute.String("schedule_id", scheduleID),
			attribute.String("subtopic_id", subtopicID),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordCycleResult(span trace.Span, schedulesRead, totalCandidates, sentCount, failedCount, skippedCount int, err error) {
	span.SetAttributes(
		attribute.Int("cycle.schedules_read", schedulesRead),
		attribute.Int("cycle.total_candidates", totalCandidates),
		attribute.Int("cycle.sent_count", sentCount),
		attribute.Int("cycle.failed_count", failedCount),
		attribute.Int("cycle.skipped_count", skippedCount),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
