package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	reminderMeterName = "reminder.dispatch"
)

type ReminderMetrics struct {
	candidatesSelected metric.Int64Counter
	dispatches         metric.Int64Counter
	schedulesRead      metric.Int64Counter
	cycleDuration      metric.Float64Histogram
}

func NewReminderMetrics() (*ReminderMetrics, error) {
	meter := otel.Meter(reminderMeterName)

	candidatesSelected, err := meter.Int64Counter(
		"reminder_candidates_total",
		metric.WithDescription("Total number of reminder candidates selected"),
		metric.WithUnit("{candidate}"),
	)
	if err != nil {
		return nil, err
	}

	dispatches, err := meter.Int64Counter(
		"reminder_dispatches_total",
		metric.WithDescription("Total number of reminder dispatch attempts by outcome"),
		metric.WithUnit("{dispatch}"),
	)
	if err != nil {
		return nil, err
	}

	schedulesRead, err := meter.Int64Counter(
		"reminder_schedules_read_total",
		metric.WithDescription("Total number of reminder-enabled schedules read per cycle"),
		metric.WithUnit("{schedule}"),
	)
	if err != nil {
		return nil, err
	}

	cycleDuration, err := meter.Float64Histogram(
		"reminder_cycle_duration_seconds",
		metric.WithDescription("Dispatch cycle duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30,
		),
	)
	if err != nil {
		return nil, err
	}

	return &ReminderMetrics{
		candidatesSelected: candidatesSelected,
		dispatches:         dispatches,
		schedulesRead:      schedulesRead,
		cycleDuration:      cycleDuration,
	}, nil
}

func (m *ReminderMetrics) RecordCandidatesSelected(ctx context.Context, count int) {
	m.candidatesSelected.Add(ctx, int64(count))
}

func (m *ReminderMetrics) RecordDispatch(ctx context.Context, outcome string) {
	m.dispatches.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func (m *ReminderMetrics) RecordSchedulesRead(ctx context.Context, count int) {
	m.schedulesRead.Add(ctx, int64(count))
}

func (m *ReminderMetrics) RecordCycleDuration(ctx context.Context, duration time.Duration) {
	m.cycleDuration.Record(ctx, duration.Seconds())
}
