//go:build gcloud

package dispatchrecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/studypath/reminder-service/internal/domain"
)

type bigQueryDispatchRecord struct {
	RecordedAt    time.Time `bigquery:"recorded_at"`
	RunID         string    `bigquery:"run_id"`
	CycleTime     time.Time `bigquery:"cycle_time"`
	ScheduleID    string    `bigquery:"schedule_id"`
	ScheduleTitle string    `bigquery:"schedule_title"`
	Email         string    `bigquery:"email"`
	SubtopicTitle string    `bigquery:"subtopic_title"`
	Outcome       string    `bigquery:"outcome"`
	Error         string    `bigquery:"error"`
}

type bigQuerySummaryRecord struct {
	RecordedAt      time.Time `bigquery:"recorded_at"`
	RunID           string    `bigquery:"run_id"`
	CycleTime       time.Time `bigquery:"cycle_time"`
	SchedulesRead   int64     `bigquery:"schedules_read"`
	TotalCandidates int64     `bigquery:"total_candidates"`
	SentCount       int64     `bigquery:"sent_count"`
	FailedCount     int64     `bigquery:"failed_count"`
	SkippedCount    int64     `bigquery:"skipped_count"`
}

type bigQueryRecorder struct {
	client          *bigquery.Client
	inserter        *bigquery.Inserter
	summaryInserter *bigquery.Inserter
	dataset         string
	table           string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.DispatchRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "dispatch result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, dispatch result recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, dispatch result recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	dataset := client.Dataset(cfg.BigQueryDataset)
	inserter := dataset.Table(cfg.BigQueryTable).Inserter()
	summaryInserter := dataset.Table(cfg.BigQueryTable + "_cycles").Inserter()

	slog.InfoContext(ctx, "dispatch result recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:          client,
		inserter:        inserter,
		summaryInserter: summaryInserter,
		dataset:         cfg.BigQueryDataset,
		table:           cfg.BigQueryTable,
	}, nil
}

func (r *bigQueryRecorder) RecordDispatches(ctx context.Context, records []domain.DispatchRecord) error {
	if len(records) == 0 {
		return nil
	}

	now := time.Now()
	bqRecords := make([]*bigQueryDispatchRecord, 0, len(records))
	for _, record := range records {
		bqRecords = append(bqRecords, &bigQueryDispatchRecord{
			RecordedAt:    now,
			RunID:         record.RunID,
			CycleTime:     record.CycleTime,
			ScheduleID:    record.ScheduleID,
			ScheduleTitle: record.ScheduleTitle,
			Email:         record.Email,
			SubtopicTitle: record.SubtopicTitle,
			Outcome:       record.Outcome,
			Error:         record.Error,
		})
	}

	if err := r.inserter.Put(ctx, bqRecords); err != nil {
		slog.WarnContext(ctx, "failed to insert dispatch results to BigQuery",
			slog.String("error", err.Error()),
			slog.Int("record_count", len(records)),
		)
	}

	return nil
}

func (r *bigQueryRecorder) RecordCycleSummary(ctx context.Context, record domain.CycleSummaryRecord) error {
	row := &bigQuerySummaryRecord{
		RecordedAt:      time.Now(),
		RunID:           record.RunID,
		CycleTime:       record.CycleTime,
		SchedulesRead:   int64(record.SchedulesRead),
		TotalCandidates: int64(record.TotalCandidates),
		SentCount:       int64(record.SentCount),
		FailedCount:     int64(record.FailedCount),
		SkippedCount:    int64(record.SkippedCount),
	}

	if err := r.summaryInserter.Put(ctx, row); err != nil {
		slog.WarnContext(ctx, "failed to insert cycle summary to BigQuery",
			slog.String("error", err.Error()),
			slog.Time("cycle", record.CycleTime),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Flush(ctx context.Context) error {
	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
