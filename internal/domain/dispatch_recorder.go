package domain

import (
	"context"
	"time"
)

// DispatchRecord is one row of a dispatch cycle's result report, written to
// the analytics backend for monitoring missed or failing reminders.
type DispatchRecord struct {
	RunID         string
	CycleTime     time.Time
	ScheduleID    string
	ScheduleTitle string
	Email         string
	SubtopicTitle string
	Outcome       string
	Error         string
}

// CycleSummaryRecord aggregates one full dispatch cycle.
type CycleSummaryRecord struct {
	RunID           string
	CycleTime       time.Time
	SchedulesRead   int
	TotalCandidates int
	SentCount       int
	FailedCount     int
	SkippedCount    int
}

type DispatchRecorder interface {
	RecordDispatches(ctx context.Context, records []DispatchRecord) error
	RecordCycleSummary(ctx context.Context, record CycleSummaryRecord) error
	Flush(ctx context.Context) error
	Close() error
}
