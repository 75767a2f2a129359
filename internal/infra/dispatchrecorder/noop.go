package dispatchrecorder

import (
	"context"

	"github.com/studypath/reminder-service/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.DispatchRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordDispatches(_ context.Context, _ []domain.DispatchRecord) error {
	return nil
}

func (n *noopRecorder) RecordCycleSummary(_ context.Context, _ domain.CycleSummaryRecord) error {
	return nil
}

func (n *noopRecorder) Flush(_ context.Context) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
