package notifier

import (
	"context"

	"github.com/studypath/reminder-service/internal/domain"
)

//go:generate mockgen -source=notifier.go -destination=mock.go -package=notifier

// Notifier delivers one reminder to one recipient. Local builds call the
// study agent synchronously; gcloud builds enqueue a delivery task instead.
// The returned string is the delivery result text for the cycle report.
type Notifier interface {
	SendReminder(ctx context.Context, candidate domain.ReminderCandidate) (string, error)
}
