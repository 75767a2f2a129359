package domain

import (
	"time"
)

// NotifiedMarker records that a reminder for one subtopic was dispatched
// during one notify bucket. Markers exist only when the optional dedup guard
// is configured; without it the dispatch loop stays fully stateless and
// relies on the notify-moment bucket alone.
type NotifiedMarker struct {
	ScheduleID string
	SubtopicID string
	Bucket     string
	NotifiedAt time.Time
}

func NewNotifiedMarker(scheduleID, subtopicID string, bucket time.Time) *NotifiedMarker {
	return &NotifiedMarker{
		ScheduleID: scheduleID,
		SubtopicID: subtopicID,
		Bucket:     BucketKey(bucket),
		NotifiedAt: time.Now().UTC(),
	}
}

// BucketKey truncates t to the hour it belongs to. One reminder per subtopic
// per hour bucket is the dedup unit.
func BucketKey(t time.Time) string {
	return t.UTC().Truncate(time.Hour).Format("2006-01-02-15")
}
