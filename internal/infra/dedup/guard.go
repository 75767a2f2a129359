// Package dedup implements the optional redis-backed notification guard.
// It is wired only when a redis address is configured; the dispatch loop
// treats a nil guard as "rely on the notify bucket alone".
package dedup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/studypath/reminder-service/internal/domain"
)

const (
	notifiedKeyPrefix = "reminder:notified:"

	// Markers only need to outlive their own hour bucket; two hours leaves
	// slack for clock skew between the cron caller and this service.
	notifiedMarkerTTL = 2 * time.Hour
)

type markerRecord struct {
	ScheduleID string    `json:"schedule_id"`
	SubtopicID string    `json:"subtopic_id"`
	Bucket     string    `json:"bucket"`
	NotifiedAt time.Time `json:"notified_at"`
}

type redisGuard struct {
	client *redis.Client
}

func NewRedisGuard(client *redis.Client) domain.DedupGuard {
	return &redisGuard{
		client: client,
	}
}

func markerKey(scheduleID, subtopicID, bucket string) string {
	return fmt.Sprintf("%s%s:%s:%s", notifiedKeyPrefix, scheduleID, subtopicID, bucket)
}

func (g *redisGuard) AlreadyNotified(ctx context.Context, scheduleID, subtopicID string, bucket time.Time) (bool, error) {
	key := markerKey(scheduleID, subtopicID, domain.BucketKey(bucket))

	exists, err := g.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}

	return exists > 0, nil
}

func (g *redisGuard) MarkNotified(ctx context.Context, marker *domain.NotifiedMarker) error {
	if marker == nil {
		return ErrInvalidMarkerData
	}

	key := markerKey(marker.ScheduleID, marker.SubtopicID, marker.Bucket)

	record := markerRecord{
		ScheduleID: marker.ScheduleID,
		SubtopicID: marker.SubtopicID,
		Bucket:     marker.Bucket,
		NotifiedAt: marker.NotifiedAt,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidMarkerData
	}

	return g.client.Set(ctx, key, data, notifiedMarkerTTL).Err()
}
