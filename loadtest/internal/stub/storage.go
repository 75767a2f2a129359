package stub

import (
	"sync"
	"time"
)

// ReminderLog records deliveries per run so load tests can assert on what
// the reminder service actually dispatched.
type ReminderLog struct {
	mu           sync.RWMutex
	received     map[string][]ReceivedReminder // runID -> deliveries
	failEveryNth map[string]int                // runID -> failure injection
	counters     map[string]int                // runID -> delivery counter
}

func NewReminderLog() *ReminderLog {
	return &ReminderLog{
		received:     make(map[string][]ReceivedReminder),
		failEveryNth: make(map[string]int),
		counters:     make(map[string]int),
	}
}

func (l *ReminderLog) Reset(runID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.received, runID)
	delete(l.failEveryNth, runID)
	delete(l.counters, runID)
}

func (l *ReminderLog) ResetAll() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.received = make(map[string][]ReceivedReminder)
	l.failEveryNth = make(map[string]int)
	l.counters = make(map[string]int)
}

func (l *ReminderLog) SetFailEveryNth(runID string, n int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failEveryNth[runID] = n
}

// Record logs one delivery attempt and reports whether the stub should fail
// it according to the run's failure injection setting.
func (l *ReminderLog) Record(runID string, req ReminderRequest) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.counters[runID]++

	fail := false
	if n := l.failEveryNth[runID]; n > 0 && l.counters[runID]%n == 0 {
		fail = true
	}

	l.received[runID] = append(l.received[runID], ReceivedReminder{
		Username:        req.Username,
		Email:           req.Email,
		CurrentSubtopic: req.CurrentSubtopic,
		ReceivedAt:      time.Now(),
		Failed:          fail,
	})

	return fail
}

func (l *ReminderLog) Stats(runID string) StatsResponse {
	l.mu.RLock()
	defer l.mu.RUnlock()

	reminders := l.received[runID]
	failed := 0
	for _, r := range reminders {
		if r.Failed {
			failed++
		}
	}

	out := make([]ReceivedReminder, len(reminders))
	copy(out, reminders)

	return StatsResponse{
		RunID:         runID,
		ReceivedCount: len(reminders),
		FailedCount:   failed,
		Reminders:     out,
	}
}
