package stub

import "time"

// Wire types mirroring the study agent's tool endpoints, so the reminder
// service can point AGENT_URL at this stub during load tests.

type PlanRequest struct {
	Topic         string `json:"topic"`
	DurationUnit  string `json:"durationUnit"`
	DurationValue int    `json:"durationValue"`
}

type PlanResponse struct {
	Plan []PlanItem `json:"plan"`
}

type PlanItem struct {
	Range     string     `json:"range"`
	Topic     string     `json:"topic"`
	Subtopics []Subtopic `json:"subtopics"`
}

type Subtopic struct {
	Title     string `json:"t"`
	Completed bool   `json:"completed"`
}

type ReminderRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	CurrentSubtopic string `json:"currentSubTopic"`
}

type ReminderResponse struct {
	Result string `json:"result"`
}

// ReceivedReminder is one recorded delivery, kept for assertions after a run.
type ReceivedReminder struct {
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	CurrentSubtopic string    `json:"currentSubTopic"`
	ReceivedAt      time.Time `json:"receivedAt"`
	Failed          bool      `json:"failed"`
}

type StatsResponse struct {
	RunID         string             `json:"run_id"`
	ReceivedCount int                `json:"received_count"`
	FailedCount   int                `json:"failed_count"`
	Reminders     []ReceivedReminder `json:"reminders"`
}

type FailureConfigRequest struct {
	// FailEveryNth makes every nth reminder delivery return HTTP 500.
	// Zero disables failure injection.
	FailEveryNth int `json:"fail_every_nth"`
}
