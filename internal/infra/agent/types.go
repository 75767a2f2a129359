package agent

// ReminderRequest is the payload the study agent's reminder tool expects.
// The agent composes and delivers the email; this service only hands over
// who to notify and what they should be working on.
type ReminderRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	CurrentSubtopic string `json:"currentSubTopic"`
}

type ReminderResponse struct {
	Result string `json:"result"`
}

// PlanRequest asks the agent's planner tool for a new study plan.
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
