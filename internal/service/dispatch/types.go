package dispatch

// ResultItem records one dispatch attempt for the cycle report.
type ResultItem struct {
	ScheduleID    string `json:"schedule_id"`
	ScheduleTitle string `json:"schedule_title"`
	Email         string `json:"email"`
	Subtopic      string `json:"subtopic"`
	Range         string `json:"range"`
	Skipped       bool   `json:"skipped"`
	SkipReason    string `json:"skip_reason,omitempty"`
	Success       bool   `json:"success"`
	AgentResponse string `json:"agent_response,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Response summarizes one full dispatch cycle.
type Response struct {
	SchedulesRead   int          `json:"schedules_read"`
	TotalCandidates int          `json:"total_candidates"`
	SuccessCount    int          `json:"success_count"`
	FailedCount     int          `json:"failed_count"`
	SkippedCount    int          `json:"skipped_count"`
	Results         []ResultItem `json:"results"`
}
