package domain

// ReminderCandidate is an ephemeral record meaning "this person should be
// notified about this subtopic right now". Candidates are computed fresh on
// every dispatch cycle and never persisted.
type ReminderCandidate struct {
	ScheduleID    string
	ScheduleTitle string
	Username      string
	Email         string
	Topic         string
	Range         string
	SubtopicID    string
	SubtopicTitle string
}
