package notifier

import (
	"context"

	"github.com/studypath/reminder-service/internal/domain"
	"github.com/studypath/reminder-service/internal/infra/agent"
)

type agentNotifier struct {
	agent agent.Repository
}

// NewAgentNotifier delivers reminders by calling the study agent's reminder
// tool synchronously.
func NewAgentNotifier(repo agent.Repository) Notifier {
	return &agentNotifier{agent: repo}
}

func (n *agentNotifier) SendReminder(ctx context.Context, candidate domain.ReminderCandidate) (string, error) {
	return n.agent.SendReminder(ctx, agent.ReminderRequest{
		Username:        candidate.Username,
		Email:           candidate.Email,
		CurrentSubtopic: candidate.SubtopicTitle,
	})
}
