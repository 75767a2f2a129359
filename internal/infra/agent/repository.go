package agent

import (
	"context"
)

//go:generate mockgen -source=repository.go -destination=mock.go -package=agent

// Repository is the boundary to the external study-agent service. Plan and
// email content generation live entirely on the other side of it.
type Repository interface {
	GeneratePlan(ctx context.Context, req PlanRequest) (*PlanResponse, error)
	SendReminder(ctx context.Context, req ReminderRequest) (string, error)
}
