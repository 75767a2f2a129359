package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=repositories.go -destination=repositories_mock.go -package=domain

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	FindByEmailAndUsername(ctx context.Context, email, username string) (*User, error)
}

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *Schedule) error
	GetByID(ctx context.Context, id string) (*Schedule, error)
	ListByUser(ctx context.Context, userID string) ([]*Schedule, error)
	Delete(ctx context.Context, id string) error

	// ListReminderEnabled returns every schedule with reminders enabled and a
	// non-nil start date, plan items and subtopics nested in creation order,
	// together with the owning user. This is the dispatch loop's one bulk read.
	ListReminderEnabled(ctx context.Context) ([]*ScheduleWithOwner, error)

	// FindReminderEnabledByUser returns the user's currently reminder-enabled
	// schedule, or ErrScheduleNotFound when none is enabled.
	FindReminderEnabledByUser(ctx context.Context, userID string) (*Schedule, error)

	SetReminders(ctx context.Context, scheduleID string, enabled bool, startDate *time.Time) (*Schedule, error)

	// UpdateSubtopicCompletion flips the completion flag of the subIdx-th
	// subtopic of the plan item identified by schedule + range label, inside
	// one transaction.
	UpdateSubtopicCompletion(ctx context.Context, scheduleID, rangeLabel string, subIdx int, completed bool) (*Subtopic, error)
}

// ScheduleWithOwner is the read model the dispatch loop consumes: a schedule
// snapshot joined with its owning user's contact fields.
type ScheduleWithOwner struct {
	Schedule *Schedule
	Owner    *User
}

type QuizRepository interface {
	CreateQuiz(ctx context.Context, quiz *Quiz) error
	GetQuiz(ctx context.Context, quizID string) (*Quiz, error)
	FindOpenAttempt(ctx context.Context, quizID, userID string) (*QuizAttempt, error)
	CreateAttempt(ctx context.Context, attempt *QuizAttempt) error
	GetAttempt(ctx context.Context, attemptID string) (*QuizAttempt, error)
	SaveAttempt(ctx context.Context, attempt *QuizAttempt) error
	ListAttemptsByUser(ctx context.Context, userID string) ([]*QuizAttempt, error)
}

// DedupGuard is the optional persisted dedup check described as the
// production hardening for the stateless notify-moment bucket. A nil guard
// means the loop relies on the bucket alone.
type DedupGuard interface {
	AlreadyNotified(ctx context.Context, scheduleID, subtopicID string, bucket time.Time) (bool, error)
	MarkNotified(ctx context.Context, marker *NotifiedMarker) error
}
