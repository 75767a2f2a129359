package domain

import (
	"time"
)

// Quiz is an auto-generated set of questions attached to a finished study
// block. Question content comes from the external agent; this service only
// stores it and tracks attempts.
type Quiz struct {
	ID         string
	ScheduleID string
	Topic      string
	Questions  []Question
	CreatedAt  time.Time
}

type Question struct {
	ID      string
	Prompt  string
	Options []Option
}

type Option struct {
	ID      string
	Text    string
	Correct bool
}

// QuizAttempt tracks one user's run through a quiz. CompletedAt is nil while
// the attempt is still open; an open attempt is resumed instead of creating
// a second one.
type QuizAttempt struct {
	ID             string
	QuizID         string
	UserID         string
	Score          int
	TotalQuestions int
	Percentage     float64
	Answers        []AttemptAnswer
	StartedAt      time.Time
	CompletedAt    *time.Time
}

type AttemptAnswer struct {
	QuestionID string
	OptionID   string
	Correct    bool
}

func (a *QuizAttempt) IsCompleted() bool {
	return a.CompletedAt != nil
}

// Grade scores recorded answers against the quiz's correct options and marks
// the attempt completed.
func (a *QuizAttempt) Grade(quiz *Quiz, completedAt time.Time) {
	correctByQuestion := make(map[string]string, len(quiz.Questions))
	for _, q := range quiz.Questions {
		for _, o := range q.Options {
			if o.Correct {
				correctByQuestion[q.ID] = o.ID
			}
		}
	}

	score := 0
	for i := range a.Answers {
		a.Answers[i].Correct = correctByQuestion[a.Answers[i].QuestionID] == a.Answers[i].OptionID
		if a.Answers[i].Correct {
			score++
		}
	}

	a.Score = score
	a.TotalQuestions = len(quiz.Questions)
	if a.TotalQuestions > 0 {
		a.Percentage = float64(score) / float64(a.TotalQuestions) * 100
	}
	a.CompletedAt = &completedAt
}
