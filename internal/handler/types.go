package handler

import (
	"time"

	"github.com/studypath/reminder-service/internal/domain"
)

type subtopicJSON struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type planItemJSON struct {
	ID        string         `json:"id"`
	Range     string         `json:"range"`
	Topic     string         `json:"topic"`
	Subtopics []subtopicJSON `json:"subtopics"`
}

type scheduleJSON struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	UserID           string         `json:"userId"`
	RemindersEnabled bool           `json:"remindersEnabled"`
	StartDate        *time.Time     `json:"startDate,omitempty"`
	Plan             []planItemJSON `json:"plan"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

type userJSON struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

type attemptJSON struct {
	ID             string              `json:"id"`
	QuizID         string              `json:"quizId"`
	UserID         string              `json:"userId"`
	Score          int                 `json:"score"`
	TotalQuestions int                 `json:"totalQuestions"`
	Percentage     float64             `json:"percentage"`
	Answers        []attemptAnswerJSON `json:"answers,omitempty"`
	StartedAt      time.Time           `json:"startedAt"`
	CompletedAt    *time.Time          `json:"completedAt,omitempty"`
}

type attemptAnswerJSON struct {
	QuestionID string `json:"questionId"`
	OptionID   string `json:"optionId"`
	Correct    bool   `json:"correct"`
}

type quizJSON struct {
	ID         string         `json:"id"`
	ScheduleID string         `json:"scheduleId"`
	Topic      string         `json:"topic"`
	Questions  []questionJSON `json:"questions"`
	CreatedAt  time.Time      `json:"createdAt"`
}

type questionJSON struct {
	ID      string       `json:"id"`
	Prompt  string       `json:"prompt"`
	Options []optionJSON `json:"options"`
}

// optionJSON deliberately omits the Correct flag; answers are graded server
// side and the flag must not leak to quiz takers.
type optionJSON struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func toUserJSON(u *domain.User) userJSON {
	return userJSON{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

func toScheduleJSON(s *domain.Schedule) scheduleJSON {
	plan := make([]planItemJSON, 0, len(s.PlanItems))
	for _, item := range s.PlanItems {
		subs := make([]subtopicJSON, 0, len(item.Subtopics))
		for _, sub := range item.Subtopics {
			subs = append(subs, subtopicJSON{
				ID:        sub.ID,
				Title:     sub.Title,
				Completed: sub.Completed,
			})
		}
		plan = append(plan, planItemJSON{
			ID:        item.ID,
			Range:     item.Range,
			Topic:     item.Topic,
			Subtopics: subs,
		})
	}
	return scheduleJSON{
		ID:               s.ID,
		Title:            s.Title,
		UserID:           s.UserID,
		RemindersEnabled: s.RemindersEnabled,
		StartDate:        s.StartDate,
		Plan:             plan,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func toAttemptJSON(a *domain.QuizAttempt) attemptJSON {
	answers := make([]attemptAnswerJSON, 0, len(a.Answers))
	for _, answer := range a.Answers {
		answers = append(answers, attemptAnswerJSON{
			QuestionID: answer.QuestionID,
			OptionID:   answer.OptionID,
			Correct:    answer.Correct,
		})
	}
	return attemptJSON{
		ID:             a.ID,
		QuizID:         a.QuizID,
		UserID:         a.UserID,
		Score:          a.Score,
		TotalQuestions: a.TotalQuestions,
		Percentage:     a.Percentage,
		Answers:        answers,
		StartedAt:      a.StartedAt,
		CompletedAt:    a.CompletedAt,
	}
}

func toQuizJSON(q *domain.Quiz) quizJSON {
	questions := make([]questionJSON, 0, len(q.Questions))
	for _, question := range q.Questions {
		options := make([]optionJSON, 0, len(question.Options))
		for _, option := range question.Options {
			options = append(options, optionJSON{
				ID:   option.ID,
				Text: option.Text,
			})
		}
		questions = append(questions, questionJSON{
			ID:      question.ID,
			Prompt:  question.Prompt,
			Options: options,
		})
	}
	return quizJSON{
		ID:         q.ID,
		ScheduleID: q.ScheduleID,
		Topic:      q.Topic,
		Questions:  questions,
		CreatedAt:  q.CreatedAt,
	}
}
