package store

import (
	"time"

	"github.com/studypath/reminder-service/internal/domain"
)

// Persistence models. Plan items and subtopics carry an explicit position
// column because reminder selection depends on stored order, and relying on
// insertion order of rows is not a guarantee postgres makes.

type userModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	Email     string `gorm:"uniqueIndex;not null"`
	Username  string `gorm:"not null"`
	CreatedAt time.Time
}

func (userModel) TableName() string { return "users" }

type scheduleModel struct {
	ID               string `gorm:"primaryKey;type:uuid"`
	Title            string `gorm:"not null"`
	UserID           string `gorm:"type:uuid;index;not null"`
	RemindersEnabled bool   `gorm:"index"`
	StartDate        *time.Time
	PlanItems        []planItemModel `gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (scheduleModel) TableName() string { return "schedules" }

type planItemModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	ScheduleID string `gorm:"type:uuid;index;not null"`
	Position   int    `gorm:"not null"`
	RangeLabel string `gorm:"column:range_label;not null"`
	Topic      string
	Subtopics  []subtopicModel `gorm:"foreignKey:PlanItemID;constraint:OnDelete:CASCADE"`
}

func (planItemModel) TableName() string { return "plan_items" }

type subtopicModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	PlanItemID string `gorm:"type:uuid;index;not null"`
	Position   int    `gorm:"not null"`
	Title      string `gorm:"not null"`
	Completed  bool
}

func (subtopicModel) TableName() string { return "subtopics" }

type quizModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	ScheduleID string `gorm:"type:uuid;index;not null"`
	Topic      string
	Questions  []questionModel `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
}

func (quizModel) TableName() string { return "quizzes" }

type questionModel struct {
	ID       string `gorm:"primaryKey;type:uuid"`
	QuizID   string `gorm:"type:uuid;index;not null"`
	Position int    `gorm:"not null"`
	Prompt   string `gorm:"not null"`
	Options  []optionModel `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

func (questionModel) TableName() string { return "questions" }

type optionModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	QuestionID string `gorm:"type:uuid;index;not null"`
	Position   int    `gorm:"not null"`
	Text       string `gorm:"not null"`
	Correct    bool
}

func (optionModel) TableName() string { return "options" }

type quizAttemptModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	QuizID         string `gorm:"type:uuid;index;not null"`
	UserID         string `gorm:"type:uuid;index;not null"`
	Score          int
	TotalQuestions int
	Percentage     float64
	Answers        []attemptAnswerModel `gorm:"foreignKey:AttemptID;constraint:OnDelete:CASCADE"`
	StartedAt      time.Time
	CompletedAt    *time.Time
}

func (quizAttemptModel) TableName() string { return "quiz_attempts" }

type attemptAnswerModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	AttemptID  string `gorm:"type:uuid;index;not null"`
	QuestionID string `gorm:"type:uuid;not null"`
	OptionID   string `gorm:"type:uuid;not null"`
	Correct    bool
}

func (attemptAnswerModel) TableName() string { return "attempt_answers" }

func (m *userModel) toDomain() *domain.User {
	return &domain.User{
		ID:        m.ID,
		Email:     m.Email,
		Username:  m.Username,
		CreatedAt: m.CreatedAt,
	}
}

func (m *scheduleModel) toDomain() *domain.Schedule {
	items := make([]domain.PlanItem, 0, len(m.PlanItems))
	for _, item := range m.PlanItems {
		subs := make([]domain.Subtopic, 0, len(item.Subtopics))
		for _, sub := range item.Subtopics {
			subs = append(subs, domain.Subtopic{
				ID:        sub.ID,
				Title:     sub.Title,
				Completed: sub.Completed,
			})
		}
		items = append(items, domain.PlanItem{
			ID:        item.ID,
			Range:     item.RangeLabel,
			Topic:     item.Topic,
			Subtopics: subs,
		})
	}
	return &domain.Schedule{
		ID:               m.ID,
		Title:            m.Title,
		UserID:           m.UserID,
		RemindersEnabled: m.RemindersEnabled,
		StartDate:        m.StartDate,
		PlanItems:        items,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func (m *quizModel) toDomain() *domain.Quiz {
	questions := make([]domain.Question, 0, len(m.Questions))
	for _, q := range m.Questions {
		options := make([]domain.Option, 0, len(q.Options))
		for _, o := range q.Options {
			options = append(options, domain.Option{
				ID:      o.ID,
				Text:    o.Text,
				Correct: o.Correct,
			})
		}
		questions = append(questions, domain.Question{
			ID:      q.ID,
			Prompt:  q.Prompt,
			Options: options,
		})
	}
	return &domain.Quiz{
		ID:         m.ID,
		ScheduleID: m.ScheduleID,
		Topic:      m.Topic,
		Questions:  questions,
		CreatedAt:  m.CreatedAt,
	}
}

func (m *quizAttemptModel) toDomain() *domain.QuizAttempt {
	answers := make([]domain.AttemptAnswer, 0, len(m.Answers))
	for _, a := range m.Answers {
		answers = append(answers, domain.AttemptAnswer{
			QuestionID: a.QuestionID,
			OptionID:   a.OptionID,
			Correct:    a.Correct,
		})
	}
	return &domain.QuizAttempt{
		ID:             m.ID,
		QuizID:         m.QuizID,
		UserID:         m.UserID,
		Score:          m.Score,
		TotalQuestions: m.TotalQuestions,
		Percentage:     m.Percentage,
		Answers:        answers,
		StartedAt:      m.StartedAt,
		CompletedAt:    m.CompletedAt,
	}
}
