package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/studypath/reminder-service/internal/domain"
)

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) domain.QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) CreateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	if quiz.ID == "" {
		quiz.ID = uuid.NewString()
	}
	if quiz.CreatedAt.IsZero() {
		quiz.CreatedAt = time.Now().UTC()
	}

	model := quizModel{
		ID:         quiz.ID,
		ScheduleID: quiz.ScheduleID,
		Topic:      quiz.Topic,
		CreatedAt:  quiz.CreatedAt,
	}

	for i := range quiz.Questions {
		question := &quiz.Questions[i]
		if question.ID == "" {
			question.ID = uuid.NewString()
		}
		qm := questionModel{
			ID:       question.ID,
			QuizID:   quiz.ID,
			Position: i,
			Prompt:   question.Prompt,
		}
		for j := range question.Options {
			option := &question.Options[j]
			if option.ID == "" {
				option.ID = uuid.NewString()
			}
			qm.Options = append(qm.Options, optionModel{
				ID:         option.ID,
				QuestionID: question.ID,
				Position:   j,
				Text:       option.Text,
				Correct:    option.Correct,
			})
		}
		model.Questions = append(model.Questions, qm)
	}

	return r.db.WithContext(ctx).Create(&model).Error
}

func (r *quizRepository) GetQuiz(ctx context.Context, quizID string) (*domain.Quiz, error) {
	var model quizModel
	err := r.db.WithContext(ctx).
		Preload("Questions", orderByPosition).
		Preload("Questions.Options", orderByPosition).
		First(&model, "id = ?", quizID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrQuizNotFound
		}
		return nil, err
	}
	return model.toDomain(), nil
}

func (r *quizRepository) FindOpenAttempt(ctx context.Context, quizID, userID string) (*domain.QuizAttempt, error) {
	var model quizAttemptModel
	err := r.db.WithContext(ctx).
		Preload("Answers").
		First(&model, "quiz_id = ? AND user_id = ? AND completed_at IS NULL", quizID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAttemptNotFound
		}
		return nil, err
	}
	return model.toDomain(), nil
}

func (r *quizRepository) CreateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	if attempt.ID == "" {
		attempt.ID = uuid.NewString()
	}
	if attempt.StartedAt.IsZero() {
		attempt.StartedAt = time.Now().UTC()
	}

	model := quizAttemptModel{
		ID:             attempt.ID,
		QuizID:         attempt.QuizID,
		UserID:         attempt.UserID,
		Score:          attempt.Score,
		TotalQuestions: attempt.TotalQuestions,
		Percentage:     attempt.Percentage,
		StartedAt:      attempt.StartedAt,
		CompletedAt:    attempt.CompletedAt,
	}
	return r.db.WithContext(ctx).Create(&model).Error
}

func (r *quizRepository) GetAttempt(ctx context.Context, attemptID string) (*domain.QuizAttempt, error) {
	var model quizAttemptModel
	err := r.db.WithContext(ctx).
		Preload("Answers").
		First(&model, "id = ?", attemptID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAttemptNotFound
		}
		return nil, err
	}
	return model.toDomain(), nil
}

// SaveAttempt persists the grading result. Answers are replaced wholesale
// inside the transaction; an attempt has at most a handful of them.
func (r *quizRepository) SaveAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&quizAttemptModel{}).
			Where("id = ?", attempt.ID).
			Updates(map[string]any{
				"score":           attempt.Score,
				"total_questions": attempt.TotalQuestions,
				"percentage":      attempt.Percentage,
				"completed_at":    attempt.CompletedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrAttemptNotFound
		}

		if err := tx.Delete(&attemptAnswerModel{}, "attempt_id = ?", attempt.ID).Error; err != nil {
			return err
		}

		for _, answer := range attempt.Answers {
			model := attemptAnswerModel{
				ID:         uuid.NewString(),
				AttemptID:  attempt.ID,
				QuestionID: answer.QuestionID,
				OptionID:   answer.OptionID,
				Correct:    answer.Correct,
			}
			if err := tx.Create(&model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *quizRepository) ListAttemptsByUser(ctx context.Context, userID string) ([]*domain.QuizAttempt, error) {
	var models []quizAttemptModel
	err := r.db.WithContext(ctx).
		Preload("Answers").
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	attempts := make([]*domain.QuizAttempt, 0, len(models))
	for i := range models {
		attempts = append(attempts, models[i].toDomain())
	}
	return attempts, nil
}
