// Package quiz tracks attempts against stored quizzes: starting (or
// resuming) an attempt, grading a submission, and per-user history.
package quiz

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/studypath/reminder-service/internal/domain"
)

type Service struct {
	quizRepo domain.QuizRepository
}

func NewService(quizRepo domain.QuizRepository) *Service {
	return &Service{
		quizRepo: quizRepo,
	}
}

func (s *Service) SaveQuiz(ctx context.Context, quiz *domain.Quiz) error {
	if err := s.quizRepo.CreateQuiz(ctx, quiz); err != nil {
		return err
	}

	slog.InfoContext(ctx, "quiz saved",
		slog.String("quiz_id", quiz.ID),
		slog.String("schedule_id", quiz.ScheduleID),
		slog.Int("question_count", len(quiz.Questions)),
	)
	return nil
}

func (s *Service) GetQuiz(ctx context.Context, quizID string) (*domain.Quiz, error) {
	return s.quizRepo.GetQuiz(ctx, quizID)
}

// StartAttempt resumes the user's open attempt on the quiz when one exists,
// otherwise it creates a fresh one. A user never holds two open attempts on
// the same quiz.
func (s *Service) StartAttempt(ctx context.Context, quizID, userID string) (*domain.QuizAttempt, error) {
	quiz, err := s.quizRepo.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	open, err := s.quizRepo.FindOpenAttempt(ctx, quizID, userID)
	if err == nil {
		slog.InfoContext(ctx, "resuming open quiz attempt",
			slog.String("attempt_id", open.ID),
			slog.String("quiz_id", quizID),
			slog.String("user_id", userID),
		)
		return open, nil
	}
	if !errors.Is(err, domain.ErrAttemptNotFound) {
		return nil, err
	}

	attempt := &domain.QuizAttempt{
		QuizID:         quizID,
		UserID:         userID,
		TotalQuestions: len(quiz.Questions),
	}
	if err := s.quizRepo.CreateAttempt(ctx, attempt); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "quiz attempt started",
		slog.String("attempt_id", attempt.ID),
		slog.String("quiz_id", quizID),
		slog.String("user_id", userID),
	)

	return attempt, nil
}

// SubmitAttempt validates the answers against the quiz structure, grades
// them, and closes the attempt.
func (s *Service) SubmitAttempt(ctx context.Context, attemptID string, answers []domain.AttemptAnswer) (*domain.QuizAttempt, error) {
	attempt, err := s.quizRepo.GetAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.IsCompleted() {
		return nil, domain.ErrAttemptCompleted
	}

	quiz, err := s.quizRepo.GetQuiz(ctx, attempt.QuizID)
	if err != nil {
		return nil, err
	}

	if err := validateAnswers(quiz, answers); err != nil {
		return nil, err
	}

	attempt.Answers = answers
	attempt.Grade(quiz, time.Now().UTC())

	if err := s.quizRepo.SaveAttempt(ctx, attempt); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "quiz attempt submitted",
		slog.String("attempt_id", attempt.ID),
		slog.Int("score", attempt.Score),
		slog.Int("total", attempt.TotalQuestions),
	)

	return attempt, nil
}

func (s *Service) GetAttempt(ctx context.Context, attemptID string) (*domain.QuizAttempt, error) {
	return s.quizRepo.GetAttempt(ctx, attemptID)
}

func (s *Service) History(ctx context.Context, userID string) ([]*domain.QuizAttempt, error) {
	return s.quizRepo.ListAttemptsByUser(ctx, userID)
}

func validateAnswers(quiz *domain.Quiz, answers []domain.AttemptAnswer) error {
	optionsByQuestion := make(map[string]map[string]struct{}, len(quiz.Questions))
	for _, q := range quiz.Questions {
		options := make(map[string]struct{}, len(q.Options))
		for _, o := range q.Options {
			options[o.ID] = struct{}{}
		}
		optionsByQuestion[q.ID] = options
	}

	for _, answer := range answers {
		options, ok := optionsByQuestion[answer.QuestionID]
		if !ok {
			return domain.ErrQuestionNotInQuiz
		}
		if _, ok := options[answer.OptionID]; !ok {
			return domain.ErrOptionNotInQuestion
		}
	}
	return nil
}
