package domain

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrScheduleNotFound    = errors.New("schedule not found")
	ErrPlanItemNotFound    = errors.New("plan item not found for the given range")
	ErrSubtopicIndex       = errors.New("subtopic index out of range")
	ErrStartDateRequired   = errors.New("start date is required when enabling reminders")
	ErrQuizNotFound        = errors.New("quiz not found")
	ErrAttemptNotFound     = errors.New("quiz attempt not found")
	ErrAttemptCompleted    = errors.New("quiz attempt already completed")
	ErrQuestionNotInQuiz   = errors.New("question does not belong to the quiz")
	ErrOptionNotInQuestion = errors.New("option does not belong to the question")
)
