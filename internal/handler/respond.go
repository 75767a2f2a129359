package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studypath/reminder-service/internal/domain"
	"github.com/studypath/reminder-service/internal/service/schedule"
	"github.com/studypath/reminder-service/internal/service/user"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func respondError(c *gin.Context, status int, errType, message string) {
	c.JSON(status, errorResponse{
		Error:   errType,
		Message: message,
	})
}

// respondDomainError maps sentinel errors to HTTP statuses so handlers can
// pass service errors through without switching on them individually.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrScheduleNotFound),
		errors.Is(err, domain.ErrPlanItemNotFound),
		errors.Is(err, domain.ErrQuizNotFound),
		errors.Is(err, domain.ErrAttemptNotFound):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrEmailTaken):
		respondError(c, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, domain.ErrStartDateRequired),
		errors.Is(err, domain.ErrSubtopicIndex),
		errors.Is(err, domain.ErrAttemptCompleted),
		errors.Is(err, domain.ErrQuestionNotInQuiz),
		errors.Is(err, domain.ErrOptionNotInQuestion),
		errors.Is(err, schedule.ErrEmptyPlan),
		errors.Is(err, user.ErrEmailRequired),
		errors.Is(err, user.ErrUsernameRequired):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "processing_error", err.Error())
	}
}
