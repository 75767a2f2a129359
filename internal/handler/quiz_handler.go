package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studypath/reminder-service/internal/domain"
	"github.com/studypath/reminder-service/internal/service/quiz"
)

type QuizHandler struct {
	quizService *quiz.Service
}

func NewQuizHandler(quizService *quiz.Service) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
	}
}

type saveQuizRequest struct {
	ScheduleID string `json:"scheduleId"`
	Topic      string `json:"topic"`
	Questions  []struct {
		Prompt  string `json:"prompt"`
		Options []struct {
			Text    string `json:"text"`
			Correct bool   `json:"correct"`
		} `json:"options"`
	} `json:"questions"`
}

type startAttemptRequest struct {
	UserID string `json:"userId"`
}

type submitAttemptRequest struct {
	Answers []struct {
		QuestionID string `json:"questionId"`
		OptionID   string `json:"optionId"`
	} `json:"answers"`
}

func (h *QuizHandler) HandleSave(c *gin.Context) {
	var req saveQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	if req.ScheduleID == "" || len(req.Questions) == 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "scheduleId and questions are required")
		return
	}

	toSave := &domain.Quiz{
		ScheduleID: req.ScheduleID,
		Topic:      req.Topic,
	}
	for _, q := range req.Questions {
		question := domain.Question{Prompt: q.Prompt}
		for _, o := range q.Options {
			question.Options = append(question.Options, domain.Option{
				Text:    o.Text,
				Correct: o.Correct,
			})
		}
		toSave.Questions = append(toSave.Questions, question)
	}

	if err := h.quizService.SaveQuiz(c.Request.Context(), toSave); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toQuizJSON(toSave))
}

func (h *QuizHandler) HandleGet(c *gin.Context) {
	found, err := h.quizService.GetQuiz(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toQuizJSON(found))
}

func (h *QuizHandler) HandleStartAttempt(c *gin.Context) {
	var req startAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	if req.UserID == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "userId is required")
		return
	}

	attempt, err := h.quizService.StartAttempt(c.Request.Context(), c.Param("id"), req.UserID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAttemptJSON(attempt))
}

func (h *QuizHandler) HandleSubmitAttempt(c *gin.Context) {
	var req submitAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	answers := make([]domain.AttemptAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, domain.AttemptAnswer{
			QuestionID: a.QuestionID,
			OptionID:   a.OptionID,
		})
	}

	attempt, err := h.quizService.SubmitAttempt(c.Request.Context(), c.Param("attemptId"), answers)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAttemptJSON(attempt))
}

func (h *QuizHandler) HandleGetAttempt(c *gin.Context) {
	attempt, err := h.quizService.GetAttempt(c.Request.Context(), c.Param("attemptId"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAttemptJSON(attempt))
}

func (h *QuizHandler) HandleHistory(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "userId query parameter is required")
		return
	}

	attempts, err := h.quizService.History(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	out := make([]attemptJSON, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, toAttemptJSON(a))
	}
	c.JSON(http.StatusOK, gin.H{"attempts": out})
}
