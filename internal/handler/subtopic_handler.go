package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studypath/reminder-service/internal/service/schedule"
)

type SubtopicHandler struct {
	scheduleService *schedule.Service
}

func NewSubtopicHandler(scheduleService *schedule.Service) *SubtopicHandler {
	return &SubtopicHandler{
		scheduleService: scheduleService,
	}
}

type subtopicUpdateRequest struct {
	ScheduleID string `json:"scheduleId"`
	Range      string `json:"range"`
	SubIdx     *int   `json:"subIdx"`
	Completed  bool   `json:"completed"`
}

func (h *SubtopicHandler) HandleUpdate(c *gin.Context) {
	var req subtopicUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	if req.ScheduleID == "" || req.Range == "" || req.SubIdx == nil {
		respondError(c, http.StatusBadRequest, "validation_error", "scheduleId, range and subIdx are required")
		return
	}

	updated, err := h.scheduleService.UpdateSubtopic(c.Request.Context(), req.ScheduleID, req.Range, *req.SubIdx, req.Completed)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, subtopicJSON{
		ID:        updated.ID,
		Title:     updated.Title,
		Completed: updated.Completed,
	})
}
