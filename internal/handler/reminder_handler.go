package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studypath/reminder-service/internal/service/schedule"
)

type ReminderHandler struct {
	scheduleService *schedule.Service
}

func NewReminderHandler(scheduleService *schedule.Service) *ReminderHandler {
	return &ReminderHandler{
		scheduleService: scheduleService,
	}
}

type reminderToggleRequest struct {
	ScheduleID string     `json:"scheduleId"`
	Enabled    bool       `json:"enabled"`
	StartDate  *time.Time `json:"startDate"`
}

func (h *ReminderHandler) HandleToggle(c *gin.Context) {
	var req reminderToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	if req.ScheduleID == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "scheduleId is required")
		return
	}

	updated, err := h.scheduleService.SetReminders(c.Request.Context(), req.ScheduleID, req.Enabled, req.StartDate)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toScheduleJSON(updated))
}
