package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studypath/reminder-service/internal/domain"
	"github.com/studypath/reminder-service/internal/service/schedule"
)

type ScheduleHandler struct {
	scheduleService *schedule.Service
}

func NewScheduleHandler(scheduleService *schedule.Service) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
	}
}

type savePlanItem struct {
	Range     string `json:"range"`
	Topic     string `json:"topic"`
	Subtopics []struct {
		Title     string `json:"t"`
		Completed bool   `json:"completed"`
	} `json:"subtopics"`
}

type saveScheduleRequest struct {
	UserID string         `json:"userId"`
	Title  string         `json:"title"`
	Plan   []savePlanItem `json:"plan"`
}

type generateRequest struct {
	Topic         string `json:"topic"`
	DurationUnit  string `json:"durationUnit"`
	DurationValue int    `json:"durationValue"`
}

func (h *ScheduleHandler) HandleSave(c *gin.Context) {
	var req saveScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	if req.UserID == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "userId is required")
		return
	}

	plan := make([]domain.PlanItem, 0, len(req.Plan))
	for _, item := range req.Plan {
		subs := make([]domain.Subtopic, 0, len(item.Subtopics))
		for _, sub := range item.Subtopics {
			subs = append(subs, domain.Subtopic{
				Title:     sub.Title,
				Completed: sub.Completed,
			})
		}
		plan = append(plan, domain.PlanItem{
			Range:     item.Range,
			Topic:     item.Topic,
			Subtopics: subs,
		})
	}

	saved, err := h.scheduleService.Save(c.Request.Context(), req.UserID, req.Title, plan)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toScheduleJSON(saved))
}

func (h *ScheduleHandler) HandleGenerate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	if req.Topic == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "topic is required")
		return
	}

	plan, err := h.scheduleService.Generate(c.Request.Context(), req.Topic, req.DurationUnit, req.DurationValue)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	items := make([]planItemJSON, 0, len(plan))
	for _, item := range plan {
		subs := make([]subtopicJSON, 0, len(item.Subtopics))
		for _, sub := range item.Subtopics {
			subs = append(subs, subtopicJSON{Title: sub.Title, Completed: sub.Completed})
		}
		items = append(items, planItemJSON{
			Range:     item.Range,
			Topic:     item.Topic,
			Subtopics: subs,
		})
	}

	c.JSON(http.StatusOK, gin.H{"plan": items})
}

func (h *ScheduleHandler) HandleList(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "userId query parameter is required")
		return
	}

	schedules, err := h.scheduleService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	out := make([]scheduleJSON, 0, len(schedules))
	for _, s := range schedules {
		out = append(out, toScheduleJSON(s))
	}
	c.JSON(http.StatusOK, gin.H{"schedules": out})
}

func (h *ScheduleHandler) HandleGet(c *gin.Context) {
	found, err := h.scheduleService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toScheduleJSON(found))
}

func (h *ScheduleHandler) HandleDelete(c *gin.Context) {
	if err := h.scheduleService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
