package stub

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler is a stand-in for the study agent. It serves deterministic plans
// and records reminder deliveries instead of sending email.
type Handler struct {
	log *ReminderLog
}

func NewHandler(log *ReminderLog) *Handler {
	return &Handler{log: log}
}

func (h *Handler) Register(r *gin.Engine) {
	r.POST("/api/v1/tools/study-planner", h.HandleGeneratePlan)
	r.POST("/api/v1/tools/study-reminder", h.HandleReminder)
	r.GET("/stats", h.HandleStats)
	r.POST("/reset", h.HandleReset)
	r.POST("/failures", h.HandleConfigureFailures)
}

// HandleGeneratePlan returns one plan item per day with a fixed morning
// window, which keeps load test schedules predictable.
func (h *Handler) HandleGeneratePlan(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	days := req.DurationValue
	if days <= 0 {
		days = 1
	}
	if req.DurationUnit == "weeks" {
		days *= 7
	}

	plan := make([]PlanItem, 0, days)
	for day := 1; day <= days; day++ {
		plan = append(plan, PlanItem{
			Range: fmt.Sprintf("Day %d: 9:00am - 12:00pm", day),
			Topic: fmt.Sprintf("%s part %d", req.Topic, day),
			Subtopics: []Subtopic{
				{Title: fmt.Sprintf("%s fundamentals %d", req.Topic, day)},
				{Title: fmt.Sprintf("%s practice %d", req.Topic, day)},
			},
		})
	}

	slog.Info("stub plan generated",
		slog.String("topic", req.Topic),
		slog.Int("days", days),
	)

	c.JSON(http.StatusOK, PlanResponse{Plan: plan})
}

func (h *Handler) HandleReminder(c *gin.Context) {
	runID := c.DefaultQuery("run_id", c.GetHeader("X-Run-ID"))
	if runID == "" {
		runID = "default"
	}

	var req ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.log.Record(runID, req) {
		slog.Warn("stub reminder delivery failed by injection",
			slog.String("run_id", runID),
			slog.String("email", req.Email),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "injected failure"})
		return
	}

	slog.Info("stub reminder received",
		slog.String("run_id", runID),
		slog.String("email", req.Email),
		slog.String("subtopic", req.CurrentSubtopic),
	)

	c.JSON(http.StatusOK, ReminderResponse{
		Result: "reminder email sent to " + req.Email,
	})
}

func (h *Handler) HandleStats(c *gin.Context) {
	runID := c.DefaultQuery("run_id", "default")
	c.JSON(http.StatusOK, h.log.Stats(runID))
}

func (h *Handler) HandleReset(c *gin.Context) {
	if c.Query("all") == "true" {
		h.log.ResetAll()
		c.JSON(http.StatusOK, gin.H{"status": "reset complete"})
		return
	}

	runID := c.DefaultQuery("run_id", "default")
	h.log.Reset(runID)

	c.JSON(http.StatusOK, gin.H{
		"status": "reset complete",
		"run_id": runID,
	})
}

func (h *Handler) HandleConfigureFailures(c *gin.Context) {
	runID := c.DefaultQuery("run_id", "default")

	var req FailureConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.log.SetFailEveryNth(runID, req.FailEveryNth)

	c.JSON(http.StatusOK, gin.H{
		"run_id":         runID,
		"fail_every_nth": req.FailEveryNth,
	})
}
