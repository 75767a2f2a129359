// Command stubagent runs the stub study agent used by load tests. Point the
// reminder service's AGENT_URL at it to exercise dispatch cycles without a
// real agent.
package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/studypath/reminder-service/loadtest/internal/stub"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	port := os.Getenv("STUB_PORT")
	if port == "" {
		port = "8090"
	}

	r := gin.Default()
	handler := stub.NewHandler(stub.NewReminderLog())
	handler.Register(r)

	slog.Info("starting stub agent", slog.String("port", port))
	if err := r.Run(":" + port); err != nil {
		slog.Error("stub agent exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
