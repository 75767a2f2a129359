package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/studypath/reminder-service/internal/config"
	"github.com/studypath/reminder-service/internal/domain"
	"github.com/studypath/reminder-service/internal/handler"
	"github.com/studypath/reminder-service/internal/health"
	"github.com/studypath/reminder-service/internal/infra/agent"
	"github.com/studypath/reminder-service/internal/infra/dedup"
	"github.com/studypath/reminder-service/internal/infra/dispatchrecorder"
	"github.com/studypath/reminder-service/internal/infra/store"
	"github.com/studypath/reminder-service/internal/observability/metrics"
	"github.com/studypath/reminder-service/internal/observability/middleware"
	"github.com/studypath/reminder-service/internal/service/dispatch"
	"github.com/studypath/reminder-service/internal/service/quiz"
	"github.com/studypath/reminder-service/internal/service/schedule"
	"github.com/studypath/reminder-service/internal/service/selector"
	"github.com/studypath/reminder-service/internal/service/user"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	obs, err := initObservability(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	reminderMetrics, err := metrics.NewReminderMetrics()
	if err != nil {
		slog.Error("failed to initialize reminder metrics", slog.String("error", err.Error()))
		return 1
	}

	// Dispatch result recorder (InfluxDB for local, BigQuery for gcloud)
	resultRecorderCfg := dispatchrecorder.LoadConfig()
	resultRecorder, err := dispatchrecorder.NewRecorder(ctx, resultRecorderCfg)
	if err != nil {
		slog.Error("failed to initialize dispatch result recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := resultRecorder.Close(); err != nil {
			slog.Warn("failed to close dispatch result recorder", slog.String("error", err.Error()))
		}
	}()

	db, err := store.Open(cfg.Database.DSN())
	if err != nil {
		slog.Error("failed to open database",
			slog.String("host", cfg.Database.Host),
			slog.String("error", err.Error()),
		)
		return 1
	}

	slog.Info("database connected",
		slog.String("host", cfg.Database.Host),
		slog.String("name", cfg.Database.Name),
	)

	userRepo := store.NewUserRepository(db)
	scheduleRepo := store.NewScheduleRepository(db)
	quizRepo := store.NewQuizRepository(db)

	// The dedup guard is optional: without REDIS_ADDR the dispatch loop
	// stays stateless and relies on the notify bucket alone.
	var dedupGuard domain.DedupGuard
	var redisClient *redis.Client
	if cfg.Redis != nil {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		if err := redisotel.InstrumentTracing(redisClient); err != nil {
			slog.Error("failed to instrument redis tracing",
				slog.String("event", "redis.otel.tracing.fail"),
				slog.String("error", err.Error()),
			)
			return 1
		}

		if err := redisotel.InstrumentMetrics(redisClient); err != nil {
			slog.Error("failed to instrument redis metrics",
				slog.String("event", "redis.otel.metrics.fail"),
				slog.String("error", err.Error()),
			)
			return 1
		}

		if err := redisClient.Ping(ctx).Err(); err != nil {
			slog.Error("failed to connect redis",
				slog.String("event", "redis.connect.fail"),
				slog.String("error", err.Error()),
			)
			return 1
		}

		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Warn("failed to close redis client", slog.String("error", err.Error()))
			}
		}()

		dedupGuard = dedup.NewRedisGuard(redisClient)

		slog.Info("redis connected, notification dedup guard enabled",
			slog.String("addr", cfg.Redis.Addr),
		)
	} else {
		slog.Info("REDIS_ADDR not set, notification dedup guard disabled")
	}

	agentClient := agent.NewClient(cfg.AgentURL)

	reminderNotifier, cleanup, err := initNotifier(ctx, cfg, agentClient)
	if err != nil {
		slog.Error("failed to initialize reminder notifier", slog.String("error", err.Error()))
		return 1
	}
	if cleanup != nil {
		defer func() {
			if err := cleanup(); err != nil {
				slog.Error("notifier cleanup error", slog.String("error", err.Error()))
			}
		}()
	}

	dispatchService := dispatch.NewService(
		scheduleRepo,
		reminderNotifier,
		dedupGuard,
		selector.New(),
		reminderMetrics,
		cfg.DispatchTimeout,
	)
	userService := user.NewService(userRepo)
	scheduleService := schedule.NewService(scheduleRepo, userRepo, agentClient)
	quizService := quiz.NewService(quizRepo)

	cronHandler := handler.NewCronHandler(dispatchService, reminderMetrics, resultRecorder)
	userHandler := handler.NewUserHandler(userService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	reminderHandler := handler.NewReminderHandler(scheduleService)
	subtopicHandler := handler.NewSubtopicHandler(scheduleService)
	quizHandler := handler.NewQuizHandler(quizService)

	// Setup router with observability middleware
	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready"},
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	// Health check endpoints
	healthChecker := health.NewChecker(db, redisClient, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	// API routes
	v1 := r.Group("/api/v1")
	{
		v1.POST("/users/register", userHandler.HandleRegister)
		v1.POST("/users/login", userHandler.HandleLogin)

		v1.POST("/schedules", scheduleHandler.HandleSave)
		v1.POST("/schedules/generate", scheduleHandler.HandleGenerate)
		v1.GET("/schedules", scheduleHandler.HandleList)
		v1.GET("/schedules/:id", scheduleHandler.HandleGet)
		v1.DELETE("/schedules/:id", scheduleHandler.HandleDelete)

		v1.POST("/reminders", reminderHandler.HandleToggle)
		v1.PATCH("/subtopics", subtopicHandler.HandleUpdate)

		v1.POST("/quiz", quizHandler.HandleSave)
		v1.GET("/quiz/history", quizHandler.HandleHistory)
		v1.GET("/quiz/attempts/:attemptId", quizHandler.HandleGetAttempt)
		v1.POST("/quiz/attempts/:attemptId/submit", quizHandler.HandleSubmitAttempt)
		v1.GET("/quiz/:id", quizHandler.HandleGet)
		v1.POST("/quiz/:id/attempts", quizHandler.HandleStartAttempt)

		v1.GET("/cron/reminders", cronHandler.HandleReminderCycle)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.Duration("dispatch_timeout", cfg.DispatchTimeout),
			slog.Bool("dedup_guard", dedupGuard != nil),
		)
		serverErr <- srv.ListenAndServe()
	}()

	// Wait for shutdown signal or server error
	quitCh := make(chan os.Signal, 1)
	signal.Notify(quitCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quitCh:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
