package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/gommon/log"
	"github.com/zizouhuweidi/trivia/internal/config"
	"github.com/zizouhuweidi/trivia/internal/database"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/handler"
	"github.com/zizouhuweidi/trivia/internal/ratelimit"
	"github.com/zizouhuweidi/trivia/internal/repository/memory"
	"github.com/zizouhuweidi/trivia/internal/repository/postgres"
	"github.com/zizouhuweidi/trivia/internal/service"
	"github.com/zizouhuweidi/trivia/internal/websocket"
)

var logLevels = map[string]log.Lvl{
	"debug": log.DEBUG,
	"info":  log.INFO,
	"warn":  log.WARN,
	"error": log.ERROR,
}

func main() {
	logger := log.New("trivia")
	logger.SetHeader("${time_rfc3339} ${level} ${short_file}:${line}")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}
	if lvl, ok := logLevels[cfg.LogLevel]; ok {
		logger.SetLevel(lvl)
	}

	ctx := context.Background()

	// Initialize repositories
	var (
		questionRepo domain.QuestionRepository
		categoryRepo domain.CategoryRepository
	)
	switch cfg.Storage {
	case config.StorageMemory:
		store := seededStore()
		questionRepo, categoryRepo = store.Questions(), store.Categories()
		logger.Warn("Using in-memory storage, data is lost on exit")
	default:
		pool, err := database.ConnectPostgres(ctx, cfg.Postgres)
		if err != nil {
			logger.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()
		questionRepo = postgres.NewQuestionRepository(pool)
		categoryRepo = postgres.NewCategoryRepository(pool)
	}

	// Initialize rate limiter
	var quizLimit *ratelimit.Limiter
	if cfg.RateLimit.Limit > 0 {
		redisClient, err := database.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			logger.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		quizLimit = ratelimit.NewLimiter(redisClient, "quiz", cfg.RateLimit.Limit, cfg.RateLimit.Window)
	}

	// Initialize websocket hub
	hub := websocket.NewHub()
	go hub.Run()
	defer hub.Stop()

	// Initialize services
	questionService := service.NewQuestionService(questionRepo, categoryRepo, service.WithEvents(hub))
	categoryService := service.NewCategoryService(categoryRepo)

	e := handler.NewServer(handler.Options{
		Questions:  questionService,
		Categories: categoryService,
		Hub:        hub,
		QuizLimit:  quizLimit,
	})
	e.Logger = logger

	// Start server
	go func() {
		logger.Infof("Listening on %s", cfg.Server.Addr)
		if err := e.Start(cfg.Server.Addr); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("shutting down the server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error(err)
	}
}

// seededStore returns an in-memory store holding the default categories
func seededStore() *memory.Store {
	store := memory.NewStore()
	for i, name := range []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"} {
		store.AddCategory(domain.Category{ID: i + 1, Type: name})
	}
	return store
}
