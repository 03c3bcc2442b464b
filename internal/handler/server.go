package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/zizouhuweidi/trivia/internal/ratelimit"
	"github.com/zizouhuweidi/trivia/internal/service"
	ws "github.com/zizouhuweidi/trivia/internal/websocket"
)

// Options holds the dependencies of the HTTP server
type Options struct {
	Questions  *service.QuestionService
	Categories *service.CategoryService
	Hub        *ws.Hub            // Optional, enables GET /ws
	QuizLimit  *ratelimit.Limiter // Optional, limits POST /quizzes
}

// NewServer creates the echo instance with middleware and routes
func NewServer(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Binder = StrictBinder{}
	e.Validator = NewValidator()
	e.HTTPErrorHandler = ErrorHandler

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, "True"},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
	}))

	// Routes
	NewCategoryHandler(opts.Categories).Register(e)

	var quizMiddleware []echo.MiddlewareFunc
	if opts.QuizLimit != nil {
		quizMiddleware = append(quizMiddleware, ratelimit.Middleware(opts.QuizLimit))
	}
	NewQuestionHandler(opts.Questions, opts.Categories).Register(e, quizMiddleware...)

	if opts.Hub != nil {
		NewWebSocketHandler(opts.Hub).Register(e)
	}

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	return e
}
