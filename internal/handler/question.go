package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/pagination"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	questions  *service.QuestionService
	categories *service.CategoryService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questions *service.QuestionService, categories *service.CategoryService) *QuestionHandler {
	return &QuestionHandler{
		questions:  questions,
		categories: categories,
	}
}

// Register registers the question routes
func (h *QuestionHandler) Register(e *echo.Echo, quizMiddleware ...echo.MiddlewareFunc) {
	e.GET("/questions", h.ListQuestions)
	e.POST("/questions", h.CreateQuestion)
	e.DELETE("/questions/:id", h.DeleteQuestion)
	e.POST("/search", h.SearchQuestions)
	e.GET("/categories/:id/questions", h.ListCategoryQuestions)
	e.POST("/quizzes", h.NextQuizQuestion, quizMiddleware...)
}

// ListQuestionsResponse is the body of GET /questions
type ListQuestionsResponse struct {
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	Categories      map[int]string    `json:"categories"`
	CurrentCategory any               `json:"current_category"`
}

// SearchResponse is the body of POST /search
type SearchResponse struct {
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory any               `json:"current_category"`
}

// CategoryQuestionsResponse is the body of GET /categories/:id/questions
type CategoryQuestionsResponse struct {
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory map[int]string    `json:"current_category"`
}

// QuizResponse is the body of POST /quizzes. Question is null once the
// category is exhausted.
type QuizResponse struct {
	Question *domain.Question `json:"question"`
}

func pageParam(c echo.Context) (int, error) {
	page, err := pagination.ParsePage(c.QueryParam("page"))
	if err != nil {
		return 0, badRequest(err)
	}
	return page, nil
}

// ListQuestions handles GET /questions?page=N
func (h *QuestionHandler) ListQuestions(c echo.Context) error {
	page, err := pageParam(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	result, err := h.questions.List(ctx, page)
	if err != nil {
		return fail(err, http.StatusInternalServerError)
	}

	categories, err := h.categories.List(ctx)
	if err != nil {
		return fail(err, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, ListQuestionsResponse{
		Questions:      result.Questions,
		TotalQuestions: result.Total,
		Categories:     categories,
	})
}

// DeleteQuestion handles DELETE /questions/:id
func (h *QuestionHandler) DeleteQuestion(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity).SetInternal(err)
	}

	deleted, err := h.questions.Delete(c.Request().Context(), id)
	if err != nil {
		return fail(err, http.StatusUnprocessableEntity)
	}

	return c.JSON(http.StatusOK, map[string]int{
		"deleted": deleted,
	})
}

// SearchQuestions handles POST /search?page=N
func (h *QuestionHandler) SearchQuestions(c echo.Context) error {
	var req SearchRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	page, err := pageParam(c)
	if err != nil {
		return err
	}

	result, err := h.questions.Search(c.Request().Context(), *req.SearchTerm, page)
	if err != nil {
		return fail(err, http.StatusBadRequest)
	}

	return c.JSON(http.StatusOK, SearchResponse{
		Questions:      result.Questions,
		TotalQuestions: result.Total,
	})
}

// CreateQuestion handles POST /questions
func (h *QuestionHandler) CreateQuestion(c echo.Context) error {
	var req CreateQuestionRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	id, err := h.questions.Create(c.Request().Context(), service.NewQuestion{
		Question:   req.Question,
		Answer:     req.Answer,
		Difficulty: req.Difficulty.intPtr(),
		Category:   req.Category.intPtr(),
	})
	if err != nil {
		return fail(err, http.StatusBadRequest)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"created": id,
	})
}

// ListCategoryQuestions handles GET /categories/:id/questions?page=N
func (h *QuestionHandler) ListCategoryQuestions(c echo.Context) error {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound).SetInternal(err)
	}

	page, err := pageParam(c)
	if err != nil {
		return err
	}

	result, err := h.questions.ListByCategory(c.Request().Context(), categoryID, page)
	if err != nil {
		return fail(err, http.StatusNotFound)
	}

	return c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Questions:       result.Questions,
		TotalQuestions:  result.Total,
		CurrentCategory: domain.CategoryMap([]domain.Category{*result.Category}),
	})
}

// NextQuizQuestion handles POST /quizzes
func (h *QuestionHandler) NextQuizQuestion(c echo.Context) error {
	var req QuizRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	question, err := h.questions.NextQuizQuestion(c.Request().Context(), flexInts(req.PreviousQuestions), &service.QuizCategory{
		ID:   int(*req.QuizCategory.ID),
		Type: req.QuizCategory.Type,
	})
	if err != nil {
		return fail(err, http.StatusBadRequest)
	}

	return c.JSON(http.StatusOK, QuizResponse{Question: question})
}
