package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categories *service.CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// Register registers the category routes
func (h *CategoryHandler) Register(e *echo.Echo) {
	e.GET("/categories", h.ListCategories)
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categories.List(c.Request().Context())
	if err != nil {
		return fail(err, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"categories": categories,
	})
}
