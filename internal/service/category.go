package service

import (
	"context"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// CategoryService handles category-related operations
type CategoryService struct {
	categories domain.CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categories domain.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// List returns every category as a mapping from ID to type
func (s *CategoryService) List(ctx context.Context) (map[int]string, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, newError(KindInternal, "list categories", err)
	}
	return domain.CategoryMap(categories), nil
}
