package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

// CategoryRepository implements the domain.CategoryRepository interface
type CategoryRepository struct {
	db DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db DB) *CategoryRepository {
	return &CategoryRepository{
		db: db,
	}
}

// List retrieves all categories
func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, type
		FROM categories
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Type); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// GetByID retrieves a category by its ID
func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	var category domain.Category
	err := r.db.QueryRow(ctx, `
		SELECT id, type
		FROM categories
		WHERE id = $1
	`, id).Scan(&category.ID, &category.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}
