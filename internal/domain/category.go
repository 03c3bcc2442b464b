package domain

import "context"

// Category represents a question category such as "Science"
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// CategoryRepository defines the read-only interface for categories
type CategoryRepository interface {
	// List retrieves all categories ordered by ID
	List(ctx context.Context) ([]Category, error)

	// GetByID retrieves a category by its ID
	GetByID(ctx context.Context, id int) (*Category, error)
}

// CategoryMap converts categories into the id to type mapping served by the API.
func CategoryMap(categories []Category) map[int]string {
	m := make(map[int]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}
