package domain

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// Question represents a trivia question
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   int    `json:"category"` // References Category.ID, orphans are tolerated
}

// QuestionRepository defines the interface for question-related operations.
// Every listing is ordered by ascending id.
type QuestionRepository interface {
	// List retrieves all questions
	List(ctx context.Context) ([]Question, error)

	// ListByCategory retrieves the questions of a single category
	ListByCategory(ctx context.Context, categoryID int) ([]Question, error)

	// Search retrieves the questions whose text contains term, ignoring case
	Search(ctx context.Context, term string) ([]Question, error)

	// GetByID retrieves a question by its ID
	GetByID(ctx context.Context, id int) (*Question, error)

	// Create creates a new question and sets its ID
	Create(ctx context.Context, question *Question) error

	// Delete deletes a question
	Delete(ctx context.Context, id int) error
}

// QuestionEvents is notified after a question has been written.
type QuestionEvents interface {
	QuestionCreated(question Question)
	QuestionDeleted(id int)
}
