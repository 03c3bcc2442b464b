// Package memory is an in-process implementation of the domain repositories,
// used by tests and local runs without a database.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// Store holds questions and categories in memory
type Store struct {
	mu         sync.RWMutex
	questions  map[int]domain.Question
	categories map[int]domain.Category
	nextID     int
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		questions:  make(map[int]domain.Question),
		categories: make(map[int]domain.Category),
		nextID:     1,
	}
}

// AddCategory inserts or replaces a category
func (s *Store) AddCategory(category domain.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[category.ID] = category
}

// AddQuestion inserts a question keeping its ID. A zero ID is assigned.
func (s *Store) AddQuestion(question domain.Question) domain.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	if question.ID == 0 {
		question.ID = s.nextID
	}
	if question.ID >= s.nextID {
		s.nextID = question.ID + 1
	}
	s.questions[question.ID] = question
	return question
}

// Questions returns the question repository view of the store
func (s *Store) Questions() *QuestionRepository {
	return &QuestionRepository{store: s}
}

// Categories returns the category repository view of the store
func (s *Store) Categories() *CategoryRepository {
	return &CategoryRepository{store: s}
}

func (s *Store) filter(keep func(domain.Question) bool) []domain.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()

	questions := []domain.Question{}
	for _, q := range s.questions {
		if keep(q) {
			questions = append(questions, q)
		}
	}
	sort.Slice(questions, func(i, j int) bool { return questions[i].ID < questions[j].ID })
	return questions
}

// QuestionRepository implements domain.QuestionRepository on a Store
type QuestionRepository struct {
	store *Store
}

// List returns every question ordered by ID
func (r *QuestionRepository) List(ctx context.Context) ([]domain.Question, error) {
	return r.store.filter(func(domain.Question) bool { return true }), nil
}

// ListByCategory returns the questions of a category ordered by ID
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]domain.Question, error) {
	return r.store.filter(func(q domain.Question) bool { return q.Category == categoryID }), nil
}

// Search returns the questions whose text contains term, ignoring case
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]domain.Question, error) {
	term = strings.ToLower(term)
	return r.store.filter(func(q domain.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), term)
	}), nil
}

// GetByID retrieves a question by its ID
func (r *QuestionRepository) GetByID(ctx context.Context, id int) (*domain.Question, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	q, ok := r.store.questions[id]
	if !ok {
		return nil, domain.ErrQuestionNotFound
	}
	return &q, nil
}

// Create stores a new question and sets its ID
func (r *QuestionRepository) Create(ctx context.Context, question *domain.Question) error {
	question.ID = 0
	*question = r.store.AddQuestion(*question)
	return nil
}

// Delete removes a question by its ID
func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.questions[id]; !ok {
		return domain.ErrQuestionNotFound
	}
	delete(r.store.questions, id)
	return nil
}

// CategoryRepository implements domain.CategoryRepository on a Store
type CategoryRepository struct {
	store *Store
}

// List returns every category ordered by ID
func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	categories := make([]domain.Category, 0, len(r.store.categories))
	for _, c := range r.store.categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

// GetByID retrieves a category by its ID
func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	c, ok := r.store.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return &c, nil
}
