package service

import (
	"context"
	"errors"
	"math/rand"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/pagination"
)

// QuestionPage is one page of a question listing
type QuestionPage struct {
	Questions []domain.Question
	Total     int
	Category  *domain.Category // Set by ListByCategory only
}

// NewQuestion holds the fields of a question to create. Nil numbers are absent.
type NewQuestion struct {
	Question   string
	Answer     string
	Difficulty *int
	Category   *int
}

// QuizCategory selects the category a quiz draws from, ID 0 meaning all
type QuizCategory struct {
	ID   int
	Type string
}

// QuestionService handles question-related operations
type QuestionService struct {
	questions  domain.QuestionRepository
	categories domain.CategoryRepository
	events     domain.QuestionEvents
	intn       func(n int) int
}

// Option configures a QuestionService
type Option func(*QuestionService)

// WithEvents sets the listener notified after creates and deletes
func WithEvents(events domain.QuestionEvents) Option {
	return func(s *QuestionService) { s.events = events }
}

// WithRandom replaces the source used to pick quiz questions
func WithRandom(intn func(n int) int) Option {
	return func(s *QuestionService) { s.intn = intn }
}

// NewQuestionService creates a new question service
func NewQuestionService(questions domain.QuestionRepository, categories domain.CategoryRepository, opts ...Option) *QuestionService {
	s := &QuestionService{
		questions:  questions,
		categories: categories,
		intn:       rand.Intn,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns a page of all questions. Total counts every question.
func (s *QuestionService) List(ctx context.Context, page int) (*QuestionPage, error) {
	const op = "list questions"

	all, err := s.questions.List(ctx)
	if err != nil {
		return nil, newError(KindInternal, op, err)
	}

	items := pagination.Paginate(all, page)
	if pagination.OutOfRange(len(all), len(items)) {
		return nil, newError(KindNotFound, op, ErrPageNotFound)
	}

	return &QuestionPage{Questions: items, Total: len(all)}, nil
}

// Search returns a page of the questions containing term, ignoring case.
// Total is the number of questions on the returned page, not the number of
// matches; existing clients depend on that.
func (s *QuestionService) Search(ctx context.Context, term string, page int) (*QuestionPage, error) {
	const op = "search questions"

	matches, err := s.questions.Search(ctx, term)
	if err != nil {
		return nil, newError(KindInternal, op, err)
	}

	items := pagination.Paginate(matches, page)
	if pagination.OutOfRange(len(matches), len(items)) {
		return nil, newError(KindNotFound, op, ErrPageNotFound)
	}

	return &QuestionPage{Questions: items, Total: len(items)}, nil
}

// ListByCategory returns a page of the questions of a category
func (s *QuestionService) ListByCategory(ctx context.Context, categoryID int, page int) (*QuestionPage, error) {
	const op = "list category questions"

	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, newError(KindNotFound, op, err)
		}
		return nil, newError(KindInternal, op, err)
	}

	filtered, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, newError(KindInternal, op, err)
	}

	items := pagination.Paginate(filtered, page)
	if pagination.OutOfRange(len(filtered), len(items)) {
		return nil, newError(KindNotFound, op, ErrPageNotFound)
	}

	return &QuestionPage{Questions: items, Total: len(filtered), Category: category}, nil
}

// Create stores a new question and returns its ID
func (s *QuestionService) Create(ctx context.Context, in NewQuestion) (int, error) {
	const op = "create question"

	if in.Question == "" || in.Answer == "" || in.Difficulty == nil || in.Category == nil {
		return 0, newError(KindBadRequest, op, ErrMissingField)
	}

	question := &domain.Question{
		Question:   in.Question,
		Answer:     in.Answer,
		Difficulty: *in.Difficulty,
		Category:   *in.Category,
	}
	if err := s.questions.Create(ctx, question); err != nil {
		return 0, newError(KindInternal, op, err)
	}

	if s.events != nil {
		s.events.QuestionCreated(*question)
	}
	return question.ID, nil
}

// Delete removes a question. Any failure, including a missing question,
// is unprocessable.
func (s *QuestionService) Delete(ctx context.Context, id int) (int, error) {
	const op = "delete question"

	if _, err := s.questions.GetByID(ctx, id); err != nil {
		return 0, newError(KindUnprocessable, op, err)
	}
	if err := s.questions.Delete(ctx, id); err != nil {
		return 0, newError(KindUnprocessable, op, err)
	}

	if s.events != nil {
		s.events.QuestionDeleted(id)
	}
	return id, nil
}

// NextQuizQuestion picks a random question of the category that is not in
// previous. It returns nil once the category is exhausted.
func (s *QuestionService) NextQuizQuestion(ctx context.Context, previous []int, category *QuizCategory) (*domain.Question, error) {
	const op = "next quiz question"

	if category == nil {
		return nil, newError(KindBadRequest, op, ErrNoQuizSetting)
	}

	var (
		candidates []domain.Question
		err        error
	)
	if category.ID == 0 {
		candidates, err = s.questions.List(ctx)
	} else {
		candidates, err = s.questions.ListByCategory(ctx, category.ID)
	}
	if err != nil {
		return nil, newError(KindInternal, op, err)
	}

	seen := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	var remaining []domain.Question
	for _, q := range candidates {
		if _, ok := seen[q.ID]; !ok {
			remaining = append(remaining, q)
		}
	}

	if len(remaining) == 0 {
		return nil, nil
	}

	next := remaining[s.intn(len(remaining))]
	return &next, nil
}
