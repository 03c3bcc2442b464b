package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

var questionCols = []string{"id", "question", "answer", "difficulty", "category"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestQuestionRepository_List(t *testing.T) {
	mock := newMock(t)
	repo := NewQuestionRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM questions")).
		WillReturnRows(pgxmock.NewRows(questionCols).
			AddRow(1, "Who painted the Mona Lisa?", "Da Vinci", 2, 2).
			AddRow(2, "What is H2O?", "Water", 1, 1))

	questions, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, domain.Question{ID: 1, Question: "Who painted the Mona Lisa?", Answer: "Da Vinci", Difficulty: 2, Category: 2}, questions[0])
	assert.Equal(t, 2, questions[1].ID)
}

func TestQuestionRepository_ListEmpty(t *testing.T) {
	mock := newMock(t)
	repo := NewQuestionRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM questions")).
		WillReturnRows(pgxmock.NewRows(questionCols))

	questions, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, questions)
	assert.Empty(t, questions)
}

func TestQuestionRepository_ListByCategory(t *testing.T) {
	mock := newMock(t)
	repo := NewQuestionRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE category = $1")).
		WithArgs(3).
		WillReturnRows(pgxmock.NewRows(questionCols).
			AddRow(5, "Which planet is red?", "Mars", 1, 3))

	questions, err := repo.ListByCategory(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, 3, questions[0].Category)
}

func TestQuestionRepository_SearchEscapesWildcards(t *testing.T) {
	mock := newMock(t)
	repo := NewQuestionRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE question ILIKE $1")).
		WithArgs(`%100\%\_%`).
		WillReturnRows(pgxmock.NewRows(questionCols))

	questions, err := repo.Search(context.Background(), "100%_")
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestQuestionRepository_QueryError(t *testing.T) {
	mock := newMock(t)
	repo := NewQuestionRepository(mock)

	boom := errors.New("connection reset")
	mock.ExpectQuery(regexp.QuoteMeta("FROM questions")).WillReturnError(boom)

	_, err := repo.List(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestQuestionRepository_GetByID(t *testing.T) {
	mock := newMock(t)
	repo := NewQuestionRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(9).
		WillReturnRows(pgxmock.NewRows(questionCols).
			AddRow(9, "What is 2+2?", "4", 1, 1))

	question, err := repo.GetByID(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "4", question.Answer)
}

func TestQuestionRepository_GetByIDNotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewQuestionRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(404).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
}

func TestQuestionRepository_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewQuestionRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO questions")).
		WithArgs("How are you?", "Good", 1, 1).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(25))

	question := &domain.Question{Question: "How are you?", Answer: "Good", Difficulty: 1, Category: 1}
	require.NoError(t, repo.Create(context.Background(), question))
	assert.Equal(t, 25, question.ID)
}

func TestQuestionRepository_Delete(t *testing.T) {
	mock := newMock(t)
	repo := NewQuestionRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM questions WHERE id = $1")).
		WithArgs(4).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.Delete(context.Background(), 4))
}

func TestQuestionRepository_DeleteMissing(t *testing.T) {
	mock := newMock(t)
	repo := NewQuestionRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM questions WHERE id = $1")).
		WithArgs(4).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 4), domain.ErrQuestionNotFound)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "plain", escapeLike("plain"))
	assert.Equal(t, `a\%b\_c\\d`, escapeLike(`a%b_c\d`))
}
