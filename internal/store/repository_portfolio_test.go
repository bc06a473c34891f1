package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-interview-prep/internal/logger"
	"github.com/MKhiriev/go-interview-prep/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPortfolioRepo(t *testing.T) (*portfolioRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &portfolioRepository{DB: db, logger: logger.Nop()}, mock
}

func TestCreatePortfolio(t *testing.T) {
	repo, mock := newTestPortfolioRepo(t)

	uploadedAt := time.Now()
	mock.ExpectQuery("INSERT INTO portfolios").
		WithArgs(int64(1), "cv.pdf", "extracted text").
		WillReturnRows(sqlmock.NewRows([]string{"portfolio_id", "uploaded_at"}).AddRow(3, uploadedAt))

	portfolio, err := repo.CreatePortfolio(context.Background(), models.Portfolio{UserID: 1, FileName: "cv.pdf", Content: "extracted text"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), portfolio.ID)
	assert.Nil(t, portfolio.AnalyzedAt)
}

func TestGetPortfolio(t *testing.T) {
	columns := []string{"portfolio_id", "user_id", "file_name", "content", "uploaded_at", "analyzed_at"}

	t.Run("found", func(t *testing.T) {
		repo, mock := newTestPortfolioRepo(t)
		analyzedAt := time.Now()
		mock.ExpectQuery("SELECT portfolio_id").
			WithArgs(int64(1), int64(3)).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(3, 1, "cv.pdf", "text", time.Now(), analyzedAt))

		portfolio, err := repo.GetPortfolio(context.Background(), 1, 3)
		require.NoError(t, err)
		require.NotNil(t, portfolio.AnalyzedAt)
		assert.Equal(t, "text", portfolio.Content)
	})

	t.Run("not owned", func(t *testing.T) {
		repo, mock := newTestPortfolioRepo(t)
		mock.ExpectQuery("SELECT portfolio_id").
			WithArgs(int64(2), int64(3)).
			WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.GetPortfolio(context.Background(), 2, 3)
		assert.ErrorIs(t, err, ErrPortfolioNotFound)
	})
}

func TestListPortfolios(t *testing.T) {
	repo, mock := newTestPortfolioRepo(t)

	mock.ExpectQuery("SELECT portfolio_id").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"portfolio_id", "user_id", "file_name", "uploaded_at", "analyzed_at"}).
			AddRow(4, 1, "new.pdf", time.Now(), nil).
			AddRow(3, 1, "old.pdf", time.Now().Add(-time.Hour), time.Now()))

	portfolios, err := repo.ListPortfolios(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, portfolios, 2)
	assert.Nil(t, portfolios[0].AnalyzedAt)
	assert.Empty(t, portfolios[0].Content)
	assert.NotNil(t, portfolios[1].AnalyzedAt)
}

// ─── ReplaceGeneratedQuestions ───────────────────────────────────────────────

func TestReplaceGeneratedQuestions(t *testing.T) {
	repo, mock := newTestPortfolioRepo(t)

	questions := []models.GeneratedQuestion{
		{Question: "Q1", SuggestedAnswer: "A1"},
		{Question: "Q2", SuggestedAnswer: "A2"},
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE portfolios").
		WithArgs(int64(1), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM portfolio_questions").
		WithArgs(int64(1), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 12))
	mock.ExpectExec("INSERT INTO portfolio_questions").
		WithArgs(int64(1), int64(3), "Q1", "A1", models.PortfolioCategory).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO portfolio_questions").
		WithArgs(int64(1), int64(3), "Q2", "A2", models.PortfolioCategory).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	count, err := repo.ReplaceGeneratedQuestions(context.Background(), 1, 3, questions)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceGeneratedQuestions_PortfolioNotOwned(t *testing.T) {
	repo, mock := newTestPortfolioRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE portfolios").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.ReplaceGeneratedQuestions(context.Background(), 2, 3, []models.GeneratedQuestion{{Question: "Q", SuggestedAnswer: "A"}})
	assert.ErrorIs(t, err, ErrPortfolioNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceGeneratedQuestions_InsertFailureRollsBack(t *testing.T) {
	repo, mock := newTestPortfolioRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE portfolios").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM portfolio_questions").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO portfolio_questions").WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	_, err := repo.ReplaceGeneratedQuestions(context.Background(), 1, 3, []models.GeneratedQuestion{{Question: "Q", SuggestedAnswer: "A"}})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}
