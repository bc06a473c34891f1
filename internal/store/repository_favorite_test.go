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

func newTestFavoriteRepo(t *testing.T) (*favoriteRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &favoriteRepository{DB: db, logger: logger.Nop()}, mock
}

var testFavorite = models.Favorite{UserID: 1, CategoryID: "network", QuestionID: "osi-7-layer"}

// ─── ListFavorites ───────────────────────────────────────────────────────────

func TestListFavorites(t *testing.T) {
	repo, mock := newTestFavoriteRepo(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"favorite_id", "user_id", "category_id", "question_id", "created_at"}).
		AddRow(2, 1, "linux", "inode", now).
		AddRow(1, 1, "network", "osi-7-layer", now.Add(-time.Hour))
	mock.ExpectQuery("SELECT favorite_id").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	favorites, err := repo.ListFavorites(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, "inode", favorites[0].QuestionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListFavorites_Empty(t *testing.T) {
	repo, mock := newTestFavoriteRepo(t)

	mock.ExpectQuery("SELECT favorite_id").
		WillReturnRows(sqlmock.NewRows([]string{"favorite_id", "user_id", "category_id", "question_id", "created_at"}))

	favorites, err := repo.ListFavorites(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, favorites)
	assert.Empty(t, favorites)
}

func TestListFavorites_QueryError(t *testing.T) {
	repo, mock := newTestFavoriteRepo(t)

	mock.ExpectQuery("SELECT favorite_id").WillReturnError(errors.New("boom"))

	_, err := repo.ListFavorites(context.Background(), 1)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ─── ToggleFavorite ──────────────────────────────────────────────────────────

func TestToggleFavorite_RemovesExisting(t *testing.T) {
	repo, mock := newTestFavoriteRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("DELETE FROM favorites").
		WithArgs(int64(1), "network", "osi-7-layer").
		WillReturnRows(sqlmock.NewRows([]string{"favorite_id"}).AddRow(9))
	mock.ExpectCommit()

	isFavorite, err := repo.ToggleFavorite(context.Background(), testFavorite)
	require.NoError(t, err)
	assert.False(t, isFavorite)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleFavorite_AddsMissing(t *testing.T) {
	repo, mock := newTestFavoriteRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("DELETE FROM favorites").
		WithArgs(int64(1), "network", "osi-7-layer").
		WillReturnRows(sqlmock.NewRows([]string{"favorite_id"}))
	mock.ExpectExec("INSERT INTO favorites").
		WithArgs(int64(1), "network", "osi-7-layer").
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectCommit()

	isFavorite, err := repo.ToggleFavorite(context.Background(), testFavorite)
	require.NoError(t, err)
	assert.True(t, isFavorite)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleFavorite_BeginError(t *testing.T) {
	repo, mock := newTestFavoriteRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	_, err := repo.ToggleFavorite(context.Background(), testFavorite)
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestToggleFavorite_InsertErrorRollsBack(t *testing.T) {
	repo, mock := newTestFavoriteRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("DELETE FROM favorites").
		WillReturnRows(sqlmock.NewRows([]string{"favorite_id"}))
	mock.ExpectExec("INSERT INTO favorites").WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	_, err := repo.ToggleFavorite(context.Background(), testFavorite)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleFavorite_CommitError(t *testing.T) {
	repo, mock := newTestFavoriteRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("DELETE FROM favorites").
		WillReturnRows(sqlmock.NewRows([]string{"favorite_id"}).AddRow(9))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	_, err := repo.ToggleFavorite(context.Background(), testFavorite)
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}
