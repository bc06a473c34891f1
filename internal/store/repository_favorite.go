package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-interview-prep/internal/logger"
	"github.com/MKhiriev/go-interview-prep/models"
)

type favoriteRepository struct {
	*DB
	logger *logger.Logger
}

// NewFavoriteRepository constructs a [FavoriteRepository] on top of db.
func NewFavoriteRepository(db *DB, logger *logger.Logger) FavoriteRepository {
	return &favoriteRepository{
		DB:     db,
		logger: logger,
	}
}

func (f *favoriteRepository) ListFavorites(ctx context.Context, userID int64) ([]models.Favorite, error) {
	log := logger.FromContext(ctx)

	rows, err := f.DB.QueryContext(ctx, listFavorites, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*favoriteRepository.ListFavorites").
			Int64("user_id", userID).
			Msg("failed to execute query for listing favorites")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	favorites := make([]models.Favorite, 0)
	for rows.Next() {
		var fav models.Favorite
		if err := rows.Scan(&fav.ID, &fav.UserID, &fav.CategoryID, &fav.QuestionID, &fav.CreatedAt); err != nil {
			log.Err(err).
				Str("func", "*favoriteRepository.ListFavorites").
				Int64("user_id", userID).
				Msg("failed to scan favorite")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		favorites = append(favorites, fav)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "*favoriteRepository.ListFavorites").
			Int64("user_id", userID).
			Msg("rows iteration failed")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return favorites, nil
}

// ToggleFavorite deletes the favorite if it exists and inserts it otherwise,
// inside one transaction. The unique triple constraint absorbs a concurrent
// insert of the same favorite.
func (f *favoriteRepository) ToggleFavorite(ctx context.Context, favorite models.Favorite) (bool, error) {
	log := logger.FromContext(ctx)

	var isFavorite bool
	err := f.withTx(ctx, "*favoriteRepository.ToggleFavorite", func(tx *sql.Tx) error {
		var removedID int64
		err := tx.QueryRowContext(ctx, deleteFavorite, favorite.UserID, favorite.CategoryID, favorite.QuestionID).Scan(&removedID)
		switch {
		case err == nil:
			isFavorite = false
			return nil
		case !errors.Is(err, sql.ErrNoRows):
			log.Err(err).
				Str("func", "*favoriteRepository.ToggleFavorite").
				Int64("user_id", favorite.UserID).
				Msg("failed to delete favorite")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		if _, err := tx.ExecContext(ctx, insertFavorite, favorite.UserID, favorite.CategoryID, favorite.QuestionID); err != nil {
			log.Err(err).
				Str("func", "*favoriteRepository.ToggleFavorite").
				Int64("user_id", favorite.UserID).
				Msg("failed to insert favorite")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		isFavorite = true

		return nil
	})
	if err != nil {
		return false, err
	}

	return isFavorite, nil
}
