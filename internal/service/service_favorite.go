package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-interview-prep/internal/logger"
	"github.com/MKhiriev/go-interview-prep/internal/store"
	"github.com/MKhiriev/go-interview-prep/internal/validators"
	"github.com/MKhiriev/go-interview-prep/models"
)

type favoriteService struct {
	favoriteRepository store.FavoriteRepository
	validator          validators.Validator

	logger *logger.Logger
}

func NewFavoriteService(favoriteRepository store.FavoriteRepository, validator validators.Validator, logger *logger.Logger) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		validator:          validator,
		logger:             logger,
	}
}

func (f *favoriteService) ListFavorites(ctx context.Context, userID int64) ([]models.Favorite, error) {
	favorites, err := f.favoriteRepository.ListFavorites(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("listing favorites failed")
		return nil, fmt.Errorf("listing favorites failed: %w", err)
	}
	return favorites, nil
}

// ToggleFavorite flips membership of the (user, category, question) triple
// and reports whether it is a favorite afterwards.
func (f *favoriteService) ToggleFavorite(ctx context.Context, favorite models.Favorite) (bool, error) {
	log := logger.FromContext(ctx)

	favorite.CategoryID = strings.TrimSpace(favorite.CategoryID)
	favorite.QuestionID = strings.TrimSpace(favorite.QuestionID)
	if err := f.validator.Validate(ctx, favorite); err != nil {
		return false, fmt.Errorf("%w: %w", ErrFavoriteIDsRequired, err)
	}

	isFavorite, err := f.favoriteRepository.ToggleFavorite(ctx, favorite)
	if err != nil {
		log.Err(err).
			Int64("user_id", favorite.UserID).
			Str("category", favorite.CategoryID).
			Str("question", favorite.QuestionID).
			Msg("toggling favorite failed")
		return false, fmt.Errorf("toggling favorite failed: %w", err)
	}

	return isFavorite, nil
}
