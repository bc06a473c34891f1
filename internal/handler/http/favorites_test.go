package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-interview-prep/internal/app"
	"github.com/MKhiriev/go-interview-prep/internal/service"
	"github.com/MKhiriev/go-interview-prep/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFavoritesRouter(t *testing.T, favorites *mockFavoriteService) http.Handler {
	t.Helper()
	caller := testUser
	return newTestRouter(t, &service.Services{FavoriteService: favorites}, &caller)
}

func TestListFavorites(t *testing.T) {
	t.Run("returns caller favorites", func(t *testing.T) {
		favorites := &mockFavoriteService{
			listFn: func(_ context.Context, userID int64) ([]models.Favorite, error) {
				assert.Equal(t, testUser.UserID, userID)
				return []models.Favorite{{ID: 1, UserID: userID, CategoryID: "go", QuestionID: "channels"}}, nil
			},
		}

		rec := doRequest(t, newFavoritesRouter(t, favorites), http.MethodGet, "/api/favorites", nil, true)

		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeResponse[[]models.Favorite](t, rec)
		require.Len(t, got, 1)
		assert.Equal(t, "channels", got[0].QuestionID)
	})

	t.Run("nil list is an empty array", func(t *testing.T) {
		favorites := &mockFavoriteService{
			listFn: func(_ context.Context, _ int64) ([]models.Favorite, error) {
				return nil, nil
			},
		}

		rec := doRequest(t, newFavoritesRouter(t, favorites), http.MethodGet, "/api/favorites", nil, true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestToggleFavorite(t *testing.T) {
	tests := []struct {
		name        string
		isFavorite  bool
		wantMessage string
	}{
		{"added", true, app.MsgFavoriteAdded},
		{"removed", false, app.MsgFavoriteRemoved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.Favorite
			favorites := &mockFavoriteService{
				toggleFn: func(_ context.Context, favorite models.Favorite) (bool, error) {
					got = favorite
					return tt.isFavorite, nil
				},
			}

			// a userId in the body is ignored in favor of the token
			rec := doRequest(t, newFavoritesRouter(t, favorites), http.MethodPost, "/api/favorites",
				map[string]any{"categoryId": "go", "questionId": "channels", "userId": 999}, true)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, testUser.UserID, got.UserID)
			assert.Equal(t, "go", got.CategoryID)

			resp := decodeResponse[models.ToggleFavoriteResponse](t, rec)
			assert.Equal(t, tt.isFavorite, resp.IsFavorite)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

func TestToggleFavorite_MissingIDs(t *testing.T) {
	favorites := &mockFavoriteService{
		toggleFn: func(_ context.Context, _ models.Favorite) (bool, error) {
			return false, service.ErrFavoriteIDsRequired
		},
	}

	rec := doRequest(t, newFavoritesRouter(t, favorites), http.MethodPost, "/api/favorites", map[string]any{}, true)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgFavoriteIDs, errorMessage(t, rec))
}
