package http

import (
	"net/http"

	"github.com/MKhiriev/go-interview-prep/internal/app"
	"github.com/MKhiriev/go-interview-prep/models"
)

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err, app.MsgLoginRequired)
		return
	}

	favorites, err := h.services.FavoriteService.ListFavorites(r.Context(), caller.UserID)
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}
	if favorites == nil {
		favorites = []models.Favorite{}
	}

	writeJSON(w, r, favorites)
}

func (h *Handler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err, app.MsgLoginRequired)
		return
	}

	var favorite models.Favorite
	if err = decodeJSON(r, &favorite); err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}
	favorite.UserID = caller.UserID

	isFavorite, err := h.services.FavoriteService.ToggleFavorite(r.Context(), favorite)
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	message := app.MsgFavoriteRemoved
	if isFavorite {
		message = app.MsgFavoriteAdded
	}
	writeJSON(w, r, models.ToggleFavoriteResponse{Message: message, IsFavorite: isFavorite})
}
