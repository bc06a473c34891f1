package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-interview-prep/internal/logger"
	"github.com/MKhiriev/go-interview-prep/internal/service"
	"github.com/MKhiriev/go-interview-prep/internal/utils"
	"github.com/MKhiriev/go-interview-prep/models"
	"github.com/go-chi/chi/v5"
)

// decodeJSON reads the request body into dst. Any decoding failure is
// reported as service.ErrInvalidDataProvided.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
	}
	return nil
}

// pathID parses a positive numeric path parameter. Callers answer 404 on
// failure: an id that cannot exist is treated like one the caller does not own.
func pathID(r *http.Request, key string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// identity returns the caller set by the auth middleware.
func identity(r *http.Request) (models.Identity, error) {
	id, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		return models.Identity{}, ErrNoIdentity
	}
	return id, nil
}

// writeError logs err and answers with the status and message from the
// error table. Server-side failures keep their detail in the log only.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	status, message := responseFromError(err, fallbackMessage)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
}
