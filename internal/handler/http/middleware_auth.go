package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-interview-prep/internal/app"
	"github.com/MKhiriev/go-interview-prep/internal/logger"
	"github.com/MKhiriev/go-interview-prep/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the resulting identity in
// the request context with [utils.WithIdentity]. Requests without a valid
// token are rejected with 401 and the login-required message.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, app.MsgLoginRequired, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)).Send()
			utils.WriteError(w, app.MsgLoginRequired, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, app.MsgLoginRequired, http.StatusUnauthorized)
			return
		}

		ctx = utils.WithIdentity(ctx, token.Identity())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminOnly lets through callers whose identity carries the admin role. It
// must run after auth. Wrong role answers 401 like a missing login.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		caller, err := identity(r)
		if err != nil {
			log.Debug().Err(err).Send()
			utils.WriteError(w, app.MsgLoginRequired, http.StatusUnauthorized)
			return
		}

		if !caller.IsAdmin() {
			log.Warn().Err(ErrAdminRoleRequired).Int64("user_id", caller.UserID).Send()
			utils.WriteError(w, app.MsgAdminRequired, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
