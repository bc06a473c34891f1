package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-interview-prep/internal/app"
	"github.com/MKhiriev/go-interview-prep/internal/logger"
	"github.com/MKhiriev/go-interview-prep/internal/service"
	"github.com/MKhiriev/go-interview-prep/internal/utils"
	"github.com/MKhiriev/go-interview-prep/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

func newHandlerWithAuthService(authSvc service.AuthService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService: authSvc,
		},
	}
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// ---- auth middleware table test ----

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		parseTokenFn   func(ctx context.Context, s string) (models.Token, error)
		expectedStatus int
		nextCalled     bool
		wantIdentity   models.Identity
	}{
		{
			name:           "empty Authorization header → 401",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "no scheme → 401",
			authHeader:     "token-without-scheme",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme → 401",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "extra parts → 401",
			authHeader:     "Bearer token extra",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token → next called, identity in context",
			authHeader: "Bearer valid-token",
			parseTokenFn: func(_ context.Context, s string) (models.Token, error) {
				if s != "valid-token" {
					return models.Token{}, service.ErrTokenIsExpiredOrInvalid
				}
				return tokenFor(testAdmin), nil
			},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
			wantIdentity:   testAdmin,
		},
		{
			name:       "lowercase scheme accepted",
			authHeader: "bearer valid-token",
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return tokenFor(testUser), nil
			},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
			wantIdentity:   testUser,
		},
		{
			name:       "expired or forged token → 401",
			authHeader: "Bearer bad-token",
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parse := tt.parseTokenFn
			if parse == nil {
				// header is empty or malformed, so the service must not be reached
				parse = func(_ context.Context, _ string) (models.Token, error) {
					t.Fatal("ParseToken should not be called")
					return models.Token{}, nil
				}
			}
			h := newHandlerWithAuthService(&mockAuthService{parseTokenFn: parse})

			nextCalled := false
			var captured models.Identity
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				captured, _ = utils.GetIdentityFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
			if tt.nextCalled {
				assert.Equal(t, tt.wantIdentity, captured)
			} else {
				assert.Equal(t, app.MsgLoginRequired, errorMessage(t, rr))
			}
		})
	}
}

func TestAuth_UserIDInContext(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: 99}, nil
		},
	})

	var gotUserID int64
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, ok = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := executeAuth(h, "Bearer some-token", next)

	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, ok)
	assert.Equal(t, int64(99), gotUserID)
}

// ---- adminOnly ----

func TestAdminOnly(t *testing.T) {
	tests := []struct {
		name        string
		caller      *models.Identity
		wantStatus  int
		wantMessage string
		nextCalled  bool
	}{
		{
			name:        "no identity → 401 login required",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgLoginRequired,
		},
		{
			name:        "regular user → 401 admin required",
			caller:      &testUser,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgAdminRequired,
		},
		{
			name:       "admin → next called",
			caller:     &testAdmin,
			wantStatus: http.StatusOK,
			nextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAuthService(nil)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/portfolio", nil))
			if tt.caller != nil {
				req = req.WithContext(utils.WithIdentity(req.Context(), *tt.caller))
			}
			rr := httptest.NewRecorder()
			h.adminOnly(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
			if !tt.nextCalled {
				assert.Equal(t, tt.wantMessage, errorMessage(t, rr))
			}
		})
	}
}
