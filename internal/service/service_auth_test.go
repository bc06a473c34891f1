package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/MKhiriev/go-interview-prep/internal/config"
	"github.com/MKhiriev/go-interview-prep/internal/logger"
	"github.com/MKhiriev/go-interview-prep/internal/mock"
	"github.com/MKhiriev/go-interview-prep/internal/store"
	"github.com/MKhiriev/go-interview-prep/internal/utils"
	"github.com/MKhiriev/go-interview-prep/internal/validators"
	"github.com/MKhiriev/go-interview-prep/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller, expose bool) (*authService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)

	cfg := config.App{
		TokenSignKey:     "test-sign-key",
		TokenIssuer:      "interview-prep-test",
		TokenDuration:    time.Hour,
		HashKey:          "test-hash-key",
		AdminEmail:       " Admin@Example.com ",
		ExposeResetToken: expose,
	}

	svc := NewAuthService(repo, validators.NewRequestValidator(), cfg, logger.Nop()).(*authService)
	svc.generateResetToken = func() (string, error) { return "123456", nil }
	svc.now = func() time.Time { return testNow }

	return svc, repo
}

func bcryptHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ── SignUp ───────────────────────────────────────────────────────────────────

func TestAuthService_SignUp_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl, false)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "a@x.com", u.Email)
			assert.Equal(t, "Alice", u.Name)
			assert.Equal(t, models.RoleUser, u.Role)
			assert.Empty(t, u.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))
			cost, err := bcrypt.Cost([]byte(u.PasswordHash))
			assert.NoError(t, err)
			assert.Equal(t, passwordHashCost, cost)
			u.UserID = 7
			return u, nil
		},
	)

	user, err := svc.SignUp(ctx, models.SignUpRequest{Email: "  A@X.com ", Password: "secret1", Name: " Alice "})

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestAuthService_SignUp_AdminEmailGetsAdminRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl, false)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, models.RoleAdmin, u.Role)
			return u, nil
		},
	)

	user, err := svc.SignUp(ctx, models.SignUpRequest{Email: "admin@example.com", Password: "secret1", Name: "운영자"})

	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestAuthService_SignUp_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request models.SignUpRequest
		wantErr error
	}{
		{"missing email", models.SignUpRequest{Password: "secret1", Name: "A"}, ErrSignUpFieldsRequired},
		{"missing password", models.SignUpRequest{Email: "a@x.com", Name: "A"}, ErrSignUpFieldsRequired},
		{"blank name", models.SignUpRequest{Email: "a@x.com", Password: "secret1", Name: "   "}, ErrSignUpFieldsRequired},
		{"malformed email", models.SignUpRequest{Email: "not-an-email", Password: "secret1", Name: "A"}, ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _ := newTestAuthSvc(t, ctrl, false)

			_, err := svc.SignUp(context.Background(), tt.request)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_SignUp_PasswordTooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl, false)

	long := make([]byte, 80)
	for i := range long {
		long[i] = 'a'
	}

	_, err := svc.SignUp(context.Background(), models.SignUpRequest{Email: "a@x.com", Password: string(long), Name: "A"})

	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl, false)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.SignUp(ctx, models.SignUpRequest{Email: "a@x.com", Password: "secret1", Name: "A"})

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ── SignIn ───────────────────────────────────────────────────────────────────

func TestAuthService_SignIn(t *testing.T) {
	hash := bcryptHash(t, "secret1")
	stored := models.User{UserID: 3, Email: "a@x.com", Name: "A", PasswordHash: hash, Role: models.RoleUser}

	tests := []struct {
		name     string
		password string
		findErr  error
		wantErr  error
	}{
		{name: "success", password: "secret1"},
		{name: "wrong password", password: "secret2", wantErr: ErrInvalidCredentials},
		{name: "unknown email", password: "secret1", findErr: store.ErrNoUserWasFound, wantErr: ErrInvalidCredentials},
		{name: "store failure", password: "secret1", findErr: store.ErrExecutingQuery, wantErr: store.ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newTestAuthSvc(t, ctrl, false)
			ctx := context.Background()

			if tt.findErr != nil {
				repo.EXPECT().FindUserByEmail(ctx, "a@x.com").Return(models.User{}, tt.findErr)
			} else {
				repo.EXPECT().FindUserByEmail(ctx, "a@x.com").Return(stored, nil)
			}

			user, err := svc.SignIn(ctx, models.SignInRequest{Email: "A@x.com", Password: tt.password})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored, user)
		})
	}
}

func TestAuthService_SignIn_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl, false)

	_, err := svc.SignIn(context.Background(), models.SignInRequest{Email: "a@x.com"})

	assert.ErrorIs(t, err, ErrSignInFieldsRequired)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl, false)
	ctx := context.Background()

	user := models.User{UserID: 42, Email: "a@x.com", Name: "Alice", Role: models.RoleAdmin}

	token, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, models.Identity{UserID: 42, Email: "a@x.com", Name: "Alice", Role: models.RoleAdmin}, parsed.Identity())
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl, false)

	foreign, err := utils.GenerateJWTToken("other-issuer", models.Identity{UserID: 1}, time.Hour, "test-sign-key")
	require.NoError(t, err)

	for _, raw := range []string{"", "garbage", foreign.SignedString} {
		_, err := svc.ParseToken(context.Background(), raw)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	}
}

// ── ForgotPassword ───────────────────────────────────────────────────────────

func TestAuthService_ForgotPassword_KnownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl, true)
	ctx := context.Background()

	repo.EXPECT().
		SetResetToken(ctx, "a@x.com", utils.HashString("123456", "test-hash-key"), testNow.Add(10*time.Minute)).
		Return(nil)

	token, err := svc.ForgotPassword(ctx, models.ForgotPasswordRequest{Email: " A@x.com"})

	require.NoError(t, err)
	assert.Equal(t, "123456", token)
}

func TestAuthService_ForgotPassword_UnknownEmailLooksTheSame(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl, true)
	ctx := context.Background()

	repo.EXPECT().SetResetToken(ctx, "ghost@x.com", gomock.Any(), gomock.Any()).Return(store.ErrNoUserWasFound)

	token, err := svc.ForgotPassword(ctx, models.ForgotPasswordRequest{Email: "ghost@x.com"})

	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestAuthService_ForgotPassword_TokenHiddenByDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl, false)
	ctx := context.Background()

	repo.EXPECT().SetResetToken(ctx, "a@x.com", gomock.Any(), gomock.Any()).Return(nil)

	token, err := svc.ForgotPassword(ctx, models.ForgotPasswordRequest{Email: "a@x.com"})

	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestAuthService_ForgotPassword_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl, true)
	ctx := context.Background()

	_, err := svc.ForgotPassword(ctx, models.ForgotPasswordRequest{Email: "  "})
	assert.ErrorIs(t, err, ErrEmailRequired)

	repo.EXPECT().SetResetToken(ctx, "a@x.com", gomock.Any(), gomock.Any()).Return(store.ErrExecutingQuery)
	_, err = svc.ForgotPassword(ctx, models.ForgotPasswordRequest{Email: "a@x.com"})
	assert.ErrorIs(t, err, store.ErrExecutingQuery)

	svc.generateResetToken = func() (string, error) { return "", errors.New("entropy exhausted") }
	_, err = svc.ForgotPassword(ctx, models.ForgotPasswordRequest{Email: "a@x.com"})
	require.Error(t, err)
}

// ── ResetPassword ────────────────────────────────────────────────────────────

func TestAuthService_ResetPassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl, false)
	ctx := context.Background()

	repo.EXPECT().
		ResetPassword(ctx, "a@x.com", utils.HashString("123456", "test-hash-key"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, passwordHash string) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("newpass1")))
			return nil
		})

	err := svc.ResetPassword(ctx, models.ResetPasswordRequest{Email: "a@x.com", ResetToken: " 123456 ", NewPassword: "newpass1"})

	require.NoError(t, err)
}

func TestAuthService_ResetPassword_Errors(t *testing.T) {
	tests := []struct {
		name    string
		request models.ResetPasswordRequest
		repoErr error
		wantErr error
	}{
		{"missing token", models.ResetPasswordRequest{Email: "a@x.com", NewPassword: "newpass1"}, nil, ErrResetFieldsRequired},
		{"missing email", models.ResetPasswordRequest{ResetToken: "1", NewPassword: "newpass1"}, nil, ErrResetFieldsRequired},
		{"short password", models.ResetPasswordRequest{Email: "a@x.com", ResetToken: "1", NewPassword: "12345"}, nil, ErrPasswordTooShort},
		{"invalid or expired token", models.ResetPasswordRequest{Email: "a@x.com", ResetToken: "1", NewPassword: "newpass1"}, store.ErrInvalidResetToken, store.ErrInvalidResetToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newTestAuthSvc(t, ctrl, false)
			ctx := context.Background()

			if tt.repoErr != nil {
				repo.EXPECT().ResetPassword(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.repoErr)
			}

			err := svc.ResetPassword(ctx, tt.request)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── FindEmail ────────────────────────────────────────────────────────────────

func TestAuthService_FindEmail_MasksResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl, false)
	ctx := context.Background()

	created := testNow.Add(-time.Hour)
	repo.EXPECT().SearchUsersByName(ctx, "김철수").Return([]models.User{
		{Email: "abcdef@example.com", CreatedAt: created},
		{Email: "ab@example.com", CreatedAt: created},
	}, nil)

	found, err := svc.FindEmail(ctx, models.FindEmailRequest{Name: " 김철수 "})

	require.NoError(t, err)
	assert.Equal(t, []models.FoundEmail{
		{Email: "ab****@example.com", CreatedAt: created},
		{Email: "a*@example.com", CreatedAt: created},
	}, found)
}

func TestAuthService_FindEmail_BlocksAdminQueries(t *testing.T) {
	for _, name := range []string{"admin", "Super-ADMIN", "관리자", "시스템 관리자"} {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _ := newTestAuthSvc(t, ctrl, false)

			found, err := svc.FindEmail(context.Background(), models.FindEmailRequest{Name: name})

			require.NoError(t, err)
			assert.NotNil(t, found)
			assert.Empty(t, found)
		})
	}
}

func TestAuthService_FindEmail_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl, false)
	ctx := context.Background()

	_, err := svc.FindEmail(ctx, models.FindEmailRequest{Name: " "})
	assert.ErrorIs(t, err, ErrNameRequired)

	repo.EXPECT().SearchUsersByName(ctx, "kim").Return(nil, store.ErrExecutingQuery)
	_, err = svc.FindEmail(ctx, models.FindEmailRequest{Name: "kim"})
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestAuthService_ClearExpiredResetTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl, false)
	ctx := context.Background()

	repo.EXPECT().ClearExpiredResetTokens(ctx).Return(int64(3), nil)
	cleared, err := svc.ClearExpiredResetTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cleared)

	repo.EXPECT().ClearExpiredResetTokens(ctx).Return(int64(0), store.ErrExecutingQuery)
	_, err = svc.ClearExpiredResetTokens(ctx)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func TestMaskEmail(t *testing.T) {
	tests := map[string]string{
		"abcdef@example.com": "ab****@example.com",
		"abc@example.com":    "ab*@example.com",
		"ab@example.com":     "a*@example.com",
		"a@example.com":      "a*@example.com",
		"김철수님@example.com":   "김철**@example.com",
		"@example.com":       "*@example.com",
		"nodomain":           "no******",
	}

	for email, want := range tests {
		assert.Equal(t, want, maskEmail(email), email)
	}
}

func TestNewResetToken_SixDigits(t *testing.T) {
	for range 200 {
		token, err := newResetToken()
		require.NoError(t, err)
		require.Len(t, token, 6)

		n, err := strconv.Atoi(token)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}
