package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-interview-prep/internal/config"
	"github.com/MKhiriev/go-interview-prep/internal/logger"
	"github.com/MKhiriev/go-interview-prep/internal/store"
	"github.com/MKhiriev/go-interview-prep/internal/utils"
	"github.com/MKhiriev/go-interview-prep/internal/validators"
	"github.com/MKhiriev/go-interview-prep/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	passwordHashCost = 10
	resetTokenTTL    = 10 * time.Minute
)

// authService is the concrete implementation of AuthService.
// It handles sign-up, credential verification, JWT token lifecycle and
// password recovery using a UserRepository for persistence, bcrypt for
// password hashes and HMAC-SHA256 for reset token hashes.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator

	// hashKey is the HMAC secret applied to reset tokens before they are
	// stored or compared.
	hashKey string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// adminEmail is the single address that receives the admin role at sign-up.
	adminEmail string

	// exposeResetToken returns the plain reset token from ForgotPassword.
	// Development only: there is no mail delivery.
	exposeResetToken bool

	// generateResetToken and now are replaced in tests.
	generateResetToken func() (string, error)
	now                func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:     userRepository,
		validator:          validator,
		hashKey:            cfg.HashKey,
		tokenSignKey:       cfg.TokenSignKey,
		tokenIssuer:        cfg.TokenIssuer,
		tokenDuration:      cfg.TokenDuration,
		adminEmail:         normalizeEmail(cfg.AdminEmail),
		exposeResetToken:   cfg.ExposeResetToken,
		generateResetToken: newResetToken,
		now:                time.Now,
		logger:             logger,
	}
}

// SignUp creates a new account.
//
// The email is trimmed and lowercased, the password is stored as a bcrypt
// hash and the role is admin only for the configured admin email.
//
// Returns the persisted user or:
//   - ErrSignUpFieldsRequired if any field is empty.
//   - ErrInvalidEmail if the email is malformed.
//   - ErrPasswordTooLong if bcrypt cannot hash the password.
//   - a wrapped store.ErrEmailAlreadyExists for a taken email.
func (a *authService) SignUp(ctx context.Context, request models.SignUpRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	request.Email = normalizeEmail(request.Email)
	request.Name = strings.TrimSpace(request.Name)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("email", request.Email).Msg("invalid sign-up data provided")
		if errors.Is(err, validators.ErrInvalidFormat) {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidEmail, err)
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrSignUpFieldsRequired, err)
	}

	passwordHash, err := hashPassword(request.Password)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("password hashing failed")
		return models.User{}, err
	}

	role := models.RoleUser
	if a.adminEmail != "" && request.Email == a.adminEmail {
		role = models.RoleAdmin
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        request.Email,
		Name:         request.Name,
		PasswordHash: passwordHash,
		Role:         role,
	})
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", user.UserID).Str("role", string(user.Role)).Msg("user signed up")
	return user, nil
}

// SignIn verifies the credentials. An unknown email and a wrong password
// both yield ErrInvalidCredentials.
func (a *authService) SignIn(ctx context.Context, request models.SignInRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	request.Email = normalizeEmail(request.Email)
	if err := a.validator.Validate(ctx, request); err != nil {
		log.Err(err).Msg("invalid sign-in data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrSignInFieldsRequired, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Str("email", request.Email).Msg("sign-in for unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(request.Password)); err != nil {
		log.Warn().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	identity := models.Identity{
		UserID: user.UserID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, identity, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// ForgotPassword stores the HMAC of a fresh 6-digit token valid for ten
// minutes. Unknown emails are not reported so the caller cannot probe for
// accounts.
func (a *authService) ForgotPassword(ctx context.Context, request models.ForgotPasswordRequest) (string, error) {
	log := logger.FromContext(ctx)

	request.Email = normalizeEmail(request.Email)
	if err := a.validator.Validate(ctx, request); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEmailRequired, err)
	}

	token, err := a.generateResetToken()
	if err != nil {
		log.Err(err).Msg("reset token generation failed")
		return "", fmt.Errorf("reset token generation failed: %w", err)
	}

	expiry := a.now().Add(resetTokenTTL)
	err = a.userRepository.SetResetToken(ctx, request.Email, utils.HashString(token, a.hashKey), expiry)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("email", request.Email).Msg("password reset requested for unknown email")
		return "", nil
	}
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("storing reset token failed")
		return "", fmt.Errorf("storing reset token failed: %w", err)
	}

	log.Info().Str("email", request.Email).Time("expiry", expiry).Msg("reset token issued")
	if !a.exposeResetToken {
		return "", nil
	}
	return token, nil
}

// ResetPassword replaces the password when the token matches and has not
// expired, and clears the token. Otherwise it returns a wrapped
// store.ErrInvalidResetToken.
func (a *authService) ResetPassword(ctx context.Context, request models.ResetPasswordRequest) error {
	log := logger.FromContext(ctx)

	request.Email = normalizeEmail(request.Email)
	request.ResetToken = strings.TrimSpace(request.ResetToken)

	if err := a.validator.Validate(ctx, request); err != nil {
		if errors.Is(err, validators.ErrTooShort) {
			return fmt.Errorf("%w: %w", ErrPasswordTooShort, err)
		}
		return fmt.Errorf("%w: %w", ErrResetFieldsRequired, err)
	}

	passwordHash, err := hashPassword(request.NewPassword)
	if err != nil {
		return err
	}

	err = a.userRepository.ResetPassword(ctx, request.Email, utils.HashString(request.ResetToken, a.hashKey), passwordHash)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("password reset failed")
		return fmt.Errorf("password reset failed: %w", err)
	}

	log.Info().Str("email", request.Email).Msg("password reset")
	return nil
}

// FindEmail lists masked emails of non-admin accounts whose name contains
// the query. Queries mentioning the admin account return nothing without a
// store lookup.
func (a *authService) FindEmail(ctx context.Context, request models.FindEmailRequest) ([]models.FoundEmail, error) {
	log := logger.FromContext(ctx)

	request.Name = strings.TrimSpace(request.Name)
	if err := a.validator.Validate(ctx, request); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNameRequired, err)
	}

	found := make([]models.FoundEmail, 0)
	if isAdminQuery(request.Name) {
		log.Warn().Str("name", request.Name).Msg("blocked admin account search")
		return found, nil
	}

	users, err := a.userRepository.SearchUsersByName(ctx, request.Name)
	if err != nil {
		log.Err(err).Str("name", request.Name).Msg("user search by name failed")
		return nil, fmt.Errorf("user search by name failed: %w", err)
	}

	for _, user := range users {
		found = append(found, models.FoundEmail{
			Email:     maskEmail(user.Email),
			CreatedAt: user.CreatedAt,
		})
	}

	return found, nil
}

func (a *authService) ClearExpiredResetTokens(ctx context.Context) (int64, error) {
	cleared, err := a.userRepository.ClearExpiredResetTokens(ctx)
	if err != nil {
		return 0, fmt.Errorf("clearing expired reset tokens failed: %w", err)
	}
	return cleared, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %w", ErrPasswordTooLong, err)
	}
	if err != nil {
		return "", fmt.Errorf("password hashing failed: %w", err)
	}
	return string(hash), nil
}

// newResetToken returns a uniformly random number in [100000, 999999].
func newResetToken() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isAdminQuery(name string) bool {
	return strings.Contains(strings.ToLower(name), "admin") || strings.Contains(name, "관리자")
}

// maskEmail keeps the first two characters of the local part (one when the
// local part is two characters or shorter) and replaces the rest with '*'.
func maskEmail(email string) string {
	local, domain, hasDomain := strings.Cut(email, "@")

	runes := []rune(local)
	var masked string
	switch {
	case len(runes) > 2:
		masked = string(runes[:2]) + strings.Repeat("*", len(runes)-2)
	case len(runes) > 0:
		masked = string(runes[:1]) + "*"
	default:
		masked = "*"
	}

	if !hasDomain {
		return masked
	}
	return masked + "@" + domain
}
