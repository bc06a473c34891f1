package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-interview-prep/internal/logger"
	"github.com/MKhiriev/go-interview-prep/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup and password recovery against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned fields (UserID, CreatedAt) filled in.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level or scan error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Email, user.PasswordHash, user.Name, string(user.Role))

	// scan saved user from db; pgx reports constraint errors on the first read
	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByEmail retrieves the user whose email matches exactly. Emails are
// stored lowercased, so callers normalize before the lookup.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByEmail, email)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// SearchUsersByName returns non-admin users whose name contains name,
// ignoring case, newest first. Password hashes are not selected.
func (r *userRepository) SearchUsersByName(ctx context.Context, name string) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchUsersByNameQuery(ctx, name)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SearchUsersByName").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SearchUsersByName").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var (
			user models.User
			role string
		)
		if err := rows.Scan(&user.UserID, &user.Email, &user.Name, &role, &user.CreatedAt); err != nil {
			log.Err(err).Str("func", "*userRepository.SearchUsersByName").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		user.Role = models.Role(role)
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.SearchUsersByName").Msg("rows iteration failed")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// SetResetToken stores the hashed recovery token and its deadline.
// Returns [ErrNoUserWasFound] when no account uses email.
func (r *userRepository) SetResetToken(ctx context.Context, email, tokenHash string, expiry time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, setResetToken, email, tokenHash, expiry)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetResetToken").Msg("failed to store reset token")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// ResetPassword replaces the password hash and clears the recovery token in
// one statement. The update only matches while the token hash is equal and
// unexpired, otherwise [ErrInvalidResetToken] is returned.
func (r *userRepository) ResetPassword(ctx context.Context, email, tokenHash, passwordHash string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, resetPassword, email, tokenHash, passwordHash)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ResetPassword").Msg("failed to reset password")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrInvalidResetToken
	}

	return nil
}

// ClearExpiredResetTokens drops every recovery token past its deadline and
// reports how many accounts were touched.
func (r *userRepository) ClearExpiredResetTokens(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, clearExpiredResetTokens)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ClearExpiredResetTokens").Msg("failed to clear reset tokens")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user models.User
		role string
	)
	if err := row.Scan(&user.UserID, &user.Email, &user.PasswordHash, &user.Name, &role, &user.CreatedAt); err != nil {
		return models.User{}, err
	}
	user.Role = models.Role(role)

	return user, nil
}
