package store

import (
	"errors"
	"net"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed database call may succeed if
// attempted again.
type ErrorClassification int

const (
	// NonRetryable is the default for constraint violations, bad SQL and
	// anything unrecognised.
	NonRetryable ErrorClassification = iota

	// Retryable covers transient failures: the server is still starting, the
	// connection dropped, or a transaction lost a serialization race.
	Retryable
)

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] for the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
//
// Server-reported errors are classified by SQLSTATE, see [ClassifyPgError].
// Failures to reach the server at all (refused or reset connections, DNS
// hiccups while the database container starts) are [Retryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return Retryable
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return Retryable
	}

	return NonRetryable
}

// ClassifyPgError maps a server error code to an [ErrorClassification].
//
// Retryable classes:
//   - 08, connection exceptions
//   - 40, transaction rollback (serialization failure, deadlock)
//   - 57P03, the server is starting up or shutting down
//
// Everything else, notably class 23 (the unique and foreign key violations
// the repositories translate into conflicts), is [NonRetryable].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch {
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsTransactionRollback(pgErr.Code),
		pgErr.Code == pgerrcode.CannotConnectNow:
		return Retryable
	default:
		return NonRetryable
	}
}
