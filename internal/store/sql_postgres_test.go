package store

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-interview-prep/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPingDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &DB{DB: conn, logger: logger.Nop(), errorClassificator: NewPostgresErrorClassifier()}, mock
}

func shortPingBackoff(t *testing.T) {
	t.Helper()

	saved := pingBackoff
	pingBackoff = []time.Duration{time.Millisecond, time.Millisecond}
	t.Cleanup(func() { pingBackoff = saved })
}

func TestPing_RetriesTransientErrors(t *testing.T) {
	shortPingBackoff(t)
	db, mock := newPingDB(t)

	mock.ExpectPing().WillReturnError(pgError(pgerrcode.CannotConnectNow))
	mock.ExpectPing()

	require.NoError(t, db.ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPing_StopsOnPermanentError(t *testing.T) {
	shortPingBackoff(t)
	db, mock := newPingDB(t)

	mock.ExpectPing().WillReturnError(pgError(pgerrcode.InvalidPassword))

	err := db.ping(context.Background())
	require.Error(t, err)
	assert.Equal(t, pgerrcode.InvalidPassword, postgresError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPing_GivesUpAfterBackoff(t *testing.T) {
	shortPingBackoff(t)
	db, mock := newPingDB(t)

	for range len(pingBackoff) + 1 {
		mock.ExpectPing().WillReturnError(pgError(pgerrcode.ConnectionFailure))
	}

	err := db.ping(context.Background())
	assert.Equal(t, pgerrcode.ConnectionFailure, postgresError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresError(t *testing.T) {
	assert.Equal(t, pgerrcode.UniqueViolation, postgresError(pgError(pgerrcode.UniqueViolation)))
	assert.Empty(t, postgresError(errors.New("plain")))
	assert.Empty(t, postgresError(nil))
}

func TestPostgresErrorClassifier(t *testing.T) {
	refused := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "server starting", err: pgError(pgerrcode.CannotConnectNow), want: Retryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "serialization failure", err: pgError(pgerrcode.SerializationFailure), want: Retryable},
		{name: "deadlock", err: fmt.Errorf("toggle: %w", pgError(pgerrcode.DeadlockDetected)), want: Retryable},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "foreign key violation", err: pgError(pgerrcode.ForeignKeyViolation), want: NonRetryable},
		{name: "bad password", err: pgError(pgerrcode.InvalidPassword), want: NonRetryable},
		{name: "dial refused", err: fmt.Errorf("ping: %w", refused), want: Retryable},
		{name: "connect error", err: &pgconn.ConnectError{}, want: Retryable},
	}

	classifier := NewPostgresErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.err))
		})
	}
}
