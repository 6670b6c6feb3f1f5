// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sofia Onell

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"

	"github.com/sofyone/go-gig-desk/internal/logger"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil error", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "connection exception", err: pgError(pgerrcode.ConnectionException), want: Retryable},
		{name: "connection does not exist", err: pgError(pgerrcode.ConnectionDoesNotExist), want: Retryable},
		{name: "serialization failure", err: pgError(pgerrcode.SerializationFailure), want: Retryable},
		{name: "deadlock detected", err: pgError(pgerrcode.DeadlockDetected), want: Retryable},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: Retryable},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "foreign key violation", err: pgError(pgerrcode.ForeignKeyViolation), want: NonRetryable},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError), want: NonRetryable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifier.Classify(tt.err); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExecWithRetry_RetriesTransientFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	wrapped := &DB{DB: db, logger: logger.Nop(), errorClassificator: NewPostgresErrorClassifier()}

	mock.ExpectExec("DELETE FROM orders").
		WithArgs(int64(1)).
		WillReturnError(pgError(pgerrcode.DeadlockDetected))
	mock.ExpectExec("DELETE FROM orders").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	result, err := wrapped.ExecWithRetry(context.Background(), deleteOrder, int64(1))
	if err != nil {
		t.Fatalf("unexpected error after retry: %v", err)
	}
	affected, _ := result.RowsAffected()
	if affected != 1 {
		t.Errorf("expected 1 row affected, got %d", affected)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestExecWithRetry_PermanentFailureIsNotRetried(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	wrapped := &DB{DB: db, logger: logger.Nop(), errorClassificator: NewPostgresErrorClassifier()}

	mock.ExpectExec("DELETE FROM orders").
		WithArgs(int64(1)).
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err = wrapped.ExecWithRetry(context.Background(), deleteOrder, int64(1))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("statement retried on a permanent failure: %v", err)
	}
}
