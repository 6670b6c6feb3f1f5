package store

import (
	"context"
	"database/sql"

	"github.com/sofyone/go-gig-desk/internal/logger"
	"github.com/sofyone/go-gig-desk/migrations"
)

// DB couples the raw connection with the error classifier repositories
// use to decide whether a failed statement is worth a second attempt.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// ExecWithRetry executes a statement and retries it once when the
// failure is classified as transient (deadlock, serialization failure,
// dropped connection). Constraint violations and other permanent
// failures surface immediately.
func (db *DB) ExecWithRetry(ctx context.Context, query string, args ...any) (sql.Result, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil && db.errorClassificator.Classify(err) == Retryable {
		db.logger.Warn().Err(err).Msg("retrying statement after transient database error")
		result, err = db.ExecContext(ctx, query, args...)
	}

	return result, err
}
