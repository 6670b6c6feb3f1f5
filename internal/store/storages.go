package store

import (
	"context"
	"fmt"

	"github.com/sofyone/go-gig-desk/internal/config"
	"github.com/sofyone/go-gig-desk/internal/logger"
)

// ErrorClassificator reports whether a failed database operation is worth
// retrying. Implemented by [PostgresErrorClassifier].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Storages groups all server-side repositories into a single value passed
// to the service layer.
type Storages struct {
	UserRepository    UserRepository
	OrderRepository   OrderRepository
	CatalogRepository CatalogRepository
}

// NewStorages connects to PostgreSQL, runs pending schema migrations, and
// wires all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		OrderRepository:   NewOrderRepository(db, log),
		CatalogRepository: NewCatalogRepository(db, log),
	}, nil
}
