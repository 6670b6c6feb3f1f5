package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sofyone/go-gig-desk/internal/logger"
	"github.com/sofyone/go-gig-desk/models"
)

// catalogRepository is the PostgreSQL-backed implementation of
// [CatalogRepository]: CRUD over the "services" table.
type catalogRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCatalogRepository constructs a [CatalogRepository] backed by the
// provided database connection and logger.
func NewCatalogRepository(db *DB, logger *logger.Logger) CatalogRepository {
	logger.Debug().Msg("creating catalog repository")
	return &catalogRepository{
		db:     db,
		logger: logger,
	}
}

// CreateService persists a new catalog entry and returns it with the
// server-assigned ServiceID.
func (r *catalogRepository) CreateService(ctx context.Context, svc models.CatalogService) (models.CatalogService, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCatalogService,
		svc.Name, svc.Image, svc.Price, svc.Description, svc.Revision, svc.WorkingTime, svc.Availability)

	created, err := scanCatalogService(row)
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.CreateService").Msg("error: inserting catalog service")
		return models.CatalogService{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetService retrieves a single catalog entry by its identifier.
func (r *catalogRepository) GetService(ctx context.Context, serviceID int64) (models.CatalogService, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getCatalogService, serviceID)
	found, err := scanCatalogService(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CatalogService{}, ErrCatalogServiceNotFound
		}

		log.Err(err).Str("func", "*catalogRepository.GetService").Msg("error: scanning catalog service")
		return models.CatalogService{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListServices returns the whole catalog ordered by id.
func (r *catalogRepository) ListServices(ctx context.Context) ([]models.CatalogService, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCatalogServices)
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.ListServices").Msg("error: executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	services := make([]models.CatalogService, 0)
	for rows.Next() {
		svc, err := scanCatalogService(rows)
		if err != nil {
			log.Err(err).Str("func", "*catalogRepository.ListServices").Msg("error: scanning catalog row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		services = append(services, svc)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return services, nil
}

// UpdateService replaces the mutable fields of an existing catalog entry
// and returns the canonical post-update record.
func (r *catalogRepository) UpdateService(ctx context.Context, svc models.CatalogService) (models.CatalogService, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateCatalogService,
		svc.ServiceID, svc.Name, svc.Image, svc.Price, svc.Description, svc.Revision, svc.WorkingTime, svc.Availability)

	updated, err := scanCatalogService(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CatalogService{}, ErrCatalogServiceNotFound
		}

		log.Err(err).Str("func", "*catalogRepository.UpdateService").Msg("error: updating catalog service")
		return models.CatalogService{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteService removes a catalog entry by id. Returns
// [ErrCatalogServiceNotFound] when no row was affected.
func (r *catalogRepository) DeleteService(ctx context.Context, serviceID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecWithRetry(ctx, deleteCatalogService, serviceID)
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.DeleteService").Msg("error: deleting catalog service")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCatalogServiceNotFound
	}

	return nil
}

// CountServices returns the size of the catalog.
func (r *catalogRepository) CountServices(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	if err := r.db.QueryRowContext(ctx, countCatalogServices).Scan(&count); err != nil {
		log.Err(err).Str("func", "*catalogRepository.CountServices").Msg("error: counting catalog services")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func scanCatalogService(row rowScanner) (models.CatalogService, error) {
	var svc models.CatalogService
	var image sql.NullString

	err := row.Scan(&svc.ServiceID, &svc.Name, &image, &svc.Price, &svc.Description, &svc.Revision, &svc.WorkingTime, &svc.Availability)
	if err != nil {
		return models.CatalogService{}, err
	}

	svc.Image = image.String
	return svc, nil
}
