package service

import (
	"context"
	"fmt"

	"github.com/sofyone/go-gig-desk/internal/logger"
	"github.com/sofyone/go-gig-desk/internal/store"
	"github.com/sofyone/go-gig-desk/internal/validators"
	"github.com/sofyone/go-gig-desk/models"
)

// catalogService implements CatalogService on top of the catalog
// repository.
type catalogService struct {
	catalogRepository store.CatalogRepository

	catalogValidator validators.Validator

	logger *logger.Logger
}

func NewCatalogService(catalogRepository store.CatalogRepository, catalogValidator validators.Validator, logger *logger.Logger) CatalogService {
	return &catalogService{
		catalogRepository: catalogRepository,
		catalogValidator:  catalogValidator,
		logger:            logger,
	}
}

// CreateService validates and persists a new catalog entry. Entries
// submitted without an availability default to available.
func (c *catalogService) CreateService(ctx context.Context, svc models.CatalogService) (models.CatalogService, error) {
	log := logger.FromContext(ctx)

	if svc.Availability == "" {
		svc.Availability = models.AvailabilityAvailable
	}

	if err := c.catalogValidator.Validate(ctx, svc); err != nil {
		log.Err(err).Str("name", svc.Name).Msg("invalid service data provided")
		return models.CatalogService{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	createdService, err := c.catalogRepository.CreateService(ctx, svc)
	if err != nil {
		log.Err(err).Str("name", svc.Name).Msg("service creation ended with error")
		return models.CatalogService{}, fmt.Errorf("service creation ended with error: %w", err)
	}

	return createdService, nil
}

func (c *catalogService) GetService(ctx context.Context, serviceID int64) (models.CatalogService, error) {
	log := logger.FromContext(ctx)

	svc, err := c.catalogRepository.GetService(ctx, serviceID)
	if err != nil {
		log.Err(err).Int64("serviceID", serviceID).Msg("service lookup failed")
		return models.CatalogService{}, fmt.Errorf("service lookup failed: %w", err)
	}

	return svc, nil
}

func (c *catalogService) ListServices(ctx context.Context) ([]models.CatalogService, error) {
	log := logger.FromContext(ctx)

	services, err := c.catalogRepository.ListServices(ctx)
	if err != nil {
		log.Err(err).Msg("service listing failed")
		return nil, fmt.Errorf("service listing failed: %w", err)
	}

	return services, nil
}

func (c *catalogService) UpdateService(ctx context.Context, svc models.CatalogService) (models.CatalogService, error) {
	log := logger.FromContext(ctx)

	if err := c.catalogValidator.Validate(ctx, svc); err != nil {
		log.Err(err).Int64("serviceID", svc.ServiceID).Msg("invalid service data provided")
		return models.CatalogService{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updatedService, err := c.catalogRepository.UpdateService(ctx, svc)
	if err != nil {
		log.Err(err).Int64("serviceID", svc.ServiceID).Msg("service update failed")
		return models.CatalogService{}, fmt.Errorf("service update failed: %w", err)
	}

	return updatedService, nil
}

func (c *catalogService) DeleteService(ctx context.Context, serviceID int64) error {
	log := logger.FromContext(ctx)

	if err := c.catalogRepository.DeleteService(ctx, serviceID); err != nil {
		log.Err(err).Int64("serviceID", serviceID).Msg("service deletion failed")
		return fmt.Errorf("service deletion failed: %w", err)
	}

	return nil
}
