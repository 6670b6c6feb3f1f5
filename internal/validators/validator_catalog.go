package validators

import (
	"context"
	"strings"

	"github.com/sofyone/go-gig-desk/models"
)

const (
	FieldServiceName  = "service_name"
	FieldDescription  = "description"
	FieldServicePrice = "service_price"
	FieldAvailability = "availability"
)

type CatalogServiceValidator struct {
}

func NewCatalogServiceValidator() Validator {
	return &CatalogServiceValidator{}
}

func (v *CatalogServiceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CatalogService:
		return v.validateCatalogService(ctx, value, fields...)
	case *models.CatalogService:
		return v.validateCatalogService(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CatalogServiceValidator) validateCatalogService(ctx context.Context, service models.CatalogService, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldServiceName, FieldDescription, FieldServicePrice, FieldAvailability}
	}

	for _, f := range fields {
		switch f {
		case FieldServiceName:
			if strings.TrimSpace(service.Name) == "" {
				return ErrEmptyName
			}
		case FieldDescription:
			if strings.TrimSpace(service.Description) == "" {
				return ErrEmptyDescription
			}
		case FieldServicePrice:
			if service.Price < 0 {
				return ErrInvalidPrice
			}
		case FieldAvailability:
			if !models.KnownAvailability(service.Availability) {
				return ErrInvalidAvailability
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
