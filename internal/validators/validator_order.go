package validators

import (
	"context"
	"strings"

	"github.com/sofyone/go-gig-desk/models"
)

const (
	FieldCustomerName      = "customer_name"
	FieldWhatsappNumber    = "whatsapp_number"
	FieldServiceRef        = "service_ref"
	FieldBrief             = "brief"
	FieldDeadline          = "deadline"
	FieldPrice             = "price"
	FieldOrderStatus       = "order_status"
	FieldTransactionNumber = "transaction_number"
)

type OrderValidator struct {
}

func NewOrderValidator() Validator {
	return &OrderValidator{}
}

func (v *OrderValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Order:
		return v.validateOrder(ctx, value, fields...)
	case *models.Order:
		return v.validateOrder(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *OrderValidator) validateOrder(ctx context.Context, order models.Order, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCustomerName, FieldWhatsappNumber, FieldServiceRef, FieldBrief, FieldDeadline, FieldPrice, FieldOrderStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldCustomerName:
			if strings.TrimSpace(order.CustomerName) == "" {
				return ErrEmptyCustomer
			}
		case FieldWhatsappNumber:
			if strings.TrimSpace(order.WhatsappNumber) == "" {
				return ErrEmptyWhatsappNumber
			}
		case FieldServiceRef:
			if order.ServiceID <= 0 {
				return ErrInvalidServiceRef
			}
		case FieldBrief:
			if strings.TrimSpace(order.Brief) == "" {
				return ErrEmptyBrief
			}
		case FieldDeadline:
			if order.Deadline.IsZero() {
				return ErrInvalidDeadline
			}
		case FieldPrice:
			if order.Price < 0 {
				return ErrInvalidPrice
			}
		case FieldOrderStatus:
			if !models.KnownOrderStatus(order.Status) {
				return ErrInvalidOrderStatus
			}
		case FieldTransactionNumber:
			if order.TransactionNumber == "" {
				return ErrEmptyTransactionCode
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
