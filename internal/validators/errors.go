package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName            = errors.New("name is required")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrEmptyPassword        = errors.New("password is required")
	ErrEmptyCustomer        = errors.New("customer name is required")
	ErrEmptyWhatsappNumber  = errors.New("whatsapp number is required")
	ErrInvalidServiceRef    = errors.New("invalid service reference")
	ErrEmptyBrief           = errors.New("brief is required")
	ErrInvalidDeadline      = errors.New("invalid deadline")
	ErrInvalidPrice         = errors.New("price cannot be negative")
	ErrInvalidOrderStatus   = errors.New("unknown order status")
	ErrEmptyDescription     = errors.New("description is required")
	ErrInvalidAvailability  = errors.New("unknown availability")
	ErrEmptyTransactionCode = errors.New("transaction number is required")
)
