package models

import "time"

// Order statuses as stored in the database and shown in the UI.
const (
	OrderStatusInQueue    = "in queue"
	OrderStatusInProgress = "in progress"
	OrderStatusDone       = "done"
)

// KnownOrderStatus reports whether status is one of the recognised
// order workflow states.
func KnownOrderStatus(status string) bool {
	switch status {
	case OrderStatusInQueue, OrderStatusInProgress, OrderStatusDone:
		return true
	default:
		return false
	}
}

// Order is a single customer order tracked through the fulfillment
// workflow. Prices are stored in minor currency units (cents).
type Order struct {
	// OrderID is the internal unique identifier of the order.
	OrderID int64 `json:"id"`

	// TransactionNumber is the unique, human-facing order reference.
	// Generated server-side when the client omits it.
	TransactionNumber string `json:"transactionNumber"`

	// CustomerName is the name of the ordering customer.
	CustomerName string `json:"name"`

	// WhatsappNumber is the customer's contact number.
	WhatsappNumber string `json:"whatsappNumber"`

	// ServiceID references the catalog service being ordered.
	ServiceID int64 `json:"service"`

	// Brief is the free-form customer brief for the work.
	Brief string `json:"brief"`

	// UploadedFile is an optional URL to a customer-supplied file hosted
	// on an external media host. The upload itself happens out of band.
	UploadedFile string `json:"uploadedFile,omitempty"`

	// Deadline is the agreed delivery date. Earnings are bucketed by
	// the calendar month this date falls into.
	Deadline time.Time `json:"deadline"`

	// Price is the agreed order price in cents.
	Price int64 `json:"price"`

	// Status is one of the OrderStatus* constants.
	Status string `json:"status"`

	// CreatedAt is the timestamp when the order was recorded.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Order model.
func (o Order) TableName() string {
	return "orders"
}
