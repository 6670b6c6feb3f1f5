package models

// Catalog service availability values.
const (
	AvailabilityAvailable    = "available"
	AvailabilityNotAvailable = "not available"
)

// KnownAvailability reports whether availability is a recognised
// catalog availability value.
func KnownAvailability(availability string) bool {
	return availability == AvailabilityAvailable || availability == AvailabilityNotAvailable
}

// CatalogService is an entry of the service catalog: a unit of work the
// freelancer offers (e.g. "UI/UX Design"). Prices are stored in cents.
type CatalogService struct {
	// ServiceID is the internal unique identifier of the catalog entry.
	ServiceID int64 `json:"id"`

	// Name is the display name of the offered service.
	Name string `json:"name"`

	// Image is an optional URL to an illustration hosted externally.
	Image string `json:"image,omitempty"`

	// Price is the base price in cents.
	Price int64 `json:"price"`

	// Description is the customer-facing description of the service.
	Description string `json:"description"`

	// Revision is the number of included revision rounds.
	Revision int `json:"revision"`

	// WorkingTime is the estimated delivery time in days.
	WorkingTime int `json:"workingTime"`

	// Availability is one of the Availability* constants.
	Availability string `json:"availability"`
}

// TableName returns the name of the database table
// associated with the CatalogService model.
func (s CatalogService) TableName() string {
	return "services"
}
