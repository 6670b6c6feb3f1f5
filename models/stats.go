package models

// DashboardStats is the aggregated read model behind
// GET /api/dashboard-stats. All monetary values are in cents.
type DashboardStats struct {
	// TotalOrders is the count of orders with status "done".
	TotalOrders int64 `json:"totalOrders"`

	// MonthlyEarnings is the sum of prices of done orders whose deadline
	// falls in the current calendar month of the requesting client's
	// timezone.
	MonthlyEarnings int64 `json:"monthlyEarnings"`

	// PreviousMonthEarnings is the same sum for the previous calendar
	// month.
	PreviousMonthEarnings int64 `json:"previousMonthEarnings"`

	// TotalServices is the count of catalog entries.
	TotalServices int64 `json:"totalServices"`
}

// MonthEarnings is one bucket of the earnings chart data: the sum of
// done-order prices for a single calendar month.
type MonthEarnings struct {
	// Month is the human-readable bucket label, e.g. "Jan 2026".
	Month string `json:"month"`

	// Earnings is the price sum for the bucket, in cents.
	Earnings int64 `json:"earnings"`
}
