package domain

// MonthlySummary is the point total for one customer in one calendar month.
type MonthlySummary struct {
	CustomerID   int    `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	Month        string `json:"month"` // YYYY-MM
	Points       int64  `json:"points"`
}

// CustomerTotal is the point total for one customer across the summarized months.
type CustomerTotal struct {
	CustomerID   int    `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	TotalPoints  int64  `json:"total_points"`
}

// Window describes the inclusive range of months covered by a report.
type Window struct {
	StartMonth string `json:"start_month"`
	EndMonth   string `json:"end_month"`
}

// RewardsReport is the top-level structure for the final output.
type RewardsReport struct {
	ReportID             string           `json:"report_id"`
	ReferenceDate        string           `json:"reference_date"`
	Window               Window           `json:"window"`
	CustomerID           int              `json:"customer_id,omitempty"`
	TransactionsLoaded   int              `json:"transactions_loaded"` // after the customer filter
	TransactionsInWindow int              `json:"transactions_in_window"`
	MonthlySummaries     []MonthlySummary `json:"monthly_summaries"`
	CustomerTotals       []CustomerTotal  `json:"customer_totals"`
}
