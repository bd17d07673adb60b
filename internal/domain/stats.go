package domain

// Stats is the dashboard summary computed server-side. RecentTransactions is
// a short server-bounded list, not paginated.
type Stats struct {
	TotalBalance       float64       `json:"total_balance"`
	TransactionCount   int           `json:"transaction_count"`
	RecentTransactions []Transaction `json:"recent_transactions"`
}
