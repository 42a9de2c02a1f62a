package models

type CategoryTotal struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// FinancialStats are the dashboard summary cards, always computed over
// the unfiltered list. The breakdown covers expenses only, in first-seen
// category order. UserCount is populated for admin reads.
type FinancialStats struct {
	TotalIncome       float64         `json:"totalIncome"`
	TotalExpenses     float64         `json:"totalExpenses"`
	TotalBalance      float64         `json:"totalBalance"`
	CategoryBreakdown []CategoryTotal `json:"categoryBreakdown"`
	UserCount         int             `json:"userCount,omitempty"`
}
