package models

type InsightSeverity string

const (
	SeverityLow    InsightSeverity = "low"
	SeverityMedium InsightSeverity = "medium"
	SeverityHigh   InsightSeverity = "high"
)

// AIInsight is a short structured recommendation derived from transaction
// history. Insights are ephemeral: produced on demand, never persisted.
type AIInsight struct {
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Recommendation string          `json:"recommendation"`
	Severity       InsightSeverity `json:"severity"`
}

// UserSummary aggregates one user's expense activity for the admin view.
type UserSummary struct {
	Email            string  `json:"email"`
	TotalSpent       float64 `json:"totalSpent"`
	TransactionCount int     `json:"transactionCount"`
	LastActivity     string  `json:"lastActivity"`
}
