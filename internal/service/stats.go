package service

import "smartcash/internal/models"

// AnonymousUser is the sentinel attribution for rows without an email.
const AnonymousUser = "Visitante"

// Aggregate folds a transaction list into the dashboard totals and the
// expense-only category breakdown. The breakdown keeps first-seen
// category order; callers re-sort for display when they need to.
func Aggregate(txs []models.Transaction) models.FinancialStats {
	stats := models.FinancialStats{
		CategoryBreakdown: []models.CategoryTotal{},
	}

	byCategory := map[string]int{}
	for _, tx := range txs {
		switch tx.Type {
		case models.TypeIncome:
			stats.TotalIncome += tx.Amount
		case models.TypeExpense:
			stats.TotalExpenses += tx.Amount
			name := string(tx.Category)
			idx, seen := byCategory[name]
			if !seen {
				idx = len(stats.CategoryBreakdown)
				byCategory[name] = idx
				stats.CategoryBreakdown = append(stats.CategoryBreakdown, models.CategoryTotal{Name: name})
			}
			stats.CategoryBreakdown[idx].Value += tx.Amount
		}
	}

	stats.TotalBalance = stats.TotalIncome - stats.TotalExpenses
	return stats
}

// CountUsers counts distinct user emails, attributing blank emails to the
// anonymous sentinel.
func CountUsers(txs []models.Transaction) int {
	seen := map[string]struct{}{}
	for _, tx := range txs {
		email := tx.UserEmail
		if email == "" {
			email = AnonymousUser
		}
		seen[email] = struct{}{}
	}
	return len(seen)
}

// SummarizeUsers builds the admin per-user summaries: expense total and
// count, plus the most recent date seen across all of the user's rows.
func SummarizeUsers(txs []models.Transaction) []models.UserSummary {
	order := []string{}
	byEmail := map[string]*models.UserSummary{}

	for _, tx := range txs {
		email := tx.UserEmail
		if email == "" {
			email = AnonymousUser
		}

		summary, ok := byEmail[email]
		if !ok {
			summary = &models.UserSummary{Email: email}
			byEmail[email] = summary
			order = append(order, email)
		}
		if tx.Type == models.TypeExpense {
			summary.TotalSpent += tx.Amount
			summary.TransactionCount++
		}
		if tx.Date > summary.LastActivity {
			summary.LastActivity = tx.Date
		}
	}

	summaries := make([]models.UserSummary, 0, len(order))
	for _, email := range order {
		summaries = append(summaries, *byEmail[email])
	}
	return summaries
}
