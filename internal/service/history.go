package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"smartcash/internal/models"
)

type TypeFilter string

const (
	FilterAll     TypeFilter = "all"
	FilterIncome  TypeFilter = "income"
	FilterExpense TypeFilter = "expense"
)

// DayGroup is one calendar day of the history view. DailyTotal is the net
// of the day: income minus expenses.
type DayGroup struct {
	Date         string
	Transactions []models.Transaction
	DailyTotal   float64
}

// FilterTransactions applies the history pre-filters: a case-insensitive
// substring search over description and category (and owner email in
// admin mode) plus the income/expense type filter. It never reorders the
// input and has no effect on the summary aggregation, which always runs
// on the unfiltered list.
func FilterTransactions(txs []models.Transaction, search string, typeFilter TypeFilter, adminMode bool) []models.Transaction {
	needle := strings.ToLower(strings.TrimSpace(search))

	filtered := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if typeFilter != FilterAll && typeFilter != "" && string(tx.Type) != string(typeFilter) {
			continue
		}
		if needle != "" {
			matches := strings.Contains(strings.ToLower(tx.Description), needle) ||
				strings.Contains(strings.ToLower(string(tx.Category)), needle) ||
				(adminMode && strings.Contains(strings.ToLower(tx.UserEmail), needle))
			if !matches {
				continue
			}
		}
		filtered = append(filtered, tx)
	}
	return filtered
}

// GroupByDate partitions transactions by exact date string equality into
// day groups ordered descending by date. The stable sort runs before
// grouping, so relative source order among same-date rows is preserved.
func GroupByDate(txs []models.Transaction) []DayGroup {
	sorted := append([]models.Transaction{}, txs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	groups := []DayGroup{}
	byDate := map[string]int{}

	for _, tx := range sorted {
		idx, seen := byDate[tx.Date]
		if !seen {
			idx = len(groups)
			byDate[tx.Date] = idx
			groups = append(groups, DayGroup{Date: tx.Date})
		}
		groups[idx].Transactions = append(groups[idx].Transactions, tx)
		if tx.Type == models.TypeIncome {
			groups[idx].DailyTotal += tx.Amount
		} else {
			groups[idx].DailyTotal -= tx.Amount
		}
	}

	return groups
}

var ptBRMonths = []string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// DateLabel renders the display label for a day group: "Hoje" for the
// current calendar day, "Ontem" for the previous one, otherwise the long
// pt-BR date. Presentation only; grouping keys stay the raw date string.
func DateLabel(date string, now time.Time) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}

	today := now.Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")

	switch date {
	case today:
		return "Hoje"
	case yesterday:
		return "Ontem"
	}

	return fmt.Sprintf("%02d de %s de %d", parsed.Day(), ptBRMonths[parsed.Month()-1], parsed.Year())
}
