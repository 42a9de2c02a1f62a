package service

import (
	"math"
	"testing"

	"smartcash/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAggregateEmptyList(t *testing.T) {
	stats := Aggregate([]models.Transaction{})

	if stats.TotalIncome != 0 || stats.TotalExpenses != 0 || stats.TotalBalance != 0 {
		t.Errorf("expected zero totals, got %+v", stats)
	}
	if len(stats.CategoryBreakdown) != 0 {
		t.Errorf("expected empty breakdown, got %v", stats.CategoryBreakdown)
	}
}

func TestAggregateScenario(t *testing.T) {
	txs := []models.Transaction{
		{Amount: 5000, Type: models.TypeIncome, Category: models.CategoryRenda, Date: "2024-05-05"},
		{Amount: 1500, Type: models.TypeExpense, Category: models.CategoryMoradia, Date: "2024-05-10"},
	}

	stats := Aggregate(txs)

	if !almostEqual(stats.TotalIncome, 5000) {
		t.Errorf("totalIncome = %v, want 5000", stats.TotalIncome)
	}
	if !almostEqual(stats.TotalExpenses, 1500) {
		t.Errorf("totalExpenses = %v, want 1500", stats.TotalExpenses)
	}
	if !almostEqual(stats.TotalBalance, 3500) {
		t.Errorf("totalBalance = %v, want 3500", stats.TotalBalance)
	}
	if len(stats.CategoryBreakdown) != 1 {
		t.Fatalf("breakdown length = %d, want 1", len(stats.CategoryBreakdown))
	}
	if stats.CategoryBreakdown[0].Name != "Moradia" || !almostEqual(stats.CategoryBreakdown[0].Value, 1500) {
		t.Errorf("breakdown = %+v, want Moradia/1500", stats.CategoryBreakdown[0])
	}
}

func TestAggregateBalanceIdentity(t *testing.T) {
	lists := [][]models.Transaction{
		{},
		{
			{Amount: 100, Type: models.TypeIncome},
			{Amount: 40, Type: models.TypeExpense, Category: models.CategoryLazer},
			{Amount: 60.25, Type: models.TypeExpense, Category: models.CategoryOutros},
		},
		{
			{Amount: 10, Type: models.TypeExpense, Category: models.CategorySaude},
			{Amount: 10, Type: models.TypeExpense, Category: models.CategorySaude},
		},
	}

	for i, txs := range lists {
		stats := Aggregate(txs)
		if !almostEqual(stats.TotalBalance, stats.TotalIncome-stats.TotalExpenses) {
			t.Errorf("list %d: balance %v != income %v - expenses %v",
				i, stats.TotalBalance, stats.TotalIncome, stats.TotalExpenses)
		}

		var breakdownSum float64
		for _, entry := range stats.CategoryBreakdown {
			breakdownSum += entry.Value
		}
		if !almostEqual(breakdownSum, stats.TotalExpenses) {
			t.Errorf("list %d: breakdown sum %v != totalExpenses %v", i, breakdownSum, stats.TotalExpenses)
		}
	}
}

// An income row carrying an expense category (bad seed data) counts as
// income and stays out of the breakdown, which only scans expenses.
func TestAggregateIncomeWithExpenseCategory(t *testing.T) {
	txs := []models.Transaction{
		{Amount: 300, Type: models.TypeIncome, Category: models.CategoryLazer},
		{Amount: 50, Type: models.TypeExpense, Category: models.CategoryLazer},
	}

	stats := Aggregate(txs)

	if !almostEqual(stats.TotalIncome, 300) {
		t.Errorf("totalIncome = %v, want 300", stats.TotalIncome)
	}
	if !almostEqual(stats.TotalExpenses, 50) {
		t.Errorf("totalExpenses = %v, want 50", stats.TotalExpenses)
	}
	if len(stats.CategoryBreakdown) != 1 || !almostEqual(stats.CategoryBreakdown[0].Value, 50) {
		t.Errorf("breakdown = %+v, want only the 50 expense under Lazer", stats.CategoryBreakdown)
	}
}

func TestAggregateBreakdownFirstSeenOrder(t *testing.T) {
	txs := []models.Transaction{
		{Amount: 10, Type: models.TypeExpense, Category: models.CategoryTransporte},
		{Amount: 20, Type: models.TypeExpense, Category: models.CategoryAlimentacao},
		{Amount: 5, Type: models.TypeExpense, Category: models.CategoryTransporte},
	}

	stats := Aggregate(txs)

	if len(stats.CategoryBreakdown) != 2 {
		t.Fatalf("breakdown length = %d, want 2", len(stats.CategoryBreakdown))
	}
	if stats.CategoryBreakdown[0].Name != "Transporte" || !almostEqual(stats.CategoryBreakdown[0].Value, 15) {
		t.Errorf("first entry = %+v, want Transporte/15", stats.CategoryBreakdown[0])
	}
	if stats.CategoryBreakdown[1].Name != "Alimentação" {
		t.Errorf("second entry = %+v, want Alimentação", stats.CategoryBreakdown[1])
	}
}

func TestCountUsers(t *testing.T) {
	txs := []models.Transaction{
		{UserEmail: "a@example.com"},
		{UserEmail: "b@example.com"},
		{UserEmail: "a@example.com"},
		{UserEmail: ""},
		{UserEmail: ""},
	}

	if got := CountUsers(txs); got != 3 {
		t.Errorf("CountUsers = %d, want 3 (two accounts plus the anonymous sentinel)", got)
	}
	if got := CountUsers(nil); got != 0 {
		t.Errorf("CountUsers(nil) = %d, want 0", got)
	}
}

func TestSummarizeUsers(t *testing.T) {
	txs := []models.Transaction{
		{UserEmail: "a@example.com", Type: models.TypeExpense, Amount: 100, Date: "2024-05-01"},
		{UserEmail: "a@example.com", Type: models.TypeExpense, Amount: 50, Date: "2024-05-10"},
		{UserEmail: "a@example.com", Type: models.TypeIncome, Amount: 900, Date: "2024-05-20"},
		{UserEmail: "", Type: models.TypeExpense, Amount: 30, Date: "2024-04-01"},
	}

	summaries := SummarizeUsers(txs)
	if len(summaries) != 2 {
		t.Fatalf("summaries length = %d, want 2", len(summaries))
	}

	first := summaries[0]
	if first.Email != "a@example.com" || !almostEqual(first.TotalSpent, 150) || first.TransactionCount != 2 {
		t.Errorf("summary = %+v, want a@example.com spent 150 over 2 expenses", first)
	}
	if first.LastActivity != "2024-05-20" {
		t.Errorf("lastActivity = %q, want 2024-05-20 (max date across all rows)", first.LastActivity)
	}

	if summaries[1].Email != AnonymousUser {
		t.Errorf("anonymous summary email = %q, want %q", summaries[1].Email, AnonymousUser)
	}
}
