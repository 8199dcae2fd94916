package dashboard

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"ricemill/internal/domain/expense"
	"ricemill/internal/domain/period"
	"ricemill/internal/domain/production"
	"ricemill/internal/domain/purchase"
	"ricemill/internal/domain/sale"
)

// Service computes the summary from period-filtered snapshots of the four
// record kinds. Stateless: each call is a pure reduction over the fetched
// collections.
type Service struct {
	purchases  purchase.Repository
	production production.Repository
	sales      sale.Repository
	expenses   expense.Repository
}

// NewService creates a dashboard service.
func NewService(
	purchases purchase.Repository,
	productionRuns production.Repository,
	sales sale.Repository,
	expenses expense.Repository,
) *Service {
	return &Service{
		purchases:  purchases,
		production: productionRuns,
		sales:      sales,
		expenses:   expenses,
	}
}

// GetSummary fetches all four collections for the month and reduces them.
// All four fetches must succeed; there is no partial aggregation, a single
// failure fails the summary.
func (s *Service) GetSummary(ctx context.Context, month string) (*Summary, error) {
	rng, err := period.MonthRange(month)
	if err != nil {
		return nil, err
	}

	purchases, err := s.purchases.List(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("fetch purchases: %w", err)
	}
	runs, err := s.production.List(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("fetch production: %w", err)
	}
	sales, err := s.sales.List(ctx, sale.Filter{Range: rng})
	if err != nil {
		return nil, fmt.Errorf("fetch sales: %w", err)
	}
	expenses, err := s.expenses.List(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("fetch expenses: %w", err)
	}

	return &Summary{
		Month:              month,
		Stats:              Summarize(purchases, runs, sales, expenses),
		ExpensesByCategory: ExpensesByCategory(expenses),
		AverageYield:       AverageYield(runs),
	}, nil
}

// Summarize reduces the four snapshots to the summary figures. Empty
// inputs produce all zeros; exact decimal addition throughout.
func Summarize(
	purchases []purchase.Purchase,
	runs []production.Run,
	sales []sale.Sale,
	expenses []expense.Expense,
) Stats {
	stats := ZeroStats()

	for _, p := range purchases {
		stats.TotalPaddyQty = stats.TotalPaddyQty.Add(p.QuantityKg)
		stats.TotalPaddyAmount = stats.TotalPaddyAmount.Add(p.TotalAmount)
	}

	for _, r := range runs {
		stats.TotalRiceOutput = stats.TotalRiceOutput.Add(r.RiceOutput)
	}

	for _, s := range sales {
		if s.Realised() {
			stats.TotalSalesRealised = stats.TotalSalesRealised.Add(s.Amount)
		}
	}

	for _, e := range expenses {
		stats.TotalExpenses = stats.TotalExpenses.Add(e.Amount)
	}

	stats.Profit = stats.TotalSalesRealised.
		Sub(stats.TotalPaddyAmount).
		Sub(stats.TotalExpenses)

	return stats
}

// ExpensesByCategory groups expenses by category and sums per group,
// sorted descending by amount. Ties break alphabetically so the order is
// deterministic.
func ExpensesByCategory(expenses []expense.Expense) []CategoryTotal {
	byCategory := make(map[expense.Category]decimal.Decimal)
	for _, e := range expenses {
		byCategory[e.Category] = byCategory[e.Category].Add(e.Amount)
	}

	totals := make([]CategoryTotal, 0, len(byCategory))
	for category, amount := range byCategory {
		totals = append(totals, CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].Amount.Equal(totals[j].Amount) {
			return totals[i].Amount.GreaterThan(totals[j].Amount)
		}
		return totals[i].Category < totals[j].Category
	})

	return totals
}

// AverageYield returns the arithmetic mean of per-run yield percentages
// over the count of runs, 0 when there are none. A run lacking the stored
// derived field contributes its recomputed yield.
func AverageYield(runs []production.Run) decimal.Decimal {
	if len(runs) == 0 {
		return decimal.Zero
	}

	sum := decimal.Zero
	for _, r := range runs {
		sum = sum.Add(r.Yield())
	}
	return sum.DivRound(decimal.NewFromInt(int64(len(runs))), 2)
}
