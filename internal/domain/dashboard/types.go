// Package dashboard provides the derived-metrics model: the monthly
// summary, the per-category expense breakdown and the average yield.
package dashboard

import (
	"github.com/shopspring/decimal"

	"ricemill/internal/core/types"
	"ricemill/internal/domain/expense"
)

// Stats is the summary over one period's records of all four kinds.
type Stats struct {
	// Purchases
	TotalPaddyQty    types.Kilograms `json:"totalPaddyQty"`
	TotalPaddyAmount types.Money     `json:"totalPaddyAmount"`

	// Production
	TotalRiceOutput types.Kilograms `json:"totalRiceOutput"`

	// Sales: realized revenue only. Cash and BankTransfer count in full,
	// a Loan counts only when Paid.
	TotalSalesRealised types.Money `json:"totalSalesRealised"`

	// Expenses
	TotalExpenses types.Money `json:"totalExpenses"`

	// Profit = realized sales − paddy amount − expenses. Milling costs
	// enter only through logged Expenses, not per run.
	Profit types.Money `json:"profit"`
}

// ZeroStats is the summary of an empty period: every field zero.
func ZeroStats() Stats {
	return Stats{
		TotalPaddyQty:      decimal.Zero,
		TotalPaddyAmount:   decimal.Zero,
		TotalRiceOutput:    decimal.Zero,
		TotalSalesRealised: decimal.Zero,
		TotalExpenses:      decimal.Zero,
		Profit:             decimal.Zero,
	}
}

// CategoryTotal is one row of the expense breakdown.
type CategoryTotal struct {
	Category expense.Category `json:"category"`
	Amount   types.Money      `json:"amount"`
}

// Summary bundles everything the dashboard view consumes.
type Summary struct {
	// Month is the selector the summary was computed for ("" = all time).
	Month string `json:"month,omitempty"`

	Stats Stats `json:"stats"`

	// ExpensesByCategory is sorted descending by amount.
	ExpensesByCategory []CategoryTotal `json:"expensesByCategory"`

	// AverageYield is the arithmetic mean of per-run yields, 0 with no runs.
	AverageYield decimal.Decimal `json:"averageYield"`
}
