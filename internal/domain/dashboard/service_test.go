package dashboard

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ricemill/internal/core/id"
	"ricemill/internal/core/types"
	"ricemill/internal/domain/expense"
	"ricemill/internal/domain/period"
	"ricemill/internal/domain/production"
	"ricemill/internal/domain/purchase"
	"ricemill/internal/domain/sale"
)

// --- Mock repositories ---

type mockPurchases struct {
	rows []purchase.Purchase
	err  error
}

func (m *mockPurchases) List(_ context.Context, rng *period.Range) ([]purchase.Purchase, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []purchase.Purchase
	for _, r := range m.rows {
		if rng == nil || rng.Contains(r.Date) {
			out = append(out, r)
		}
	}
	return out, nil
}
func (m *mockPurchases) GetByID(context.Context, id.ID) (*purchase.Purchase, error) { return nil, nil }
func (m *mockPurchases) Create(context.Context, *purchase.Purchase) error           { return nil }
func (m *mockPurchases) Update(context.Context, *purchase.Purchase) error           { return nil }
func (m *mockPurchases) Delete(context.Context, id.ID) error                        { return nil }

type mockRuns struct {
	rows []production.Run
	err  error
}

func (m *mockRuns) List(_ context.Context, rng *period.Range) ([]production.Run, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []production.Run
	for _, r := range m.rows {
		if rng == nil || rng.Contains(r.Date) {
			out = append(out, r)
		}
	}
	return out, nil
}
func (m *mockRuns) GetByID(context.Context, id.ID) (*production.Run, error) { return nil, nil }
func (m *mockRuns) Create(context.Context, *production.Run) error           { return nil }
func (m *mockRuns) Update(context.Context, *production.Run) error           { return nil }
func (m *mockRuns) Delete(context.Context, id.ID) error                     { return nil }

type mockSales struct {
	rows []sale.Sale
	err  error
}

func (m *mockSales) List(_ context.Context, filter sale.Filter) ([]sale.Sale, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []sale.Sale
	for _, r := range m.rows {
		if filter.Range != nil && !filter.Range.Contains(r.Date) {
			continue
		}
		if filter.PaymentType != nil && r.Type != *filter.PaymentType {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}
func (m *mockSales) GetByID(context.Context, id.ID) (*sale.Sale, error) { return nil, nil }
func (m *mockSales) Create(context.Context, *sale.Sale) error           { return nil }
func (m *mockSales) Update(context.Context, *sale.Sale) error           { return nil }
func (m *mockSales) Delete(context.Context, id.ID) error                { return nil }

type mockExpenses struct {
	rows []expense.Expense
	err  error
}

func (m *mockExpenses) List(_ context.Context, rng *period.Range) ([]expense.Expense, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []expense.Expense
	for _, r := range m.rows {
		if rng == nil || rng.Contains(r.Date) {
			out = append(out, r)
		}
	}
	return out, nil
}
func (m *mockExpenses) GetByID(context.Context, id.ID) (*expense.Expense, error) { return nil, nil }
func (m *mockExpenses) Create(context.Context, *expense.Expense) error           { return nil }
func (m *mockExpenses) Update(context.Context, *expense.Expense) error           { return nil }
func (m *mockExpenses) Delete(context.Context, id.ID) error                      { return nil }

func newService(p *mockPurchases, r *mockRuns, s *mockSales, e *mockExpenses) *Service {
	if p == nil {
		p = &mockPurchases{}
	}
	if r == nil {
		r = &mockRuns{}
	}
	if s == nil {
		s = &mockSales{}
	}
	if e == nil {
		e = &mockExpenses{}
	}
	return NewService(p, r, s, e)
}

func mustEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(types.Dec(want)), "got %s, want %s", got, want)
}

// --- Tests ---

func TestSummarize_EmptyInputsAreAllZero(t *testing.T) {
	stats := Summarize(nil, nil, nil, nil)

	mustEqual(t, "0", stats.TotalPaddyQty)
	mustEqual(t, "0", stats.TotalPaddyAmount)
	mustEqual(t, "0", stats.TotalRiceOutput)
	mustEqual(t, "0", stats.TotalSalesRealised)
	mustEqual(t, "0", stats.TotalExpenses)
	mustEqual(t, "0", stats.Profit)
}

func TestSummarize_WorkedExample(t *testing.T) {
	date := types.NewDate(2025, time.May, 10)

	purchases := []purchase.Purchase{
		*purchase.New(date, "Farm Co", purchase.PaddyNadu, types.Dec("1000"), types.Dec("50000")),
	}
	runs := []production.Run{
		*production.New(date, purchase.PaddyNadu, types.Dec("1000"), types.Dec("650")),
	}
	sales := []sale.Sale{
		*sale.New(date, "Cash Buyer", sale.RiceNadu, types.Dec("400"), types.Dec("80000"), sale.CashPayment()),
		*sale.New(date, "Loan Buyer", sale.RiceNadu, types.Dec("100"), types.Dec("20000"), sale.LoanPayment(sale.LoanUnpaid)),
	}
	expenses := []expense.Expense{
		*expense.New(date, expense.CategoryLabor, nil, types.Dec("5000")),
	}

	stats := Summarize(purchases, runs, sales, expenses)

	mustEqual(t, "1000", stats.TotalPaddyQty)
	mustEqual(t, "50000", stats.TotalPaddyAmount)
	mustEqual(t, "650", stats.TotalRiceOutput)
	mustEqual(t, "80000", stats.TotalSalesRealised) // unpaid loan excluded
	mustEqual(t, "5000", stats.TotalExpenses)
	mustEqual(t, "25000", stats.Profit)

	assert.True(t, runs[0].Yield().Equal(types.Dec("65")))
}

func TestSummarize_RealisedSalesPolicy(t *testing.T) {
	date := types.NewDate(2025, time.May, 10)
	amount := types.Dec("1000")

	sales := []sale.Sale{
		*sale.New(date, "a", sale.RiceNadu, types.Dec("1"), amount, sale.CashPayment()),
		*sale.New(date, "b", sale.RiceNadu, types.Dec("1"), amount, sale.BankPayment("BOC", "1")),
		*sale.New(date, "c", sale.RiceNadu, types.Dec("1"), amount, sale.LoanPayment(sale.LoanPaid)),
		*sale.New(date, "d", sale.RiceNadu, types.Dec("1"), amount, sale.LoanPayment(sale.LoanUnpaid)),
	}

	stats := Summarize(nil, nil, sales, nil)

	// Cash + BankTransfer + Paid Loan; the Unpaid Loan contributes nothing.
	mustEqual(t, "3000", stats.TotalSalesRealised)
	mustEqual(t, "3000", stats.Profit)
}

func TestSummarize_ProfitIdentityOverRandomInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	date := types.NewDate(2025, time.May, 10)

	randAmount := func() decimal.Decimal {
		return decimal.NewFromInt(rng.Int63n(1_000_000)).Div(decimal.NewFromInt(100))
	}

	for i := 0; i < 200; i++ {
		var purchases []purchase.Purchase
		for n := rng.Intn(8); n > 0; n-- {
			purchases = append(purchases, *purchase.New(date, "s", purchase.PaddyOther, randAmount(), randAmount()))
		}
		var sales []sale.Sale
		for n := rng.Intn(8); n > 0; n-- {
			var p sale.Payment
			switch rng.Intn(4) {
			case 0:
				p = sale.CashPayment()
			case 1:
				p = sale.BankPayment("BOC", "1")
			case 2:
				p = sale.LoanPayment(sale.LoanPaid)
			default:
				p = sale.LoanPayment(sale.LoanUnpaid)
			}
			sales = append(sales, *sale.New(date, "c", sale.RiceOther, randAmount(), randAmount(), p))
		}
		var expenses []expense.Expense
		for n := rng.Intn(8); n > 0; n-- {
			expenses = append(expenses, *expense.New(date, expense.CategoryOther, nil, randAmount()))
		}

		stats := Summarize(purchases, nil, sales, expenses)

		want := stats.TotalSalesRealised.Sub(stats.TotalPaddyAmount).Sub(stats.TotalExpenses)
		assert.True(t, stats.Profit.Equal(want), "iteration %d: profit identity broken", i)
	}
}

func TestExpensesByCategory_SortedDescending(t *testing.T) {
	date := types.NewDate(2025, time.May, 10)
	expenses := []expense.Expense{
		*expense.New(date, expense.CategoryLabor, nil, types.Dec("1000")),
		*expense.New(date, expense.CategoryElectricity, nil, types.Dec("7500")),
		*expense.New(date, expense.CategoryLabor, nil, types.Dec("2500")),
		*expense.New(date, expense.CategoryRent, nil, types.Dec("3000")),
	}

	totals := ExpensesByCategory(expenses)

	require.Len(t, totals, 3)
	assert.Equal(t, expense.CategoryElectricity, totals[0].Category)
	mustEqual(t, "7500", totals[0].Amount)
	assert.Equal(t, expense.CategoryLabor, totals[1].Category)
	mustEqual(t, "3500", totals[1].Amount)
	assert.Equal(t, expense.CategoryRent, totals[2].Category)
	mustEqual(t, "3000", totals[2].Amount)
}

func TestAverageYield(t *testing.T) {
	date := types.NewDate(2025, time.May, 10)

	assert.True(t, AverageYield(nil).IsZero(), "no runs means zero average")

	runs := []production.Run{
		*production.New(date, purchase.PaddyNadu, types.Dec("1000"), types.Dec("650")), // 65.00
		*production.New(date, purchase.PaddyNadu, types.Dec("1000"), types.Dec("700")), // 70.00
	}
	mustEqual(t, "67.5", AverageYield(runs))

	// A run without the stored derived field contributes its recomputed yield.
	runs[1].YieldPercent = nil
	mustEqual(t, "67.5", AverageYield(runs))
}

func TestGetSummary_MonthBoundariesInclusive(t *testing.T) {
	first := types.NewDate(2025, time.June, 1)
	last := types.NewDate(2025, time.June, 30)
	before := types.NewDate(2025, time.May, 31)
	after := types.NewDate(2025, time.July, 1)

	purchases := &mockPurchases{rows: []purchase.Purchase{
		*purchase.New(first, "s", purchase.PaddyNadu, types.Dec("10"), types.Dec("100")),
		*purchase.New(last, "s", purchase.PaddyNadu, types.Dec("20"), types.Dec("200")),
		*purchase.New(before, "s", purchase.PaddyNadu, types.Dec("40"), types.Dec("400")),
		*purchase.New(after, "s", purchase.PaddyNadu, types.Dec("80"), types.Dec("800")),
	}}

	svc := newService(purchases, nil, nil, nil)
	summary, err := svc.GetSummary(t.Context(), "2025-06")
	require.NoError(t, err)

	// Both boundary days included, neighbours excluded.
	mustEqual(t, "30", summary.Stats.TotalPaddyQty)
	mustEqual(t, "300", summary.Stats.TotalPaddyAmount)
}

func TestGetSummary_NoMonthMeansAllRecords(t *testing.T) {
	purchases := &mockPurchases{rows: []purchase.Purchase{
		*purchase.New(types.NewDate(2024, time.January, 1), "s", purchase.PaddyNadu, types.Dec("1"), types.Dec("10")),
		*purchase.New(types.NewDate(2025, time.December, 31), "s", purchase.PaddyNadu, types.Dec("2"), types.Dec("20")),
	}}

	svc := newService(purchases, nil, nil, nil)
	summary, err := svc.GetSummary(t.Context(), "")
	require.NoError(t, err)

	mustEqual(t, "3", summary.Stats.TotalPaddyQty)
}

func TestGetSummary_NoPartialAggregation(t *testing.T) {
	boom := errors.New("connection refused")

	for name, svc := range map[string]*Service{
		"purchases fail":  newService(&mockPurchases{err: boom}, nil, nil, nil),
		"production fail": newService(nil, &mockRuns{err: boom}, nil, nil),
		"sales fail":      newService(nil, nil, &mockSales{err: boom}, nil),
		"expenses fail":   newService(nil, nil, nil, &mockExpenses{err: boom}),
	} {
		t.Run(name, func(t *testing.T) {
			summary, err := svc.GetSummary(t.Context(), "2025-06")
			require.Error(t, err)
			assert.Nil(t, summary, "no partial summary on any fetch failure")
		})
	}
}

func TestGetSummary_InvalidMonthRejected(t *testing.T) {
	svc := newService(nil, nil, nil, nil)
	_, err := svc.GetSummary(t.Context(), "junk")
	require.Error(t, err)
}
