package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ricemill/internal/core/apperror"
	"ricemill/internal/core/types"
	"ricemill/internal/domain/expense"
	"ricemill/internal/domain/production"
	"ricemill/internal/domain/purchase"
	"ricemill/internal/domain/sale"
)

var exportedAt = time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "05/04/2025", FormatDate(types.NewDate(2025, time.April, 5)))
}

func TestFormatNumber_IndianGrouping(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"650", "650.00"},
		{"1000", "1,000.00"},
		{"12345.5", "12,345.50"},
		{"100000", "1,00,000.00"},
		{"1234567.89", "12,34,567.89"},
		{"-50000", "-50,000.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(types.Dec(tt.in)), "input %s", tt.in)
	}
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "LKR 50,000.00", FormatCurrency(types.Dec("50000")))
	assert.Equal(t, "LKR 0.00", FormatCurrency(types.Dec("0")))
}

func TestTable_Encode_QuotesDelimiter(t *testing.T) {
	table := Table{
		Headers: []string{"Name", "Amount"},
		Rows: [][]string{
			{"Perera, Silva & Sons", "LKR 1,000.00"},
			{"Plain", "5"},
		},
	}

	got := table.Encode()
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Name,Amount", lines[0])
	assert.Equal(t, `"Perera, Silva & Sons","LKR 1,000.00"`, lines[1])
	assert.Equal(t, "Plain,5", lines[2])
}

func TestPurchases_HeaderAndRowParity(t *testing.T) {
	rows := []purchase.Purchase{
		*purchase.New(types.NewDate(2025, time.June, 1), "Farm Co", purchase.PaddyNadu, types.Dec("1000"), types.Dec("50000")),
		*purchase.New(types.NewDate(2025, time.June, 2), "Anura, Bros", purchase.PaddySamba, types.Dec("250.5"), types.Dec("12000")),
	}

	file, err := Purchases(rows, exportedAt)
	require.NoError(t, err)
	assert.Equal(t, "purchases_2025-06-15.csv", file.Name)

	lines := strings.Split(file.Content, "\n")
	require.Len(t, lines, 3)

	headerCols := splitCSVLine(t, lines[0])
	require.Len(t, headerCols, 5)
	for i, line := range lines[1:] {
		assert.Len(t, splitCSVLine(t, line), len(headerCols), "row %d column count", i+1)
	}

	assert.Contains(t, lines[1], "01/06/2025")
	assert.Contains(t, lines[1], "LKR 50,000.00")
	assert.Contains(t, lines[2], `"Anura, Bros"`)
}

func TestSales_OptionalFieldsRenderEmpty(t *testing.T) {
	rows := []sale.Sale{
		*sale.New(types.NewDate(2025, time.June, 3), "Cash Buyer", sale.RiceBasmati, types.Dec("50"), types.Dec("20000"), sale.CashPayment()),
		*sale.New(types.NewDate(2025, time.June, 4), "Loan Buyer", sale.RiceNadu, types.Dec("75"), types.Dec("30000"), sale.LoanPayment(sale.LoanUnpaid)),
	}

	file, err := Sales(rows, SalesAll, exportedAt)
	require.NoError(t, err)
	assert.Equal(t, "sales_all_2025-06-15.csv", file.Name)

	lines := strings.Split(file.Content, "\n")
	require.Len(t, lines, 3)

	headerCols := splitCSVLine(t, lines[0])
	require.Len(t, headerCols, 10)

	cashRow := splitCSVLine(t, lines[1])
	require.Len(t, cashRow, 10)
	assert.Equal(t, "", cashRow[2], "phone absent renders empty")
	assert.Equal(t, "Cash", cashRow[6])
	assert.Equal(t, "", cashRow[7], "loan status empty for cash")

	loanRow := splitCSVLine(t, lines[2])
	assert.Equal(t, "Unpaid", loanRow[7])
	assert.Equal(t, "", loanRow[8], "bank name empty for loan")
}

func TestProduction_YieldRecomputedWhenMissing(t *testing.T) {
	run := *production.New(types.NewDate(2025, time.June, 5), purchase.PaddyBPT, types.Dec("1000"), types.Dec("650"))
	run.YieldPercent = nil

	file, err := Production([]production.Run{run}, exportedAt)
	require.NoError(t, err)

	lines := strings.Split(file.Content, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "65.00")
}

func TestExpenses_Export(t *testing.T) {
	desc := "diesel for lorry"
	rows := []expense.Expense{
		*expense.New(types.NewDate(2025, time.June, 6), expense.CategoryTransportation, &desc, types.Dec("7500")),
	}

	file, err := Expenses(rows, exportedAt)
	require.NoError(t, err)
	assert.Equal(t, "expenses_2025-06-15.csv", file.Name)
	assert.Contains(t, file.Content, "diesel for lorry")
	assert.Contains(t, file.Content, "LKR 7,500.00")
}

func TestExport_EmptyCollectionRejected(t *testing.T) {
	_, err := Purchases(nil, exportedAt)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeEmptyExport, appErr.Code)

	_, err = Production(nil, exportedAt)
	assert.Error(t, err)
	_, err = Sales(nil, SalesCash, exportedAt)
	assert.Error(t, err)
	_, err = Expenses(nil, exportedAt)
	assert.Error(t, err)
}

// splitCSVLine splits one encoded line back into cells, honouring the
// quote-on-comma rule the encoder applies.
func splitCSVLine(t *testing.T, line string) []string {
	t.Helper()
	var cells []string
	var cur strings.Builder
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			cells = append(cells, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	cells = append(cells, cur.String())
	return cells
}
