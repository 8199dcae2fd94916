package export

import (
	"time"

	"ricemill/internal/domain/expense"
	"ricemill/internal/domain/production"
	"ricemill/internal/domain/purchase"
	"ricemill/internal/domain/sale"
)

// SalesTag names the sales sub-listing an export was taken from.
type SalesTag string

const (
	SalesAll  SalesTag = "all"
	SalesCash SalesTag = "cash"
	SalesLoan SalesTag = "loan"
	SalesBank SalesTag = "bank"
)

// Purchases exports a purchase collection. Column labels and value
// formatting match the purchases table on screen.
func Purchases(rows []purchase.Purchase, now time.Time) (*File, error) {
	headers := []string{"Date", "Supplier", "Paddy Type", "Quantity (KG)", "Total Amount"}
	data := make([][]string, 0, len(rows))
	for _, p := range rows {
		data = append(data, []string{
			FormatDate(p.Date),
			p.Supplier,
			string(p.PaddyType),
			FormatNumber(p.QuantityKg),
			FormatCurrency(p.TotalAmount),
		})
	}
	return build("purchases", now, headers, data)
}

// Production exports a milling run collection.
func Production(rows []production.Run, now time.Time) (*File, error) {
	headers := []string{"Date", "Paddy Type", "Input Paddy (KG)", "Rice Output (KG)", "Yield %"}
	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		data = append(data, []string{
			FormatDate(r.Date),
			string(r.PaddyType),
			FormatNumber(r.InputPaddy),
			FormatNumber(r.RiceOutput),
			FormatNumber(r.Yield()),
		})
	}
	return build("production", now, headers, data)
}

// Sales exports a sale collection. The tag records which sub-listing was
// exported: sales_<tag>_<isodate>.csv.
func Sales(rows []sale.Sale, tag SalesTag, now time.Time) (*File, error) {
	headers := []string{
		"Date", "Customer", "Phone", "Rice Type", "Quantity (KG)",
		"Amount", "Payment Type", "Loan Status", "Bank Name", "Bank Account",
	}
	data := make([][]string, 0, len(rows))
	for _, s := range rows {
		data = append(data, []string{
			FormatDate(s.Date),
			s.Customer,
			orEmpty(s.Phone),
			string(s.RiceType),
			FormatNumber(s.QuantityKg),
			FormatCurrency(s.Amount),
			string(s.Type),
			loanStatusOrEmpty(s.LoanStatus),
			orEmpty(s.BankName),
			orEmpty(s.BankAccount),
		})
	}
	return build("sales_"+string(tag), now, headers, data)
}

// Expenses exports an expense collection.
func Expenses(rows []expense.Expense, now time.Time) (*File, error) {
	headers := []string{"Date", "Category", "Description", "Amount"}
	data := make([][]string, 0, len(rows))
	for _, e := range rows {
		data = append(data, []string{
			FormatDate(e.Date),
			string(e.Category),
			orEmpty(e.Description),
			FormatCurrency(e.Amount),
		})
	}
	return build("expenses", now, headers, data)
}

// Absent optional fields render as empty strings.
func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func loanStatusOrEmpty(s *sale.LoanStatus) string {
	if s == nil {
		return ""
	}
	return string(*s)
}
