// Package export turns record collections into delimited text for
// download. Values are formatted exactly as the on-screen tables format
// them, so the file reads the way the dashboard does.
package export

import (
	"strings"

	"github.com/shopspring/decimal"

	"ricemill/internal/core/types"
)

// currencyCode prefixes monetary values, as the dashboard renders them.
const currencyCode = "LKR"

// FormatDate renders a calendar date as dd/mm/yyyy.
func FormatDate(d types.Date) string {
	return d.Time().Format("02/01/2006")
}

// FormatNumber renders a quantity with two decimals and digit grouping.
func FormatNumber(d decimal.Decimal) string {
	return groupDigits(d.StringFixed(2))
}

// FormatCurrency renders a monetary amount with the currency code, two
// decimals and digit grouping.
func FormatCurrency(d types.Money) string {
	return currencyCode + " " + groupDigits(d.StringFixed(2))
}

// groupDigits inserts thousands separators into a fixed-point decimal
// string. Grouping follows the en-IN convention the dashboard uses: the
// last three integer digits, then groups of two (12,34,567.00).
func groupDigits(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}

	if len(intPart) <= 3 {
		b.WriteString(intPart)
	} else {
		head := intPart[:len(intPart)-3]
		tail := intPart[len(intPart)-3:]

		// Head splits into groups of two from the right.
		firstLen := len(head) % 2
		if firstLen == 0 {
			firstLen = 2
		}
		b.WriteString(head[:firstLen])
		for i := firstLen; i < len(head); i += 2 {
			b.WriteByte(',')
			b.WriteString(head[i : i+2])
		}
		b.WriteByte(',')
		b.WriteString(tail)
	}

	if fracPart != "" {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
