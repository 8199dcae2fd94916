// Package period resolves the month selector into the date range used to
// filter every record kind. All four kinds must be filtered by the exact
// same criterion, otherwise derived totals drift apart.
package period

import (
	"fmt"
	"time"

	"ricemill/internal/core/apperror"
	"ricemill/internal/core/types"
)

// monthLayout is the wire format of the month selector ("2025-02").
const monthLayout = "2006-01"

// Range is an inclusive calendar-date range [Start, End].
type Range struct {
	Start types.Date
	End   types.Date
}

// Contains reports whether d falls inside the range, boundaries included.
func (r Range) Contains(d types.Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// String renders the range for logs.
func (r Range) String() string {
	return fmt.Sprintf("[%s, %s]", r.Start, r.End)
}

// MonthRange resolves a "YYYY-MM" selector to the inclusive range spanning
// the first through the last calendar day of that month. An empty selector
// means no filter and yields nil. A malformed selector is a validation
// error, never a silently-empty range.
func MonthRange(month string) (*Range, error) {
	if month == "" {
		return nil, nil
	}

	t, err := time.Parse(monthLayout, month)
	if err != nil {
		return nil, apperror.NewValidation("invalid month, expected YYYY-MM").
			WithDetail("month", month)
	}

	start := types.NewDate(t.Year(), t.Month(), 1)
	end := types.DateOf(start.Time().AddDate(0, 1, -1))

	return &Range{Start: start, End: end}, nil
}

// CurrentMonth returns the selector for now's month ("2006-01" form).
func CurrentMonth(now time.Time) string {
	return now.UTC().Format(monthLayout)
}
