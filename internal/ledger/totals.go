package ledger

import "github.com/shopspring/decimal"

// daysPerMonth is the fixed divisor for the daily average.
const daysPerMonth = 30

// Totals are the aggregates shown above the ledger.
type Totals struct {
	TotalMonthly decimal.Decimal
	DailyAverage decimal.Decimal
	ActiveCount  int
}

// ComputeTotals sums the monthly-normalized amounts of active entries.
func ComputeTotals(l Ledger) Totals {
	var t Totals
	for _, e := range l {
		if !e.IsActive() {
			continue
		}
		t.TotalMonthly = t.TotalMonthly.Add(e.MonthlyAmount())
		t.ActiveCount++
	}
	t.DailyAverage = t.TotalMonthly.Div(decimal.NewFromInt(daysPerMonth))
	return t
}
