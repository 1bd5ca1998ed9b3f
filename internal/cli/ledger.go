package cli

import (
	"github.com/theirongolddev/pfin/internal/ledger"
)

// LedgerTable builds the fixed-cost listing for the given names.
func LedgerTable(l ledger.Ledger, names []string, currency string) Table {
	totals := ledger.ComputeTotals(l)
	t := Table{
		Headers:  []string{"Name", "Frequency", "Amount", "Monthly", "Share", "Notes"},
		LeftCols: 2,
	}
	for _, name := range names {
		e := l[name]
		monthly, share := "-", "-"
		if e.IsActive() {
			m := e.MonthlyAmount()
			monthly = FormatAmount(m, currency)
			share = FormatPercent(Share(m, totals.TotalMonthly))
		}
		t.Rows = append(t.Rows, []string{
			name,
			e.Frequency.Label(),
			FormatRawAmount(e.Amount, currency),
			monthly,
			share,
			e.Notes,
		})
	}
	return t
}

// TotalsRows returns the summary rows shown above the ledger.
func TotalsRows(t ledger.Totals, currency string) [][]string {
	return [][]string{
		{"Total Expenses", FormatAmount(t.TotalMonthly, currency)},
		{"Daily Average", FormatAmount(t.DailyAverage, currency)},
		{"Active Items", FormatNumber(int64(t.ActiveCount))},
	}
}
