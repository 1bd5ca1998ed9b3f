package cli

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/pfin/internal/upload"
)

// NoTransactions is shown when an upload returned nothing to list.
const NoTransactions = "No transactions to display."

// RenderTransactions renders an upload result: one table per merchant when
// the backend grouped them, otherwise a flat table.
func RenderTransactions(res *upload.Result) string {
	if res.Empty() {
		return RenderMuted(NoTransactions) + "\n"
	}

	var b strings.Builder
	if len(res.GroupedByMerchant) > 0 {
		b.WriteString("  " + headerStyle.Render("Grouped by merchant") + "\n\n")
		for _, merchant := range res.Merchants() {
			txs := res.GroupedByMerchant[merchant]
			t := Table{
				Title:    fmt.Sprintf("%s (%d tx)", merchant, len(txs)),
				Headers:  []string{"Date", "Description", "Amount", "Match"},
				LeftCols: 2,
			}
			for _, tx := range txs {
				t.Rows = append(t.Rows, []string{tx.Date(), tx.Text(), tx.AmountText(), tx.Match()})
			}
			b.WriteString(RenderTable(t))
			b.WriteString("\n")
		}
		return b.String()
	}

	t := Table{
		Title:    "Transactions",
		Headers:  []string{"Date", "Description", "Amount"},
		LeftCols: 2,
	}
	for _, tx := range res.ParsedTransactions {
		t.Rows = append(t.Rows, []string{tx.Date(), tx.Text(), tx.AmountText()})
	}
	b.WriteString(RenderTable(t))
	return b.String()
}
