package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/expenses"
)

// Summary renders the account's balance over time and its totals grouped by
// description, the textual counterpart of the classic line and bar charts.
func Summary(account *expenses.Account, currency string) string {
	ledger := account.Ledger()
	if ledger.Len() == 0 {
		return "No transactions yet.\n"
	}

	var b strings.Builder
	fmt.Fprintln(&b, "# Spending & Credit Over Time")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| Date | Balance |")
	fmt.Fprintln(&b, "|------|--------:|")
	for date, sum := range account.RunningBalance() {
		fmt.Fprintf(&b, "| %s | %s |\n", orDash(date.String()), sum.Format(currency))
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "## Totals by Description")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| Description | Total |")
	fmt.Fprintln(&b, "|-------------|------:|")
	sums := ledger.GroupedByDescription()
	for description := range ledger.Descriptions() {
		fmt.Fprintf(&b, "| %s | %s |\n", orDash(description), SignedAmount(sums[description], currency))
	}
	return b.String()
}
