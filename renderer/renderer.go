// Package renderer turns ledger data into markdown reports for the terminal.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/expenses"
)

// Transactions renders a transaction list to a markdown table, in the order
// given (callers usually pass Ledger.AllSortedDescending).
func Transactions(txs []expenses.Transaction, currency string) string {
	if len(txs) == 0 {
		return "No transactions yet.\n"
	}
	var b strings.Builder
	fmt.Fprintln(&b, "# Transactions")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| Date | Description | Amount |")
	fmt.Fprintln(&b, "|------|-------------|-------:|")
	for _, tx := range txs {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", orDash(tx.Date.String()), orDash(tx.Description), SignedAmount(tx.Amount, currency))
	}
	return b.String()
}

// SignedAmount renders an amount with an explicit sign for credits, or "-"
// for a missing value.
func SignedAmount(a expenses.Amount, currency string) string {
	if a.IsMissing() {
		return "-"
	}
	if a.IsPositive() {
		return "+" + a.Format(currency)
	}
	return a.Format(currency)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
