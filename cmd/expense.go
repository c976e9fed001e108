package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/expenses"
	"github.com/google/subcommands"
)

type expenseCmd struct {
	userFlags
	date        string
	description string
	amount      float64
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense against your balance" }
func (*expenseCmd) Usage() string {
	return `mex expense -u <username> -p <password> -amount <amount> [-desc <description>] [-d <date>]

  Records an expense: the amount is entered as a positive number and stored
  as a negative movement, and the balance drops by the same amount. The date
  defaults to now.

Usage Examples:
$ mex expense -u alice -p pw1 -desc "groceries" -amount 20.50
$ mex expense -u alice -p pw1 -desc "rent" -amount 800 -d 2024-01-02
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	c.userFlags.SetFlags(f)
	f.StringVar(&c.date, "d", "", "Date of the expense (defaults to now).")
	f.StringVar(&c.description, "desc", "", "Description of the expense.")
	f.Float64Var(&c.amount, "amount", 0, "Amount spent, as a positive number.")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return addTransaction(&c.userFlags, c.date, c.description, c.amount, true)
}

// addTransaction is the shared body of the expense and credit commands: it
// authenticates, records the signed movement, and saves the store.
func addTransaction(user *userFlags, date, description string, amount float64, isExpense bool) subcommands.ExitStatus {
	if amount < 0 {
		fmt.Fprintln(os.Stderr, "Error: -amount must be a positive number")
		return subcommands.ExitUsageError
	}

	when := expenses.Now()
	if date != "" {
		var err error
		when, err = expenses.ParseDatetime(date)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error parsing date:", err)
			return subcommands.ExitUsageError
		}
	}

	store, account, err := user.login()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	signed := expenses.A(amount)
	if isExpense {
		signed = signed.Neg()
	}
	account.AddTransaction(when, description, signed)

	if err := SaveStore(store); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if isExpense {
		fmt.Printf("Expense recorded! New balance: %s\n", account.Profile().Balance().Format(Currency()))
	} else {
		fmt.Printf("Credit added successfully! New balance: %s\n", account.Profile().Balance().Format(Currency()))
	}
	return subcommands.ExitSuccess
}
