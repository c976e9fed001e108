package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/expenses"
	"github.com/google/subcommands"
)

type signupCmd struct {
	username string
	password string
	age      int
	balance  float64
}

func (*signupCmd) Name() string     { return "signup" }
func (*signupCmd) Synopsis() string { return "create a new account" }
func (*signupCmd) Usage() string {
	return `mex signup -u <username> -p <password> [-age <age>] [-balance <amount>]

  Creates a new account with an empty ledger and the given initial balance,
  and saves the store. Fails if the username is already taken.

Usage Examples:
$ mex signup -u alice -p pw1 -age 30 -balance 100
`
}

func (c *signupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username for the new account.")
	f.StringVar(&c.password, "p", "", "Password for the new account.")
	f.IntVar(&c.age, "age", 0, "Your age.")
	f.Float64Var(&c.balance, "balance", 0, "Initial balance.")
}

func (c *signupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" || c.password == "" {
		fmt.Fprintln(os.Stderr, "Error: flags -u and -p are required")
		return subcommands.ExitUsageError
	}

	store, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	account, err := store.CreateAccount(c.username, c.password, c.age, expenses.A(c.balance))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if err := SaveStore(store); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Account created successfully! Balance of %q is %s\n",
		c.username, account.Profile().Balance().Format(Currency()))
	return subcommands.ExitSuccess
}
