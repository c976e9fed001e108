package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/expenses/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	userFlags
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list your transactions, most recent first" }
func (*historyCmd) Usage() string {
	return `mex history -u <username> -p <password>

  Prints every transaction of the account as a table, most recent first.

Usage Examples:
$ mex history -u alice -p pw1
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) { c.userFlags.SetFlags(f) }

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, account, err := c.login()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Transactions(account.Ledger().AllSortedDescending(), Currency()))
	return subcommands.ExitSuccess
}
