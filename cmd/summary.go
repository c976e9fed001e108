package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/expenses/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	userFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "running balance and totals by description" }
func (*summaryCmd) Usage() string {
	return `mex summary -u <username> -p <password>

  Prints the balance after each transaction in date order, then the total
  amount per description.

Usage Examples:
$ mex summary -u alice -p pw1
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) { c.userFlags.SetFlags(f) }

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, account, err := c.login()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Summary(account, Currency()))
	return subcommands.ExitSuccess
}
