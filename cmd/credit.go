package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type creditCmd struct {
	userFlags
	date        string
	description string
	amount      float64
}

func (*creditCmd) Name() string     { return "credit" }
func (*creditCmd) Synopsis() string { return "record a credit to your balance" }
func (*creditCmd) Usage() string {
	return `mex credit -u <username> -p <password> -amount <amount> [-desc <source>] [-d <date>]

  Records a credit: the amount is stored as a positive movement and the
  balance rises by the same amount. The date defaults to now.

Usage Examples:
$ mex credit -u alice -p pw1 -desc "salary" -amount 50
`
}

func (c *creditCmd) SetFlags(f *flag.FlagSet) {
	c.userFlags.SetFlags(f)
	f.StringVar(&c.date, "d", "", "Date of the credit (defaults to now).")
	f.StringVar(&c.description, "desc", "", "Source of the credit.")
	f.Float64Var(&c.amount, "amount", 0, "Amount credited, as a positive number.")
}

func (c *creditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return addTransaction(&c.userFlags, c.date, c.description, c.amount, false)
}
