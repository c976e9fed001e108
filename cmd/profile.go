package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/expenses/renderer"
	"github.com/google/subcommands"
)

type profileCmd struct {
	userFlags
}

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "display your profile and current balance" }
func (*profileCmd) Usage() string {
	return `mex profile -u <username> -p <password>

  Prints the account's profile: username, age and current balance.

Usage Examples:
$ mex profile -u alice -p pw1
`
}

func (c *profileCmd) SetFlags(f *flag.FlagSet) { c.userFlags.SetFlags(f) }

func (c *profileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, account, err := c.login()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Profile(account.Profile(), Currency()))
	return subcommands.ExitSuccess
}
