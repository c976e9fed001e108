package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/expenses/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct {
	userFlags
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chat with an AI budget coach about your ledger" }
func (*assistCmd) Usage() string {
	return `mex assist -u <username> -p <password> [initial prompt]

  Starts an interactive session with a budget coach that can read your
  profile, transactions and summary. Requires Gemini credentials in the
  environment.

Usage Examples:
$ mex assist -u alice -p pw1 "where does my money go?"
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) { c.userFlags.SetFlags(f) }

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	_, account, err := c.login()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	coach := agent.NewCoach(account, Currency())
	a := agent.New(os.Stdout, os.Stdin, coach)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
