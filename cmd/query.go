package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "run a JSONPath query against the store file" }
func (*queryCmd) Usage() string {
	return `mex query <jsonpath>

  Evaluates a JSONPath expression against the raw store file and prints the
  result as indented JSON. Useful for scripting and quick inspection.

Usage Examples:
$ mex query '$.alice.balance'
$ mex query '$.alice.expenses[?(@.Amount < 0)].Description'
`
}

func (*queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one JSONPath expression")
		return subcommands.ExitUsageError
	}

	data, err := os.ReadFile(*storeFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	var jobj interface{}
	if err := json.Unmarshal(data, &jobj); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %q is not valid JSON: %v\n", *storeFile, err)
		return subcommands.ExitFailure
	}

	result, err := jsonpath.Get(f.Arg(0), jobj)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error evaluating JSONPath:", err)
		return subcommands.ExitFailure
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
