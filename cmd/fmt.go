package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/expenses"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "rewrite the store file in canonical form" }
func (*fmtCmd) Usage() string {
	return `mex fmt

  Reads the store file and rewrites it in canonical form: usernames sorted,
  fields in a fixed order, two-space indentation. Refuses to touch a
  corrupted file.

Usage Examples:
$ mex fmt
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// Load directly, without the lenient fallback: formatting a corrupted
	// file would silently replace it with an empty store.
	store, err := expenses.LoadStore(*storeFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveStore(store); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("✅ Successfully formatted %q (%d accounts)\n", *storeFile, store.Len())
	return subcommands.ExitSuccess
}
