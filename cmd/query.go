package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/etnz/assistant"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression on the session" }
func (*queryCmd) Usage() string {
	return `bot query <jsonpath>

  Evaluate a JSONPath expression on the exported session and print the
  result as JSON. For instance:

    bot query '$.contacts[*].name'
    bot query '$.notes.items[?(@.id > 3)].text'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "query takes exactly one JSONPath expression")
		return subcommands.ExitUsageError
	}

	s, err := OpenSession()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}

	v, err := assistant.Query(s, f.Arg(0))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
