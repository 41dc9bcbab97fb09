package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/assistant"
	"github.com/google/subcommands"
)

type exportCmd struct {
	format string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "print all contacts, notes and settings" }
func (*exportCmd) Usage() string {
	return `bot export [-format json|yaml]

  Print the whole session as a document, in the same JSON format as the
  session file or in YAML.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "json", "output format: json or yaml")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(stderr, "export takes no arguments")
		return subcommands.ExitUsageError
	}

	s, err := OpenSession()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}

	switch c.format {
	case "json":
		err = assistant.EncodeSession(stdout, s)
	case "yaml":
		err = assistant.ExportYAML(stdout, s)
	default:
		fmt.Fprintf(stderr, "unknown format %q, want json or yaml\n", c.format)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error exporting session: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
