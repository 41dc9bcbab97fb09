package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/assistant/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	cmd.Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	ctx := context.Background()
	var status subcommands.ExitStatus
	if flag.NArg() == 0 {
		status = cmd.Repl(ctx)
	} else {
		status = commander.Execute(ctx)
	}
	cmd.Sync()
	os.Exit(int(status))
}
