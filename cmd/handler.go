package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/assistant/handlers"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// handlerCmd runs a single assistant command from the command line.
type handlerCmd struct {
	command handlers.Command
}

func (c *handlerCmd) Name() string     { return c.command.Info().Name }
func (c *handlerCmd) Synopsis() string { return c.command.Info().Synopsis }
func (c *handlerCmd) Usage() string {
	info := c.command.Info()
	return fmt.Sprintf("bot %s\n\n  %s.\n", info.Usage, info.Synopsis)
}

func (c *handlerCmd) SetFlags(f *flag.FlagSet) {}

func (c *handlerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	info := c.command.Info()

	s, err := OpenSession()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}

	out, err := c.command.Run(s, f.Args())
	if err != nil {
		Logger().Debug("command failed", zap.Stringer("command", c.command), zap.Error(err))
		fmt.Fprintln(stderr, handlers.Message(err))
		if errors.Is(err, handlers.ErrUsage) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}

	if info.Markdown {
		printMarkdown(out)
	} else {
		fmt.Fprintln(stdout, out)
	}

	if info.Mutates {
		if err := CloseSession(s); err != nil {
			fmt.Fprintf(stderr, "Error saving session: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
