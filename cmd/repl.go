package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/etnz/assistant"
	"github.com/etnz/assistant/handlers"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

const (
	prompt         = "Enter a command: "
	goodBye        = "Good bye!"
	invalidCommand = "Invalid command. Type 'help' to see available commands."
)

type replCmd struct{}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "start the interactive assistant (default)" }
func (*replCmd) Usage() string {
	return `bot [repl]

  Read commands from the terminal until 'exit', 'close', end of input or
  interrupt. The session is saved on the way out.
`
}

func (c *replCmd) SetFlags(f *flag.FlagSet) {}

func (c *replCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return Repl(ctx)
}

// Repl runs the interactive assistant on the terminal.
func Repl(ctx context.Context) subcommands.ExitStatus {
	s, err := OpenSession()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := newRepl(s, os.Stdin, stdout)
	r.markdown = renderMarkdown
	r.Run(ctx)

	if err := CloseSession(s); err != nil {
		fmt.Fprintf(stderr, "Error saving session: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// repl reads command lines and prints their results.
type repl struct {
	session *assistant.Session
	in      io.Reader
	out     io.Writer
	theme   theme
	// markdown renders markdown results.
	markdown func(string) string
	log      *zap.Logger
}

func newRepl(s *assistant.Session, in io.Reader, out io.Writer) *repl {
	return &repl{
		session:  s,
		in:       in,
		out:      out,
		theme:    newTheme(out),
		markdown: func(md string) string { return md },
		log:      Logger(),
	}
}

// Run prompts for commands until the user quits, the input ends or ctx is
// done.
func (r *repl) Run(ctx context.Context) {
	fmt.Fprintln(r.out, r.theme.title.Render("Welcome to the assistant bot!"))
	fmt.Fprintln(r.out, r.theme.hint.Render("Type 'help' to see available commands."))

	lines := make(chan string)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	}()

	for {
		fmt.Fprint(r.out, r.theme.prompt.Render(prompt))
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out)
			fmt.Fprintln(r.out, goodBye)
			return
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(r.out)
				fmt.Fprintln(r.out, goodBye)
				return
			}
			out, quit := r.Execute(line)
			fmt.Fprintln(r.out, out)
			if quit {
				return
			}
		}
	}
}

// Execute runs a single command line. It returns the text to print and
// whether the user asked to quit.
func (r *repl) Execute(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return r.theme.failure.Render(invalidCommand), false
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "exit", "close":
		return goodBye, true
	case "help":
		return r.help(), false
	}

	c, ok := handlers.Lookup(name)
	if !ok {
		r.log.Debug("unknown command", zap.String("command", name))
		return r.theme.failure.Render(invalidCommand), false
	}

	out, err := c.Run(r.session, args)
	if err != nil {
		r.log.Debug("command failed", zap.Stringer("command", c), zap.Error(err))
		return r.theme.failure.Render(handlers.Message(err)), false
	}
	r.log.Debug("command done", zap.Stringer("command", c))
	if c.Info().Markdown {
		return strings.TrimRight(r.markdown(out), "\n"), false
	}
	return out, false
}

// help lists the commands with their usage.
func (r *repl) help() string {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	entry := func(usage, synopsis string) {
		fmt.Fprintf(&b, "  %s\n      %s.\n", r.theme.command.Render(usage), synopsis)
	}
	for _, c := range handlers.Commands() {
		info := c.Info()
		entry(info.Usage, info.Synopsis)
	}
	entry("help", "show this help message")
	entry("exit | close", "save data and exit the program")
	return strings.TrimRight(b.String(), "\n")
}
