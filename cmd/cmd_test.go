package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/assistant"
	"github.com/etnz/assistant/handlers"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// useSession points the commands to a fresh session file.
func useSession(t *testing.T) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "assistant.json")
	old := *sessionFile
	*sessionFile = filename
	t.Cleanup(func() { *sessionFile = old })
	return filename
}

// capture redirects the command outputs.
func capture(t *testing.T) (out, errOut *bytes.Buffer) {
	t.Helper()
	out, errOut = new(bytes.Buffer), new(bytes.Buffer)
	oldOut, oldErr := stdout, stderr
	stdout, stderr = out, errOut
	t.Cleanup(func() { stdout, stderr = oldOut, oldErr })
	return out, errOut
}

// execute runs c with args as the commander would.
func execute(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	require.NoError(t, f.Parse(args))
	return c.Execute(context.Background(), f)
}

func TestRegister(t *testing.T) {
	commander := subcommands.NewCommander(flag.NewFlagSet("bot", flag.ContinueOnError), "bot")
	Register(commander)

	groups := make(map[string]string)
	commander.VisitCommands(func(g *subcommands.CommandGroup, c subcommands.Command) {
		groups[c.Name()] = g.Name()
	})
	for _, c := range handlers.Commands() {
		assert.Contains(t, groups, c.String())
	}
	assert.Equal(t, "contacts", groups["add"])
	assert.Equal(t, "birthdays", groups["birthdays"])
	assert.Equal(t, "notes", groups["tag-note"])
	assert.Equal(t, "files", groups["export"])
	assert.Contains(t, groups, "repl")
	assert.Contains(t, groups, "topic")
}

func TestHandlerCmd(t *testing.T) {
	filename := useSession(t)
	out, errOut := capture(t)

	add := &handlerCmd{command: handlers.AddContact}
	assert.Equal(t, "add", add.Name())
	assert.Contains(t, add.Usage(), "bot add [name] [phone]")

	require.Equal(t, subcommands.ExitSuccess, execute(t, add, "John", "1234567890"))
	assert.Equal(t, "Contact added.\n", out.String())
	require.FileExists(t, filename)

	out.Reset()
	require.Equal(t, subcommands.ExitSuccess, execute(t, &handlerCmd{command: handlers.ShowPhone}, "John"))
	assert.Equal(t, "1234567890\n", out.String())

	s, err := assistant.LoadSession(filename)
	require.NoError(t, err)
	assert.Equal(t, []string{"John"}, s.Contacts.Names())

	assert.Equal(t, subcommands.ExitUsageError, execute(t, add, "John"))
	assert.Equal(t, "Usage: add [name] [phone]\n", errOut.String())

	errOut.Reset()
	assert.Equal(t, subcommands.ExitFailure, execute(t, &handlerCmd{command: handlers.ShowPhone}, "Jane"))
	assert.Equal(t, "Contact not found.\n", errOut.String())
}

func TestHandlerCmdReadOnly(t *testing.T) {
	filename := useSession(t)
	out, _ := capture(t)

	require.Equal(t, subcommands.ExitSuccess, execute(t, &handlerCmd{command: handlers.ShowAll}))
	assert.Equal(t, "No contacts found.\n", out.String())
	assert.NoFileExists(t, filename, "a command that changes nothing does not save")
}

func TestHandlerCmdCorruptedSession(t *testing.T) {
	filename := useSession(t)
	_, errOut := capture(t)
	require.NoError(t, os.WriteFile(filename, []byte("{not json"), 0644))

	assert.Equal(t, subcommands.ExitFailure, execute(t, &handlerCmd{command: handlers.ShowAll}))
	assert.NotEmpty(t, errOut.String())
}

func seed(t *testing.T, lines ...[]string) {
	t.Helper()
	s, err := OpenSession()
	require.NoError(t, err)
	for _, l := range lines {
		c, ok := handlers.Lookup(l[0])
		require.True(t, ok)
		_, err := c.Run(s, l[1:])
		require.NoError(t, err)
	}
	require.NoError(t, CloseSession(s))
}

func TestExport(t *testing.T) {
	useSession(t)
	seed(t, []string{"add", "John", "1234567890"}, []string{"add-note", "Buy", "milk"})
	out, errOut := capture(t)

	require.Equal(t, subcommands.ExitSuccess, execute(t, &exportCmd{}))
	s, err := assistant.DecodeSession(bytes.NewReader(out.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Contacts.Len())
	assert.Equal(t, 1, s.Notes.Len())

	out.Reset()
	require.Equal(t, subcommands.ExitSuccess, execute(t, &exportCmd{}, "-format", "yaml"))
	assert.Contains(t, out.String(), "name: John")
	assert.Contains(t, out.String(), "text: Buy milk")

	assert.Equal(t, subcommands.ExitUsageError, execute(t, &exportCmd{}, "-format", "xml"))
	assert.Contains(t, errOut.String(), `unknown format "xml"`)
}

func TestQuery(t *testing.T) {
	useSession(t)
	seed(t, []string{"add", "John", "1234567890"}, []string{"add", "Jane", "0987654321"})
	out, _ := capture(t)

	require.Equal(t, subcommands.ExitSuccess, execute(t, &queryCmd{}, "$.contacts[*].name"))
	assert.JSONEq(t, `["Jane", "John"]`, out.String())

	assert.Equal(t, subcommands.ExitUsageError, execute(t, &queryCmd{}))
	assert.Equal(t, subcommands.ExitFailure, execute(t, &queryCmd{}, "$.contacts[("))
}

func TestTopic(t *testing.T) {
	out, errOut := capture(t)
	require.Equal(t, subcommands.ExitSuccess, execute(t, &topicCmd{}, "notes"))
	assert.Contains(t, out.String(), "Notes")

	assert.Equal(t, subcommands.ExitFailure, execute(t, &topicCmd{}, "nope"))
	assert.Contains(t, errOut.String(), `topic "nope" not found`)
}

func TestCompletion(t *testing.T) {
	c := completion(func() []string { return []string{"Jane", "John", "bob"} })

	phone := c.Sub["phone"]
	require.NotNil(t, phone)
	require.NotNil(t, phone.Args)
	assert.Equal(t, []string{"Jane", "John"}, phone.Args.Predict("j"))
	assert.Equal(t, []string{"bob"}, phone.Args.Predict("B"))

	for _, name := range []string{"all", "add-note", "birthdays"} {
		require.Contains(t, c.Sub, name)
		assert.Nil(t, c.Sub[name].Args, "%s does not take a contact name", name)
	}
	assert.Equal(t, []string{"json", "yaml"}, c.Sub["export"].Flags["format"].Predict(""))
	assert.Contains(t, c.Sub["topic"].Args.Predict(""), "notes")
}

func TestContactNames(t *testing.T) {
	useSession(t)
	assert.Empty(t, contactNames())
	seed(t, []string{"add", "John", "1234567890"})
	assert.Equal(t, []string{"John"}, contactNames())
}
