package cmd

import (
	"strings"

	"github.com/etnz/assistant"
	"github.com/etnz/assistant/docs"
	"github.com/etnz/assistant/handlers"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete answers shell completion requests for the program name, and
// returns immediately when the program is not run for completion.
//
// Install with COMP_INSTALL=1 bot.
func Complete(name string) {
	completion(contactNames).Complete(name)
}

// completion describes the command line. names lists the known contacts.
func completion(names func() []string) *complete.Command {
	contacts := complete.PredictFunc(func(prefix string) []string {
		return matching(names(), prefix)
	})

	sub := make(map[string]*complete.Command)
	for _, c := range handlers.Commands() {
		info := c.Info()
		sc := &complete.Command{}
		if info.NameFirst {
			sc.Args = contacts
		}
		sub[info.Name] = sc
	}

	topics, _ := docs.GetAllTopics()
	sub["topic"] = &complete.Command{Args: predict.Set(append(topics, "*"))}
	sub["export"] = &complete.Command{
		Flags: map[string]complete.Predictor{"format": predict.Set{"json", "yaml"}},
	}
	sub["query"] = &complete.Command{}
	sub["repl"] = &complete.Command{}

	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"file": predict.Files("*.json"),
			"v":    nil,
		},
	}
}

// matching returns the options starting with prefix, ignoring case.
func matching(options []string, prefix string) []string {
	prefix = strings.ToLower(prefix)
	var list []string
	for _, o := range options {
		if strings.HasPrefix(strings.ToLower(o), prefix) {
			list = append(list, o)
		}
	}
	return list
}

// contactNames lists the contacts of the session file, or nothing if it
// cannot be read. It never logs: its output is read by the shell.
func contactNames() []string {
	filename, err := SessionPath()
	if err != nil {
		return nil
	}
	s, err := assistant.LoadSession(filename)
	if err != nil {
		return nil
	}
	return s.Contacts.Names()
}
