// Package cmd implements the bot command line: one subcommand per assistant
// command, the interactive assistant, documentation and data export.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"

	"github.com/etnz/assistant"
	"github.com/etnz/assistant/config"
	"github.com/etnz/assistant/handlers"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&replCmd{}, "")
	for _, h := range handlers.Commands() {
		c.Register(&handlerCmd{command: h}, h.Info().Topic)
	}
	c.Register(&exportCmd{}, "files")
	c.Register(&queryCmd{}, "files")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var sessionFile = flag.String("file", "", "Path to the session file (JSON). Defaults to the data_dir/file configuration.")

// Verbose enables debug logs.
var Verbose = flag.Bool("v", false, "print debug logs")

var stdout io.Writer = os.Stdout
var stderr io.Writer = os.Stderr

// Settings returns the configuration, loaded once.
var Settings = sync.OnceValues(config.Load)

var logger = sync.OnceValue(func() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	if settings, err := Settings(); err == nil {
		if level, err := settings.Level(); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(level)
		}
	}
	if *Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		return zap.NewNop()
	}
	return l
})

// Logger returns the application logger.
func Logger() *zap.Logger { return logger() }

// Sync flushes the logs.
func Sync() { _ = Logger().Sync() }

// SessionPath returns the session file in use.
func SessionPath() (string, error) {
	if *sessionFile != "" {
		return *sessionFile, nil
	}
	cfg, err := Settings()
	if err != nil {
		return "", err
	}
	return cfg.Path(), nil
}

// OpenSession is the central function to load the session. A missing session
// file is an empty session.
func OpenSession() (*assistant.Session, error) {
	filename, err := SessionPath()
	if err != nil {
		return nil, err
	}
	s, err := assistant.LoadSession(filename)
	if errors.Is(err, fs.ErrNotExist) {
		Logger().Info("session file does not exist, starting with an empty session", zap.String("file", filename))
		s = assistant.NewSession()
		if cfg, err := Settings(); err == nil {
			s.BirthdaysDays = cfg.BirthdaysDays
		}
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	Logger().Debug("session loaded",
		zap.String("file", filename),
		zap.Int("contacts", s.Contacts.Len()),
		zap.Int("notes", s.Notes.Len()))
	return s, nil
}

// CloseSession saves the session.
func CloseSession(s *assistant.Session) error {
	filename, err := SessionPath()
	if err != nil {
		return err
	}
	if err := assistant.SaveSession(filename, s); err != nil {
		return err
	}
	Logger().Debug("session saved", zap.String("file", filename))
	return nil
}
