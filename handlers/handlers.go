// Package handlers implements the assistant commands.
//
// A handler receives the raw arguments typed by the user and the Session,
// checks the arguments, calls into the stores and returns the text to show.
// Handlers never print anything and Handle never lets an error escape: every
// failure becomes a message.
package handlers

import (
	"errors"
	"strings"

	"github.com/etnz/assistant"
	"github.com/etnz/assistant/date"
)

// ErrUsage reports a command called with the wrong number or shape of
// arguments. Its message is the command usage.
var ErrUsage = errors.New("usage error")

// Handler runs a command against the session.
type Handler func(s *assistant.Session, args []string) (string, error)

// Command enumerates the assistant commands.
type Command int

const (
	Hello Command = iota
	AddContact
	ChangePhone
	RemovePhone
	ShowPhone
	ShowAll
	ContactsTable
	ChangeName
	DeleteContact
	AddBirthday
	ShowBirthday
	Birthdays
	SetBirthdaysDays
	AddAddress
	ShowAddress
	AddNote
	ShowNotes
	EditNote
	DeleteNote
	TagNote
	UntagNote
	FindNotes
	SortNotesByTags

	numCommands // keep last
)

// Info describes a command.
type Info struct {
	Name     string
	Usage    string
	Synopsis string
	Handler  Handler
	// Mutates is true when the command may change the session, which then
	// needs to be saved.
	Mutates bool
	// Markdown is true when the result is markdown rather than plain text.
	Markdown bool
	// NameFirst is true when the first argument is a contact name.
	NameFirst bool
	// Topic is the documentation topic covering the command.
	Topic string
}

// commands is the dispatch table, indexed by Command.
var commands [numCommands]Info

// byName resolves command names.
var byName = make(map[string]Command, numCommands)

// the table is filled in init because handlers refer back to it for their usage.
func init() {
	commands = [numCommands]Info{
		Hello:            {Name: "hello", Usage: "hello", Synopsis: "greet the assistant", Handler: hello},
		AddContact:       {Name: "add", Usage: "add [name] [phone]", Synopsis: "add a contact or a phone to an existing contact", Handler: addContact, Mutates: true, NameFirst: true, Topic: "contacts"},
		ChangePhone:      {Name: "change", Usage: "change [name] [old_phone] [new_phone]", Synopsis: "replace a phone number of a contact", Handler: changePhone, Mutates: true, NameFirst: true, Topic: "contacts"},
		RemovePhone:      {Name: "remove-phone", Usage: "remove-phone [name] [phone]", Synopsis: "remove a phone number from a contact", Handler: removePhone, Mutates: true, NameFirst: true, Topic: "contacts"},
		ShowPhone:        {Name: "phone", Usage: "phone [name]", Synopsis: "show the phone numbers of a contact", Handler: showPhone, NameFirst: true, Topic: "contacts"},
		ShowAll:          {Name: "all", Usage: "all", Synopsis: "show all contacts", Handler: showAll, Topic: "contacts"},
		ContactsTable:    {Name: "contacts-table", Usage: "contacts-table", Synopsis: "show all contacts as a table", Handler: contactsTable, Markdown: true, Topic: "contacts"},
		ChangeName:       {Name: "change-name", Usage: "change-name [old_name] [new_name]", Synopsis: "rename a contact", Handler: changeName, Mutates: true, NameFirst: true, Topic: "contacts"},
		DeleteContact:    {Name: "delete", Usage: "delete [name]", Synopsis: "delete a contact", Handler: deleteContact, Mutates: true, NameFirst: true, Topic: "contacts"},
		AddBirthday:      {Name: "add-birthday", Usage: "add-birthday [name] [DD.MM.YYYY]", Synopsis: "set the birthday of a contact", Handler: addBirthday, Mutates: true, NameFirst: true, Topic: "birthdays"},
		ShowBirthday:     {Name: "show-birthday", Usage: "show-birthday [name]", Synopsis: "show the birthday of a contact", Handler: showBirthday, NameFirst: true, Topic: "birthdays"},
		Birthdays:        {Name: "birthdays", Usage: "birthdays [days]", Synopsis: "show the birthdays of the next days", Handler: birthdays, Topic: "birthdays"},
		SetBirthdaysDays: {Name: "set-birthdays-days", Usage: "set-birthdays-days [days]", Synopsis: "set the default number of days for birthdays", Handler: setBirthdaysDays, Mutates: true, Topic: "birthdays"},
		AddAddress:       {Name: "add-address", Usage: "add-address [name] [address]", Synopsis: "set the address of a contact", Handler: addAddress, Mutates: true, NameFirst: true, Topic: "contacts"},
		ShowAddress:      {Name: "show-address", Usage: "show-address [name]", Synopsis: "show the address of a contact", Handler: showAddress, NameFirst: true, Topic: "contacts"},
		AddNote:          {Name: "add-note", Usage: "add-note [text]", Synopsis: "add a text note", Handler: addNote, Mutates: true, Topic: "notes"},
		ShowNotes:        {Name: "notes", Usage: "notes", Synopsis: "list all notes", Handler: showNotes, Topic: "notes"},
		EditNote:         {Name: "edit-note", Usage: "edit-note [id] [new text]", Synopsis: "replace the text of a note", Handler: editNote, Mutates: true, Topic: "notes"},
		DeleteNote:       {Name: "delete-note", Usage: "delete-note [id]", Synopsis: "delete a note", Handler: deleteNote, Mutates: true, Topic: "notes"},
		TagNote:          {Name: "tag-note", Usage: "tag-note [id] [tag1] [tag2] ...", Synopsis: "add tags to a note", Handler: tagNote, Mutates: true, Topic: "notes"},
		UntagNote:        {Name: "untag-note", Usage: "untag-note [id] [tag1] [tag2] ...", Synopsis: "remove tags from a note", Handler: untagNote, Mutates: true, Topic: "notes"},
		FindNotes:        {Name: "find-notes", Usage: "find-notes [tag1] [tag2] ...", Synopsis: "find notes with any of the tags", Handler: findNotes, Topic: "notes"},
		SortNotesByTags:  {Name: "sort-notes-by-tags", Usage: "sort-notes-by-tags", Synopsis: "list notes sorted by tags", Handler: sortNotesByTags, Topic: "notes"},
	}
	for c := range numCommands {
		byName[commands[c].Name] = c
	}
}

// today is the clock used by date dependent commands.
var today = date.Today

// Commands returns all the commands in table order.
func Commands() []Command {
	list := make([]Command, 0, numCommands)
	for c := range numCommands {
		list = append(list, c)
	}
	return list
}

// Lookup returns the command called name, ignoring case.
func Lookup(name string) (Command, bool) {
	c, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Info returns the description of c.
func (c Command) Info() Info { return commands[c] }

func (c Command) String() string {
	if c < 0 || c >= numCommands {
		return "unknown"
	}
	return commands[c].Name
}

// Run executes c and returns its result or the error it failed with.
func (c Command) Run(s *assistant.Session, args []string) (string, error) {
	return commands[c].Handler(s, args)
}

// Handle executes c and always returns a text to show: the result or the
// error message.
func (c Command) Handle(s *assistant.Session, args []string) string {
	out, err := c.Run(s, args)
	if err != nil {
		return Message(err)
	}
	return out
}

// Message returns the text to show for err.
func Message(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	switch {
	case errors.Is(err, ErrUsage):
		return "Not enough arguments."
	case errors.Is(err, assistant.ErrNotFound):
		return "Contact not found."
	}
	return "Invalid input."
}

// usage returns the usage error of c.
func usage(c Command) error {
	return assistant.Errorf(ErrUsage, "Usage: %s", commands[c].Usage)
}

// invalid returns a validation error with msg.
func invalid(msg string) error { return assistant.Errorf(assistant.ErrValidation, "%s", msg) }

// contact returns the contact called name or a not found error.
func contact(s *assistant.Session, name string) (*assistant.Contact, error) {
	c := s.Contacts.Find(name)
	if c == nil {
		return nil, assistant.Errorf(assistant.ErrNotFound, "Contact not found.")
	}
	return c, nil
}

// nonBlank returns args without the blank ones, trimmed.
func nonBlank(args []string) []string {
	list := make([]string, 0, len(args))
	for _, a := range args {
		if a = strings.TrimSpace(a); a != "" {
			list = append(list, a)
		}
	}
	return list
}

func hello(_ *assistant.Session, _ []string) (string, error) {
	return "How can I help you?", nil
}
