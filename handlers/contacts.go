package handlers

import (
	"fmt"
	"strings"

	"github.com/etnz/assistant"
	"github.com/etnz/assistant/renderer"
)

// addContact creates the contact if needed and appends the phone.
// The phone is checked first so that a bad number never leaves an empty
// contact behind.
func addContact(s *assistant.Session, args []string) (string, error) {
	if len(args) < 2 {
		return "", usage(AddContact)
	}
	name, phone := args[0], args[1]
	if _, err := assistant.ParsePhone(phone); err != nil {
		return "", err
	}
	c, created, err := s.Contacts.Add(name)
	if err != nil {
		return "", err
	}
	if err := c.AddPhone(phone); err != nil {
		return "", err
	}
	if created {
		return "Contact added.", nil
	}
	return "Contact updated.", nil
}

func changePhone(s *assistant.Session, args []string) (string, error) {
	if len(args) < 3 {
		return "", usage(ChangePhone)
	}
	c, err := contact(s, args[0])
	if err != nil {
		return "", err
	}
	if err := c.EditPhone(args[1], args[2]); err != nil {
		return "", err
	}
	return "Phone number updated.", nil
}

func removePhone(s *assistant.Session, args []string) (string, error) {
	if len(args) < 2 {
		return "", usage(RemovePhone)
	}
	c, err := contact(s, args[0])
	if err != nil {
		return "", err
	}
	if err := c.RemovePhone(args[1]); err != nil {
		return "", err
	}
	return "Phone number removed.", nil
}

func showPhone(s *assistant.Session, args []string) (string, error) {
	if len(args) < 1 {
		return "", usage(ShowPhone)
	}
	c, err := contact(s, args[0])
	if err != nil {
		return "", err
	}
	phones := c.Phones()
	if len(phones) == 0 {
		return fmt.Sprintf("%s has no phones.", c.Name()), nil
	}
	values := make([]string, len(phones))
	for i, p := range phones {
		values[i] = p.String()
	}
	return strings.Join(values, ", "), nil
}

func showAll(s *assistant.Session, _ []string) (string, error) {
	if s.Contacts.Len() == 0 {
		return "No contacts found.", nil
	}
	return renderer.Contacts(s.Contacts.All()), nil
}

func contactsTable(s *assistant.Session, _ []string) (string, error) {
	return renderer.ContactsTable(s.Contacts.All()), nil
}

func changeName(s *assistant.Session, args []string) (string, error) {
	if len(args) < 2 {
		return "", usage(ChangeName)
	}
	if err := s.Contacts.Rename(args[0], args[1]); err != nil {
		return "", err
	}
	return "Contact renamed.", nil
}

func deleteContact(s *assistant.Session, args []string) (string, error) {
	if len(args) < 1 {
		return "", usage(DeleteContact)
	}
	if err := s.Contacts.Delete(args[0]); err != nil {
		return "", err
	}
	return "Contact deleted.", nil
}

func addBirthday(s *assistant.Session, args []string) (string, error) {
	if len(args) < 2 {
		return "", usage(AddBirthday)
	}
	c, err := contact(s, args[0])
	if err != nil {
		return "", err
	}
	if err := c.SetBirthday(args[1]); err != nil {
		return "", err
	}
	return "Birthday set.", nil
}

func showBirthday(s *assistant.Session, args []string) (string, error) {
	if len(args) < 1 {
		return "", usage(ShowBirthday)
	}
	c, err := contact(s, args[0])
	if err != nil {
		return "", err
	}
	b, ok := c.Birthday()
	if !ok {
		return "No birthday set.", nil
	}
	return fmt.Sprintf("%s: %s", c.Name(), b), nil
}

// addAddress joins every argument after the name, so the address does not
// need quoting.
func addAddress(s *assistant.Session, args []string) (string, error) {
	if len(args) < 2 {
		return "", usage(AddAddress)
	}
	c, err := contact(s, args[0])
	if err != nil {
		return "", err
	}
	if err := c.SetAddress(strings.Join(args[1:], " ")); err != nil {
		return "", err
	}
	return "Address set.", nil
}

func showAddress(s *assistant.Session, args []string) (string, error) {
	if len(args) < 1 {
		return "", usage(ShowAddress)
	}
	c, err := contact(s, args[0])
	if err != nil {
		return "", err
	}
	a, ok := c.Address()
	if !ok {
		return "No address set.", nil
	}
	return fmt.Sprintf("%s: %s", c.Name(), a), nil
}
