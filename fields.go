package assistant

import (
	"strconv"
	"strings"

	"github.com/etnz/assistant/date"
)

// this file contains the field types. Each one has a smart constructor
// (ParseXxx) and is immutable once built: changing a field means parsing a
// new value.

// PhoneLength is the exact number of digits of a phone number.
const PhoneLength = 10

// Phone is a phone number made of exactly PhoneLength ASCII digits.
type Phone struct{ value string }

// ParsePhone validates raw as a phone number.
//
// The digit check comes first, so "12ab" reports the non-digit error, not the
// length one.
func ParsePhone(raw string) (Phone, error) {
	if raw == "" || strings.IndexFunc(raw, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return Phone{}, validationError("Phone number must contain only digits (0-9).")
	}
	if len(raw) != PhoneLength {
		return Phone{}, validationError("Phone number must be exactly %d digits.", PhoneLength)
	}
	return Phone{raw}, nil
}

func (p Phone) String() string { return p.value }

// Birthday is a calendar date entered as DD.MM.YYYY.
type Birthday struct{ date.Date }

// ParseBirthday parses raw in the strict DD.MM.YYYY format.
func ParseBirthday(raw string) (Birthday, error) {
	d, err := date.ParseDMY(raw)
	if err != nil {
		return Birthday{}, validationError("Invalid date format. Use DD.MM.YYYY")
	}
	return Birthday{d}, nil
}

func (b Birthday) String() string { return b.DMY() }

// Address is free text, stored as given.
type Address struct{ value string }

// ParseAddress accepts any text that is not blank.
func ParseAddress(raw string) (Address, error) {
	if strings.TrimSpace(raw) == "" {
		return Address{}, validationError("Address cannot be empty.")
	}
	return Address{raw}, nil
}

func (a Address) String() string { return a.value }

// ParseName validates a contact name: any text that is not blank, trimmed.
func ParseName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", validationError("Name cannot be empty.")
	}
	return name, nil
}

// Tag is a note tag. Tags are trimmed and lower cased so that "Home" and
// "home " are the same tag.
type Tag string

// ParseTag normalizes raw into a Tag.
func ParseTag(raw string) (Tag, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", validationError("Tag cannot be empty.")
	}
	return Tag(strings.ToLower(s)), nil
}

// ParseTags parses every raw tag, stopping at the first invalid one.
func ParseTags(raw ...string) ([]Tag, error) {
	tags := make([]Tag, 0, len(raw))
	for _, r := range raw {
		t, err := ParseTag(r)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}

// NoteID identifies a note. Valid ids start at 1.
type NoteID int

// ParseNoteID parses raw as a note id.
func ParseNoteID(raw string) (NoteID, error) {
	i, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, validationError("Note ID must be an integer.")
	}
	if i < 1 {
		return 0, validationError("Note ID must be >= 1.")
	}
	return NoteID(i), nil
}

func (id NoteID) String() string { return strconv.Itoa(int(id)) }

// parseNoteText trims raw and rejects blank text.
func parseNoteText(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", validationError("Note text cannot be empty.")
	}
	return s, nil
}
