// Package assistant provides the record stores of a personal command line
// assistant: an address book of contacts and a notebook of tagged notes.
//
// The core functionalities include:
//   - Field validation: phone numbers, birthdays, addresses, tags and note
//     ids are built through smart constructors (ParsePhone, ParseBirthday, ...)
//     that return either a valid immutable value or an error.
//   - Address book: a ContactStore keyed by name, with phone management,
//     renaming and the upcoming birthdays query, which moves congratulations
//     off the weekend.
//   - Notebook: a NoteStore assigning ids that are never reused, with tag
//     based search and sorting.
//   - Persistence: a Session bundles both stores and is encoded to and
//     decoded from a human-readable JSON document.
//
// Errors returned by the stores wrap one of ErrValidation, ErrNotFound or
// ErrDuplicate and carry a message meant for the user.
//
// This package serves as the foundational logic for the `bot` command-line
// tool.
package assistant
