package assistant

import (
	"cmp"
	"maps"
	"slices"
)

// ContactStore holds contacts indexed by name.
type ContactStore struct {
	content map[string]*Contact
}

// NewContactStore returns an empty store.
func NewContactStore() *ContactStore {
	return &ContactStore{content: make(map[string]*Contact)}
}

// Len returns the number of contacts.
func (s *ContactStore) Len() int { return len(s.content) }

// Find returns the contact with this name, or nil if unknown.
func (s *ContactStore) Find(name string) *Contact { return s.content[name] }

// Add returns the contact named 'name', creating and storing it if it does
// not exist yet. created reports whether a new contact was stored.
//
// This upsert is what lets the same command create a contact and append
// phones to an existing one.
func (s *ContactStore) Add(name string) (c *Contact, created bool, err error) {
	name, err = ParseName(name)
	if err != nil {
		return nil, false, err
	}
	if c, ok := s.content[name]; ok {
		return c, false, nil
	}
	c = newContact(name)
	s.content[name] = c
	return c, true, nil
}

// Delete removes the contact named 'name'.
func (s *ContactStore) Delete(name string) error {
	if _, ok := s.content[name]; !ok {
		return notFoundError("Contact not found.")
	}
	delete(s.content, name)
	return nil
}

// Rename moves the contact 'old' under the name 'name'.
func (s *ContactStore) Rename(old, name string) error {
	c, ok := s.content[old]
	if !ok {
		return notFoundError("Contact not found.")
	}
	name, err := ParseName(name)
	if err != nil {
		return err
	}
	if name == old {
		return validationError("New name must be different.")
	}
	if _, exists := s.content[name]; exists {
		return duplicateError("Contact with this name already exists.")
	}
	delete(s.content, old)
	c.name = name
	s.content[name] = c
	return nil
}

// All returns every contact sorted by name.
func (s *ContactStore) All() []*Contact {
	return slices.SortedFunc(maps.Values(s.content), func(a, b *Contact) int {
		return cmp.Compare(a.name, b.name)
	})
}

// Names returns the sorted list of contact names.
func (s *ContactStore) Names() []string {
	return slices.Sorted(maps.Keys(s.content))
}

// insert stores c as is. It is used when decoding a snapshot.
func (s *ContactStore) insert(c *Contact) error {
	if _, exists := s.content[c.name]; exists {
		return duplicateError("contact %q is defined twice", c.name)
	}
	s.content[c.name] = c
	return nil
}
