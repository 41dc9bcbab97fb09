package assistant

import (
	"cmp"
	"slices"
)

// NoteStore holds notes in creation order.
//
// Ids are assigned from a counter that only ever grows, so the id of a
// deleted note is never given to another one.
type NoteStore struct {
	notes  []*Note
	nextID NoteID
}

// NewNoteStore returns an empty store whose first note gets id 1.
func NewNoteStore() *NoteStore {
	return &NoteStore{notes: make([]*Note, 0), nextID: 1}
}

// Len returns the number of notes.
func (s *NoteStore) Len() int { return len(s.notes) }

// NextID returns the id the next added note will receive.
func (s *NoteStore) NextID() NoteID { return s.nextID }

// All returns the notes in creation order.
func (s *NoteStore) All() []*Note { return slices.Clone(s.notes) }

// Add creates a note with text.
func (s *NoteStore) Add(text string) (*Note, error) {
	text, err := parseNoteText(text)
	if err != nil {
		return nil, err
	}
	n := newNote(s.nextID, text)
	s.nextID++
	s.notes = append(s.notes, n)
	return n, nil
}

func (s *NoteStore) index(id NoteID) int {
	return slices.IndexFunc(s.notes, func(n *Note) bool { return n.id == id })
}

// Find returns the note with this id or nil.
func (s *NoteStore) Find(id NoteID) *Note {
	i := s.index(id)
	if i < 0 {
		return nil
	}
	return s.notes[i]
}

// get is like Find but fails for an unknown id.
func (s *NoteStore) get(id NoteID) (*Note, error) {
	n := s.Find(id)
	if n == nil {
		return nil, notFoundError("Note not found.")
	}
	return n, nil
}

// Edit replaces the text of note id.
func (s *NoteStore) Edit(id NoteID, text string) error {
	n, err := s.get(id)
	if err != nil {
		return err
	}
	text, err = parseNoteText(text)
	if err != nil {
		return err
	}
	n.text = text
	return nil
}

// Delete removes note id.
func (s *NoteStore) Delete(id NoteID) error {
	i := s.index(id)
	if i < 0 {
		return notFoundError("Note not found.")
	}
	s.notes = slices.Delete(s.notes, i, i+1)
	return nil
}

// AddTags adds tags to note id. Tags already present are left alone.
func (s *NoteStore) AddTags(id NoteID, tags ...string) error {
	n, err := s.get(id)
	if err != nil {
		return err
	}
	parsed, err := ParseTags(tags...)
	if err != nil {
		return err
	}
	n.addTags(parsed...)
	return nil
}

// RemoveTags removes tags from note id. Tags the note does not carry are ignored.
func (s *NoteStore) RemoveTags(id NoteID, tags ...string) error {
	n, err := s.get(id)
	if err != nil {
		return err
	}
	parsed, err := ParseTags(tags...)
	if err != nil {
		return err
	}
	n.removeTags(parsed...)
	return nil
}

// SearchByTags returns, in creation order, the notes carrying at least one of
// tags. Tags are compared case-insensitively. No tags match no notes.
func (s *NoteStore) SearchByTags(tags ...string) ([]*Note, error) {
	parsed, err := ParseTags(tags...)
	if err != nil {
		return nil, err
	}
	found := make([]*Note, 0)
	if len(parsed) == 0 {
		return found, nil
	}
	for _, n := range s.notes {
		if n.HasAnyTag(parsed...) {
			found = append(found, n)
		}
	}
	return found, nil
}

// SortByTags returns every note ordered by its smallest tag, untagged notes
// last, and by id for notes sharing the same smallest tag.
func (s *NoteStore) SortByTags() []*Note {
	sorted := slices.Clone(s.notes)
	slices.SortStableFunc(sorted, func(a, b *Note) int {
		ta, oka := a.minTag()
		tb, okb := b.minTag()
		switch {
		case oka && !okb:
			return -1
		case !oka && okb:
			return 1
		}
		return cmp.Or(cmp.Compare(ta, tb), cmp.Compare(a.id, b.id))
	})
	return sorted
}

// insert appends a decoded note. Ids must come in increasing order.
func (s *NoteStore) insert(n *Note) error {
	if last := len(s.notes) - 1; last >= 0 && s.notes[last].id >= n.id {
		return validationError("note %d is out of order", n.id)
	}
	s.notes = append(s.notes, n)
	return nil
}
