package assistant

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/etnz/assistant/date"
)

// This file contains code to persist a Session in a single JSON file, in a way
// that is still human-readable and git-friendly.
//
// The strategy is the same in both directions: a Session is converted to a
// Document, made of plain exported structs with json tags, and the Document
// is what gets marshalled. Decoding goes back through the smart
// constructors so a hand edited file cannot sneak in an invalid value.

// DocumentVersion is the version written in new snapshots.
const DocumentVersion = 1

// Document is the serializable form of a Session.
type Document struct {
	Version       int             `json:"version" yaml:"version"`
	BirthdaysDays int             `json:"birthdaysDays" yaml:"birthdaysDays"`
	Contacts      []ContactRecord `json:"contacts" yaml:"contacts"`
	Notes         NotesRecord     `json:"notes" yaml:"notes"`
}

// ContactRecord is the serializable form of a Contact.
type ContactRecord struct {
	Name     string     `json:"name" yaml:"name"`
	Phones   []string   `json:"phones" yaml:"phones"`
	Birthday *date.Date `json:"birthday,omitempty" yaml:"birthday,omitempty"`
	Address  string     `json:"address,omitempty" yaml:"address,omitempty"`
}

// NotesRecord is the serializable form of a NoteStore, counter included.
type NotesRecord struct {
	NextID int          `json:"nextId" yaml:"nextId"`
	Items  []NoteRecord `json:"items" yaml:"items"`
}

// NoteRecord is the serializable form of a Note.
type NoteRecord struct {
	ID   int      `json:"id" yaml:"id"`
	Text string   `json:"text" yaml:"text"`
	Tags []string `json:"tags" yaml:"tags"`
}

// NewDocument converts s into a Document. Contacts are sorted by name and
// tags alphabetically so that the output is stable.
func NewDocument(s *Session) *Document {
	doc := &Document{
		Version:       DocumentVersion,
		BirthdaysDays: s.BirthdaysDays,
		Contacts:      make([]ContactRecord, 0, s.Contacts.Len()),
		Notes: NotesRecord{
			NextID: int(s.Notes.NextID()),
			Items:  make([]NoteRecord, 0, s.Notes.Len()),
		},
	}
	for _, c := range s.Contacts.All() {
		jc := ContactRecord{Name: c.name, Phones: make([]string, 0, len(c.phones))}
		for _, p := range c.phones {
			jc.Phones = append(jc.Phones, p.value)
		}
		if c.birthday != nil {
			d := c.birthday.Date
			jc.Birthday = &d
		}
		if c.address != nil {
			jc.Address = c.address.value
		}
		doc.Contacts = append(doc.Contacts, jc)
	}
	for _, n := range s.Notes.All() {
		jn := NoteRecord{ID: int(n.id), Text: n.text, Tags: make([]string, 0, len(n.tags))}
		for _, t := range n.Tags() {
			jn.Tags = append(jn.Tags, string(t))
		}
		doc.Notes.Items = append(doc.Notes.Items, jn)
	}
	return doc
}

// Session rebuilds the Session described by the document, validating every
// field on the way.
func (doc *Document) Session() (*Session, error) {
	if doc.Version > DocumentVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d (max %d)", doc.Version, DocumentVersion)
	}
	s := NewSession()
	if doc.BirthdaysDays != 0 {
		if err := s.SetBirthdaysDays(doc.BirthdaysDays); err != nil {
			return nil, fmt.Errorf("invalid birthdaysDays %d: %w", doc.BirthdaysDays, err)
		}
	}

	for _, jc := range doc.Contacts {
		name, err := ParseName(jc.Name)
		if err != nil {
			return nil, fmt.Errorf("invalid contact %q: %w", jc.Name, err)
		}
		c := newContact(name)
		for _, p := range jc.Phones {
			if err := c.AddPhone(p); err != nil {
				return nil, fmt.Errorf("invalid contact %q: phone %q: %w", jc.Name, p, err)
			}
		}
		if jc.Birthday != nil {
			c.birthday = &Birthday{*jc.Birthday}
		}
		if jc.Address != "" {
			if err := c.SetAddress(jc.Address); err != nil {
				return nil, fmt.Errorf("invalid contact %q: %w", jc.Name, err)
			}
		}
		if err := s.Contacts.insert(c); err != nil {
			return nil, err
		}
	}

	maxID := 0
	for _, jn := range doc.Notes.Items {
		if jn.ID < 1 {
			return nil, fmt.Errorf("invalid note id %d: %w", jn.ID, ErrValidation)
		}
		text, err := parseNoteText(jn.Text)
		if err != nil {
			return nil, fmt.Errorf("invalid note %d: %w", jn.ID, err)
		}
		tags, err := ParseTags(jn.Tags...)
		if err != nil {
			return nil, fmt.Errorf("invalid note %d: %w", jn.ID, err)
		}
		n := newNote(NoteID(jn.ID), text)
		n.addTags(tags...)
		if err := s.Notes.insert(n); err != nil {
			return nil, err
		}
		maxID = jn.ID
	}
	// Older snapshots may lack the counter, never go below what is in use.
	s.Notes.nextID = NoteID(max(doc.Notes.NextID, maxID+1, 1))
	return s, nil
}

// EncodeSession writes s as indented JSON to w.
func EncodeSession(w io.Writer, s *Session) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(s)); err != nil {
		return fmt.Errorf("cannot encode session: %w", err)
	}
	return nil
}

// DecodeSession reads a Session written by EncodeSession.
func DecodeSession(r io.Reader) (*Session, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("format error: %w", err)
	}
	return doc.Session()
}

// LoadSession reads the session stored in filename.
//
// If the file does not exist the returned error wraps fs.ErrNotExist, callers
// usually start from NewSession in that case.
func LoadSession(filename string) (*Session, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("load error: cannot open session file: %w", err)
	}
	defer f.Close()
	s, err := DecodeSession(f)
	if err != nil {
		return nil, fmt.Errorf("load error %q: %w", filename, err)
	}
	return s, nil
}

// SaveSession writes s into filename, creating its folder if needed.
//
// The content is written to a temporary file first and then renamed, so an
// interrupted save leaves the previous snapshot intact.
func SaveSession(filename string, s *Session) (err error) {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save error: cannot create folder %q: %w", dir, err)
	}
	f, err := os.CreateTemp(dir, filepath.Base(filename)+".*.tmp")
	if err != nil {
		return fmt.Errorf("save error: cannot create temporary file: %w", err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()
	if err := EncodeSession(f, s); err != nil {
		return fmt.Errorf("save error %q: %w", filename, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save error %q: %w", filename, err)
	}
	if err := os.Rename(f.Name(), filename); err != nil {
		return fmt.Errorf("save error %q: %w", filename, err)
	}
	return nil
}
