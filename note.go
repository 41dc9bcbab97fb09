package assistant

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Note is a free text entry with a set of tags.
//
// The id is assigned by the NoteStore and never changes.
type Note struct {
	id   NoteID
	text string
	tags map[Tag]struct{}
}

func newNote(id NoteID, text string) *Note {
	return &Note{id: id, text: text, tags: make(map[Tag]struct{})}
}

// ID returns the note id.
func (n *Note) ID() NoteID { return n.id }

// Text returns the note text.
func (n *Note) Text() string { return n.text }

// Tags returns the note tags sorted alphabetically.
func (n *Note) Tags() []Tag { return slices.Sorted(maps.Keys(n.tags)) }

// HasTag reports whether the note carries tag t.
func (n *Note) HasTag(t Tag) bool {
	_, ok := n.tags[t]
	return ok
}

// HasAnyTag reports whether the note carries at least one of tags.
func (n *Note) HasAnyTag(tags ...Tag) bool {
	return slices.ContainsFunc(tags, n.HasTag)
}

// minTag returns the alphabetically smallest tag, ok is false for an untagged note.
func (n *Note) minTag() (t Tag, ok bool) {
	for tag := range n.tags {
		if !ok || tag < t {
			t, ok = tag, true
		}
	}
	return t, ok
}

func (n *Note) addTags(tags ...Tag) {
	for _, t := range tags {
		n.tags[t] = struct{}{}
	}
}

func (n *Note) removeTags(tags ...Tag) {
	for _, t := range tags {
		delete(n.tags, t)
	}
}

func (n *Note) String() string {
	if len(n.tags) == 0 {
		return fmt.Sprintf("[%d] %s", n.id, n.text)
	}
	tags := make([]string, 0, len(n.tags))
	for _, t := range n.Tags() {
		tags = append(tags, string(t))
	}
	return fmt.Sprintf("[%d] %s (tags: %s)", n.id, n.text, strings.Join(tags, ", "))
}
