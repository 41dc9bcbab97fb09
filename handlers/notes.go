package handlers

import (
	"fmt"
	"strings"

	"github.com/etnz/assistant"
	"github.com/etnz/assistant/renderer"
)

func addNote(s *assistant.Session, args []string) (string, error) {
	if len(args) < 1 {
		return "", usage(AddNote)
	}
	n, err := s.Notes.Add(strings.Join(args, " "))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Note added with id %d.", n.ID()), nil
}

func showNotes(s *assistant.Session, _ []string) (string, error) {
	if s.Notes.Len() == 0 {
		return "No notes found.", nil
	}
	return renderer.Notes(s.Notes.All()), nil
}

func editNote(s *assistant.Session, args []string) (string, error) {
	if len(args) < 2 {
		return "", usage(EditNote)
	}
	id, err := assistant.ParseNoteID(args[0])
	if err != nil {
		return "", err
	}
	if err := s.Notes.Edit(id, strings.Join(args[1:], " ")); err != nil {
		return "", err
	}
	return "Note updated.", nil
}

func deleteNote(s *assistant.Session, args []string) (string, error) {
	if len(args) < 1 {
		return "", usage(DeleteNote)
	}
	id, err := assistant.ParseNoteID(args[0])
	if err != nil {
		return "", err
	}
	if err := s.Notes.Delete(id); err != nil {
		return "", err
	}
	return "Note deleted.", nil
}

// noteTags parses the id and tags shared by tag-note and untag-note.
func noteTags(c Command, args []string) (assistant.NoteID, []string, error) {
	if len(args) < 2 {
		return 0, nil, usage(c)
	}
	id, err := assistant.ParseNoteID(args[0])
	if err != nil {
		return 0, nil, err
	}
	tags := nonBlank(args[1:])
	if len(tags) == 0 {
		return 0, nil, invalid("At least one tag is required.")
	}
	return id, tags, nil
}

func tagNote(s *assistant.Session, args []string) (string, error) {
	id, tags, err := noteTags(TagNote, args)
	if err != nil {
		return "", err
	}
	if err := s.Notes.AddTags(id, tags...); err != nil {
		return "", err
	}
	return "Tags added.", nil
}

func untagNote(s *assistant.Session, args []string) (string, error) {
	id, tags, err := noteTags(UntagNote, args)
	if err != nil {
		return "", err
	}
	if err := s.Notes.RemoveTags(id, tags...); err != nil {
		return "", err
	}
	return "Tags removed.", nil
}

func findNotes(s *assistant.Session, args []string) (string, error) {
	if len(args) < 1 {
		return "", usage(FindNotes)
	}
	tags := nonBlank(args)
	if len(tags) == 0 {
		return "", invalid("At least one tag is required.")
	}
	found, err := s.Notes.SearchByTags(tags...)
	if err != nil {
		return "", err
	}
	if len(found) == 0 {
		return "No notes found for given tags.", nil
	}
	return renderer.Notes(found), nil
}

func sortNotesByTags(s *assistant.Session, args []string) (string, error) {
	if len(args) > 0 {
		return "", usage(SortNotesByTags)
	}
	if s.Notes.Len() == 0 {
		return "No notes found.", nil
	}
	return renderer.Notes(s.Notes.SortByTags()), nil
}
