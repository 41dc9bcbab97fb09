// Package renderer turns records into text for the user: plain lines for the
// command results and markdown for the contacts table.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/assistant"
)

//go:embed templates/*.md
var templates embed.FS

var funcs = template.FuncMap{
	"join": strings.Join,
}

// ContactsTable renders contacts as a markdown table, sorted by name
// regardless of case.
func ContactsTable(contacts []*assistant.Contact) string {
	partials := map[string]string{
		"contact_row": "contact_row.md",
	}
	return renderTemplate("contactsTable", "contacts_table.md", partials, NewContactsTable(contacts))
}

// Contacts renders one contact per line.
func Contacts(contacts []*assistant.Contact) string {
	lines := make([]string, 0, len(contacts))
	for _, c := range contacts {
		lines = append(lines, c.String())
	}
	return renderLines(lines)
}

// Notes renders one note per line.
func Notes(notes []*assistant.Note) string {
	lines := make([]string, 0, len(notes))
	for _, n := range notes {
		lines = append(lines, n.String())
	}
	return renderLines(lines)
}

// Agenda renders upcoming birthdays as one line per congratulation date:
//
//	29.01.2024: Alice, Bob
func Agenda(upcoming []assistant.Upcoming) string {
	return renderTemplate("agenda", "agenda.md", nil, NewAgenda(upcoming))
}

func renderLines(lines []string) string {
	return renderTemplate("lines", "lines.md", nil, struct{ Lines []string }{lines})
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
