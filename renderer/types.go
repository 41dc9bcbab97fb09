package renderer

import (
	"slices"
	"strings"

	"github.com/etnz/assistant"
)

// ContactsTableView is the data behind the contacts table.
// Cells are already escaped for markdown.
type ContactsTableView struct {
	Rows []ContactRow `json:"rows"`
}

// ContactRow is a single line of the contacts table.
type ContactRow struct {
	Name     string `json:"name"`
	Phones   string `json:"phones"`
	Birthday string `json:"birthday"`
	Address  string `json:"address"`
}

// escape protects the pipe character that would otherwise split a table cell.
func escape(s string) string { return strings.ReplaceAll(s, "|", `\|`) }

// NewContactsTable builds the table view of contacts.
func NewContactsTable(contacts []*assistant.Contact) *ContactsTableView {
	contacts = slices.Clone(contacts)
	slices.SortStableFunc(contacts, func(a, b *assistant.Contact) int {
		return strings.Compare(strings.ToLower(a.Name()), strings.ToLower(b.Name()))
	})

	view := &ContactsTableView{Rows: make([]ContactRow, 0, len(contacts))}
	for _, c := range contacts {
		phones := make([]string, 0)
		for _, p := range c.Phones() {
			phones = append(phones, p.String())
		}
		row := ContactRow{
			Name:   escape(c.Name()),
			Phones: escape(strings.Join(phones, ", ")),
		}
		if b, ok := c.Birthday(); ok {
			row.Birthday = b.String()
		}
		if a, ok := c.Address(); ok {
			row.Address = escape(a.String())
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}

// AgendaView groups upcoming birthdays by congratulation date.
type AgendaView struct {
	Days []AgendaDay `json:"days"`
}

// AgendaDay lists the contacts to congratulate on the same day.
type AgendaDay struct {
	// On is the congratulation date formatted as DD.MM.YYYY.
	On    string   `json:"on"`
	Names []string `json:"names"`
}

// NewAgenda builds the agenda view. upcoming must be sorted by date, as
// returned by ContactStore.UpcomingBirthdays.
func NewAgenda(upcoming []assistant.Upcoming) *AgendaView {
	view := &AgendaView{Days: make([]AgendaDay, 0)}
	for _, u := range upcoming {
		on := u.On.DMY()
		if last := len(view.Days) - 1; last >= 0 && view.Days[last].On == on {
			view.Days[last].Names = append(view.Days[last].Names, u.Name)
			continue
		}
		view.Days = append(view.Days, AgendaDay{On: on, Names: []string{u.Name}})
	}
	return view
}
