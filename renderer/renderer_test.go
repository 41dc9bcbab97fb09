package renderer

import (
	"flag"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/etnz/assistant"
	"github.com/etnz/assistant/date"
)

var fixGolden = flag.Bool("fix-golden", false, "if true, update failing golden files in testdata with the received output")

func TestFixGoldenIsOff(t *testing.T) {
	if *fixGolden {
		t.Fatal("-fix-golden is enabled. This flag should only be used for updating test fixtures and must be disabled for regular tests.")
	}
}

// checkGolden compares got with the content of the golden file.
func checkGolden(t *testing.T, goldenFile, got string) {
	t.Helper()
	content, err := os.ReadFile(goldenFile)
	if err != nil {
		t.Fatalf("failed to read golden file %q: %v", goldenFile, err)
	}
	want := strings.TrimRight(string(content), "\n")
	if got == want {
		return
	}
	if *fixGolden {
		if err := os.WriteFile(goldenFile, []byte(got+"\n"), 0644); err != nil {
			t.Fatalf("failed to update golden file %q: %v", goldenFile, err)
		}
		t.Logf("updated golden file %q", goldenFile)
		return
	}
	t.Errorf("output mismatch for %q.\ngot:\n%s\nwant:\n%s", goldenFile, got, want)
}

func sampleContacts(t *testing.T) *assistant.ContactStore {
	t.Helper()
	s := assistant.NewContactStore()
	bob, _, err := s.Add("bob")
	if err != nil {
		t.Fatal(err)
	}
	mustDo(t, bob.AddPhone("1111111111"))
	mustDo(t, bob.SetBirthday("01.02.1990"))
	mustDo(t, bob.SetAddress("Main St | 5"))

	alice, _, err := s.Add("Alice")
	if err != nil {
		t.Fatal(err)
	}
	mustDo(t, alice.AddPhone("2222222222"))
	mustDo(t, alice.AddPhone("3333333333"))
	return s
}

func mustDo(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func TestContactsTable(t *testing.T) {
	s := sampleContacts(t)
	checkGolden(t, "testdata/contacts_table.md", ContactsTable(s.All()))
}

func TestContactsTableEmpty(t *testing.T) {
	if got, want := ContactsTable(nil), "No contacts found."; got != want {
		t.Errorf("ContactsTable(nil) = %q; want %q", got, want)
	}
}

func TestContacts(t *testing.T) {
	s := sampleContacts(t)
	want := "Contact: Alice, phones: 2222222222; 3333333333, birthday: no data, address: no address\n" +
		"Contact: bob, phones: 1111111111, birthday: 01.02.1990, address: Main St | 5"
	if got := Contacts(s.All()); got != want {
		t.Errorf("Contacts() = %q; want %q", got, want)
	}
}

func TestNotes(t *testing.T) {
	s := assistant.NewNoteStore()
	n, err := s.Add("Buy milk")
	mustDo(t, err)
	mustDo(t, s.AddTags(n.ID(), "shopping"))
	_, err = s.Add("Call mom")
	mustDo(t, err)

	want := "[1] Buy milk (tags: shopping)\n[2] Call mom"
	if got := Notes(s.All()); got != want {
		t.Errorf("Notes() = %q; want %q", got, want)
	}
	if got := Notes(nil); got != "" {
		t.Errorf("Notes(nil) = %q; want empty", got)
	}
}

func TestAgenda(t *testing.T) {
	monday := date.New(2024, time.January, 29)
	tuesday := date.New(2024, time.January, 30)
	upcoming := []assistant.Upcoming{
		{Name: "Alice", Birthday: monday, On: monday},
		{Name: "Bob", Birthday: date.New(2024, time.January, 27), On: monday},
		{Name: "Carol", Birthday: tuesday, On: tuesday},
	}
	want := "29.01.2024: Alice, Bob\n30.01.2024: Carol"
	if got := Agenda(upcoming); got != want {
		t.Errorf("Agenda() = %q; want %q", got, want)
	}
	if got := Agenda(nil); got != "" {
		t.Errorf("Agenda(nil) = %q; want empty", got)
	}
}
