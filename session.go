package assistant

// DefaultBirthdaysDays is the birthday window of a new session.
const DefaultBirthdaysDays = 7

// Session is the state of the assistant: both stores and the session
// settings. It is loaded at start, handed explicitly to every command and
// saved at exit.
type Session struct {
	Contacts *ContactStore
	Notes    *NoteStore
	// BirthdaysDays is the window used by the birthdays command when it
	// is given no explicit number of days.
	BirthdaysDays int
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{
		Contacts:      NewContactStore(),
		Notes:         NewNoteStore(),
		BirthdaysDays: DefaultBirthdaysDays,
	}
}

// SetBirthdaysDays changes the default birthday window.
func (s *Session) SetBirthdaysDays(days int) error {
	if days < 1 {
		return validationError("Number of days must be positive.")
	}
	s.BirthdaysDays = days
	return nil
}
