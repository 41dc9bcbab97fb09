package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/assistant"
	"github.com/etnz/assistant/renderer"
)

// parseDays reads a positive number of days.
func parseDays(raw string) (int, error) {
	days, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, invalid("Number of days must be an integer.")
	}
	if days < 1 {
		return 0, invalid("Number of days must be positive.")
	}
	return days, nil
}

// birthdays lists the congratulation dates of the next days, using the
// session default when no number of days is given.
func birthdays(s *assistant.Session, args []string) (string, error) {
	days := s.BirthdaysDays
	if len(args) > 0 {
		var err error
		if days, err = parseDays(args[0]); err != nil {
			return "", err
		}
	}
	upcoming := s.Contacts.UpcomingBirthdays(days, today())
	if len(upcoming) == 0 {
		return fmt.Sprintf("No birthdays in the next %d days.", days), nil
	}
	return renderer.Agenda(upcoming), nil
}

func setBirthdaysDays(s *assistant.Session, args []string) (string, error) {
	if len(args) < 1 {
		return "", usage(SetBirthdaysDays)
	}
	days, err := parseDays(args[0])
	if err != nil {
		return "", err
	}
	if err := s.SetBirthdaysDays(days); err != nil {
		return "", err
	}
	return fmt.Sprintf("Default number of days for birthdays set to %d.", days), nil
}
