package assistant

import (
	"cmp"
	"slices"
	"time"

	"github.com/etnz/assistant/date"
)

// Upcoming is a contact to congratulate and the day to do it.
type Upcoming struct {
	Name string
	// Birthday is the day the birthday actually occurs.
	Birthday date.Date
	// On is the congratulation date: Birthday moved off the weekend to the
	// next Monday.
	On date.Date
}

// NextOccurrence returns the first anniversary of b on or after today.
//
// Anniversaries that fall on a day the target month does not have (February
// 29 in a non leap year) are clamped to the last day of the month.
func NextOccurrence(b date.Date, today date.Date) date.Date {
	on := date.Clamp(today.Year(), b.Month(), b.Day())
	if on.Before(today) {
		on = date.Clamp(today.Year()+1, b.Month(), b.Day())
	}
	return on
}

// CongratulationDate moves a day falling on a weekend to the following Monday.
func CongratulationDate(on date.Date) date.Date {
	switch on.Weekday() {
	case time.Saturday:
		return on.Add(2)
	case time.Sunday:
		return on.Add(1)
	}
	return on
}

// UpcomingBirthdays returns the contacts whose next birthday occurs within
// the 'days' days starting today (today included), sorted by congratulation
// date then name.
//
// The window applies to the birthday itself, not to the congratulation
// date, so a Saturday birthday on the last day of the window is reported
// on the Monday after it.
func (s *ContactStore) UpcomingBirthdays(days int, today date.Date) []Upcoming {
	window := date.Window(today, days)
	list := make([]Upcoming, 0)
	for _, c := range s.content {
		if c.birthday == nil {
			continue
		}
		next := NextOccurrence(c.birthday.Date, today)
		if !window.Contains(next) {
			continue
		}
		list = append(list, Upcoming{Name: c.name, Birthday: next, On: CongratulationDate(next)})
	}
	slices.SortFunc(list, func(a, b Upcoming) int {
		return cmp.Or(a.On.Compare(b.On), cmp.Compare(a.Name, b.Name))
	})
	return list
}
