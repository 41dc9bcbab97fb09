package assistant

import (
	"fmt"
	"slices"
	"strings"
)

// Contact is a named entry of the address book.
//
// Phones keep their insertion order but never hold the same number twice.
type Contact struct {
	name     string
	phones   []Phone
	birthday *Birthday
	address  *Address
}

// newContact returns an empty contact. name must already be valid.
func newContact(name string) *Contact {
	return &Contact{name: name, phones: make([]Phone, 0)}
}

// Name returns the contact's name, which is its key in the ContactStore.
func (c *Contact) Name() string { return c.name }

// Phones returns a copy of the contact's phones in insertion order.
func (c *Contact) Phones() []Phone { return slices.Clone(c.phones) }

// Birthday returns the contact's birthday if any.
func (c *Contact) Birthday() (Birthday, bool) {
	if c.birthday == nil {
		return Birthday{}, false
	}
	return *c.birthday, true
}

// Address returns the contact's address if any.
func (c *Contact) Address() (Address, bool) {
	if c.address == nil {
		return Address{}, false
	}
	return *c.address, true
}

// indexPhone returns the position of number in the contact phones or -1.
func (c *Contact) indexPhone(number string) int {
	return slices.IndexFunc(c.phones, func(p Phone) bool { return p.value == number })
}

// FindPhone returns the phone equal to number.
func (c *Contact) FindPhone(number string) (Phone, bool) {
	i := c.indexPhone(number)
	if i < 0 {
		return Phone{}, false
	}
	return c.phones[i], true
}

// AddPhone validates and appends number.
func (c *Contact) AddPhone(number string) error {
	p, err := ParsePhone(number)
	if err != nil {
		return err
	}
	if c.indexPhone(p.value) >= 0 {
		return duplicateError("Phone number already exists.")
	}
	c.phones = append(c.phones, p)
	return nil
}

// RemovePhone removes number from the contact.
func (c *Contact) RemovePhone(number string) error {
	i := c.indexPhone(number)
	if i < 0 {
		return notFoundError("Phone number not found.")
	}
	c.phones = slices.Delete(c.phones, i, i+1)
	return nil
}

// EditPhone replaces old by number, keeping its position.
func (c *Contact) EditPhone(old, number string) error {
	i := c.indexPhone(old)
	if i < 0 {
		return notFoundError("Phone number not found.")
	}
	p, err := ParsePhone(number)
	if err != nil {
		return err
	}
	if j := c.indexPhone(p.value); j >= 0 && j != i {
		return duplicateError("Phone number already exists.")
	}
	c.phones[i] = p
	return nil
}

// SetBirthday replaces the contact's birthday with raw (DD.MM.YYYY).
func (c *Contact) SetBirthday(raw string) error {
	b, err := ParseBirthday(raw)
	if err != nil {
		return err
	}
	c.birthday = &b
	return nil
}

// SetAddress replaces the contact's address.
func (c *Contact) SetAddress(raw string) error {
	a, err := ParseAddress(raw)
	if err != nil {
		return err
	}
	c.address = &a
	return nil
}

func (c *Contact) String() string {
	phones := "no phones"
	if len(c.phones) > 0 {
		values := make([]string, len(c.phones))
		for i, p := range c.phones {
			values[i] = p.value
		}
		phones = strings.Join(values, "; ")
	}
	birthday := "no data"
	if c.birthday != nil {
		birthday = c.birthday.String()
	}
	address := "no address"
	if c.address != nil {
		address = c.address.String()
	}
	return fmt.Sprintf("Contact: %s, phones: %s, birthday: %s, address: %s", c.name, phones, birthday, address)
}
