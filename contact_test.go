package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func phones(c *Contact) []string {
	var list []string
	for _, p := range c.Phones() {
		list = append(list, p.String())
	}
	return list
}

func TestContactAddPhone(t *testing.T) {
	c := newContact("John")
	require.NoError(t, c.AddPhone("1234567890"))
	require.NoError(t, c.AddPhone("5555555555"))

	err := c.AddPhone("1234567890")
	require.ErrorIs(t, err, ErrDuplicate)
	assert.Equal(t, "Phone number already exists.", err.Error())

	assert.ErrorIs(t, c.AddPhone("123"), ErrValidation)
	assert.Equal(t, []string{"1234567890", "5555555555"}, phones(c))
}

func TestContactRemovePhone(t *testing.T) {
	c := newContact("John")
	require.NoError(t, c.AddPhone("1234567890"))
	require.NoError(t, c.AddPhone("5555555555"))

	require.NoError(t, c.RemovePhone("1234567890"))
	assert.Equal(t, []string{"5555555555"}, phones(c))

	err := c.RemovePhone("1234567890")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Phone number not found.", err.Error())
}

func TestContactEditPhone(t *testing.T) {
	c := newContact("John")
	require.NoError(t, c.AddPhone("1111111111"))
	require.NoError(t, c.AddPhone("2222222222"))
	require.NoError(t, c.AddPhone("3333333333"))

	require.NoError(t, c.EditPhone("2222222222", "4444444444"))
	assert.Equal(t, []string{"1111111111", "4444444444", "3333333333"}, phones(c), "position must be preserved")

	assert.ErrorIs(t, c.EditPhone("9999999999", "5555555555"), ErrNotFound)
	assert.ErrorIs(t, c.EditPhone("1111111111", "12"), ErrValidation)
	assert.ErrorIs(t, c.EditPhone("1111111111", "3333333333"), ErrDuplicate)
	// editing a number to itself is not a duplicate.
	assert.NoError(t, c.EditPhone("1111111111", "1111111111"))

	_, ok := c.FindPhone("2222222222")
	assert.False(t, ok)
	p, ok := c.FindPhone("4444444444")
	require.True(t, ok)
	assert.Equal(t, "4444444444", p.String())
}

func TestContactBirthdayAndAddress(t *testing.T) {
	c := newContact("John")
	_, ok := c.Birthday()
	assert.False(t, ok)
	_, ok = c.Address()
	assert.False(t, ok)

	require.NoError(t, c.SetBirthday("01.01.1990"))
	require.NoError(t, c.SetBirthday("02.02.1991"))
	b, ok := c.Birthday()
	require.True(t, ok)
	assert.Equal(t, "02.02.1991", b.String(), "last write wins")

	assert.ErrorIs(t, c.SetBirthday("1991-02-02"), ErrValidation)
	b, _ = c.Birthday()
	assert.Equal(t, "02.02.1991", b.String(), "a failed update keeps the previous value")

	require.NoError(t, c.SetAddress("US, CA, Los Angeles"))
	a, ok := c.Address()
	require.True(t, ok)
	assert.Equal(t, "US, CA, Los Angeles", a.String())
}

func TestContactString(t *testing.T) {
	c := newContact("John")
	assert.Equal(t, "Contact: John, phones: no phones, birthday: no data, address: no address", c.String())

	require.NoError(t, c.AddPhone("1234567890"))
	require.NoError(t, c.AddPhone("5555555555"))
	require.NoError(t, c.SetBirthday("30.01.1990"))
	require.NoError(t, c.SetAddress("Kyiv"))
	assert.Equal(t, "Contact: John, phones: 1234567890; 5555555555, birthday: 30.01.1990, address: Kyiv", c.String())
}
