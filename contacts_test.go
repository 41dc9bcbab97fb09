package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactStoreAdd(t *testing.T) {
	s := NewContactStore()
	c, created, err := s.Add("John")
	require.NoError(t, err)
	assert.True(t, created)
	require.NoError(t, c.AddPhone("1234567890"))

	again, created, err := s.Add("John")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, c, again, "Add must return the existing contact")
	assert.Equal(t, 1, s.Len())

	_, _, err = s.Add("  ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestContactStoreFindAndDelete(t *testing.T) {
	s := NewContactStore()
	assert.Nil(t, s.Find("John"))
	_, _, err := s.Add("John")
	require.NoError(t, err)
	assert.NotNil(t, s.Find("John"))

	require.NoError(t, s.Delete("John"))
	assert.Nil(t, s.Find("John"))

	err = s.Delete("John")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Contact not found.", err.Error())
}

func TestContactStoreRename(t *testing.T) {
	s := NewContactStore()
	john, _, _ := s.Add("John")
	require.NoError(t, john.AddPhone("1234567890"))
	_, _, _ = s.Add("Jane")

	err := s.Rename("John", "Jane")
	require.ErrorIs(t, err, ErrDuplicate)
	assert.Equal(t, "Contact with this name already exists.", err.Error())

	assert.ErrorIs(t, s.Rename("Bob", "Robert"), ErrNotFound)
	assert.ErrorIs(t, s.Rename("John", "John"), ErrValidation)

	require.NoError(t, s.Rename("John", "Johnny"))
	assert.Nil(t, s.Find("John"))
	got := s.Find("Johnny")
	require.NotNil(t, got)
	assert.Equal(t, "Johnny", got.Name())
	assert.Equal(t, []string{"1234567890"}, phones(got))
	assert.Equal(t, 2, s.Len())
}

func TestContactStoreAll(t *testing.T) {
	s := NewContactStore()
	for _, name := range []string{"Charlie", "Alice", "Bob"} {
		_, _, err := s.Add(name)
		require.NoError(t, err)
	}
	var names []string
	for _, c := range s.All() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"Alice", "Bob", "Charlie"}, names)
	assert.Equal(t, []string{"Alice", "Bob", "Charlie"}, s.Names())
}
