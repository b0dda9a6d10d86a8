package service

import (
	"testing"

	"github.com/phonebook/phonebook/backend/internal/contact"
	"github.com/phonebook/phonebook/backend/internal/contact/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeeded(opts ...Option) Service {
	return NewMemoryService(repository.NewMemoryRepo(contact.Seed()...), opts...)
}

func TestCreateValidationOrder(t *testing.T) {
	svc := newSeeded()

	_, err := svc.Create("", "")
	require.ErrorIs(t, err, ErrNameMissing)

	_, err = svc.Create("", "123")
	require.ErrorIs(t, err, ErrNameMissing)

	_, err = svc.Create("Someone", "")
	require.ErrorIs(t, err, ErrNumberMissing)

	// a duplicate without a number still reports the missing number first
	_, err = svc.Create("Ada Lovelace", "")
	require.ErrorIs(t, err, ErrNumberMissing)

	_, err = svc.Create("Ada Lovelace", "1")
	require.ErrorIs(t, err, ErrNameNotUnique)

	assert.Equal(t, 4, svc.Count())
}

func TestCreateAssignsGeneratedID(t *testing.T) {
	svc := newSeeded(WithIDGenerator(func() int { return 77 }))

	c, err := svc.Create("Grace Hopper", "555-0100")
	require.NoError(t, err)
	assert.Equal(t, contact.Contact{ID: 77, Name: "Grace Hopper", Number: "555-0100"}, c)
	assert.Equal(t, 5, svc.Count())

	got, err := svc.Get(77)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestDefaultIDGeneratorRange(t *testing.T) {
	svc := NewMemoryService(repository.NewMemoryRepo())
	for i := 0; i < 200; i++ {
		c, err := svc.Create(string(rune('a'+i%26))+string(rune('A'+i/26)), "1")
		require.NoError(t, err)
		require.GreaterOrEqual(t, c.ID, 0)
		require.Less(t, c.ID, MaxID)
	}
}

func TestGetAndDelete(t *testing.T) {
	svc := newSeeded()

	_, err := svc.Get(999)
	require.ErrorIs(t, err, ErrNotFound)

	svc.Delete(2)
	_, err = svc.Get(2)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, svc.List(), 3)

	svc.Delete(2)
	assert.Equal(t, 3, svc.Count())
}
