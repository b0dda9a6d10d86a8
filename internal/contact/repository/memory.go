package repository

import (
	"errors"
	"sync"

	"github.com/phonebook/phonebook/backend/internal/contact"
)

var (
	ErrNotFound      = errors.New("contact not found")
	ErrDuplicateName = errors.New("contact name already exists")
)

// MemoryRepo holds the phonebook as an ordered slice. Order is insertion
// order; deletes remove entries in place.
type MemoryRepo struct {
	mu       sync.RWMutex
	contacts []contact.Contact
}

func NewMemoryRepo(seed ...contact.Contact) *MemoryRepo {
	contacts := make([]contact.Contact, len(seed))
	copy(contacts, seed)
	return &MemoryRepo{contacts: contacts}
}

// List returns a copy of all contacts in collection order.
func (m *MemoryRepo) List() []contact.Contact {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]contact.Contact, len(m.contacts))
	copy(out, m.contacts)
	return out
}

// Get returns the first contact with the given id.
func (m *MemoryRepo) Get(id int) (contact.Contact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.contacts {
		if c.ID == id {
			return c, nil
		}
	}
	return contact.Contact{}, ErrNotFound
}

// Create appends c unless a contact with the same name already exists.
// The name check and the append happen under one lock.
func (m *MemoryRepo) Create(c contact.Contact) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.contacts {
		if existing.Name == c.Name {
			return ErrDuplicateName
		}
	}
	m.contacts = append(m.contacts, c)
	return nil
}

// Delete removes every contact carrying id and reports how many were removed.
// Deleting an unknown id is not an error.
func (m *MemoryRepo) Delete(id int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.contacts[:0]
	for _, c := range m.contacts {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	removed := len(m.contacts) - len(kept)
	clear(m.contacts[len(kept):])
	m.contacts = kept
	return removed
}

func (m *MemoryRepo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.contacts)
}
