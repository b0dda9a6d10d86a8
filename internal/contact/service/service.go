package service

import (
	"errors"
	"math/rand"

	"github.com/phonebook/phonebook/backend/internal/contact"
	"github.com/phonebook/phonebook/backend/internal/contact/repository"
)

// The messages are returned verbatim to API clients.
var (
	ErrNotFound      = errors.New("not found")
	ErrNameMissing   = errors.New("name is missing")
	ErrNumberMissing = errors.New("number is missing")
	ErrNameNotUnique = errors.New("name must be unique")
)

// MaxID is the exclusive upper bound for generated contact IDs.
const MaxID = 1000

// Service defines the phonebook operations used by the handler layer.
type Service interface {
	List() []contact.Contact
	Get(id int) (contact.Contact, error)
	Create(name, number string) (contact.Contact, error)
	Delete(id int)
	Count() int
}

type Option func(*memoryService)

// WithIDGenerator replaces the random ID source.
func WithIDGenerator(next func() int) Option {
	return func(s *memoryService) { s.nextID = next }
}

// NewMemoryService returns a Service backed by repo.
//
// New IDs are drawn uniformly from [0, MaxID) and are not checked against
// the IDs already in use, so two contacts may end up sharing an ID.
func NewMemoryService(repo *repository.MemoryRepo, opts ...Option) Service {
	s := &memoryService{
		repo:   repo,
		nextID: func() int { return rand.Intn(MaxID) },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type memoryService struct {
	repo   *repository.MemoryRepo
	nextID func() int
}

func (m *memoryService) List() []contact.Contact {
	return m.repo.List()
}

func (m *memoryService) Get(id int) (contact.Contact, error) {
	c, err := m.repo.Get(id)
	if err != nil {
		return contact.Contact{}, ErrNotFound
	}
	return c, nil
}

func (m *memoryService) Create(name, number string) (contact.Contact, error) {
	switch {
	case name == "":
		return contact.Contact{}, ErrNameMissing
	case number == "":
		return contact.Contact{}, ErrNumberMissing
	}
	c := contact.Contact{ID: m.nextID(), Name: name, Number: number}
	if err := m.repo.Create(c); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return contact.Contact{}, ErrNameNotUnique
		}
		return contact.Contact{}, err
	}
	return c, nil
}

func (m *memoryService) Delete(id int) {
	m.repo.Delete(id)
}

func (m *memoryService) Count() int {
	return m.repo.Len()
}
