package contact

// Contact is a single phonebook entry. IDs are assigned by the server when
// the entry is created and are never changed afterwards.
type Contact struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
}

// Seed returns the entries the phonebook starts with.
func Seed() []Contact {
	return []Contact{
		{ID: 1, Name: "Arto Hellas", Number: "040-123456"},
		{ID: 2, Name: "Ada Lovelace", Number: "39-44-5323523"},
		{ID: 3, Name: "Dan Abramov", Number: "12-43-234345"},
		{ID: 4, Name: "Mary Poppendieck", Number: "39-23-6423122"},
	}
}
