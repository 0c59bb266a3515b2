package store

import (
	"errors"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrConflict is returned by Create when a todo with the same id exists.
	ErrConflict = errors.New("todo id already exists")
	// ErrNotFound is returned by Update and Delete when no todo has the id.
	ErrNotFound = errors.New("todo not found")
)

// Todo is a single entry in the list. Identity is the id.
type Todo struct {
	ID        uint64 `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

func (t Todo) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Text,
			validation.Required,
			validation.Length(1, 1024),
		),
	)
}

// UnlimitedLimit disables the limit in List.
const UnlimitedLimit = -1

// Store holds the todos in insertion order behind one mutex. The guard is
// held only for the scan or mutation itself, never across handler work.
type Store struct {
	mu    sync.Mutex
	todos []Todo
}

func New() *Store {
	return &Store{}
}

// List returns a snapshot copy of the collection, skipping the first offset
// entries and taking at most limit entries. A negative limit means unbounded.
// An offset past the end yields an empty slice, never an error.
func (s *Store) List(offset, limit int) []Todo {
	s.mu.Lock()
	defer s.mu.Unlock()

	if offset < 0 {
		offset = 0
	}
	if offset >= len(s.todos) {
		return []Todo{}
	}

	rest := s.todos[offset:]
	if limit >= 0 && limit < len(rest) {
		rest = rest[:limit]
	}

	out := make([]Todo, len(rest))
	copy(out, rest)
	return out
}

// Create appends the todo unless one with the same id already exists, in
// which case the store is left untouched and ErrConflict is returned.
func (s *Store) Create(todo Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.todos {
		if existing.ID == todo.ID {
			return ErrConflict
		}
	}

	s.todos = append(s.todos, todo)
	return nil
}

// Update replaces the todo with the given id in place. The replacement is
// stored as-is, including its id; no re-validation of a key change happens
// here. Returns ErrNotFound when no entry has the id.
func (s *Store) Update(id uint64, todo Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos[i] = todo
			return nil
		}
	}

	return ErrNotFound
}

// Delete removes every todo with the given id and reports ErrNotFound when
// nothing was removed.
func (s *Store) Delete(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.todos[:0]
	for _, todo := range s.todos {
		if todo.ID != id {
			kept = append(kept, todo)
		}
	}

	if len(kept) == len(s.todos) {
		return ErrNotFound
	}

	s.todos = kept
	return nil
}

// Len reports the current number of todos.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.todos)
}
