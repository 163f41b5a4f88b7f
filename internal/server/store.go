package server

import "sync"

// BookStore is the single owner of the book collection.
//
// Implementations keep records in insertion order and assign ids from the
// current last record only: last id + 1, or 1 when the collection is empty.
// Deleting the last record therefore makes its id reusable, while gaps in
// the middle of the sequence never refill.
type BookStore interface {
	List() ([]Book, error)
	Get(id int64) (Book, bool, error)
	Create(title, author string) (Book, error)
	Update(id int64, title, author string) (Book, bool, error)
	Delete(id int64) (bool, error)
}

// MemoryStore keeps books in an ordered slice. The mutex is the only
// concurrency control in the system: net/http runs handlers on separate
// goroutines, so two mutations must not interleave.
type MemoryStore struct {
	mu    sync.RWMutex
	books []Book
}

// NewMemoryStore builds a store pre-populated with the given records.
// The seed is copied; callers keep ownership of their slice.
func NewMemoryStore(seed []Book) *MemoryStore {
	s := &MemoryStore{books: make([]Book, 0, len(seed))}
	s.books = append(s.books, seed...)
	return s
}

// List returns all books in insertion order.
func (s *MemoryStore) List() ([]Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Book, len(s.books))
	copy(out, s.books)
	return out, nil
}

// Get returns the book with the given id, or false when no record matches.
func (s *MemoryStore) Get(id int64) (Book, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.books {
		if b.ID == id {
			return b, true, nil
		}
	}
	return Book{}, false, nil
}

// Create appends a new book with the next id.
func (s *MemoryStore) Create(title, author string) (Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := Book{ID: s.nextID(), Title: title, Author: author}
	s.books = append(s.books, b)
	return b, nil
}

// nextID reads only the current tail, not a counter, so a deleted maximum
// id can come back. Callers hold mu.
func (s *MemoryStore) nextID() int64 {
	if len(s.books) == 0 {
		return 1
	}
	return s.books[len(s.books)-1].ID + 1
}

// Update replaces the record wholesale, keeping the path id.
func (s *MemoryStore) Update(id int64, title, author string) (Book, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.books {
		if b.ID == id {
			s.books[i] = Book{ID: id, Title: title, Author: author}
			return s.books[i], true, nil
		}
	}
	return Book{}, false, nil
}

// Delete removes the record, preserving the relative order of the rest.
func (s *MemoryStore) Delete(id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.books {
		if b.ID == id {
			s.books = append(s.books[:i], s.books[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

var _ BookStore = (*MemoryStore)(nil)
