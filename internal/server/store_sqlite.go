package server

import (
	"database/sql"
	"errors"
)

// SQLiteStore implements BookStore over an in-memory SQLite database.
//
// The observable semantics match MemoryStore exactly. Ids are assigned
// strictly increasing along the sequence, so id order and insertion order
// are the same thing and ORDER BY id reproduces the slice ordering.
type SQLiteStore struct {
	DB *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{DB: db}
}

func (s *SQLiteStore) List() ([]Book, error) {
	rows, err := s.DB.Query(`SELECT id, title, author FROM books ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (s *SQLiteStore) Get(id int64) (Book, bool, error) {
	var b Book
	err := s.DB.QueryRow(
		`SELECT id, title, author FROM books WHERE id = ?`, id,
	).Scan(&b.ID, &b.Title, &b.Author)
	if errors.Is(err, sql.ErrNoRows) {
		return Book{}, false, nil
	}
	if err != nil {
		return Book{}, false, err
	}
	return b, true, nil
}

func (s *SQLiteStore) Create(title, author string) (Book, error) {
	// Single statement so id assignment and insert cannot interleave.
	var id int64
	err := s.DB.QueryRow(
		`INSERT INTO books (id, title, author)
		 VALUES ((SELECT COALESCE(MAX(id), 0) + 1 FROM books), ?, ?)
		 RETURNING id`,
		title, author,
	).Scan(&id)
	if err != nil {
		return Book{}, err
	}
	return Book{ID: id, Title: title, Author: author}, nil
}

func (s *SQLiteStore) Update(id int64, title, author string) (Book, bool, error) {
	res, err := s.DB.Exec(
		`UPDATE books SET title = ?, author = ? WHERE id = ?`,
		title, author, id,
	)
	if err != nil {
		return Book{}, false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Book{}, false, err
	}
	if n == 0 {
		return Book{}, false, nil
	}
	return Book{ID: id, Title: title, Author: author}, true, nil
}

func (s *SQLiteStore) Delete(id int64) (bool, error) {
	res, err := s.DB.Exec(`DELETE FROM books WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

var _ BookStore = (*SQLiteStore)(nil)
