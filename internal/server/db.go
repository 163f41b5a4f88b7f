package server

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

// OpenMemoryDB opens a fresh in-memory SQLite database and creates the
// schema. The database lives for the process only; there is deliberately
// no file-backed variant, since nothing here survives a restart.
func OpenMemoryDB() (*sql.DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	// Every :memory: connection is its own database, so the pool must
	// never open a second one.
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS books (
			id INTEGER NOT NULL PRIMARY KEY,
			title TEXT NOT NULL,
			author TEXT NOT NULL
		);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// SeedDB inserts records with their fixed ids, bypassing id assignment.
func SeedDB(db *sql.DB, books []Book) error {
	for _, b := range books {
		if _, err := db.Exec(
			`INSERT INTO books (id, title, author) VALUES (?, ?, ?)`,
			b.ID, b.Title, b.Author,
		); err != nil {
			return err
		}
	}
	return nil
}
