package server

// SeedBooks returns the records the server starts with.
func SeedBooks() []Book {
	return []Book{
		{ID: 1, Title: "Book1", Author: "Author1"},
		{ID: 2, Title: "Book2", Author: "Author2"},
	}
}
