package server

import "fmt"

// Book is the one resource this service exposes.
type Book struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// BookInput is the request body for POST /books and PUT /books/{id}.
// Fields are taken as-is: empty strings are allowed, and any id in the
// payload is ignored in favor of the path id. Skipping validation is a
// deliberate simplification of this service, not an accident.
type BookInput struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

// Links holds the navigable links attached to a response.
type Links struct {
	Self       string `json:"self"`
	Collection string `json:"collection,omitempty"`
}

// Envelope is the uniform response wrapper: the resource (or list of
// resources) plus its links.
type Envelope struct {
	Data  any   `json:"data"`
	Links Links `json:"links"`
}

// LinkedBook is a list element annotated with its own self link.
type LinkedBook struct {
	Book
	Links Links `json:"links"`
}

const booksPath = "/books"

func bookPath(id int64) string {
	return fmt.Sprintf("%s/%d", booksPath, id)
}
