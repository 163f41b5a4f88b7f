package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/klauspost/compress/gzhttp"
)

// API wires the book store into HTTP handlers.
type API struct {
	Store BookStore
	Log   *slog.Logger
}

// Handler returns the fully wired handler: routes plus the middleware
// chain (request id, request logging, security headers, gzip).
func (a *API) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", a.Health)
	mux.HandleFunc("GET /books", a.ListBooks)
	mux.HandleFunc("POST /books", a.CreateBook)
	mux.HandleFunc("GET /books/{id}", a.GetBook)
	mux.HandleFunc("PUT /books/{id}", a.UpdateBook)
	mux.HandleFunc("DELETE /books/{id}", a.DeleteBook)
	mux.HandleFunc("GET /script", a.Script)

	var h http.Handler = gzhttp.GzipHandler(mux)
	h = SecurityHeaders(h)
	h = RequestLogging(a.Log, h)
	h = RequestID(h)
	return h
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func readBody(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(io.LimitReader(r.Body, 1<<20))
}

// decodeInput reads the request body into a BookInput. Decode problems are
// not errors here: the contract accepts any body, so a bad one just yields
// zero-value fields.
func decodeInput(r *http.Request) BookInput {
	var in BookInput
	if body, err := readBody(r); err == nil {
		_ = json.Unmarshal(body, &in)
	}
	return in
}

// pathID parses the {id} segment. A value that is not a number behaves as
// "no such record" by design: the caller answers 404, never a parse error.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// storeError covers driver failures from the sqlite backend; the memory
// store never reaches it. The contract defines no error payload, so the
// response is a bare 500.
func (a *API) storeError(w http.ResponseWriter, r *http.Request, err error) {
	a.Log.Error("store failure", "method", r.Method, "path", r.URL.Path, "error", err)
	w.WriteHeader(http.StatusInternalServerError)
}

func (a *API) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *API) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := a.Store.List()
	if err != nil {
		a.storeError(w, r, err)
		return
	}

	annotated := make([]LinkedBook, 0, len(books))
	for _, b := range books {
		annotated = append(annotated, LinkedBook{
			Book:  b,
			Links: Links{Self: bookPath(b.ID)},
		})
	}

	// The collection is the one cacheable response in the service.
	w.Header().Set("Cache-Control", "public, max-age=60")
	writeJSON(w, http.StatusOK, Envelope{
		Data:  annotated,
		Links: Links{Self: booksPath},
	})
}

func (a *API) GetBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	b, found, err := a.Store.Get(id)
	if err != nil {
		a.storeError(w, r, err)
		return
	}
	if !found {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, Envelope{
		Data:  b,
		Links: Links{Self: bookPath(b.ID), Collection: booksPath},
	})
}

func (a *API) CreateBook(w http.ResponseWriter, r *http.Request) {
	in := decodeInput(r)

	b, err := a.Store.Create(in.Title, in.Author)
	if err != nil {
		a.storeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, Envelope{
		Data:  b,
		Links: Links{Self: bookPath(b.ID)},
	})
}

func (a *API) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	in := decodeInput(r)

	b, found, err := a.Store.Update(id, in.Title, in.Author)
	if err != nil {
		a.storeError(w, r, err)
		return
	}
	if !found {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, Envelope{
		Data:  b,
		Links: Links{Self: bookPath(b.ID)},
	})
}

func (a *API) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	deleted, err := a.Store.Delete(id)
	if err != nil {
		a.storeError(w, r, err)
		return
	}
	if !deleted {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

const codeOnDemand = `console.log("Hello from code on demand!")`

// Script serves a fixed snippet of client-executable code, the REST
// code-on-demand constraint in its smallest form.
func (a *API) Script(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/javascript")
	_, _ = w.Write([]byte(codeOnDemand))
}
