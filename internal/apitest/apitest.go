// Package apitest runs an in-memory books API for tests. It answers the same routes
// and error shapes as the real backend.
package apitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"github.com/emzola/catalog/data"
	"github.com/julienschmidt/httprouter"
)

// Failure is a canned response returned instead of the normal one.
type Failure struct {
	Status      int
	Body        string
	ContentType string
}

// Server is a fake books API. The zero value is not usable; call New.
type Server struct {
	*httptest.Server

	mu           sync.Mutex
	htmlNotFound bool
	books        []data.Book
	nextID       int64
	requests     []string
	failures     map[string][]Failure
	stall        chan struct{}
}

// New starts a fake API holding seed. Seed records without an ID get one assigned.
func New(seed ...data.Book) *Server {
	s := &Server{failures: make(map[string][]Failure)}
	for _, b := range seed {
		s.nextID++
		if b.ID == 0 {
			b.ID = s.nextID
		} else if b.ID > s.nextID {
			s.nextID = b.ID
		}
		s.books = append(s.books, b)
	}

	router := httprouter.New()
	router.HandlerFunc(http.MethodGet, "/api/books", s.list)
	router.HandlerFunc(http.MethodPost, "/api/books", s.create)
	router.HandlerFunc(http.MethodGet, "/api/books/:id", s.show)
	router.HandlerFunc(http.MethodPut, "/api/books/:id", s.update)
	router.HandlerFunc(http.MethodDelete, "/api/books/:id", s.delete)
	router.HandlerFunc(http.MethodGet, "/api/health", s.health)
	s.Server = httptest.NewServer(s.record(router))
	return s
}

// Fail queues a one-shot failure for the next request matching method and path
// (e.g. "DELETE", "/api/books/1").
func (s *Server) Fail(method, path string, f Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := method + " " + path
	s.failures[key] = append(s.failures[key], f)
}

// StallList blocks every GET /api/books until the returned release func is called.
func (s *Server) StallList() (release func()) {
	ch := make(chan struct{})
	s.mu.Lock()
	s.stall = ch
	s.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.stall = nil
			s.mu.Unlock()
			close(ch)
		})
	}
}

// ServeHTMLNotFound makes unknown IDs answer with an HTML page, as a framework
// default 404 handler would.
func (s *Server) ServeHTMLNotFound() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.htmlNotFound = true
}

// Requests returns every request received so far as "METHOD /path".
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

// Count returns how many requests with the given method were received.
func (s *Server) Count(method string) int {
	n := 0
	for _, r := range s.Requests() {
		if strings.HasPrefix(r, method+" ") {
			n++
		}
	}
	return n
}

// Books returns a copy of the stored records.
func (s *Server) Books() []data.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]data.Book(nil), s.books...)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		s.mu.Lock()
		s.requests = append(s.requests, key)
		var failure *Failure
		if queued := s.failures[key]; len(queued) > 0 {
			failure = &queued[0]
			s.failures[key] = queued[1:]
		}
		stall := s.stall
		s.mu.Unlock()

		if stall != nil && key == "GET /api/books" {
			<-stall
		}
		if failure != nil {
			contentType := failure.ContentType
			if contentType == "" {
				contentType = "application/json"
			}
			w.Header().Set("Content-Type", contentType)
			w.WriteHeader(failure.Status)
			w.Write([]byte(failure.Body))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	books := s.Books()
	if books == nil {
		books = []data.Book{}
	}
	writeJSON(w, http.StatusOK, books)
}

func (s *Server) show(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(r)
	if i < 0 {
		s.notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, s.books[i])
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var in data.Book
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if in.Title == "" || in.Author == "" || in.ISBN == "" {
		writeError(w, http.StatusBadRequest, "Título, autor e ISBN são obrigatórios")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.books {
		if b.ISBN == in.ISBN {
			writeError(w, http.StatusBadRequest, "ISBN já existe")
			return
		}
	}
	s.nextID++
	in.ID = s.nextID
	s.books = append(s.books, in)
	writeJSON(w, http.StatusCreated, in)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	var in data.Book
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Dados não fornecidos")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(r)
	if i < 0 {
		s.notFound(w)
		return
	}
	for j, b := range s.books {
		if j != i && b.ISBN == in.ISBN {
			writeError(w, http.StatusBadRequest, "ISBN já existe")
			return
		}
	}
	in.ID = s.books[i].ID
	s.books[i] = in
	writeJSON(w, http.StatusOK, in)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(r)
	if i < 0 {
		s.notFound(w)
		return
	}
	s.books = append(s.books[:i], s.books[i+1:]...)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Livro deletado com sucesso"})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, data.Health{Status: "OK", Message: "API funcionando corretamente"})
}

// indexOf must be called with s.mu held.
func (s *Server) indexOf(r *http.Request) int {
	id, err := strconv.ParseInt(httprouter.ParamsFromContext(r.Context()).ByName("id"), 10, 64)
	if err != nil {
		return -1
	}
	for i, b := range s.books {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// notFound must be called with s.mu held.
func (s *Server) notFound(w http.ResponseWriter) {
	if s.htmlNotFound {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, "<!doctype html>\n<html><title>404 Not Found</title><h1>Not Found</h1></html>\n")
		return
	}
	writeError(w, http.StatusNotFound, "not found")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
