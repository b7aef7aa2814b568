package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emzola/catalog/data"
)

type books interface {
	ListBooks(ctx context.Context) ([]data.Book, error)
	GetBook(ctx context.Context, bookID int64) (*data.Book, error)
	CreateBook(ctx context.Context, book data.Book) (*data.Book, error)
	UpdateBook(ctx context.Context, book data.Book) (*data.Book, error)
	DeleteBook(ctx context.Context, bookID int64) error
}

// ListBooks retrieves every book, in the order the API returns them.
func (r *repository) ListBooks(ctx context.Context) ([]data.Book, error) {
	var books []data.Book
	err := r.do(ctx, http.MethodGet, "/api/books", nil, &books)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []data.Book{}
	}
	return books, nil
}

// GetBook retrieves a single book by its ID.
func (r *repository) GetBook(ctx context.Context, bookID int64) (*data.Book, error) {
	if bookID < 1 {
		return nil, ErrRecordNotFound
	}
	var book data.Book
	err := r.do(ctx, http.MethodGet, fmt.Sprintf("/api/books/%d", bookID), nil, &book)
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// CreateBook sends a draft to the API. Any ID on book is dropped from the payload.
func (r *repository) CreateBook(ctx context.Context, book data.Book) (*data.Book, error) {
	book.ID = 0
	var created data.Book
	err := r.do(ctx, http.MethodPost, "/api/books", book, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateBook replaces the book addressed by book.ID.
func (r *repository) UpdateBook(ctx context.Context, book data.Book) (*data.Book, error) {
	if book.ID < 1 {
		return nil, ErrRecordNotFound
	}
	var updated data.Book
	err := r.do(ctx, http.MethodPut, fmt.Sprintf("/api/books/%d", book.ID), book, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteBook removes the book with the given ID. The response body is ignored.
func (r *repository) DeleteBook(ctx context.Context, bookID int64) error {
	if bookID < 1 {
		return ErrRecordNotFound
	}
	return r.do(ctx, http.MethodDelete, fmt.Sprintf("/api/books/%d", bookID), nil, nil)
}
