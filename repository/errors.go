package repository

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrUnexpectedResponse = errors.New("unexpected response from books api")
)

// APIError is a non-2xx response whose JSON body carries an error message.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("books api: %s: %s", e.Status, e.Message)
}
