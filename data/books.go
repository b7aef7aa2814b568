package data

import (
	"strings"

	"github.com/emzola/catalog/internal/validator"
)

// Book defines a book record as served by the books API. A zero ID marks a record
// that has not been created yet.
type Book struct {
	ID            int64    `json:"id,omitzero"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	ISBN          string   `json:"isbn"`
	PublishedDate Optional `json:"published_date,omitzero" swaggertype:"string"`
	Genre         Optional `json:"genre,omitzero" swaggertype:"string"`
	Description   Optional `json:"description,omitzero" swaggertype:"string"`
}

// Draft field names. They match the JSON keys of Book.
const (
	FieldTitle         = "title"
	FieldAuthor        = "author"
	FieldISBN          = "isbn"
	FieldPublishedDate = "published_date"
	FieldGenre         = "genre"
	FieldDescription   = "description"
)

// DraftFields lists every editable field in form order.
var DraftFields = []string{
	FieldTitle,
	FieldAuthor,
	FieldISBN,
	FieldPublishedDate,
	FieldGenre,
	FieldDescription,
}

// Draft holds the raw, untrimmed input of the book form.
type Draft struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	ISBN          string `json:"isbn"`
	PublishedDate string `json:"published_date"`
	Genre         string `json:"genre"`
	Description   string `json:"description"`
}

// DraftFrom seeds a draft from an existing record. Absent attributes become empty
// strings. A nil record yields an empty draft.
func DraftFrom(book *Book) Draft {
	if book == nil {
		return Draft{}
	}
	return Draft{
		Title:         book.Title,
		Author:        book.Author,
		ISBN:          book.ISBN,
		PublishedDate: book.PublishedDate.String(),
		Genre:         book.Genre.String(),
		Description:   book.Description.String(),
	}
}

// Set assigns value to the named field. It returns false for an unknown field.
func (d *Draft) Set(field, value string) bool {
	switch field {
	case FieldTitle:
		d.Title = value
	case FieldAuthor:
		d.Author = value
	case FieldISBN:
		d.ISBN = value
	case FieldPublishedDate:
		d.PublishedDate = value
	case FieldGenre:
		d.Genre = value
	case FieldDescription:
		d.Description = value
	default:
		return false
	}
	return true
}

// Get returns the value of the named field, or the empty string for an unknown field.
func (d Draft) Get(field string) string {
	switch field {
	case FieldTitle:
		return d.Title
	case FieldAuthor:
		return d.Author
	case FieldISBN:
		return d.ISBN
	case FieldPublishedDate:
		return d.PublishedDate
	case FieldGenre:
		return d.Genre
	case FieldDescription:
		return d.Description
	}
	return ""
}

// Book converts the draft into a record without an ID: strings are trimmed and empty
// optional attributes become absent.
func (d Draft) Book() Book {
	return Book{
		Title:         strings.TrimSpace(d.Title),
		Author:        strings.TrimSpace(d.Author),
		ISBN:          strings.TrimSpace(d.ISBN),
		PublishedDate: OptionalFrom(d.PublishedDate),
		Genre:         OptionalFrom(d.Genre),
		Description:   OptionalFrom(d.Description),
	}
}

// ValidateDraft checks the presence of the required fields.
func ValidateDraft(v *validator.Validator, d Draft) {
	v.Check(validator.NotBlank(d.Title), FieldTitle, "must be provided")
	v.Check(validator.NotBlank(d.Author), FieldAuthor, "must be provided")
	v.Check(validator.NotBlank(d.ISBN), FieldISBN, "must be provided")
}

// Answers to a confirmation prompt.
const (
	ConfirmYes = "yes"
	ConfirmNo  = "no"
)

// ValidateConfirmation checks that answer is one the prompt offers.
func ValidateConfirmation(v *validator.Validator, answer string) {
	v.Check(validator.In(answer, ConfirmYes, ConfirmNo), "confirm", "must be yes or no")
}
