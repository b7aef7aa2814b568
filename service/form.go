package service

import (
	"fmt"

	"github.com/emzola/catalog/data"
	"github.com/emzola/catalog/internal/validator"
)

// Form is the editing surface of the catalog. It is bound either to an existing
// record or to nothing, in which case submitting it creates a record.
type Form struct {
	book  *data.Book
	draft data.Draft
}

// NewForm seeds a form from book. A nil book yields an empty create form.
func NewForm(book *data.Book) *Form {
	f := &Form{draft: data.DraftFrom(book)}
	if book != nil {
		b := *book
		f.book = &b
	}
	return f
}

// Editing reports whether the form is bound to an existing record.
func (f *Form) Editing() bool {
	return f.book != nil
}

// Draft returns the current field values.
func (f *Form) Draft() data.Draft {
	return f.draft
}

// SetField records a single keystroke-level change.
func (f *Form) SetField(name, value string) error {
	if !f.draft.Set(name, value) {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// Submit applies the submission contract. It fails with ErrFailedValidation when a
// required field is blank, leaving the draft untouched. Otherwise it returns the
// trimmed payload, carrying the bound record's ID when editing.
func (f *Form) Submit() (data.Book, error) {
	v := validator.New()
	if data.ValidateDraft(v, f.draft); !v.Valid() {
		return data.Book{}, failedValidation(v.Errors)
	}
	book := f.draft.Book()
	if f.book != nil {
		book.ID = f.book.ID
	}
	return book, nil
}
