package data

import (
	"encoding/json"
	"testing"

	"github.com/emzola/catalog/internal/validator"
	"github.com/google/go-cmp/cmp"
)

func TestBookJSON(t *testing.T) {
	t.Run("absent attributes are omitted", func(t *testing.T) {
		book := Book{Title: "Dune", Author: "Herbert", ISBN: "123"}
		js, err := json.Marshal(book)
		if err != nil {
			t.Fatal(err)
		}
		want := `{"title":"Dune","author":"Herbert","isbn":"123"}`
		if string(js) != want {
			t.Errorf("expected %s; got %s", want, js)
		}
	})

	t.Run("present attributes and id are encoded", func(t *testing.T) {
		book := Book{ID: 1, Title: "Dune", Author: "Herbert", ISBN: "123", Genre: Some("Sci-Fi")}
		js, err := json.Marshal(book)
		if err != nil {
			t.Fatal(err)
		}
		want := `{"id":1,"title":"Dune","author":"Herbert","isbn":"123","genre":"Sci-Fi"}`
		if string(js) != want {
			t.Errorf("expected %s; got %s", want, js)
		}
	})

	t.Run("null decodes as absent", func(t *testing.T) {
		var book Book
		err := json.Unmarshal([]byte(`{"id":7,"title":"Iracema","author":"Alencar","isbn":"9","published_date":null,"genre":"Romance"}`), &book)
		if err != nil {
			t.Fatal(err)
		}
		if book.PublishedDate.Present() {
			t.Error("expected published_date to be absent")
		}
		if book.Description.Present() {
			t.Error("expected missing description to be absent")
		}
		if got, ok := book.Genre.Get(); !ok || got != "Romance" {
			t.Errorf("expected genre %q; got %q (present=%v)", "Romance", got, ok)
		}
	})
}

func TestOptionalFrom(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		present bool
	}{
		{input: "", present: false},
		{input: "   ", present: false},
		{input: " 1899 ", want: "1899", present: true},
	}
	for _, tt := range tests {
		got, ok := OptionalFrom(tt.input).Get()
		if ok != tt.present || got != tt.want {
			t.Errorf("OptionalFrom(%q) = (%q, %v); want (%q, %v)", tt.input, got, ok, tt.want, tt.present)
		}
	}
}

func TestDraft(t *testing.T) {
	t.Run("seeded from record", func(t *testing.T) {
		book := &Book{ID: 3, Title: "Dom Casmurro", Author: "Machado de Assis", ISBN: "978", Genre: Some("Romance")}
		want := Draft{Title: "Dom Casmurro", Author: "Machado de Assis", ISBN: "978", Genre: "Romance"}
		if diff := cmp.Diff(want, DraftFrom(book)); diff != "" {
			t.Errorf("DraftFrom mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(Draft{}, DraftFrom(nil)); diff != "" {
			t.Errorf("DraftFrom(nil) mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Set and Get", func(t *testing.T) {
		var d Draft
		for _, field := range DraftFields {
			if !d.Set(field, field+"-value") {
				t.Fatalf("expected %s to be settable", field)
			}
			if got := d.Get(field); got != field+"-value" {
				t.Errorf("expected %q; got %q", field+"-value", got)
			}
		}
		if d.Set("year", "1965") {
			t.Error("expected unknown field to be rejected")
		}
	})

	t.Run("Book trims and drops empty optionals", func(t *testing.T) {
		d := Draft{Title: "  Dune ", Author: "Herbert ", ISBN: " 123", PublishedDate: "  ", Genre: " Sci-Fi ", Description: ""}
		got := d.Book()
		want := Book{Title: "Dune", Author: "Herbert", ISBN: "123", Genre: Some("Sci-Fi")}
		if diff := cmp.Diff(want, got, cmp.AllowUnexported(Optional{})); diff != "" {
			t.Errorf("Book mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("ValidateDraft", func(t *testing.T) {
		v := validator.New()
		ValidateDraft(v, Draft{Title: " ", Author: "Herbert"})
		if v.Valid() {
			t.Fatal("expected draft to be invalid")
		}
		for _, field := range []string{FieldTitle, FieldISBN} {
			if _, ok := v.Errors[field]; !ok {
				t.Errorf("expected error for %s", field)
			}
		}
		if _, ok := v.Errors[FieldAuthor]; ok {
			t.Error("expected no error for author")
		}
	})
}

func TestValidateConfirmation(t *testing.T) {
	tests := []struct {
		answer string
		valid  bool
	}{
		{ConfirmYes, true},
		{ConfirmNo, true},
		{"", false},
		{"YES", false},
		{"maybe", false},
	}
	for _, tt := range tests {
		v := validator.New()
		ValidateConfirmation(v, tt.answer)
		if v.Valid() != tt.valid {
			t.Errorf("answer %q: expected valid=%v; got errors %v", tt.answer, tt.valid, v.Errors)
		}
	}
}
