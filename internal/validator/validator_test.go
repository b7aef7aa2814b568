package validator

import "testing"

func TestValidator(t *testing.T) {
	t.Run("Check keeps first message", func(t *testing.T) {
		v := New()
		v.Check(false, "title", "must be provided")
		v.Check(false, "title", "must not be blank")
		v.Check(true, "author", "must be provided")
		if v.Valid() {
			t.Fatal("expected validator to be invalid")
		}
		if got := v.Errors["title"]; got != "must be provided" {
			t.Errorf("expected %q; got %q", "must be provided", got)
		}
		if _, ok := v.Errors["author"]; ok {
			t.Error("expected no error for author")
		}
	})

	t.Run("NotBlank", func(t *testing.T) {
		tests := map[string]bool{
			"":       false,
			"   ":    false,
			"\t\n":   false,
			"Dune":   true,
			" Dune ": true,
		}
		for input, want := range tests {
			if got := NotBlank(input); got != want {
				t.Errorf("NotBlank(%q) = %v; want %v", input, got, want)
			}
		}
	})

	t.Run("In", func(t *testing.T) {
		if !In("genre", "title", "genre") {
			t.Error("expected genre to be in list")
		}
		if In("year", "title", "genre") {
			t.Error("expected year not to be in list")
		}
	})
}
