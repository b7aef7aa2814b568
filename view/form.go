package view

import "github.com/emzola/catalog/data"

// BookIDField names the hidden input that carries the edited record's ID, so a
// form the server has lost can be reopened on the same record.
const BookIDField = "book_id"

// Field is one bound input of the book form.
type Field struct {
	Name        string
	Label       string
	Value       string
	Placeholder string
	Required    bool
	Multiline   bool
}

// FormView renders the modal book form.
type FormView struct {
	Editing     bool
	BookID      int64
	Heading     string
	SubmitLabel string
	Fields      []Field
}

// NewFormView binds draft to the form inputs.
func NewFormView(draft data.Draft, editing bool) FormView {
	fv := FormView{
		Editing:     editing,
		Heading:     "Adicionar Novo Livro",
		SubmitLabel: "Adicionar",
	}
	if editing {
		fv.Heading = "Editar Livro"
		fv.SubmitLabel = "Atualizar"
	}
	fv.Fields = []Field{
		{Name: data.FieldTitle, Label: "Título", Required: true},
		{Name: data.FieldAuthor, Label: "Autor", Required: true},
		{Name: data.FieldISBN, Label: "ISBN", Required: true},
		{Name: data.FieldPublishedDate, Label: "Data de Publicação", Placeholder: "Ex: 2023"},
		{Name: data.FieldGenre, Label: "Gênero", Placeholder: "Ex: Romance, Ficção"},
		{Name: data.FieldDescription, Label: "Descrição", Placeholder: "Descrição do livro...", Multiline: true},
	}
	for i := range fv.Fields {
		fv.Fields[i].Value = draft.Get(fv.Fields[i].Name)
	}
	return fv
}
