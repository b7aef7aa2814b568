package view

import (
	"fmt"

	"github.com/emzola/catalog/data"
)

// Card is one rendered book. Optional attributes are empty when they should not be
// shown.
type Card struct {
	ID            int64
	Title         string
	Author        string
	ISBN          string
	PublishedDate string
	Genre         string
	Description   string
	EditURL       string
	DeleteURL     string
}

// ListView renders the catalog as a grid of cards, or as an empty-state message.
type ListView struct {
	Cards []Card
}

// Empty reports whether the empty-state message replaces the grid.
func (l ListView) Empty() bool {
	return len(l.Cards) == 0
}

// NewListView builds one card per book, keeping the given order.
func NewListView(books []data.Book) ListView {
	cards := make([]Card, 0, len(books))
	for _, b := range books {
		cards = append(cards, Card{
			ID:            b.ID,
			Title:         b.Title,
			Author:        b.Author,
			ISBN:          b.ISBN,
			PublishedDate: b.PublishedDate.String(),
			Genre:         b.Genre.String(),
			Description:   b.Description.String(),
			EditURL:       EditURL(b.ID),
			DeleteURL:     DeleteURL(b.ID),
		})
	}
	return ListView{Cards: cards}
}

// EditURL is the edit intent of a card.
func EditURL(bookID int64) string {
	return fmt.Sprintf("/books/%d/edit", bookID)
}

// DeleteURL is the delete intent of a card. A GET shows the confirmation prompt and
// a POST answers it.
func DeleteURL(bookID int64) string {
	return fmt.Sprintf("/books/%d/delete", bookID)
}
