package service

import (
	"context"
	"strconv"

	"github.com/emzola/catalog/data"
)

var sampleBooks = []data.Book{
	{
		Title:         "Dom Casmurro",
		Author:        "Machado de Assis",
		ISBN:          "978-85-359-0277-5",
		PublishedDate: data.Some("1899"),
		Genre:         data.Some("Romance"),
		Description:   data.Some("Um dos maiores clássicos da literatura brasileira, narrado por Bento Santiago."),
	},
	{
		Title:         "O Cortiço",
		Author:        "Aluísio Azevedo",
		ISBN:          "978-85-359-0123-5",
		PublishedDate: data.Some("1890"),
		Genre:         data.Some("Naturalismo"),
		Description:   data.Some("Romance naturalista que retrata a vida em um cortiço no Rio de Janeiro."),
	},
	{
		Title:         "Iracema",
		Author:        "José de Alencar",
		ISBN:          "978-85-359-0456-4",
		PublishedDate: data.Some("1865"),
		Genre:         data.Some("Romance"),
		Description:   data.Some("Lenda do Ceará que narra a história de amor entre Iracema e Martim."),
	},
	{
		Title:         "O Guarani",
		Author:        "José de Alencar",
		ISBN:          "978-85-359-0789-3",
		PublishedDate: data.Some("1857"),
		Genre:         data.Some("Romance"),
		Description:   data.Some("Romance indianista que conta a história de Peri e Ceci."),
	},
	{
		Title:         "Memórias Póstumas de Brás Cubas",
		Author:        "Machado de Assis",
		ISBN:          "978-85-359-0321-5",
		PublishedDate: data.Some("1881"),
		Genre:         data.Some("Romance"),
		Description:   data.Some("Romance narrado por um defunto autor, marco do realismo brasileiro."),
	},
}

// Seed creates the sample catalog through the API when the API holds no books.
// It returns the number of records created.
func (s *service) Seed(ctx context.Context) (int, error) {
	books, err := s.repo.ListBooks(ctx)
	if err != nil {
		return 0, err
	}
	if len(books) > 0 {
		s.logger.PrintInfo("catalog already has books, skipping seed", map[string]string{
			"books": strconv.Itoa(len(books)),
		})
		return 0, nil
	}
	created := 0
	for _, book := range sampleBooks {
		if _, err := s.repo.CreateBook(ctx, book); err != nil {
			return created, err
		}
		created++
	}
	s.logger.PrintInfo("catalog seeded", map[string]string{
		"books": strconv.Itoa(created),
	})
	return created, nil
}
