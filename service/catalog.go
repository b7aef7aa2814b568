package service

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/emzola/catalog/data"
	"github.com/emzola/catalog/internal/jsonlog"
	"github.com/emzola/catalog/repository"
)

// Notifier shows a blocking alert to the user.
type Notifier interface {
	Alert(message string)
}

// Confirmer asks the user a yes/no question.
type Confirmer func(prompt string) bool

// State is a point-in-time copy of a catalog, used for rendering.
type State struct {
	Books    []data.Book `json:"books"`
	Selected *data.Book  `json:"selected"`
	FormOpen bool        `json:"form_open"`
	Loading  bool        `json:"loading"`
	Loaded   bool        `json:"loaded"`
	Draft    *data.Draft `json:"draft,omitempty"`
}

// Catalog is the controller of one catalog screen. It owns the list of books and the
// form, and performs every call to the books API. The API stays the source of
// truth: every successful mutation is followed by a full reload.
type Catalog struct {
	logger *jsonlog.Logger
	repo   repository.Repository
	notify Notifier

	// op serializes operations so that one screen never has two mutations in flight.
	op sync.Mutex

	mu       sync.RWMutex
	books    []data.Book
	selected *data.Book
	form     *Form
	loading  bool
	loaded   bool
}

// NewCatalog returns a controller with an empty, unloaded catalog.
func NewCatalog(logger *jsonlog.Logger, repo repository.Repository, notify Notifier) *Catalog {
	return &Catalog{
		logger: logger,
		repo:   repo,
		notify: notify,
		books:  []data.Book{},
	}
}

// Load replaces the catalog with the API's current list. A failure leaves the list
// unchanged and is only logged.
func (c *Catalog) Load(ctx context.Context) error {
	c.op.Lock()
	defer c.op.Unlock()
	return c.load(ctx)
}

func (c *Catalog) load(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.loading = false
		c.loaded = true
		c.mu.Unlock()
	}()

	books, err := c.repo.ListBooks(ctx)
	if err != nil {
		var apiErr *repository.APIError
		if errors.As(err, &apiErr) {
			c.logger.PrintError(err, map[string]string{
				"message": "Erro ao buscar livros",
				"status":  apiErr.Status,
			})
		} else {
			c.logger.PrintError(err, map[string]string{
				"message": "Erro ao conectar com a API",
			})
		}
		return err
	}
	c.mu.Lock()
	c.books = books
	c.mu.Unlock()
	return nil
}

// Create sends a draft to the API. On success the catalog is reloaded and the form
// closed; on failure the user is alerted and the form stays as it is.
func (c *Catalog) Create(ctx context.Context, book data.Book) error {
	c.op.Lock()
	defer c.op.Unlock()
	return c.create(ctx, book)
}

func (c *Catalog) create(ctx context.Context, book data.Book) error {
	if _, err := c.repo.CreateBook(ctx, book); err != nil {
		c.fail("Erro ao criar livro", err)
		return err
	}
	// A failed reload is logged and leaves the previous list in place.
	_ = c.load(ctx)
	c.mu.Lock()
	c.form = nil
	c.mu.Unlock()
	return nil
}

// Update replaces the record addressed by book.ID. It behaves like Create and also
// clears the selection.
func (c *Catalog) Update(ctx context.Context, book data.Book) error {
	c.op.Lock()
	defer c.op.Unlock()
	return c.update(ctx, book)
}

func (c *Catalog) update(ctx context.Context, book data.Book) error {
	if _, err := c.repo.UpdateBook(ctx, book); err != nil {
		c.fail("Erro ao atualizar livro", err)
		return err
	}
	// A failed reload is logged and leaves the previous list in place.
	_ = c.load(ctx)
	c.mu.Lock()
	c.selected = nil
	c.form = nil
	c.mu.Unlock()
	return nil
}

// Delete removes a record once confirm agrees. A refused or missing confirmation
// sends nothing.
func (c *Catalog) Delete(ctx context.Context, bookID int64, confirm Confirmer) error {
	if confirm == nil || !confirm(PromptDelete) {
		return nil
	}
	c.op.Lock()
	defer c.op.Unlock()
	if err := c.repo.DeleteBook(ctx, bookID); err != nil {
		c.fail("Erro ao deletar livro", err)
		return err
	}
	// A failed reload is logged and leaves the previous list in place.
	_ = c.load(ctx)
	return nil
}

// Submit runs the form's submission contract and dispatches the payload to Update
// when the form is bound to a record, or to Create otherwise.
func (c *Catalog) Submit(ctx context.Context) error {
	c.op.Lock()
	defer c.op.Unlock()

	c.mu.RLock()
	form := c.form
	var (
		book data.Book
		err  error
	)
	if form != nil {
		book, err = form.Submit()
	}
	c.mu.RUnlock()

	switch {
	case form == nil:
		return ErrFormClosed
	case err != nil:
		c.notify.Alert(MessageRequiredFields)
		return err
	case form.Editing():
		return c.update(ctx, book)
	default:
		return c.create(ctx, book)
	}
}

// SetField forwards a keystroke to the open form.
func (c *Catalog) SetField(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.form == nil {
		return ErrFormClosed
	}
	return c.form.SetField(name, value)
}

// OpenEdit selects book and opens the form on it.
func (c *Catalog) OpenEdit(book data.Book) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = &book
	c.form = NewForm(&book)
}

// OpenEditByID opens the form on the record with the given ID, asking the API for it
// when it is not part of the loaded list.
func (c *Catalog) OpenEditByID(ctx context.Context, bookID int64) error {
	c.mu.RLock()
	for _, b := range c.books {
		if b.ID == bookID {
			c.mu.RUnlock()
			c.OpenEdit(b)
			return nil
		}
	}
	c.mu.RUnlock()

	book, err := c.repo.GetBook(ctx, bookID)
	if err != nil {
		var apiErr *repository.APIError
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		case errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound:
			return ErrRecordNotFound
		default:
			c.fail("Erro ao buscar livro", err)
			return err
		}
	}
	c.OpenEdit(*book)
	return nil
}

// OpenCreate opens an empty form.
func (c *Catalog) OpenCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = nil
	c.form = NewForm(nil)
}

// CloseForm discards the draft and the selection.
func (c *Catalog) CloseForm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = nil
	c.form = nil
}

// Loaded reports whether the catalog has been read from the API at least once.
func (c *Catalog) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Snapshot returns a copy of the current state.
func (c *Catalog) Snapshot() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	st := State{
		Books:    append([]data.Book{}, c.books...),
		FormOpen: c.form != nil,
		Loading:  c.loading,
		Loaded:   c.loaded,
	}
	if c.selected != nil {
		b := *c.selected
		st.Selected = &b
	}
	if c.form != nil {
		d := c.form.Draft()
		st.Draft = &d
	}
	return st
}

// fail reports a failed mutation. Messages sent by the API reach the user verbatim;
// anything else is logged and shown as a connectivity problem.
func (c *Catalog) fail(message string, err error) {
	var apiErr *repository.APIError
	if errors.As(err, &apiErr) {
		c.logger.PrintDebug(message, map[string]string{
			"status": strconv.Itoa(apiErr.StatusCode),
			"error":  apiErr.Message,
		})
		c.notify.Alert("Erro: " + apiErr.Message)
		return
	}
	c.logger.PrintError(err, map[string]string{
		"message": message,
	})
	c.notify.Alert(MessageConnection)
}
