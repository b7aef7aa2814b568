package service

import (
	"context"
	"io"
	"sync"
	"testing"

	"github.com/emzola/catalog/config"
	"github.com/emzola/catalog/data"
	"github.com/emzola/catalog/internal/apitest"
	"github.com/emzola/catalog/internal/jsonlog"
	"github.com/emzola/catalog/repository"
)

type alerts struct {
	mu       sync.Mutex
	messages []string
}

func (a *alerts) Alert(message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.messages = append(a.messages, message)
}

func (a *alerts) all() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.messages...)
}

func yes(string) bool { return true }
func no(string) bool  { return false }

type fakeRepo struct {
	ListFn   func(ctx context.Context) ([]data.Book, error)
	GetFn    func(ctx context.Context, id int64) (*data.Book, error)
	CreateFn func(ctx context.Context, b data.Book) (*data.Book, error)
	UpdateFn func(ctx context.Context, b data.Book) (*data.Book, error)
	DeleteFn func(ctx context.Context, id int64) error

	calls []string
}

func (f *fakeRepo) ListBooks(ctx context.Context) ([]data.Book, error) {
	f.calls = append(f.calls, "list")
	if f.ListFn != nil {
		return f.ListFn(ctx)
	}
	return []data.Book{}, nil
}

func (f *fakeRepo) GetBook(ctx context.Context, id int64) (*data.Book, error) {
	f.calls = append(f.calls, "get")
	if f.GetFn != nil {
		return f.GetFn(ctx, id)
	}
	return nil, repository.ErrRecordNotFound
}

func (f *fakeRepo) CreateBook(ctx context.Context, b data.Book) (*data.Book, error) {
	f.calls = append(f.calls, "create")
	if f.CreateFn != nil {
		return f.CreateFn(ctx, b)
	}
	return &b, nil
}

func (f *fakeRepo) UpdateBook(ctx context.Context, b data.Book) (*data.Book, error) {
	f.calls = append(f.calls, "update")
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, b)
	}
	return &b, nil
}

func (f *fakeRepo) DeleteBook(ctx context.Context, id int64) error {
	f.calls = append(f.calls, "delete")
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

func (f *fakeRepo) Health(ctx context.Context) (*data.Health, error) {
	return &data.Health{Status: "OK"}, nil
}

func discardLogger() *jsonlog.Logger {
	return jsonlog.New(io.Discard, jsonlog.LevelOff)
}

// newAPICatalog returns a controller wired to a fake books API holding seed.
func newAPICatalog(t *testing.T, seed ...data.Book) (*Catalog, *apitest.Server, *alerts) {
	t.Helper()
	api := apitest.New(seed...)
	t.Cleanup(api.Close)
	repo, err := repository.New(api.URL, nil)
	if err != nil {
		t.Fatal(err)
	}
	notify := &alerts{}
	return NewCatalog(discardLogger(), repo, notify), api, notify
}

func configForTest() config.Config {
	return config.Default()
}
