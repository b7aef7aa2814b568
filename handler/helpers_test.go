package handler

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/emzola/catalog/config"
	"github.com/emzola/catalog/data"
	"github.com/emzola/catalog/internal/apitest"
	"github.com/emzola/catalog/internal/jsonlog"
	"github.com/emzola/catalog/repository"
	"github.com/emzola/catalog/service"
	"github.com/emzola/catalog/view"
)

// testConfig returns defaults with rate limiting turned off.
func testConfig() config.Config {
	cfg := config.Default()
	cfg.Limiter.Enabled = false
	return cfg
}

// newTestServer runs the routes against a fake books API holding seed.
func newTestServer(t *testing.T, cfg config.Config, seed ...data.Book) (*httptest.Server, *apitest.Server) {
	t.Helper()
	api := apitest.New(seed...)
	t.Cleanup(api.Close)
	cfg.API.BaseURL = api.URL

	logger := newTestLogger()
	repo, err := repository.New(cfg.API.BaseURL, nil)
	if err != nil {
		t.Fatal(err)
	}
	views, err := newTestRenderer()
	if err != nil {
		t.Fatal(err)
	}
	h := New(cfg, logger, NewSessionStore(cfg.Session.TTL), service.New(cfg, logger, repo), views)

	ts := httptest.NewServer(h.Routes())
	t.Cleanup(ts.Close)
	return ts, api
}

// browser is a cookie-keeping client that follows redirects, like a real one.
type browser struct {
	t      *testing.T
	base   string
	client *http.Client
}

func newBrowser(t *testing.T, ts *httptest.Server) *browser {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	client := ts.Client()
	client.Jar = jar
	return &browser{t: t, base: ts.URL, client: client}
}

func (b *browser) get(path string) (int, string) {
	b.t.Helper()
	res, err := b.client.Get(b.base + path)
	if err != nil {
		b.t.Fatal(err)
	}
	return readBody(b.t, res)
}

func (b *browser) post(path string, form url.Values) (int, string) {
	b.t.Helper()
	res, err := b.client.PostForm(b.base+path, form)
	if err != nil {
		b.t.Fatal(err)
	}
	return readBody(b.t, res)
}

func readBody(t *testing.T, res *http.Response) (int, string) {
	t.Helper()
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}
	return res.StatusCode, string(body)
}

func mustContain(t *testing.T, body string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(body, w) {
			t.Errorf("expected body to contain %q", w)
		}
	}
}

func mustNotContain(t *testing.T, body string, unwanted ...string) {
	t.Helper()
	for _, u := range unwanted {
		if strings.Contains(body, u) {
			t.Errorf("expected body not to contain %q", u)
		}
	}
}

func newTestLogger() *jsonlog.Logger {
	return jsonlog.New(io.Discard, jsonlog.LevelOff)
}

func newTestRenderer() (*view.Renderer, error) {
	return view.NewRenderer()
}

// newTestService returns a service whose books API is never reached.
func newTestService(t *testing.T) service.Service {
	t.Helper()
	repo, err := repository.New("http://127.0.0.1:1", nil)
	if err != nil {
		t.Fatal(err)
	}
	return service.New(testConfig(), newTestLogger(), repo)
}
