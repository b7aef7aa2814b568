package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/emzola/catalog/config"
	"golang.org/x/crypto/bcrypt"
)

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Limiter.Enabled = true
	cfg.Limiter.RPS = 0.001
	cfg.Limiter.Burst = 2
	ts, _ := newTestServer(t, cfg)
	b := newBrowser(t, ts)

	for i := 0; i < 2; i++ {
		if status, _ := b.get("/v1/healthcheck"); status != http.StatusOK {
			t.Fatalf("request %d: expected status %d; got %d", i, http.StatusOK, status)
		}
	}
	status, _ := b.get("/v1/healthcheck")
	if status != http.StatusTooManyRequests {
		t.Errorf("expected status %d; got %d", http.StatusTooManyRequests, status)
	}
}

func TestDebugVars(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	cfg := testConfig()
	cfg.Metrics.Enabled = true
	cfg.BasicAuth.Username = "admin"
	cfg.BasicAuth.PasswordHash = string(hash)
	ts, _ := newTestServer(t, cfg)

	tests := []struct {
		name     string
		username string
		password string
		wantCode int
	}{
		{"valid credentials", "admin", "s3cret", http.StatusOK},
		{"wrong password", "admin", "nope", http.StatusUnauthorized},
		{"wrong username", "root", "s3cret", http.StatusUnauthorized},
		{"no credentials", "", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, ts.URL+"/debug/vars", nil)
			if err != nil {
				t.Fatal(err)
			}
			if tt.username != "" {
				req.SetBasicAuth(tt.username, tt.password)
			}
			res, err := ts.Client().Do(req)
			if err != nil {
				t.Fatal(err)
			}
			defer res.Body.Close()
			if res.StatusCode != tt.wantCode {
				t.Fatalf("expected status %d; got %d", tt.wantCode, res.StatusCode)
			}
			if tt.wantCode != http.StatusOK {
				if res.Header.Get("WWW-Authenticate") == "" {
					t.Error("expected a WWW-Authenticate header")
				}
				return
			}
			var vars map[string]json.RawMessage
			if err := json.NewDecoder(res.Body).Decode(&vars); err != nil {
				t.Fatal(err)
			}
			for _, key := range []string{"total_requests_received", "total_responses_sent_by_status", "active_sessions"} {
				if _, ok := vars[key]; !ok {
					t.Errorf("expected %q to be published", key)
				}
			}
		})
	}
}

func TestDebugVarsDisabled(t *testing.T) {
	ts, _ := newTestServer(t, testConfig())
	status, _ := newBrowser(t, ts).get("/debug/vars")
	if status != http.StatusNotFound {
		t.Errorf("expected status %d; got %d", http.StatusNotFound, status)
	}
}

func TestRecoverPanic(t *testing.T) {
	h := &Handler{config: testConfig(), logger: newTestLogger()}
	views, err := newTestRenderer()
	if err != nil {
		t.Fatal(err)
	}
	h.views = views

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	rr := httptest.NewRecorder()
	h.recoverPanic(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/catalog", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d; got %d", http.StatusInternalServerError, rr.Code)
	}
	if got := rr.Header().Get("Connection"); got != "close" {
		t.Errorf("expected Connection: close; got %q", got)
	}
}

func TestRateLimitSparesFormTraffic(t *testing.T) {
	ts, api := newTestServer(t, config.Default())
	b := newBrowser(t, ts)
	b.get("/form/new")

	title := ""
	for _, c := range "Dom Casmurro" {
		title += string(c)
		status, _ := b.post("/form/fields", url.Values{"title": {title}})
		if status != http.StatusNoContent {
			t.Fatalf("keystroke %q: expected status %d; got %d", title, http.StatusNoContent, status)
		}
	}

	status, body := b.post("/form", url.Values{"author": {"Machado de Assis"}, "isbn": {"978-85-359-0277-5"}})
	if status != http.StatusOK {
		t.Fatalf("expected status %d after submit; got %d", http.StatusOK, status)
	}
	mustContain(t, body, "Dom Casmurro")
	if got := api.Count(http.MethodPost); got != 1 {
		t.Errorf("expected one create request; got %d", got)
	}
}
