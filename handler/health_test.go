package handler

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestHealthcheck(t *testing.T) {
	decode := func(t *testing.T, body string) healthResponse {
		t.Helper()
		var res healthResponse
		if err := json.Unmarshal([]byte(body), &res); err != nil {
			t.Fatal(err)
		}
		return res
	}

	t.Run("books API up", func(t *testing.T) {
		ts, _ := newTestServer(t, testConfig())
		status, body := newBrowser(t, ts).get("/v1/healthcheck")
		if status != http.StatusOK {
			t.Fatalf("expected status %d; got %d", http.StatusOK, status)
		}
		res := decode(t, body)
		if res.Status != "available" || res.SystemInfo["environment"] != "development" {
			t.Errorf("unexpected response: %+v", res)
		}
		if res.API["status"] != "OK" {
			t.Errorf("expected API status OK; got %+v", res.API)
		}
	})

	t.Run("books API down", func(t *testing.T) {
		ts, api := newTestServer(t, testConfig())
		api.Close()
		status, body := newBrowser(t, ts).get("/v1/healthcheck")
		if status != http.StatusOK {
			t.Fatalf("expected status %d; got %d", http.StatusOK, status)
		}
		res := decode(t, body)
		if res.API["status"] != "unavailable" || res.API["error"] == "" {
			t.Errorf("expected API to be reported unavailable; got %+v", res.API)
		}
	})
}
