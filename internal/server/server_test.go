package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/insha2472/english-to-kannada-translator/internal/dispatcher"
	"github.com/insha2472/english-to-kannada-translator/internal/offline"
	"github.com/insha2472/english-to-kannada-translator/internal/translator"
)

type stubService struct{}

func (stubService) Name() string { return "stub" }

func (stubService) Translate(ctx context.Context, cfg translator.ServiceConfig, req translator.TranslateRequest) (*translator.ServiceResult, error) {
	return &translator.ServiceResult{ServiceName: "stub", TranslatedText: "ನಮಸ್ಕಾರ"}, nil
}

func (stubService) IsAvailable(ctx context.Context) error { return nil }

func (stubService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return []string{"en", "kn"}, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	d := dispatcher.New(stubService{}, offline.New(nil), nil, dispatcher.Config{Timeout: time.Second})
	mux := http.NewServeMux()
	New(d, "").Register(mux)
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func TestServer_IndexPage(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET / failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected HTML content type, got %q", ct)
	}
}

func TestServer_UnknownPath(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/nope")
	if err != nil {
		t.Fatalf("GET /nope failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}

func TestServer_TranslateJSON(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/translate", "application/json",
		strings.NewReader(`{"text": "hello"}`))
	if err != nil {
		t.Fatalf("POST /translate failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["translation"] != "ನಮಸ್ಕಾರ" {
		t.Errorf("expected translation ನಮಸ್ಕಾರ, got %q", body["translation"])
	}
	if body["source"] != "stub" {
		t.Errorf("expected source stub, got %q", body["source"])
	}
}

func TestServer_TranslateMalformedBody(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/translate", "application/json",
		strings.NewReader(`{not json`))
	if err != nil {
		t.Fatalf("POST /translate failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if body["error"] == "" {
		t.Error("expected error message in response")
	}
}

func TestServer_TranslateMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/translate")
	if err != nil {
		t.Fatalf("GET /translate failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", resp.StatusCode)
	}
}

func TestServer_FormSubmission(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.PostForm(ts.URL+"/", url.Values{"text": {"hello"}})
	if err != nil {
		t.Fatalf("POST / failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	html := string(b)

	if !strings.Contains(html, "ನಮಸ್ಕಾರ") {
		t.Error("expected rendered page to contain the translation")
	}
	if !strings.Contains(html, "hello") {
		t.Error("expected rendered page to echo the input")
	}
}

func TestServer_CustomPageFile(t *testing.T) {
	pagePath := filepath.Join(t.TempDir(), "index.html")
	custom := `<html><body><p>CUSTOM {{.Translation}}</p></body></html>`
	if err := os.WriteFile(pagePath, []byte(custom), 0644); err != nil {
		t.Fatalf("failed to write page file: %v", err)
	}

	d := dispatcher.New(stubService{}, offline.New(nil), nil, dispatcher.Config{Timeout: time.Second})
	mux := http.NewServeMux()
	New(d, pagePath).Register(mux)
	ts := httptest.NewServer(mux)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET / failed: %v", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	if !strings.Contains(string(b), "CUSTOM") {
		t.Error("expected custom page to be served")
	}
}
