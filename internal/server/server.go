// Package server exposes the dispatcher over HTTP: a browser form on the
// page root and a JSON endpoint for programmatic callers.
package server

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"os"

	"github.com/insha2472/english-to-kannada-translator/internal/dispatcher"
)

// fallbackPage is served when no page file is configured or readable.
const fallbackPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>English → Kannada Translator</title>
<style>
body { font-family: sans-serif; max-width: 40rem; margin: 3rem auto; padding: 0 1rem; }
textarea { width: 100%; height: 6rem; font-size: 1rem; }
.result { margin-top: 1.5rem; padding: 1rem; background: #f3f3f3; border-radius: 4px; font-size: 1.4rem; }
.source { color: #777; font-size: 0.8rem; }
</style>
</head>
<body>
<h1>English → Kannada</h1>
<form method="POST" action="/">
<textarea name="text" placeholder="Type English text...">{{.Input}}</textarea>
<p><button type="submit">Translate</button></p>
</form>
{{if .Translation}}
<div class="result">{{.Translation}}<div class="source">via {{.Source}}</div></div>
{{end}}
</body>
</html>
`

// pageData feeds the HTML template.
type pageData struct {
	Input       string
	Translation string
	Source      string
}

type Server struct {
	dispatcher *dispatcher.Dispatcher
	page       *template.Template
}

// New creates a Server around a dispatcher. pagePath may name an HTML
// template file to serve instead of the built-in page; a missing or broken
// file falls back silently.
func New(d *dispatcher.Dispatcher, pagePath string) *Server {
	s := &Server{
		dispatcher: d,
		page:       template.Must(template.New("page").Parse(fallbackPage)),
	}

	if pagePath != "" {
		if _, err := os.Stat(pagePath); err == nil {
			if custom, err := template.ParseFiles(pagePath); err == nil {
				s.page = custom
			} else {
				fmt.Fprintf(os.Stderr, "Failed to parse page template %s: %v, using built-in page\n", pagePath, err)
			}
		}
	}

	return s
}

func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/", s.handleIndex)              // GET (page), POST (form)
	mux.HandleFunc("/translate", s.handleTranslate) // POST (JSON)
}

// ListenAndServe binds addr and serves until the process terminates.
func (s *Server) ListenAndServe(addr string) error {
	mux := http.NewServeMux()
	s.Register(mux)
	return http.ListenAndServe(addr, mux)
}

// GET / — translator page; POST / — form submission, re-rendered page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.renderPage(w, pageData{})
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form data", http.StatusBadRequest)
			return
		}
		text := r.PostFormValue("text")
		res := s.dispatcher.Translate(r.Context(), text)
		s.renderPage(w, pageData{Input: text, Translation: res.Text, Source: res.Source})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// POST /translate — {"text": "..."} → {"translation": "..."}.
func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "method not allowed"})
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	res := s.dispatcher.Translate(r.Context(), req.Text)
	_ = json.NewEncoder(w).Encode(map[string]string{"translation": res.Text, "source": res.Source})
}

func (s *Server) renderPage(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, data); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to render page: %v\n", err)
	}
}
