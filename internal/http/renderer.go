package httpx

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/nameid/nameid/internal/domain/identity"
	"github.com/nameid/nameid/internal/domain/page"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// PageData is the data every page template renders from. Fields are filled
// per status; templates only read what applies to them.
type PageData struct {
	Title    string
	Endpoint string
	Messages page.Messages

	// Login form.
	Nonce string

	// Logged-in and trust pages.
	UserName  string
	TrustRoot string

	// Identity pages.
	Name    string
	Address string
	Profile identity.Profile
}

// TemplateRenderer renders HTML pages for dispatch results.
type TemplateRenderer struct {
	t      *template.Template
	logger *slog.Logger
}

// NewTemplateRenderer parses the embedded page templates.
func NewTemplateRenderer(logger *slog.Logger) (*TemplateRenderer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	t, err := template.New("root").ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &TemplateRenderer{t: t, logger: logger}, nil
}

// Render executes the named template into a buffer first so a template error
// never leaks a half-written page.
func (r *TemplateRenderer) Render(w http.ResponseWriter, name string, data PageData) {
	r.render(w, http.StatusOK, name, data)
}

// RenderStatus is Render with an explicit HTTP status code.
func (r *TemplateRenderer) RenderStatus(w http.ResponseWriter, code int, name string, data PageData) {
	r.render(w, code, name, data)
}

func (r *TemplateRenderer) render(w http.ResponseWriter, code int, name string, data PageData) {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, name, data); err != nil {
		r.logger.Error("template render failed", slog.String("template", name), slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		return
	}
}
