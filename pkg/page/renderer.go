package page

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/style"
)

const (
	pageTemplate    = "page.tpl"
	sectionTemplate = "contact.tpl"
)

// Page describes what to render.
type Page struct {
	Title   string
	Lang    string
	Intro   string
	Action  string
	Method  string
	Theme   *theme.Manifest
	Variant string
	// ExecScript and WasmScript point at wasm_exec.js and the compiled
	// controller; both must be set for the bootstrap script to be emitted.
	ExecScript string
	WasmScript string
}

// Option customises the renderer.
type Option func(*Renderer)

// WithTemplatesFS replaces the embedded templates. The FS must provide
// page.tpl and contact.tpl at its root.
func WithTemplatesFS(files fs.FS) Option {
	return func(r *Renderer) {
		if files != nil {
			r.files = files
		}
	}
}

// WithSanitizer overrides the intro sanitising policy.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(r *Renderer) {
		r.sanitizer = policy
	}
}

// Renderer executes the page templates.
type Renderer struct {
	mu        sync.RWMutex
	files     fs.FS
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
	sanitizer *bluemonday.Policy
}

// New constructs a Renderer over the embedded templates unless overridden.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		files:     Templates(),
		templates: make(map[string]*pongo2.Template),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.files == nil {
		return nil, errors.New("page: templates fs is nil")
	}
	r.set = pongo2.NewSet("contactform", pongo2.NewFSLoader(r.files))
	return r, nil
}

// RenderSection writes only the #contacto section.
func (r *Renderer) RenderSection(w io.Writer, p Page) error {
	section, err := r.section(p)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, section)
	return err
}

// Render writes a full HTML document around the section.
func (r *Renderer) Render(w io.Writer, p Page) error {
	section, err := r.section(p)
	if err != nil {
		return err
	}

	lang := strings.TrimSpace(p.Lang)
	if lang == "" {
		lang = "es"
	}
	title := strings.TrimSpace(p.Title)
	if title == "" {
		title = "Contacto"
	}

	return r.execute(w, pageTemplate, pongo2.Context{
		"lang":        lang,
		"title":       title,
		"css_vars":    style.RootBlock(style.CSSVars(style.Tokens(p.Theme, p.Variant))),
		"section":     section,
		"exec_script": strings.TrimSpace(p.ExecScript),
		"wasm_script": strings.TrimSpace(p.WasmScript),
	})
}

func (r *Renderer) section(p Page) (string, error) {
	method := strings.ToLower(strings.TrimSpace(p.Method))
	if method == "" {
		method = strings.ToLower(http.MethodPost)
	}
	var buf bytes.Buffer
	err := r.execute(&buf, sectionTemplate, pongo2.Context{
		"intro":        sanitizeIntro(r.sanitizer, p.Intro),
		"action":       strings.TrimSpace(p.Action),
		"method":       method,
		"submit_label": contact.LabelDefault,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *Renderer) execute(w io.Writer, name string, data pongo2.Context) error {
	tmpl, err := r.template(name)
	if err != nil {
		return err
	}
	if err := tmpl.ExecuteWriter(data, w); err != nil {
		return fmt.Errorf("page: execute template %q: %w", name, err)
	}
	return nil
}

func (r *Renderer) template(name string) (*pongo2.Template, error) {
	r.mu.RLock()
	if tmpl, ok := r.templates[name]; ok {
		r.mu.RUnlock()
		return tmpl, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if tmpl, ok := r.templates[name]; ok {
		return tmpl, nil
	}
	tmpl, err := r.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("page: load template %q: %w", name, err)
	}
	r.templates[name] = tmpl
	return tmpl, nil
}
