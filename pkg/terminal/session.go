package terminal

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/goliatone/go-contactform/pkg/contact"
)

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithOutput sets where the survey driver prints status lines.
func WithOutput(out io.Writer) Option {
	return func(s *Session) {
		if out != nil {
			s.out = out
		}
	}
}

// WithTarget sets the action and method the session reports as its form
// attributes.
func WithTarget(action, method string) Option {
	return func(s *Session) {
		s.action = action
		s.method = method
	}
}

// WithValues pre-fills answers; they become prompt defaults.
func WithValues(values map[string]string) Option {
	return func(s *Session) {
		for id, value := range values {
			s.values[id] = value
		}
	}
}

// WithTheme applies message prefixes and colours.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}

type prompt struct {
	id        string
	label     string
	help      string
	multiline bool
}

var prompts = []prompt{
	{id: contact.FieldNombre, label: "Nombre", help: "Mínimo 2 caracteres"},
	{id: contact.FieldEmail, label: "Correo electrónico", help: "nombre@dominio.com"},
	{id: contact.FieldMensaje, label: "Mensaje", help: "Mínimo 10 caracteres", multiline: true},
}

// Session is a terminal-backed contact.Surface holding a single form.
type Session struct {
	mu      sync.Mutex
	driver  PromptDriver
	out     io.Writer
	theme   Theme
	action  string
	method  string
	values  map[string]string
	focus   string
	label   string
	enabled bool
	handler contact.SubmitHandler
	ctx     context.Context
	status  string
}

var _ contact.Surface = (*Session)(nil)

// New constructs a Session using the survey driver unless overridden.
func New(options ...Option) *Session {
	s := &Session{
		out:     os.Stdout,
		theme:   DefaultTheme(),
		values:  make(map[string]string),
		label:   contact.LabelDefault,
		enabled: true,
		ctx:     context.Background(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(s.out)
	}
	return s
}

// FindForm implements contact.Surface; a session always holds its form.
func (s *Session) FindForm() (contact.Form, bool) {
	return (*sessionForm)(s), true
}

// Run prompts for every field and submits. After a validation failure the
// focused field is prompted again until the submit leaves the invalid state.
func (s *Session) Run(ctx context.Context) (contact.Outcome, error) {
	s.mu.Lock()
	handler := s.handler
	s.ctx = ctx
	s.mu.Unlock()
	if handler == nil {
		return contact.Outcome{}, ErrNotBound
	}

	for _, p := range prompts {
		if err := s.ask(ctx, p); err != nil {
			return contact.Outcome{}, err
		}
	}

	for {
		out := handler(ctx)
		if out.Status != contact.StatusInvalid {
			return out, nil
		}
		s.mu.Lock()
		focus := s.focus
		s.mu.Unlock()

		p, ok := promptFor(focus)
		if !ok {
			return out, nil
		}
		if err := s.ask(ctx, p); err != nil {
			return out, err
		}
	}
}

// Status returns the last status line (uncoloured).
func (s *Session) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Session) ask(ctx context.Context, p prompt) error {
	s.mu.Lock()
	current := s.values[p.id]
	s.mu.Unlock()

	var (
		answer string
		err    error
	)
	if p.multiline {
		answer, err = s.driver.TextArea(ctx, TextAreaConfig{Message: p.label, Default: current, Help: p.help})
	} else {
		answer, err = s.driver.Input(ctx, InputConfig{Message: p.label, Default: current, Help: p.help})
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.values[p.id] = answer
	s.mu.Unlock()
	return nil
}

func (s *Session) info(text string, severity contact.Severity) {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()
	_ = s.driver.Info(ctx, s.theme.format(text, severity))
}

func promptFor(id string) (prompt, bool) {
	for _, p := range prompts {
		if p.id == id {
			return p, true
		}
	}
	return prompt{}, false
}

// sessionForm exposes the Session through the contact.Form view.
type sessionForm Session

func (f *sessionForm) session() *Session { return (*Session)(f) }

func (f *sessionForm) Action() string { return f.session().action }

func (f *sessionForm) Method() string { return f.session().method }

func (f *sessionForm) FindField(id string) (contact.Field, bool) {
	if _, ok := promptFor(id); !ok {
		return nil, false
	}
	return &sessionField{s: f.session(), id: id}, true
}

func (f *sessionForm) SubmitControl() (contact.Control, bool) {
	return (*sessionControl)(f.session()), true
}

func (f *sessionForm) OnSubmit(handler contact.SubmitHandler) {
	s := f.session()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handler = handler
}

func (f *sessionForm) ShowStatus(text string, severity contact.Severity) {
	s := f.session()
	s.mu.Lock()
	s.status = text
	s.mu.Unlock()
	s.info(text, severity)
}

func (f *sessionForm) ClearStatus() {
	s := f.session()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = ""
}

func (f *sessionForm) ResetFields() {
	s := f.session()
	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range s.values {
		s.values[id] = ""
	}
}

type sessionField struct {
	s  *Session
	id string
}

func (fd *sessionField) Value() string {
	fd.s.mu.Lock()
	defer fd.s.mu.Unlock()
	return fd.s.values[fd.id]
}

func (fd *sessionField) Focus() {
	fd.s.mu.Lock()
	defer fd.s.mu.Unlock()
	fd.s.focus = fd.id
}

type sessionControl Session

func (c *sessionControl) Label() string {
	s := (*Session)(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.label
}

func (c *sessionControl) SetState(enabled bool, label string) {
	s := (*Session)(c)
	s.mu.Lock()
	s.enabled = enabled
	s.label = label
	s.mu.Unlock()
	if !enabled && strings.TrimSpace(label) != "" {
		s.info(label, contact.SeverityInfo)
	}
}
