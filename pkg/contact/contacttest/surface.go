// Package contacttest provides an in-memory contact.Surface for tests. Every
// UI mutation is appended to an event log so callers can assert ordering.
package contacttest

import (
	"context"
	"fmt"
	"sync"

	"github.com/goliatone/go-contactform/pkg/contact"
)

// Option configures a Surface.
type Option func(*Surface)

// WithoutForm makes FindForm report no form, as when #contacto is missing.
func WithoutForm() Option {
	return func(s *Surface) {
		s.form = nil
	}
}

// WithAction sets the form action attribute.
func WithAction(action string) Option {
	return func(s *Surface) {
		if s.form != nil {
			s.form.action = action
		}
	}
}

// WithMethod sets the form method attribute.
func WithMethod(method string) Option {
	return func(s *Surface) {
		if s.form != nil {
			s.form.method = method
		}
	}
}

// WithValues seeds field values; ids not listed keep an empty field.
func WithValues(values map[string]string) Option {
	return func(s *Surface) {
		if s.form == nil {
			return
		}
		for id, value := range values {
			s.form.field(id).value = value
		}
	}
}

// WithoutField removes a field so lookups fail.
func WithoutField(id string) Option {
	return func(s *Surface) {
		if s.form != nil {
			delete(s.form.fields, id)
		}
	}
}

// WithControlLabel sets the submit control label.
func WithControlLabel(label string) Option {
	return func(s *Surface) {
		if s.form != nil && s.form.control != nil {
			s.form.control.label = label
		}
	}
}

// WithoutControl removes the submit control.
func WithoutControl() Option {
	return func(s *Surface) {
		if s.form != nil {
			s.form.control = nil
		}
	}
}

// Surface is an in-memory contact.Surface.
type Surface struct {
	form *Form
}

var _ contact.Surface = (*Surface)(nil)

// New returns a surface holding a form with the three contact fields and a
// submit control labelled "Enviar".
func New(options ...Option) *Surface {
	form := &Form{fields: make(map[string]*Field)}
	form.control = &Control{form: form, label: contact.LabelDefault, enabled: true}
	for _, id := range []string{contact.FieldNombre, contact.FieldEmail, contact.FieldMensaje} {
		form.field(id)
	}
	s := &Surface{form: form}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// FindForm implements contact.Surface.
func (s *Surface) FindForm() (contact.Form, bool) {
	if s.form == nil {
		return nil, false
	}
	return s.form, true
}

// Form exposes the concrete form for assertions; nil when WithoutForm.
func (s *Surface) Form() *Form {
	return s.form
}

// Status is the message box content.
type Status struct {
	Text     string
	Severity contact.Severity
	Visible  bool
}

// Form is the in-memory form.
type Form struct {
	mu      sync.Mutex
	action  string
	method  string
	fields  map[string]*Field
	control *Control
	handler contact.SubmitHandler
	status  Status
	events  []string
	resets  int
}

func (f *Form) field(id string) *Field {
	if existing, ok := f.fields[id]; ok {
		return existing
	}
	field := &Field{form: f, id: id}
	f.fields[id] = field
	return field
}

func (f *Form) record(format string, args ...any) {
	f.events = append(f.events, fmt.Sprintf(format, args...))
}

// Action implements contact.Form.
func (f *Form) Action() string { return f.action }

// Method implements contact.Form.
func (f *Form) Method() string { return f.method }

// FindField implements contact.Form.
func (f *Form) FindField(id string) (contact.Field, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	field, ok := f.fields[id]
	if !ok {
		return nil, false
	}
	return field, true
}

// SubmitControl implements contact.Form.
func (f *Form) SubmitControl() (contact.Control, bool) {
	if f.control == nil {
		return nil, false
	}
	return f.control, true
}

// OnSubmit implements contact.Form.
func (f *Form) OnSubmit(handler contact.SubmitHandler) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handler = handler
}

// ShowStatus implements contact.Form.
func (f *Form) ShowStatus(text string, severity contact.Severity) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = Status{Text: text, Severity: severity, Visible: true}
	f.record("status:%s:%s", severity, text)
}

// ClearStatus implements contact.Form.
func (f *Form) ClearStatus() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = Status{}
	f.record("clear")
}

// ResetFields implements contact.Form.
func (f *Form) ResetFields() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, field := range f.fields {
		field.value = ""
	}
	f.resets++
	f.record("reset")
}

// Submit fires the submit event. It reports false when no handler is bound.
func (f *Form) Submit(ctx context.Context) (contact.Outcome, bool) {
	f.mu.Lock()
	handler := f.handler
	f.mu.Unlock()
	if handler == nil {
		return contact.Outcome{}, false
	}
	return handler(ctx), true
}

// Bound reports whether a submit handler was registered.
func (f *Form) Bound() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.handler != nil
}

// SetValue changes a field value, creating the field if needed.
func (f *Form) SetValue(id, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.field(id).value = value
}

// Value returns a field value; empty when the field is missing.
func (f *Form) Value(id string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if field, ok := f.fields[id]; ok {
		return field.value
	}
	return ""
}

// Status returns the current message box content.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Events returns a copy of the recorded UI mutations.
func (f *Form) Events() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.events))
	copy(out, f.events)
	return out
}

// ResetCount returns how many times ResetFields ran.
func (f *Form) ResetCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.resets
}

// Control returns the submit control; nil when WithoutControl.
func (f *Form) Control() *Control {
	return f.control
}

// Field is an in-memory text field.
type Field struct {
	form    *Form
	id      string
	value   string
	focused int
}

// Value implements contact.Field.
func (fd *Field) Value() string {
	fd.form.mu.Lock()
	defer fd.form.mu.Unlock()
	return fd.value
}

// Focus implements contact.Field.
func (fd *Field) Focus() {
	fd.form.mu.Lock()
	defer fd.form.mu.Unlock()
	fd.focused++
	fd.form.record("focus:%s", fd.id)
}

// Control is the in-memory submit control.
type Control struct {
	form    *Form
	label   string
	enabled bool
}

// Label implements contact.Control.
func (c *Control) Label() string {
	c.form.mu.Lock()
	defer c.form.mu.Unlock()
	return c.label
}

// SetState implements contact.Control.
func (c *Control) SetState(enabled bool, label string) {
	c.form.mu.Lock()
	defer c.form.mu.Unlock()
	c.enabled = enabled
	c.label = label
	state := "disabled"
	if enabled {
		state = "enabled"
	}
	c.form.record("control:%s:%s", state, label)
}

// Enabled reports whether the control accepts clicks.
func (c *Control) Enabled() bool {
	c.form.mu.Lock()
	defer c.form.mu.Unlock()
	return c.enabled
}
