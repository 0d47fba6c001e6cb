//go:build js && wasm

package wasmdom

import (
	"context"
	"net/url"
	"syscall/js"

	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/style"
)

// Option configures a Document.
type Option func(*Document)

// WithStylePolicy sets the policy used to style the message box.
func WithStylePolicy(policy contact.StylePolicy) Option {
	return func(d *Document) {
		if policy != nil {
			d.policy = policy
		}
	}
}

// WithContext sets the context passed to submit handlers.
func WithContext(ctx context.Context) Option {
	return func(d *Document) {
		if ctx != nil {
			d.ctx = ctx
		}
	}
}

// Document wraps window.document.
type Document struct {
	doc    js.Value
	policy contact.StylePolicy
	ctx    context.Context
	funcs  []js.Func
}

var _ contact.Surface = (*Document)(nil)

// New binds to the global document.
func New(options ...Option) *Document {
	d := &Document{
		doc:    js.Global().Get("document"),
		policy: style.Default(),
		ctx:    context.Background(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(d)
	}
	return d
}

// BaseURL returns document.baseURI, used to resolve relative actions.
func (d *Document) BaseURL() (*url.URL, error) {
	return url.Parse(d.doc.Get("baseURI").String())
}

// Release frees the registered JS callbacks.
func (d *Document) Release() {
	for _, fn := range d.funcs {
		fn.Release()
	}
	d.funcs = nil
}

// FindForm implements contact.Surface.
func (d *Document) FindForm() (contact.Form, bool) {
	node := d.doc.Call("querySelector", "#"+contact.ContainerID+" form")
	if absent(node) {
		return nil, false
	}
	box := node.Call("querySelector", "."+contact.MessageBoxName)
	if absent(box) {
		box = d.doc.Call("createElement", "div")
		box.Set("className", contact.MessageBoxName)
		box.Get("style").Set("marginTop", "12px")
		node.Call("appendChild", box)
	}
	return &form{doc: d, node: node, box: box}, true
}

type form struct {
	doc  *Document
	node js.Value
	box  js.Value
}

// Action and Method read attributes rather than the reflected properties:
// form.action resolves to the page URL and form.method defaults to "get".
func (f *form) Action() string { return attr(f.node, "action") }

func (f *form) Method() string { return attr(f.node, "method") }

func (f *form) FindField(id string) (contact.Field, bool) {
	node := f.node.Call("querySelector", "#"+id)
	if absent(node) {
		return nil, false
	}
	return field{node: node}, true
}

func (f *form) SubmitControl() (contact.Control, bool) {
	node := f.node.Call("querySelector", `button[type="submit"]`)
	if absent(node) {
		node = f.node.Call("querySelector", `input[type="submit"]`)
	}
	if absent(node) {
		return nil, false
	}
	return control{node: node}, true
}

// OnSubmit prevents the native submission and runs the handler on its own
// goroutine so the blocking fetch never runs on the JS event loop.
func (f *form) OnSubmit(handler contact.SubmitHandler) {
	fn := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			args[0].Call("preventDefault")
		}
		go handler(f.doc.ctx)
		return nil
	})
	f.doc.funcs = append(f.doc.funcs, fn)
	f.node.Call("addEventListener", "submit", fn)
}

func (f *form) ShowStatus(text string, severity contact.Severity) {
	f.box.Set("textContent", text)
	applyStyle(f.box, f.doc.policy.StatusStyle(severity))
}

func (f *form) ClearStatus() {
	f.box.Set("textContent", "")
	applyStyle(f.box, f.doc.policy.ClearedStyle())
}

func (f *form) ResetFields() {
	f.node.Call("reset")
}

type field struct {
	node js.Value
}

func (fd field) Value() string { return fd.node.Get("value").String() }

func (fd field) Focus() { fd.node.Call("focus") }

type control struct {
	node js.Value
}

func (c control) isInput() bool {
	return c.node.Get("tagName").String() == "INPUT"
}

func (c control) Label() string {
	if c.isInput() {
		return c.node.Get("value").String()
	}
	return c.node.Get("textContent").String()
}

func (c control) SetState(enabled bool, label string) {
	c.node.Set("disabled", !enabled)
	if c.isInput() {
		c.node.Set("value", label)
		return
	}
	c.node.Set("textContent", label)
}

var styleProps = map[string]string{
	"color":         "color",
	"background":    "background",
	"padding":       "padding",
	"border-radius": "borderRadius",
}

func applyStyle(node js.Value, s contact.Style) {
	target := node.Get("style")
	for _, decl := range style.Declarations(s) {
		target.Set(styleProps[decl[0]], decl[1])
	}
}

func absent(v js.Value) bool {
	return v.IsNull() || v.IsUndefined()
}

func attr(node js.Value, name string) string {
	v := node.Call("getAttribute", name)
	if absent(v) {
		return ""
	}
	return v.String()
}
