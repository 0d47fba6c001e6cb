package dom

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/style"
)

const messageBoxStyle = "margin-top: 12px"

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

// Document is a parsed HTML page acting as a contact.Surface.
type Document struct {
	mu      sync.Mutex
	root    *html.Node
	policy  contact.StylePolicy
	form    *form
	focused string
}

var _ contact.Surface = (*Document)(nil)

// Parse reads an HTML document.
func Parse(r io.Reader, options ...Option) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse: %w", err)
	}
	d := &Document{
		root:   root,
		policy: style.Default(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(d)
	}
	return d, nil
}

// ParseString is Parse over a string.
func ParseString(markup string, options ...Option) (*Document, error) {
	return Parse(strings.NewReader(markup), options...)
}

// FindForm implements contact.Surface. It resolves "#contacto form" and
// creates the message box as the form's last child when missing.
func (d *Document) FindForm() (contact.Form, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.form != nil {
		return d.form, true
	}
	container := findFirst(d.root, byID(contact.ContainerID))
	if container == nil {
		return nil, false
	}
	node := findFirst(container, isElement(atom.Form))
	if node == nil {
		return nil, false
	}

	box := findFirst(node, byClass(contact.MessageBoxName))
	if box == nil {
		box = &html.Node{
			Type:     html.ElementNode,
			Data:     "div",
			DataAtom: atom.Div,
			Attr: []html.Attribute{
				{Key: "class", Val: contact.MessageBoxName},
				{Key: "style", Val: messageBoxStyle},
			},
		}
		node.AppendChild(box)
	}

	d.form = &form{doc: d, node: node, box: box}
	return d.form, true
}

// SetValue fills a field inside the form. It reports false when the form or
// field is missing.
func (d *Document) SetValue(id, value string) bool {
	if _, ok := d.FindForm(); !ok {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	node := findFirst(d.form.node, byID(id))
	if node == nil {
		return false
	}
	writeValue(node, value)
	return true
}

// Value reads a field inside the form.
func (d *Document) Value(id string) (string, bool) {
	if _, ok := d.FindForm(); !ok {
		return "", false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	node := findFirst(d.form.node, byID(id))
	if node == nil {
		return "", false
	}
	return readValue(node), true
}

// Submit dispatches the submit event to the bound handler. It reports false
// when no handler has been registered.
func (d *Document) Submit(ctx context.Context) (contact.Outcome, bool) {
	d.mu.Lock()
	f := d.form
	d.mu.Unlock()
	if f == nil {
		return contact.Outcome{}, false
	}

	f.doc.mu.Lock()
	handler := f.handler
	f.doc.mu.Unlock()
	if handler == nil {
		return contact.Outcome{}, false
	}
	return handler(ctx), true
}

// Status returns the message box text and its last severity.
func (d *Document) Status() (string, string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.form == nil {
		return "", ""
	}
	severity, _ := getAttr(d.form.box, "data-severity")
	return textContent(d.form.box), severity
}

// Focused returns the id of the last focused field.
func (d *Document) Focused() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.focused
}

// Render serialises the (possibly mutated) document.
func (d *Document) Render(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("dom: render: %w", err)
	}
	return nil
}

// String renders the document, returning an empty string on failure.
func (d *Document) String() string {
	var b strings.Builder
	if err := d.Render(&b); err != nil {
		return ""
	}
	return b.String()
}

func readValue(n *html.Node) string {
	if n.DataAtom == atom.Textarea {
		return textContent(n)
	}
	value, _ := getAttr(n, "value")
	return value
}

func writeValue(n *html.Node, value string) {
	if n.DataAtom == atom.Textarea {
		setText(n, value)
		return
	}
	setAttr(n, "value", value)
}
