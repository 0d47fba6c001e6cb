package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/style"
)

// nonText lists input types ResetFields leaves alone.
var nonText = map[string]struct{}{
	"submit": {}, "button": {}, "reset": {}, "hidden": {},
	"checkbox": {}, "radio": {}, "image": {}, "file": {},
}

type form struct {
	doc     *Document
	node    *html.Node
	box     *html.Node
	handler contact.SubmitHandler
}

func (f *form) Action() string {
	f.doc.mu.Lock()
	defer f.doc.mu.Unlock()
	value, _ := getAttr(f.node, "action")
	return value
}

func (f *form) Method() string {
	f.doc.mu.Lock()
	defer f.doc.mu.Unlock()
	value, _ := getAttr(f.node, "method")
	return value
}

func (f *form) FindField(id string) (contact.Field, bool) {
	f.doc.mu.Lock()
	defer f.doc.mu.Unlock()
	node := findFirst(f.node, byID(id))
	if node == nil {
		return nil, false
	}
	return &field{doc: f.doc, node: node, id: id}, true
}

func (f *form) SubmitControl() (contact.Control, bool) {
	f.doc.mu.Lock()
	defer f.doc.mu.Unlock()
	node := findFirst(f.node, isSubmit(atom.Button))
	if node == nil {
		node = findFirst(f.node, isSubmit(atom.Input))
	}
	if node == nil {
		return nil, false
	}
	return &control{doc: f.doc, node: node}, true
}

func (f *form) OnSubmit(handler contact.SubmitHandler) {
	f.doc.mu.Lock()
	defer f.doc.mu.Unlock()
	f.handler = handler
}

func (f *form) ShowStatus(text string, severity contact.Severity) {
	f.doc.mu.Lock()
	defer f.doc.mu.Unlock()
	setText(f.box, text)
	current, _ := getAttr(f.box, "style")
	setAttr(f.box, "style", style.Merge(current, f.doc.policy.StatusStyle(severity)))
	setAttr(f.box, "data-severity", severity.String())
}

func (f *form) ClearStatus() {
	f.doc.mu.Lock()
	defer f.doc.mu.Unlock()
	setText(f.box, "")
	current, _ := getAttr(f.box, "style")
	setAttr(f.box, "style", style.Merge(current, f.doc.policy.ClearedStyle()))
	removeAttr(f.box, "data-severity")
}

func (f *form) ResetFields() {
	f.doc.mu.Lock()
	defer f.doc.mu.Unlock()
	for _, node := range findAll(f.node, isElement(atom.Textarea)) {
		setText(node, "")
	}
	for _, node := range findAll(f.node, isElement(atom.Input)) {
		kind, _ := getAttr(node, "type")
		if _, skip := nonText[strings.ToLower(strings.TrimSpace(kind))]; skip {
			continue
		}
		setAttr(node, "value", "")
	}
}

type field struct {
	doc  *Document
	node *html.Node
	id   string
}

func (fd *field) Value() string {
	fd.doc.mu.Lock()
	defer fd.doc.mu.Unlock()
	return readValue(fd.node)
}

func (fd *field) Focus() {
	fd.doc.mu.Lock()
	defer fd.doc.mu.Unlock()
	fd.doc.focused = fd.id
}

type control struct {
	doc  *Document
	node *html.Node
}

func (c *control) Label() string {
	c.doc.mu.Lock()
	defer c.doc.mu.Unlock()
	if c.node.DataAtom == atom.Input {
		value, _ := getAttr(c.node, "value")
		return value
	}
	return textContent(c.node)
}

func (c *control) SetState(enabled bool, label string) {
	c.doc.mu.Lock()
	defer c.doc.mu.Unlock()
	if enabled {
		removeAttr(c.node, "disabled")
	} else {
		setAttr(c.node, "disabled", "")
	}
	if c.node.DataAtom == atom.Input {
		setAttr(c.node, "value", label)
		return
	}
	setText(c.node, label)
}
