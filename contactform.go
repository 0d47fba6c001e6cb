package contactform

import (
	"bytes"
	"context"
	"io/fs"
	"net/http"

	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/endpoint"
	"github.com/goliatone/go-contactform/pkg/page"
)

// Controller aliases contact.Controller for callers importing the root module.
type Controller = contact.Controller

// Surface is the UI adapter a Controller drives.
type Surface = contact.Surface

// Outcome reports how a submit attempt ended.
type Outcome = contact.Outcome

// Payload is the JSON body sent to the form action.
type Payload = contact.Payload

// Page describes a rendered contact page.
type Page = page.Page

// NewController exposes the controller constructor from the top-level module.
func NewController(surface Surface, options ...contact.Option) *Controller {
	return contact.New(surface, options...)
}

// EmbeddedTemplates exposes the built-in pongo2 templates so callers can copy
// or extend them.
func EmbeddedTemplates() fs.FS {
	return page.Templates()
}

// RenderHTML renders a full page with the embedded templates. It is the
// simplest entry point for callers that just want markup.
func RenderHTML(p Page) ([]byte, error) {
	renderer, err := page.New()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := renderer.Render(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderHTMLForOperation resolves action and method from an OpenAPI document
// (file path or URL) before rendering.
func RenderHTMLForOperation(ctx context.Context, document, operationID string, p Page) ([]byte, error) {
	raw, err := endpoint.Load(ctx, document, http.DefaultClient, 0)
	if err != nil {
		return nil, err
	}
	target, err := endpoint.Resolve(ctx, raw, operationID)
	if err != nil {
		return nil, err
	}
	p.Action = target.Action
	p.Method = target.Method
	return RenderHTML(p)
}
