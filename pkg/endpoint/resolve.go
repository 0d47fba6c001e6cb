package endpoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

const jsonMediaType = "application/json"

// Target is the form configuration derived from an operation.
type Target struct {
	OperationID string
	Method      string
	Action      string
}

// Option customises resolution.
type Option func(*options)

type options struct {
	serverURL string
}

// WithServerURL overrides the document servers when building the action.
func WithServerURL(url string) Option {
	return func(o *options) {
		o.serverURL = strings.TrimSpace(url)
	}
}

// Resolve parses an OpenAPI document and returns the target for operationID.
// The action joins the first server URL (variables set to their defaults)
// with the operation path; without servers the bare path is returned.
func Resolve(ctx context.Context, raw []byte, operationID string, opts ...Option) (Target, error) {
	if err := ctx.Err(); err != nil {
		return Target{}, err
	}
	if len(raw) == 0 {
		return Target{}, errors.New("endpoint: document payload is empty")
	}
	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return Target{}, fmt.Errorf("endpoint: load document: %w", err)
	}

	method, path, op, ok := findOperation(doc, strings.TrimSpace(operationID))
	if !ok {
		return Target{}, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}
	if strings.Contains(path, "{") {
		return Target{}, fmt.Errorf("%w: %s", ErrPathParameters, path)
	}
	if !acceptsJSON(op) {
		return Target{}, fmt.Errorf("%w: %s %s", ErrNotJSON, method, path)
	}

	base := cfg.serverURL
	if base == "" {
		base = serverURL(doc)
	}
	return Target{
		OperationID: operationID,
		Method:      method,
		Action:      joinURL(base, path),
	}, nil
}

func findOperation(doc *openapi3.T, operationID string) (string, string, *openapi3.Operation, bool) {
	if doc.Paths == nil || operationID == "" {
		return "", "", nil, false
	}
	for path, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		candidates := []struct {
			method string
			op     *openapi3.Operation
		}{
			{http.MethodPost, item.Post},
			{http.MethodPut, item.Put},
			{http.MethodPatch, item.Patch},
			{http.MethodGet, item.Get},
			{http.MethodDelete, item.Delete},
		}
		for _, c := range candidates {
			if c.op == nil {
				continue
			}
			id := c.op.OperationID
			if id == "" {
				id = strings.ToLower(c.method) + ":" + path
			}
			if id == operationID {
				return c.method, path, c.op, true
			}
		}
	}
	return "", "", nil, false
}

func acceptsJSON(op *openapi3.Operation) bool {
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return true
	}
	content := op.RequestBody.Value.Content
	if len(content) == 0 {
		return true
	}
	return content.Get(jsonMediaType) != nil
}

func serverURL(doc *openapi3.T) string {
	if len(doc.Servers) == 0 || doc.Servers[0] == nil {
		return ""
	}
	server := doc.Servers[0]
	url := server.URL
	for name, variable := range server.Variables {
		if variable == nil {
			continue
		}
		url = strings.ReplaceAll(url, "{"+name+"}", variable.Default)
	}
	return url
}

func joinURL(base, path string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		return path
	}
	return base + "/" + strings.TrimLeft(path, "/")
}
