package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Request describes one delivery to the form action.
type Request struct {
	Method  string
	URL     string
	Payload Payload
}

// Sender delivers a payload to a configured action.
type Sender interface {
	Send(ctx context.Context, req Request) error
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, req Request) error

// Send calls f.
func (f SenderFunc) Send(ctx context.Context, req Request) error {
	return f(ctx, req)
}

// SenderOption configures an HTTPSender.
type SenderOption func(*HTTPSender)

// WithHTTPClient injects the client used for requests (timeouts, transports).
func WithHTTPClient(client *http.Client) SenderOption {
	return func(s *HTTPSender) {
		if client != nil {
			s.client = client
		}
	}
}

// WithBaseURL resolves relative actions (for example "/api/contact") against
// base, the way a browser resolves them against the page URL.
func WithBaseURL(base *url.URL) SenderOption {
	return func(s *HTTPSender) {
		s.base = base
	}
}

// HTTPSender posts the payload as JSON. Under js/wasm the default transport
// is the browser's fetch.
type HTTPSender struct {
	client *http.Client
	base   *url.URL
}

var _ Sender = (*HTTPSender)(nil)

// NewHTTPSender constructs an HTTPSender using http.DefaultClient unless a
// client is supplied.
func NewHTTPSender(options ...SenderOption) *HTTPSender {
	s := &HTTPSender{client: http.DefaultClient}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Send issues exactly one request. Any non-2xx status yields *StatusError.
func (s *HTTPSender) Send(ctx context.Context, req Request) error {
	target, err := s.resolve(req.URL)
	if err != nil {
		return err
	}

	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method == "" {
		method = http.MethodPost
	}

	body, err := json.Marshal(req.Payload)
	if err != nil {
		return fmt.Errorf("contact: encode payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("contact: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("contact: %s %s: %w", method, target, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{
			Method:     method,
			URL:        target,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}
	return nil
}

func (s *HTTPSender) resolve(raw string) (string, error) {
	ref, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("contact: parse action %q: %w", raw, err)
	}
	if s.base == nil || ref.IsAbs() {
		return ref.String(), nil
	}
	return s.base.ResolveReference(ref).String(), nil
}
