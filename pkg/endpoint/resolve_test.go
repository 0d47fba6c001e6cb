package endpoint_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contactform/pkg/endpoint"
)

const document = `openapi: 3.0.3
info:
  title: Contact API
  version: "1.0"
servers:
  - url: https://{host}/v1
    variables:
      host:
        default: api.example.com
paths:
  /contact:
    post:
      operationId: createContact
      requestBody:
        content:
          application/json:
            schema:
              type: object
      responses:
        "204":
          description: accepted
    put:
      requestBody:
        content:
          application/x-www-form-urlencoded:
            schema:
              type: object
      responses:
        "204":
          description: accepted
  /contact/{id}:
    get:
      operationId: getContact
      parameters:
        - name: id
          in: path
          required: true
          schema:
            type: string
      responses:
        "200":
          description: ok
`

func TestResolve(t *testing.T) {
	got, err := endpoint.Resolve(context.Background(), []byte(document), "createContact")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := endpoint.Target{
		OperationID: "createContact",
		Method:      http.MethodPost,
		Action:      "https://api.example.com/v1/contact",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("target mismatch (-want +got):\n%s", diff)
	}

	override, err := endpoint.Resolve(context.Background(), []byte(document), "createContact", endpoint.WithServerURL("/"))
	if err != nil {
		t.Fatalf("resolve with override: %v", err)
	}
	if override.Action != "/contact" {
		t.Fatalf("unexpected overridden action %q", override.Action)
	}
}

func TestResolveErrors(t *testing.T) {
	cases := map[string]error{
		"missing":     endpoint.ErrOperationNotFound,
		"getContact":  endpoint.ErrPathParameters,
		"put:/contact": endpoint.ErrNotJSON,
	}
	for id, want := range cases {
		t.Run(id, func(t *testing.T) {
			_, err := endpoint.Resolve(context.Background(), []byte(document), id)
			if !errors.Is(err, want) {
				t.Fatalf("expected %v, got %v", want, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "openapi.yaml")
	if err := os.WriteFile(path, []byte(document), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := endpoint.Load(context.Background(), path, nil, 0)
	if err != nil || string(data) != document {
		t.Fatalf("load file: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(document))
	}))
	defer server.Close()
	data, err = endpoint.Load(context.Background(), server.URL+"/openapi.yaml", server.Client(), 0)
	if err != nil || string(data) != document {
		t.Fatalf("load url: %v", err)
	}
}
