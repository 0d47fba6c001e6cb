// Package endpoint derives a contact form's action and method from an OpenAPI
// operation, so the page and the CLI can target the same endpoint the backend
// documents. Parsing is delegated to kin-openapi.
package endpoint
