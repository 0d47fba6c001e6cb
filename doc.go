// Package contactform wires the #contacto form controller to its surfaces.
//
// The controller lives in pkg/contact. Surfaces implement contact.Surface:
// pkg/dom for parsed HTML, pkg/terminal for interactive prompts and
// internal/wasmdom for the browser. pkg/page renders the markup the surfaces
// expect and pkg/endpoint derives its action from an OpenAPI operation.
package contactform
