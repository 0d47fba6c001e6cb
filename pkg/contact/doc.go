// Package contact implements the contact form controller: it resolves the
// form through a Surface, validates the nombre/email/mensaje fields and either
// simulates a local delivery (no action configured) or posts the payload as
// JSON to the form's action.
//
// Rendering concerns stay behind the Surface contract so the same controller
// drives the browser (syscall/js), a parsed HTML document, a terminal session
// or the in-memory double in contacttest.
package contact
