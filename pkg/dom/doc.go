// Package dom implements contact.Surface over a parsed HTML document
// (golang.org/x/net/html). It mirrors what the browser surface does to the
// live page, which makes it useful for rendering previews, scripted
// submissions and tests that need real markup.
package dom
