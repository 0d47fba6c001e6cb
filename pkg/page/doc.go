// Package page renders the #contacto section, and optionally a full page that
// boots the WASM controller, from embedded pongo2 templates. Intro markup is
// sanitised with bluemonday and theme tokens become CSS custom properties.
package page
