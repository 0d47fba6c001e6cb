// Package style maps contact severities to the inline presentation applied to
// the message box. Default reproduces the stock colours; FromTheme reads the
// same values from go-theme manifest tokens.
package style
