// Package terminal implements contact.Surface as an interactive prompt
// session. Fields are collected through a PromptDriver (survey by default);
// after a validation error only the focused field is asked again.
package terminal
