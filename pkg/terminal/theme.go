package terminal

import (
	"github.com/mgutz/ansi"

	"github.com/goliatone/go-contactform/pkg/contact"
)

// Theme captures message prefixes and ANSI styles per severity.
type Theme struct {
	InfoPrefix    string
	ErrorPrefix   string
	SuccessPrefix string
	// Styles holds mgutz/ansi style strings ("red+b", "green"); empty
	// disables colouring for that severity.
	Styles map[contact.Severity]string
}

// DefaultTheme colours errors red and successes teal-ish green.
func DefaultTheme() Theme {
	return Theme{
		InfoPrefix:    "·",
		ErrorPrefix:   "✗",
		SuccessPrefix: "✓",
		Styles: map[contact.Severity]string{
			contact.SeverityError:   "red+b",
			contact.SeveritySuccess: "green",
			contact.SeverityInfo:    "cyan",
		},
	}
}

// PlainTheme keeps the prefixes without colour codes.
func PlainTheme() Theme {
	t := DefaultTheme()
	t.Styles = nil
	return t
}

func (t Theme) format(text string, severity contact.Severity) string {
	prefix := t.InfoPrefix
	switch severity {
	case contact.SeverityError:
		prefix = t.ErrorPrefix
	case contact.SeveritySuccess:
		prefix = t.SuccessPrefix
	}
	line := text
	if prefix != "" {
		line = prefix + " " + text
	}
	if style := t.Styles[severity]; style != "" {
		return ansi.Color(line, style)
	}
	return line
}
