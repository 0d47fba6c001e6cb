package contact

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf16"
)

const (
	minNameLength    = 2
	minMessageLength = 10
)

// emailPattern is the loose structural check: something@something.something
// with no whitespace or extra '@'. It is not an RFC 5322 validator.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// ValidEmail reports whether value passes the structural email check.
func ValidEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// textLength counts UTF-16 code units, the unit browsers use for input length.
func textLength(value string) int {
	return len(utf16.Encode([]rune(value)))
}

// Trim strips leading and trailing whitespace the way browsers trim input
// values, which also removes the byte order mark.
func Trim(value string) string {
	return strings.TrimFunc(value, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}

type rule struct {
	field   string
	message string
	valid   func(string) bool
}

var rules = []rule{
	{
		field:   FieldNombre,
		message: MsgNameTooShort,
		valid:   func(v string) bool { return textLength(v) >= minNameLength },
	},
	{
		field:   FieldEmail,
		message: MsgInvalidEmail,
		valid:   ValidEmail,
	},
	{
		field:   FieldMensaje,
		message: MsgMessageTooShort,
		valid:   func(v string) bool { return textLength(v) >= minMessageLength },
	},
}

// Check runs the field rules against trimmed values without touching any
// surface. Missing fields are passed as absent and always fail their rule.
func Check(lookup func(id string) (string, bool)) *ValidationError {
	for _, r := range rules {
		value, ok := lookup(r.field)
		if !ok || !r.valid(Trim(value)) {
			return &ValidationError{Field: r.field, Message: r.message}
		}
	}
	return nil
}
