package contact

import "fmt"

// Severity classifies a status message.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityError
	SeveritySuccess
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityError:
		return "error"
	case SeveritySuccess:
		return "success"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// ParseSeverity maps the textual form back to a Severity. Unknown values fall
// back to SeverityInfo.
func ParseSeverity(raw string) Severity {
	switch raw {
	case "error":
		return SeverityError
	case "success":
		return SeveritySuccess
	default:
		return SeverityInfo
	}
}

// Style holds the inline presentation hints applied to the message box.
type Style struct {
	Color        string
	Background   string
	Padding      string
	BorderRadius string
}

// StylePolicy maps severities to presentation. Surfaces are constructed with
// one; the controller never sees styles.
type StylePolicy interface {
	StatusStyle(severity Severity) Style
	ClearedStyle() Style
}
