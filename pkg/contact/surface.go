package contact

// Surface is the UI seam the Controller drives. Implementations own the
// rendering and event plumbing; the controller only sees the views below.
type Surface interface {
	// FindForm locates the form inside the #contacto container. It reports
	// false when either the container or the form is missing.
	FindForm() (Form, bool)
}

// Form is the surface view of the located form element.
type Form interface {
	// Action returns the raw action attribute (untrimmed).
	Action() string
	// Method returns the raw method attribute; empty when not configured.
	Method() string
	FindField(id string) (Field, bool)
	// SubmitControl returns the first submit-type button or input.
	SubmitControl() (Control, bool)
	// OnSubmit registers the submit handler. Surfaces must always prevent the
	// native submission before invoking it.
	OnSubmit(handler SubmitHandler)
	// ShowStatus renders text in the message box with the surface's style
	// policy for the given severity.
	ShowStatus(text string, severity Severity)
	// ClearStatus empties the message box and resets its background.
	ClearStatus()
	// ResetFields empties every form field.
	ResetFields()
}

// Field is a text input or textarea.
type Field interface {
	Value() string
	Focus()
}

// Control is the submit button (or submit input).
type Control interface {
	Label() string
	// SetState toggles the control and replaces its visible label.
	SetState(enabled bool, label string)
}
