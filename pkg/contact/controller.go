package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"time"
)

// SubmitHandler runs one submit attempt and reports its outcome.
type SubmitHandler func(ctx context.Context) Outcome

// Controller binds validation and submission to a single contact form.
type Controller struct {
	surface Surface
	sender  Sender
	logger  *slog.Logger
	delay   time.Duration
	sleep   func(ctx context.Context, d time.Duration) error

	form    Form
	fields  map[string]Field
	control Control

	inFlight atomic.Bool
}

// New constructs a Controller for the given surface. Init must be called
// before the controller reacts to submissions.
func New(surface Surface, options ...Option) *Controller {
	c := &Controller{
		surface: surface,
		logger:  slog.Default(),
		delay:   DefaultSimulatedDelay,
		sleep:   sleepContext,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.sender == nil {
		c.sender = NewHTTPSender()
	}
	return c
}

// Init resolves the form, its fields and submit control, then registers the
// submit handler. It returns ErrFormNotFound when the surface has no form;
// callers treat that as the inert case.
func (c *Controller) Init() error {
	if c.surface == nil {
		return ErrFormNotFound
	}
	form, ok := c.surface.FindForm()
	if !ok || form == nil {
		return ErrFormNotFound
	}

	c.form = form
	c.fields = make(map[string]Field, 3)
	for _, id := range []string{FieldNombre, FieldEmail, FieldMensaje} {
		if field, ok := form.FindField(id); ok && field != nil {
			c.fields[id] = field
		}
	}
	if control, ok := form.SubmitControl(); ok && control != nil {
		c.control = control
	}

	form.OnSubmit(c.HandleSubmit)
	return nil
}

// Validate clears the message box and checks the fields in order, stopping
// at the first failure. A failure is rendered as an error status and the
// offending field, when present, receives focus. Validation never changes
// field values, so repeated calls yield the same result.
func (c *Controller) Validate() error {
	if c.form == nil {
		return ErrNotInitialized
	}
	c.form.ClearStatus()

	verr := Check(c.value)
	if verr == nil {
		return nil
	}
	c.form.ShowStatus(verr.Message, SeverityError)
	if field, ok := c.fields[verr.Field]; ok {
		field.Focus()
	}
	return verr
}

// HandleSubmit validates the form and delivers the payload. The submit
// control stays disabled for the whole attempt and is restored on every exit
// path. Attempts arriving while another is in flight return StatusBusy.
func (c *Controller) HandleSubmit(ctx context.Context) Outcome {
	if c.form == nil {
		return Outcome{Status: StatusFailed, Err: ErrNotInitialized}
	}
	if !c.inFlight.CompareAndSwap(false, true) {
		return Outcome{Status: StatusBusy, Err: ErrSubmitInProgress}
	}
	defer c.inFlight.Store(false)

	if err := c.Validate(); err != nil {
		return Outcome{Status: StatusInvalid, Err: err}
	}

	payload := c.payload()
	restore := c.lockControl()
	defer restore()

	action := Trim(c.form.Action())
	if action == "" || action == "#" {
		if err := c.sleep(ctx, c.delay); err != nil {
			return c.fail(ctx, action, "", payload, fmt.Errorf("contact: simulated send: %w", err))
		}
		c.form.ShowStatus(MsgSimulatedOK, SeveritySuccess)
		c.form.ResetFields()
		return Outcome{Status: StatusSimulated, Payload: &payload}
	}

	method := c.method()
	err := c.sender.Send(ctx, Request{
		Method:  method,
		URL:     action,
		Payload: payload,
	})
	if err != nil {
		return c.fail(ctx, action, method, payload, err)
	}

	c.form.ShowStatus(MsgDeliveredOK, SeveritySuccess)
	c.form.ResetFields()
	return Outcome{Status: StatusDelivered, Payload: &payload}
}

// Busy reports whether a submit attempt is in flight.
func (c *Controller) Busy() bool {
	return c.inFlight.Load()
}

func (c *Controller) fail(ctx context.Context, action, method string, payload Payload, err error) Outcome {
	c.logger.ErrorContext(ctx, "contact form submit failed",
		"error", err,
		"action", action,
		"method", method,
	)
	c.form.ShowStatus(MsgSendFailed, SeverityError)
	return Outcome{Status: StatusFailed, Payload: &payload, Err: err}
}

func (c *Controller) lockControl() func() {
	if c.control == nil {
		return func() {}
	}
	original := c.control.Label()
	c.control.SetState(false, LabelSending)
	return func() {
		label := original
		if label == "" {
			label = LabelDefault
		}
		c.control.SetState(true, label)
	}
}

func (c *Controller) method() string {
	method := strings.ToUpper(strings.TrimSpace(c.form.Method()))
	if method == "" {
		return http.MethodPost
	}
	return method
}

func (c *Controller) value(id string) (string, bool) {
	field, ok := c.fields[id]
	if !ok {
		return "", false
	}
	return field.Value(), true
}

func (c *Controller) payload() Payload {
	get := func(id string) string {
		value, _ := c.value(id)
		return Trim(value)
	}
	return Payload{
		Nombre:  get(FieldNombre),
		Email:   get(FieldEmail),
		Mensaje: get(FieldMensaje),
	}
}

// IsInert reports whether err means the controller has nothing to bind to.
func IsInert(err error) bool {
	return errors.Is(err, ErrFormNotFound)
}
