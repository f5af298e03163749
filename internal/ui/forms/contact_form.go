// Package forms holds the contact form controller and its browser binding.
package forms

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/greenaire/site/internal/ui/model"
	"github.com/greenaire/site/logging"
)

// DefaultFallbackEmail is offered to visitors when the relay fails.
const DefaultFallbackEmail = "shanuchees@gmail.com"

// DefaultTimeout bounds a single relay call.
const DefaultTimeout = 10 * time.Second

// Relay delivers a submission to the outside world.
type Relay interface {
	Send(ctx context.Context, sub model.Submission) error
}

// Alerter shows a blocking notice to the visitor.
type Alerter interface {
	Alert(message string)
}

// AlerterFunc adapts a function to Alerter.
type AlerterFunc func(message string)

// Alert calls f(message).
func (f AlerterFunc) Alert(message string) { f(message) }

// FailureMessage is the alert text shown when a submission cannot be delivered.
func FailureMessage(fallbackEmail string) string {
	return "Failed to send message. Please try again later or email us directly at " + fallbackEmail
}

// Option configures a ContactForm.
type Option func(*ContactForm)

// WithAlerter sets the surface used to report delivery failures.
func WithAlerter(a Alerter) Option {
	return func(f *ContactForm) {
		if a != nil {
			f.alerter = a
		}
	}
}

// WithLogger sets the logger for submission failures.
func WithLogger(l *logging.Logger) Option {
	return func(f *ContactForm) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithOnChange registers a callback invoked with each new state.
func WithOnChange(fn func(model.ContactState)) Option {
	return func(f *ContactForm) {
		f.onChange = fn
	}
}

// WithFallbackEmail overrides the address quoted in the failure alert.
func WithFallbackEmail(addr string) Option {
	return func(f *ContactForm) {
		if addr = strings.TrimSpace(addr); addr != "" {
			f.fallbackEmail = addr
		}
	}
}

// WithTimeout bounds each relay call. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(f *ContactForm) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// ContactForm is the contact form state machine: idle, submitting, success.
type ContactForm struct {
	mu            sync.Mutex
	relay         Relay
	alerter       Alerter
	logger        *logging.Logger
	onChange      func(model.ContactState)
	fallbackEmail string
	timeout       time.Duration

	state  model.ContactState
	closed bool
}

// NewContactForm builds an idle, empty form that submits through relay. It
// panics when relay is nil.
func NewContactForm(relay Relay, opts ...Option) *ContactForm {
	if relay == nil {
		panic("forms: nil relay")
	}
	f := &ContactForm{
		relay:         relay,
		alerter:       AlerterFunc(func(string) {}),
		logger:        logging.Discard(),
		fallbackEmail: DefaultFallbackEmail,
		timeout:       DefaultTimeout,
		state:         model.ContactState{Errors: model.FieldErrors{}},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// State returns a snapshot of fields, errors and status.
func (f *ContactForm) State() model.ContactState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

// SubmitDisabled reports whether the submit control should be disabled.
func (f *ContactForm) SubmitDisabled() bool {
	return f.State().Status == model.StatusSubmitting
}

// SetField overwrites one field. Existing errors are left as they are until the
// next submit.
func (f *ContactForm) SetField(name, value string) {
	f.mu.Lock()
	before := f.state.Fields
	f.state.Fields.Set(name, value)
	changed := before != f.state.Fields
	snap := f.snapshotLocked()
	f.mu.Unlock()

	if changed {
		f.notify(snap)
	}
}

// Submit validates the fields and, when they pass, hands one submission to the
// relay on its own goroutine. The returned channel closes once the attempt has
// settled; it is already closed when nothing was sent.
func (f *ContactForm) Submit(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})

	f.mu.Lock()
	if f.closed || f.state.Status == model.StatusSubmitting {
		f.mu.Unlock()
		close(done)
		return done
	}
	f.state.Errors = model.FieldErrors{}
	errs := ValidateContact(f.state.Fields)
	f.state.Errors = errs
	if len(errs) > 0 {
		snap := f.snapshotLocked()
		f.mu.Unlock()
		f.notify(snap)
		close(done)
		return done
	}
	f.state.Status = model.StatusSubmitting
	sub := model.Submission{
		Name:    f.state.Fields.Name,
		Email:   f.state.Fields.Email,
		Message: f.state.Fields.Message,
	}
	timeout := f.timeout
	snap := f.snapshotLocked()
	f.mu.Unlock()
	f.notify(snap)

	go func() {
		defer close(done)
		reqCtx, cancel := context.WithTimeout(ctx, timeout)
		err := f.relay.Send(reqCtx, sub)
		cancel()
		f.settle(err)
	}()
	return done
}

func (f *ContactForm) settle(err error) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	if err == nil {
		f.state = model.ContactState{Errors: model.FieldErrors{}, Status: model.StatusSuccess}
	} else {
		f.state.Status = model.StatusIdle
	}
	snap := f.snapshotLocked()
	fallback := f.fallbackEmail
	f.mu.Unlock()

	if err != nil {
		f.logger.Error(logging.CategoryContact, "contact submission failed", err, nil)
		f.alerter.Alert(FailureMessage(fallback))
	}
	f.notify(snap)
}

// ResetAfterSuccess returns a successful form to idle so another message can
// be written. It has no effect in any other state.
func (f *ContactForm) ResetAfterSuccess() {
	f.mu.Lock()
	if f.state.Status != model.StatusSuccess {
		f.mu.Unlock()
		return
	}
	f.state.Status = model.StatusIdle
	snap := f.snapshotLocked()
	f.mu.Unlock()
	f.notify(snap)
}

// Close detaches the form. A relay response arriving afterwards is dropped
// without touching state or alerting, and further submits are ignored.
func (f *ContactForm) Close() {
	f.mu.Lock()
	f.closed = true
	f.onChange = nil
	f.mu.Unlock()
}

func (f *ContactForm) snapshotLocked() model.ContactState {
	snap := f.state
	snap.Errors = f.state.Errors.Clone()
	return snap
}

func (f *ContactForm) notify(snap model.ContactState) {
	f.mu.Lock()
	fn := f.onChange
	f.mu.Unlock()
	if fn != nil {
		fn(snap)
	}
}
