// Package contact implements the contact form and its delivery through an
// external mail relay.
package contact

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Zachkp/portfolio/internal/notify"
)

const (
	SuccessMessage = "Message sent successfully! Please check your email, including the Spam folder."
	FailureMessage = "Something went wrong. Please try again!"
)

// State is where the form is in its submit cycle.
type State int

const (
	Idle State = iota
	Submitting
	Failure
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// Options wires a Form.
type Options struct {
	Relay       Relay
	Credentials Credentials
	Notifier    notify.Notifier
	// Alive reports whether the owning page is still mounted. Nil means always.
	Alive  func() bool
	Logger zerolog.Logger
	Now    func() time.Time
}

// Form is the contact form of one page.
type Form struct {
	mu     sync.Mutex
	fields Fields
	state  State

	relay    Relay
	creds    Credentials
	notifier notify.Notifier
	alive    func() bool
	log      zerolog.Logger
	now      func() time.Time
}

func NewForm(opts Options) *Form {
	f := &Form{
		relay:    opts.Relay,
		creds:    opts.Credentials,
		notifier: opts.Notifier,
		alive:    opts.Alive,
		log:      opts.Logger.With().Str("component", "contact").Logger(),
		now:      opts.Now,
	}
	if f.alive == nil {
		f.alive = func() bool { return true }
	}
	if f.now == nil {
		f.now = time.Now
	}
	return f
}

// Fields returns the current values.
func (f *Form) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// State returns the current state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Edit updates one field. Editing after a failure returns the form to Idle.
func (f *Form) Edit(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fields.Set(field, value); err != nil {
		return err
	}
	if f.state == Failure {
		f.state = Idle
	}
	return nil
}

// Submit sends the form once. values, when non-nil, replaces the current
// fields first, as a full form post does.
//
// A nil return means the relay accepted the message: the fields are cleared
// and a success toast is queued. A relay failure keeps the fields, queues an
// error toast and is returned. ErrIncomplete and ErrSubmitting reject the
// submit without calling the relay. If the page unmounts while the relay is
// working, the completion leaves the form untouched.
func (f *Form) Submit(ctx context.Context, values *Fields) error {
	f.mu.Lock()
	if f.state == Submitting {
		f.mu.Unlock()
		return ErrSubmitting
	}
	if values != nil {
		f.fields = *values
	}
	if err := f.fields.Validate(); err != nil {
		f.mu.Unlock()
		return err
	}
	f.state = Submitting
	payload := f.fields.Payload(f.now())
	f.mu.Unlock()

	// the visitor leaving must not abort a message already on its way
	err := f.relay.Send(context.WithoutCancel(ctx), f.creds, payload)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.log.Error().Err(err).Str("detail", relayDetail(err)).Msg("contact submission failed")
	}
	if !f.alive() {
		f.log.Debug().Msg("page unmounted before relay completed")
		return err
	}
	if err != nil {
		f.state = Failure
		f.notify(notify.Error, FailureMessage)
		return err
	}
	f.fields = Fields{}
	f.state = Idle
	f.notify(notify.Success, SuccessMessage)
	f.log.Info().Str("title", payload.Title).Msg("contact message relayed")
	return nil
}

func (f *Form) notify(kind notify.Kind, msg string) {
	if f.notifier != nil {
		f.notifier.Notify(kind, msg)
	}
}

func relayDetail(err error) string {
	var rerr *RelayError
	if errors.As(err, &rerr) {
		return rerr.Text
	}
	return err.Error()
}
