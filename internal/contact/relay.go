package contact

import (
	"context"
	"fmt"
)

// Credentials are the three opaque identifiers the mail relay expects.
type Credentials struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
}

// Relay delivers one contact message. It is called once per submit; there is
// no retry.
type Relay interface {
	Send(ctx context.Context, creds Credentials, p Payload) error
}

// RelayFunc adapts a function to Relay.
type RelayFunc func(ctx context.Context, creds Credentials, p Payload) error

func (f RelayFunc) Send(ctx context.Context, creds Credentials, p Payload) error {
	return f(ctx, creds, p)
}

// RelayError is a rejection reported by the relay service.
type RelayError struct {
	Status int
	Text   string
}

func (e *RelayError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("mail relay rejected message: %d %s", e.Status, e.Text)
}
