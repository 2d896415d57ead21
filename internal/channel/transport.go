package channel

import "time"

// Transport abstracts a real realtime connection. The simulated channel runs
// without one; a substituted implementation must preserve the Message wire
// contract and invoke the callbacks handed to Dial.
type Transport interface {
	// Dial establishes the connection. onMessage receives inbound envelopes,
	// onClosed fires once when the connection is lost.
	Dial(onMessage func(Message), onClosed func(err error)) error
	Send(Message) error
	Close() error
}

// ReconnectPolicy bounds reconnect attempts after a transport loss.
type ReconnectPolicy struct {
	MaxAttempts int
	Delay       time.Duration
}

// Backoff returns the wait before the given attempt. Delay grows linearly
// with the attempt number.
func (p ReconnectPolicy) Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return p.Delay * time.Duration(attempt)
}
