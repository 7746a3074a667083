package hmac

import "time"

// Option customizes a Signer or Verifier
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the source of the current time, which is otherwise time.Now:
// a Signer uses it to stamp the Date header, and a Verifier uses it to judge whether
// a request is fresh
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func resolveOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
